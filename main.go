// Package main is the entry point for the firebehave application. It
// delegates to the cmd package, which builds the Cobra command tree and
// drives the cli.Orchestrator.
package main

import (
	"firebehave/cmd"
)

func main() {
	cmd.Execute()
}
