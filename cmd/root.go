package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global/persistent flags.
	configFile string
	logDbPath  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "firebehave",
	Short: "firebehave: Rothermel surface fire spread calculator",
	Long: `firebehave is a command-line tool implementing the Rothermel surface
fire spread model: fuel model catalog lookups, surface fire behavior
calculations, and two-fuel-model blending.
For more details on a specific command, use: firebehave [command] --help`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "configFile", "", "Path to a TOML scenario configuration file.")
	rootCmd.PersistentFlags().StringVar(&logDbPath, "log-db", "", "Path to a SQLite database to log run results to (empty disables logging).")
}
