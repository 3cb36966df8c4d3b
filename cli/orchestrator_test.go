package cli_test

import (
	"fmt"
	"strings"
	"testing"

	"firebehave/cli"
	"firebehave/config"
)

func newTestOrchestrator(appCfg *config.AppConfig) (*cli.Orchestrator, *strings.Builder) {
	o := cli.NewOrchestrator(appCfg)
	var sb strings.Builder
	o.SetOutputForTest(func(format string, args ...any) {
		sb.WriteString(fmt.Sprintf(format, args...))
	})
	return o, &sb
}

func TestOrchestratorRunModePrintsSpreadRate(t *testing.T) {
	appCfg := config.NewAppConfig()
	appCfg.Scenario = config.DefaultScenarioConfig()

	o, out := newTestOrchestrator(appCfg)
	if err := o.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Spread rate:") {
		t.Errorf("expected report to mention spread rate, got %q", out.String())
	}
}

func TestOrchestratorCatalogListShowsStandardModels(t *testing.T) {
	appCfg := config.NewAppConfig()
	appCfg.Cli.Mode = config.ModeCatalog
	appCfg.Cli.CatalogSubcommand = config.CatalogList

	o, out := newTestOrchestrator(appCfg)
	if err := o.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "standard") {
		t.Errorf("expected catalog list to mention at least one standard model, got %q", out.String())
	}
}

func TestOrchestratorCatalogShowUnknownModelFails(t *testing.T) {
	appCfg := config.NewAppConfig()
	appCfg.Cli.Mode = config.ModeCatalog
	appCfg.Cli.CatalogSubcommand = config.CatalogShow
	appCfg.Cli.CatalogNumber = 250

	o, _ := newTestOrchestrator(appCfg)
	if err := o.Run(); err == nil {
		t.Errorf("expected error showing an undefined fuel model")
	}
}

func TestOrchestratorSetAndClearCustomFuelModel(t *testing.T) {
	appCfg := config.NewAppConfig()
	appCfg.Cli.Mode = config.ModeCatalog

	o, _ := newTestOrchestrator(appCfg)
	if err := o.SetCustomFuelModel(60, "TEST", "Test Fuel",
		1.0, 0.30, 8000, 8000, 0.10, 0.05, 0.02, 0, 0, 1800, 1500, 1500, false); err != nil {
		t.Fatalf("SetCustomFuelModel failed: %v", err)
	}
	if !o.Catalog.IsDefined(60) {
		t.Fatalf("expected fuel model 60 to be defined after SetCustomFuelModel")
	}

	appCfg.Cli.CatalogSubcommand = config.CatalogClear
	appCfg.Cli.CatalogNumber = 60
	if err := o.Run(); err != nil {
		t.Fatalf("Run (clear) failed: %v", err)
	}
	if o.Catalog.IsDefined(60) {
		t.Errorf("expected fuel model 60 to be cleared")
	}
}

func TestOrchestratorRejectsUnknownMode(t *testing.T) {
	appCfg := config.NewAppConfig()
	appCfg.Cli.Mode = "bogus"

	o, _ := newTestOrchestrator(appCfg)
	if err := o.Run(); err == nil {
		t.Errorf("expected error for an unknown mode")
	}
}
