// Package cli provides the command-line orchestrator for firebehave. It
// interprets the parsed AppConfig, drives a scenario calculation or a
// catalog inspection, and manages persistence (SQLite run log, JSON
// catalog overlay).
//
// Grounded on _examples/HD220-crownet/cli/orchestrator.go's Orchestrator:
// a thin struct wrapping AppConfig plus function-field persistence hooks
// for testability, dispatching on Cli.Mode inside Run().
package cli

import (
	"fmt"
	"log"
	"path/filepath"

	"firebehave/config"
	"firebehave/fuelmodel"
	"firebehave/scenario"
	"firebehave/storage"
)

// Orchestrator ties together configuration, the fuel model catalog, and
// persistence for one CLI invocation.
type Orchestrator struct {
	AppCfg  *config.AppConfig
	Catalog *fuelmodel.Catalog
	Logger  *storage.SQLiteLogger

	// loadCatalogFn and saveCatalogFn allow mocking catalog persistence in
	// tests, mirroring the teacher's loadWeightsFn/saveWeightsFn.
	loadCatalogFn func(cat *fuelmodel.Catalog, path string) error
	saveCatalogFn func(cat *fuelmodel.Catalog, path string) error

	// out receives human-readable report output; tests can redirect it.
	out func(format string, args ...any)
}

// NewOrchestrator creates an orchestrator seeded with a fresh catalog and
// the real filesystem/SQLite persistence functions.
func NewOrchestrator(appCfg *config.AppConfig) *Orchestrator {
	return &Orchestrator{
		AppCfg:        appCfg,
		Catalog:       fuelmodel.NewCatalog(),
		loadCatalogFn: storage.LoadCatalogJSON,
		saveCatalogFn: storage.SaveCatalogJSON,
		out:           func(format string, args ...any) { fmt.Printf(format, args...) },
	}
}

// SetOutputForTest overrides the report output sink; used by tests to
// capture Orchestrator's human-readable output instead of stdout.
func (o *Orchestrator) SetOutputForTest(out func(format string, args ...any)) {
	o.out = out
}

// Run executes the selected mode.
func (o *Orchestrator) Run() error {
	if err := o.initializeLogger(); err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	if o.Logger != nil {
		defer func() {
			if err := o.Logger.Close(); err != nil {
				log.Printf("error closing SQLite logger: %v", err)
			}
		}()
	}

	switch o.AppCfg.Cli.Mode {
	case config.ModeRun:
		return o.runRunMode()
	case config.ModeCatalog:
		return o.runCatalogMode()
	default:
		return fmt.Errorf("unknown or unsupported mode in Orchestrator.Run: %s", o.AppCfg.Cli.Mode)
	}
}

// initializeLogger sets up the SQLite logger if a log database path was
// configured for the run mode.
func (o *Orchestrator) initializeLogger() error {
	if o.AppCfg.Cli.Mode != config.ModeRun || o.AppCfg.Cli.LogDbPath == "" {
		return nil
	}
	path, err := validatePath(o.AppCfg.Cli.LogDbPath)
	if err != nil {
		return fmt.Errorf("invalid log-db path %q: %w", o.AppCfg.Cli.LogDbPath, err)
	}
	o.Logger, err = storage.NewSQLiteLogger(path)
	if err != nil {
		return fmt.Errorf("failed to initialize SQLite logger at %s: %w", path, err)
	}
	o.out("Logging run results to %s\n", path)
	return nil
}

// validatePath cleans and absolutizes rawPath, per the teacher's
// validatePath (simplified: this CLI only ever writes to or reads an
// explicitly-named file, never a directory).
func validatePath(rawPath string) (string, error) {
	if rawPath == "" {
		return "", fmt.Errorf("path cannot be empty")
	}
	return filepath.Abs(filepath.Clean(rawPath))
}

// runRunMode builds a scenario from AppCfg.Scenario, calculates forward
// spread, prints a report, and optionally logs the run.
func (o *Orchestrator) runRunMode() error {
	sc := o.AppCfg.Scenario
	in, err := sc.BuildInputs()
	if err != nil {
		return fmt.Errorf("failed to build scenario inputs: %w", err)
	}

	if o.AppCfg.Cli.CatalogFile != "" {
		if err := o.loadCatalogFn(o.Catalog, o.AppCfg.Cli.CatalogFile); err != nil {
			log.Printf("note: could not load custom catalog overlay from %s: %v", o.AppCfg.Cli.CatalogFile, err)
		}
	}

	s := scenario.New(o.Catalog)
	s.Inputs = *in
	s.CalculateForwardSpreadRate(sc.DirectionOfInterestPtr())

	o.printReport(s)

	if o.Logger != nil {
		if err := o.Logger.LogRun(&s.Inputs, s.Results); err != nil {
			return fmt.Errorf("failed to log run: %w", err)
		}
	}
	if o.AppCfg.Cli.CatalogExportPath != "" {
		if err := storage.ExportRunsCSV(o.AppCfg.Cli.LogDbPath, o.AppCfg.Cli.CatalogExportPath); err != nil {
			return fmt.Errorf("failed to export run log: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) printReport(s *scenario.Scenario) {
	o.out("Fuel model: %d\n", s.Inputs.FuelModelNumber)
	o.out("Spread rate: %.2f chains/hr\n", float64(s.SpreadRate()))
	o.out("Direction of max spread: %.1f deg\n", float64(s.DirectionOfMaxSpread()))
	o.out("Flame length: %.2f ft\n", float64(s.FlameLength()))
	o.out("Fireline intensity: %.1f Btu/ft/s\n", float64(s.FirelineIntensity()))
	o.out("Effective wind speed: %.2f mi/h (limit %.2f, exceeded=%v)\n",
		float64(s.EffectiveWindSpeed()), float64(s.WindSpeedLimit()), s.WindLimitExceeded())
	o.out("Length-to-width ratio: %.3f (eccentricity %.3f)\n", s.LengthToWidthRatio(), s.Eccentricity())
}

// runCatalogMode inspects or mutates the fuel model catalog per
// Cli.CatalogSubcommand.
func (o *Orchestrator) runCatalogMode() error {
	cliCfg := o.AppCfg.Cli

	if cliCfg.CatalogFile != "" && (cliCfg.CatalogSubcommand == config.CatalogList || cliCfg.CatalogSubcommand == config.CatalogShow ||
		cliCfg.CatalogSubcommand == config.CatalogClear) {
		if err := o.loadCatalogFn(o.Catalog, cliCfg.CatalogFile); err != nil {
			log.Printf("note: could not load custom catalog overlay from %s: %v", cliCfg.CatalogFile, err)
		}
	}

	switch cliCfg.CatalogSubcommand {
	case config.CatalogList:
		return o.catalogList()
	case config.CatalogShow:
		return o.catalogShow(cliCfg.CatalogNumber)
	case config.CatalogClear:
		return o.catalogClear(cliCfg.CatalogNumber, cliCfg.CatalogFile)
	default:
		return fmt.Errorf("unsupported catalog subcommand: %s", cliCfg.CatalogSubcommand)
	}
}

func (o *Orchestrator) catalogList() error {
	for n := 0; n <= fuelmodel.MaxFuelModelNumber; n++ {
		if o.Catalog.IsDefined(n) {
			fm := o.Catalog.Get(n)
			kind := "custom"
			if fm.IsReserved {
				kind = "standard"
			}
			o.out("%3d  %-8s %-30s (%s)\n", fm.Number, fm.Code, fm.Name, kind)
		}
	}
	return nil
}

func (o *Orchestrator) catalogShow(n int) error {
	if !o.Catalog.IsDefined(n) {
		return fmt.Errorf("fuel model %d is not defined in the catalog", n)
	}
	fm := o.Catalog.Get(n)
	o.out("Number: %d\nCode: %s\nName: %s\n", fm.Number, fm.Code, fm.Name)
	o.out("Fuelbed depth: %.2f ft\n", fm.FuelbedDepth)
	o.out("Dead fuel moisture of extinction: %.3f\n", fm.MoistureOfExtinctionDead)
	o.out("Heat of combustion: dead=%.0f live=%.0f Btu/lb\n", fm.HeatOfCombustionDead, fm.HeatOfCombustionLive)
	o.out("Loads (lb/ft2): 1h=%.4f 10h=%.4f 100h=%.4f herb=%.4f woody=%.4f\n",
		fm.LoadOneHour, fm.LoadTenHour, fm.LoadHundredHour, fm.LoadLiveHerbaceous, fm.LoadLiveWoody)
	o.out("SAVR (ft2/ft3): 1h=%.0f herb=%.0f woody=%.0f\n", fm.SavrOneHour, fm.SavrLiveHerbaceous, fm.SavrLiveWoody)
	o.out("Dynamic: %v, Reserved: %v\n", fm.IsDynamic, fm.IsReserved)
	return nil
}

func (o *Orchestrator) catalogClear(n int, persistPath string) error {
	if !o.Catalog.ClearCustom(n) {
		return fmt.Errorf("fuel model %d cannot be cleared (reserved or out of range)", n)
	}
	if persistPath != "" {
		if err := o.saveCatalogFn(o.Catalog, persistPath); err != nil {
			return fmt.Errorf("failed to persist catalog after clearing %d: %w", n, err)
		}
	}
	o.out("Cleared custom fuel model %d\n", n)
	return nil
}

// SetCustomFuelModel upserts a custom fuel model and persists the
// overlay if a CatalogFile is configured. Exposed separately from
// runCatalogMode's dispatch because `catalog set` takes many scalar
// flags better bound directly by cmd/catalog.go.
func (o *Orchestrator) SetCustomFuelModel(
	n int, code, name string,
	fuelbedDepth, moistureOfExtinctionDead, heatOfCombustionDead, heatOfCombustionLive,
	loadOneHour, loadTenHour, loadHundredHour, loadLiveHerbaceous, loadLiveWoody,
	savrOneHour, savrLiveHerbaceous, savrLiveWoody float64,
	isDynamic bool,
) error {
	if o.AppCfg.Cli.CatalogFile != "" {
		if err := o.loadCatalogFn(o.Catalog, o.AppCfg.Cli.CatalogFile); err != nil {
			log.Printf("note: could not load existing custom catalog overlay from %s: %v", o.AppCfg.Cli.CatalogFile, err)
		}
	}
	if !o.Catalog.SetCustom(n, code, name, fuelbedDepth, moistureOfExtinctionDead, heatOfCombustionDead, heatOfCombustionLive,
		loadOneHour, loadTenHour, loadHundredHour, loadLiveHerbaceous, loadLiveWoody,
		savrOneHour, savrLiveHerbaceous, savrLiveWoody, isDynamic) {
		return fmt.Errorf("fuel model %d cannot be set (reserved or out of range)", n)
	}
	if o.AppCfg.Cli.CatalogFile != "" {
		if err := o.saveCatalogFn(o.Catalog, o.AppCfg.Cli.CatalogFile); err != nil {
			return fmt.Errorf("failed to persist catalog after setting %d: %w", n, err)
		}
	}
	o.out("Set custom fuel model %d (%s)\n", n, name)
	return nil
}
