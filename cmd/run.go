package cmd

import (
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"firebehave/cli"
	"firebehave/common"
	"firebehave/config"
)

var (
	runFuelModelNumber int
	runM1h, runM10h, runM100h, runMHerb, runMWoody float64
	runWindHeightMode                              string
	runWindSpeed, runWindDirection                 float64
	runSlope, runAspect                            float64
	runCanopyCover, runCrownRatio                  float64
	runCanopyHeight                                float64

	runUseTwoFuelModels      bool
	runSecondFuelModelNumber int
	runFirstModelCoverage    float64
	runTwoFuelMethod         string

	runUseDirectionOfInterest bool
	runDirectionOfInterest    float64

	runExportPath     string
	runCatalogFile    string
)

// runCmd represents the `run` command, calculating a single fire
// behavior scenario and printing its results.
//
// Grounded on _examples/HD220-crownet/cmd/sim.go's TOML-then-flag-override
// pattern: build an AppConfig from flag defaults, optionally overlay a
// TOML file, then re-apply the log-db, fuelModel, windSpeed,
// windDirection, slope, aspect, twoFuelModels, directionOfInterest and
// export flags when the user set them explicitly, so those flags win
// over the file. Any other flag given together with a TOML file is
// overridden by the file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Calculate surface fire spread behavior for one scenario.",
	Long: `run computes Rothermel surface fire spread rate, flame length, and
fireline intensity for a single scenario described by fuel model,
moisture, wind, slope, and canopy inputs, either from command-line
flags or a TOML configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appCfg := &config.AppConfig{
			Scenario: config.ScenarioConfig{
				FuelModelNumber:        runFuelModelNumber,
				MoistureOneHour:        common.Fraction(runM1h),
				MoistureTenHour:        common.Fraction(runM10h),
				MoistureHundredHour:    common.Fraction(runM100h),
				MoistureLiveHerbaceous: common.Fraction(runMHerb),
				MoistureLiveWoody:      common.Fraction(runMWoody),
				WindHeightMode:         runWindHeightMode,
				WindSpeed:              common.MilesPerHour(runWindSpeed),
				WindDirection:          common.Degrees(runWindDirection),
				Slope:                  runSlope,
				Aspect:                 runAspect,
				CanopyCover:            common.Fraction(runCanopyCover),
				CanopyHeight:           common.Feet(runCanopyHeight),
				CrownRatio:             common.Fraction(runCrownRatio),
				UseTwoFuelModels:       runUseTwoFuelModels,
				SecondFuelModelNumber:  runSecondFuelModelNumber,
				FirstModelCoverage:     common.Fraction(runFirstModelCoverage),
				TwoFuelMethod:          runTwoFuelMethod,
				DirectionOfInterest:    runDirectionOfInterest,
				UseDirectionOfInterest: runUseDirectionOfInterest,
			},
			Cli: config.CLIConfig{
				Mode:              config.ModeRun,
				LogDbPath:         logDbPath,
				CatalogFile:       runCatalogFile,
				CatalogExportPath: runExportPath,
			},
		}

		if configFile != "" {
			cliCfgBeforeToml := appCfg.Cli
			scenarioBeforeToml := appCfg.Scenario
			if _, err := toml.DecodeFile(configFile, appCfg); err != nil {
				log.Printf("warning: failed to decode TOML config %q: %v; falling back to flags", configFile, err)
				appCfg.Cli = cliCfgBeforeToml
				appCfg.Scenario = scenarioBeforeToml
			}
		}

		if cmd.Flags().Changed("log-db") {
			appCfg.Cli.LogDbPath = logDbPath
		}
		if cmd.Flags().Changed("fuelModel") {
			appCfg.Scenario.FuelModelNumber = runFuelModelNumber
		}
		if cmd.Flags().Changed("windSpeed") {
			appCfg.Scenario.WindSpeed = common.MilesPerHour(runWindSpeed)
		}
		if cmd.Flags().Changed("windDirection") {
			appCfg.Scenario.WindDirection = common.Degrees(runWindDirection)
		}
		if cmd.Flags().Changed("slope") {
			appCfg.Scenario.Slope = runSlope
		}
		if cmd.Flags().Changed("aspect") {
			appCfg.Scenario.Aspect = runAspect
		}
		if cmd.Flags().Changed("twoFuelModels") {
			appCfg.Scenario.UseTwoFuelModels = runUseTwoFuelModels
		}
		if cmd.Flags().Changed("directionOfInterest") {
			appCfg.Scenario.UseDirectionOfInterest = true
			appCfg.Scenario.DirectionOfInterest = runDirectionOfInterest
		}
		if cmd.Flags().Changed("export") {
			appCfg.Cli.CatalogExportPath = runExportPath
		}

		if err := appCfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration for run: %w", err)
		}

		orchestrator := cli.NewOrchestrator(appCfg)
		if err := orchestrator.Run(); err != nil {
			return fmt.Errorf("run failed: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runFuelModelNumber, "fuelModel", 1, "Fuel model number (standard 1-13/40 or a custom slot).")
	runCmd.Flags().Float64Var(&runM1h, "m1h", 0.06, "1-hour dead fuel moisture fraction.")
	runCmd.Flags().Float64Var(&runM10h, "m10h", 0.07, "10-hour dead fuel moisture fraction.")
	runCmd.Flags().Float64Var(&runM100h, "m100h", 0.08, "100-hour dead fuel moisture fraction.")
	runCmd.Flags().Float64Var(&runMHerb, "mHerb", 0.60, "Live herbaceous fuel moisture fraction.")
	runCmd.Flags().Float64Var(&runMWoody, "mWoody", 0.90, "Live woody fuel moisture fraction.")
	runCmd.Flags().StringVar(&runWindHeightMode, "windHeightMode", "direct", "Wind speed reference height: direct, twentyFoot, or tenMeter.")
	runCmd.Flags().Float64Var(&runWindSpeed, "windSpeed", 5, "Wind speed in mi/h at the configured reference height.")
	runCmd.Flags().Float64Var(&runWindDirection, "windDirection", 0, "Wind direction in degrees clockwise from upslope.")
	runCmd.Flags().Float64Var(&runSlope, "slope", 0, "Terrain slope in percent.")
	runCmd.Flags().Float64Var(&runAspect, "aspect", 0, "Terrain aspect in degrees clockwise from north.")
	runCmd.Flags().Float64Var(&runCanopyCover, "canopyCover", 0, "Canopy cover fraction, used for midflame wind adjustment.")
	runCmd.Flags().Float64Var(&runCanopyHeight, "canopyHeight", 0, "Canopy height in feet, used for midflame wind adjustment.")
	runCmd.Flags().Float64Var(&runCrownRatio, "crownRatio", 0, "Crown ratio fraction, used for midflame wind adjustment.")

	runCmd.Flags().BoolVar(&runUseTwoFuelModels, "twoFuelModels", false, "Blend two fuel models instead of using a single one.")
	runCmd.Flags().IntVar(&runSecondFuelModelNumber, "secondFuelModel", 0, "Second fuel model number, required when --twoFuelModels is set.")
	runCmd.Flags().Float64Var(&runFirstModelCoverage, "firstModelCoverage", 1, "Areal coverage fraction of the first fuel model.")
	runCmd.Flags().StringVar(&runTwoFuelMethod, "twoFuelMethod", "arithmetic", "Blending method: arithmetic, harmonic, or twoDimensional.")

	runCmd.Flags().BoolVar(&runUseDirectionOfInterest, "useDirectionOfInterest", false, "Report spread rate along a specific direction instead of the direction of maximum spread.")
	runCmd.Flags().Float64Var(&runDirectionOfInterest, "directionOfInterest", 0, "Direction of interest in degrees clockwise from upslope; setting it also turns on --useDirectionOfInterest.")

	runCmd.Flags().StringVar(&runCatalogFile, "catalogFile", "", "Optional JSON file with custom fuel model overlays to load before running.")
	runCmd.Flags().StringVar(&runExportPath, "export", "", "Optional CSV path to export the run log to after logging this run.")
}
