// Package config provides types and functions for managing application
// configuration: the scenario to calculate (fuel models, moisture, wind,
// slope, canopy) and the CLI run mode. It handles loading defaults,
// parsing CLI flags, optionally overlaying a TOML file, and validating
// the overall configuration.
//
// Grounded on _examples/HD220-crownet/config/config.go's AppConfig split
// (SimParams/Cli) and its hand-written, exhaustive Validate().
package config

import (
	"fmt"

	"firebehave/common"
	"firebehave/surface"
)

// Run modes, analogous to the teacher's ModeSim/ModeExpose/ModeObserve set.
const (
	ModeRun     = "run"
	ModeCatalog = "catalog"
)

// SupportedModes lists all valid operation modes for the application.
var SupportedModes = []string{ModeRun, ModeCatalog}

// Catalog subcommands for ModeCatalog.
const (
	CatalogList  = "list"
	CatalogShow  = "show"
	CatalogSet   = "set"
	CatalogClear = "clear"
)

var supportedCatalogSubcommands = []string{CatalogList, CatalogShow, CatalogSet, CatalogClear}

// ScenarioConfig is the full surface.Inputs scenario in flat, flag/TOML
// friendly form. Only the standard and two-fuel-models operating modes
// are exposed at the CLI; palmetto-gallberry and western-aspen remain
// library-only entry points per spec.md §6 (no published special-case
// data for their CLI surfacing).
type ScenarioConfig struct {
	FuelModelNumber int

	MoistureOneHour        common.Fraction
	MoistureTenHour        common.Fraction
	MoistureHundredHour    common.Fraction
	MoistureLiveHerbaceous common.Fraction
	MoistureLiveWoody      common.Fraction

	WindHeightMode string // "direct", "twentyFoot", "tenMeter"
	WindSpeed      common.MilesPerHour
	WindDirection  common.Degrees

	Slope  float64
	Aspect float64

	CanopyCover  common.Fraction
	CanopyHeight common.Feet
	CrownRatio   common.Fraction

	UseTwoFuelModels      bool
	SecondFuelModelNumber int
	FirstModelCoverage    common.Fraction
	TwoFuelMethod         string // "arithmetic", "harmonic", "twoDimensional"

	DirectionOfInterest    float64
	UseDirectionOfInterest bool
}

// DefaultScenarioConfig returns a scenario resembling a dry, lightly
// cured grass fire on flat ground with a light wind, mirroring the
// teacher's DefaultSimulationParameters role of giving every field a
// reasonable starting value.
func DefaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		FuelModelNumber:        1,
		MoistureOneHour:        0.06,
		MoistureTenHour:        0.07,
		MoistureHundredHour:    0.08,
		MoistureLiveHerbaceous: 0.60,
		MoistureLiveWoody:      0.90,
		WindHeightMode:         "direct",
		WindSpeed:              5,
		WindDirection:          0,
		Slope:                  0,
		Aspect:                 0,
		CanopyCover:            0,
		CanopyHeight:           0,
		CrownRatio:             0,
		TwoFuelMethod:          "arithmetic",
		FirstModelCoverage:     1,
	}
}

func (sc ScenarioConfig) windHeightMode() (surface.WindHeightMode, error) {
	switch sc.WindHeightMode {
	case "", "direct":
		return surface.DirectMidflame, nil
	case "twentyFoot":
		return surface.TwentyFoot, nil
	case "tenMeter":
		return surface.TenMeter, nil
	default:
		return surface.DirectMidflame, fmt.Errorf("unknown windHeightMode %q (want direct, twentyFoot, or tenMeter)", sc.WindHeightMode)
	}
}

func (sc ScenarioConfig) twoFuelMethod() (surface.TwoFuelMethod, error) {
	switch sc.TwoFuelMethod {
	case "", "arithmetic":
		return surface.Arithmetic, nil
	case "harmonic":
		return surface.Harmonic, nil
	case "twoDimensional":
		return surface.TwoDimensional, nil
	default:
		return surface.Arithmetic, fmt.Errorf("unknown twoFuelMethod %q (want arithmetic, harmonic, or twoDimensional)", sc.TwoFuelMethod)
	}
}

// BuildInputs constructs a surface.Inputs from the scenario config,
// activating two-fuel-models mode when UseTwoFuelModels is set.
func (sc ScenarioConfig) BuildInputs() (*surface.Inputs, error) {
	whm, err := sc.windHeightMode()
	if err != nil {
		return nil, err
	}
	in := surface.New()
	if sc.UseTwoFuelModels {
		method, err := sc.twoFuelMethod()
		if err != nil {
			return nil, err
		}
		in.UpdateForTwoFuelModels(sc.FuelModelNumber, sc.SecondFuelModelNumber,
			sc.MoistureOneHour, sc.MoistureTenHour, sc.MoistureHundredHour,
			sc.MoistureLiveHerbaceous, sc.MoistureLiveWoody,
			whm, sc.WindSpeed, sc.WindDirection,
			sc.FirstModelCoverage, method,
			sc.Slope, sc.Aspect, sc.CanopyCover, sc.CanopyHeight, sc.CrownRatio)
		return in, nil
	}
	in.UpdateSurface(sc.FuelModelNumber,
		sc.MoistureOneHour, sc.MoistureTenHour, sc.MoistureHundredHour,
		sc.MoistureLiveHerbaceous, sc.MoistureLiveWoody,
		whm, sc.WindSpeed, sc.WindDirection,
		sc.Slope, sc.Aspect, sc.CanopyCover, sc.CanopyHeight, sc.CrownRatio)
	return in, nil
}

// DirectionOfInterestPtr returns a pointer suitable for
// scenario.CalculateForwardSpreadRate, or nil if the scenario asks for
// the true forward rate.
func (sc ScenarioConfig) DirectionOfInterestPtr() *float64 {
	if !sc.UseDirectionOfInterest {
		return nil
	}
	doi := sc.DirectionOfInterest
	return &doi
}

// Validate performs range/consistency checks in the teacher's style:
// one fmt.Errorf per condition, never a panic.
func (sc ScenarioConfig) Validate() error {
	if _, err := sc.windHeightMode(); err != nil {
		return err
	}
	if sc.UseTwoFuelModels {
		if _, err := sc.twoFuelMethod(); err != nil {
			return err
		}
		if sc.FirstModelCoverage < 0 || sc.FirstModelCoverage > 1 {
			return fmt.Errorf("firstModelCoverage must be in [0,1], got %v", sc.FirstModelCoverage)
		}
		if sc.SecondFuelModelNumber == sc.FuelModelNumber {
			return fmt.Errorf("secondFuelModelNumber (%d) must differ from fuelModelNumber", sc.SecondFuelModelNumber)
		}
	}
	for name, m := range map[string]common.Fraction{
		"moistureOneHour":        sc.MoistureOneHour,
		"moistureTenHour":        sc.MoistureTenHour,
		"moistureHundredHour":    sc.MoistureHundredHour,
		"moistureLiveHerbaceous": sc.MoistureLiveHerbaceous,
		"moistureLiveWoody":      sc.MoistureLiveWoody,
		"canopyCover":            sc.CanopyCover,
		"crownRatio":             sc.CrownRatio,
	} {
		if m < 0 || m > 1 {
			return fmt.Errorf("%s must be in [0,1], got %v", name, m)
		}
	}
	if sc.WindSpeed < 0 {
		return fmt.Errorf("windSpeed must be non-negative, got %v", sc.WindSpeed)
	}
	if sc.Slope < 0 {
		return fmt.Errorf("slope must be non-negative, got %v", sc.Slope)
	}
	if sc.CanopyHeight < 0 {
		return fmt.Errorf("canopyHeight must be non-negative, got %v", sc.CanopyHeight)
	}
	return nil
}

// CLIConfig carries the run-mode selection and the ambient concerns
// (logging database, catalog persistence, export), analogous to the
// teacher's CLIConfig.
type CLIConfig struct {
	Mode string

	LogDbPath string // sqlite path for the `run` command; "" disables logging

	CatalogSubcommand string
	CatalogFile       string // JSON overlay file for custom fuel models
	CatalogNumber     int
	CatalogExportPath string // CSV export path for `run --export`
}

// AppConfig is the top-level configuration, aggregating the scenario to
// calculate and the CLI run mode, mirroring the teacher's
// AppConfig{SimParams, Cli}.
type AppConfig struct {
	Scenario ScenarioConfig
	Cli      CLIConfig
}

// NewAppConfig returns an AppConfig with scenario defaults and mode set
// to ModeRun.
func NewAppConfig() *AppConfig {
	return &AppConfig{
		Scenario: DefaultScenarioConfig(),
		Cli:      CLIConfig{Mode: ModeRun, CatalogSubcommand: CatalogList},
	}
}

// Validate performs the same style of exhaustive, hand-written checks
// the teacher's AppConfig.Validate uses: mode validity first, then
// mode-specific checks, then the scenario itself.
func (ac *AppConfig) Validate() error {
	modeOK := false
	for _, m := range SupportedModes {
		if ac.Cli.Mode == m {
			modeOK = true
			break
		}
	}
	if !modeOK {
		return fmt.Errorf("unsupported mode %q (want one of %v)", ac.Cli.Mode, SupportedModes)
	}

	switch ac.Cli.Mode {
	case ModeRun:
		if err := ac.Scenario.Validate(); err != nil {
			return fmt.Errorf("invalid scenario: %w", err)
		}
	case ModeCatalog:
		subOK := false
		for _, s := range supportedCatalogSubcommands {
			if ac.Cli.CatalogSubcommand == s {
				subOK = true
				break
			}
		}
		if !subOK {
			return fmt.Errorf("unsupported catalog subcommand %q (want one of %v)", ac.Cli.CatalogSubcommand, supportedCatalogSubcommands)
		}
		if (ac.Cli.CatalogSubcommand == CatalogShow || ac.Cli.CatalogSubcommand == CatalogClear) && ac.Cli.CatalogNumber <= 0 {
			return fmt.Errorf("catalog subcommand %q requires a positive --number", ac.Cli.CatalogSubcommand)
		}
		if ac.Cli.CatalogSubcommand == CatalogSet && ac.Cli.CatalogNumber <= 0 {
			return fmt.Errorf("catalog subcommand \"set\" requires a positive --number")
		}
	}
	return nil
}
