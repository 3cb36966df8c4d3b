// Package scenario implements the thin, stateful ergonomic wrapper spec.md
// §9 calls for: "the scenario object becomes a thin ergonomic wrapper
// holding the latest inputs and latest results" around the pure
// compute(inputs, catalog) → results functions in packages spread and
// twofuel.
//
// Grounded on original_source/src/behave/surface.h, which plays the same
// role over SurfaceInputs and a cached FireBehavior-equivalent.
package scenario

import (
	"firebehave/common"
	"firebehave/fuelmodel"
	"firebehave/spread"
	"firebehave/surface"
	"firebehave/twofuel"
)

// Scenario holds a non-owning reference to a host-supplied catalog (per
// spec.md §9, "ownership of the catalog") plus the latest inputs and
// results of a forward-spread calculation.
type Scenario struct {
	Catalog *fuelmodel.Catalog
	Inputs  surface.Inputs
	Results spread.FireBehavior
}

// New returns a Scenario bound to cat, with zero-valued inputs/results.
func New(cat *fuelmodel.Catalog) *Scenario {
	return &Scenario{Catalog: cat, Inputs: *surface.New()}
}

// UpdateSurface replaces the scenario with a fresh standard-mode input
// set, per spec.md §6.
func (s *Scenario) UpdateSurface(
	fuelModelNumber int,
	m1h, m10h, m100h, mHerb, mWoody common.Fraction,
	windHeightMode surface.WindHeightMode, windSpeed common.MilesPerHour, windDirection common.Degrees,
	slope, aspect float64,
	canopyCover common.Fraction, canopyHeight common.Feet, crownRatio common.Fraction,
) {
	s.Inputs.UpdateSurface(fuelModelNumber, m1h, m10h, m100h, mHerb, mWoody,
		windHeightMode, windSpeed, windDirection, slope, aspect, canopyCover, canopyHeight, crownRatio)
}

// UpdateSurfaceTwoFuelModels replaces the scenario with a fresh
// two-fuel-models input set, per spec.md §6.
func (s *Scenario) UpdateSurfaceTwoFuelModels(
	firstFuelModelNumber, secondFuelModelNumber int,
	m1h, m10h, m100h, mHerb, mWoody common.Fraction,
	windHeightMode surface.WindHeightMode, windSpeed common.MilesPerHour, windDirection common.Degrees,
	firstModelCoverage common.Fraction, method surface.TwoFuelMethod,
	slope, aspect float64,
	canopyCover common.Fraction, canopyHeight common.Feet, crownRatio common.Fraction,
) {
	s.Inputs.UpdateForTwoFuelModels(firstFuelModelNumber, secondFuelModelNumber,
		m1h, m10h, m100h, mHerb, mWoody, windHeightMode, windSpeed, windDirection,
		firstModelCoverage, method, slope, aspect, canopyCover, canopyHeight, crownRatio)
}

// UpdateSurfaceForPalmettoGallberry and UpdateSurfaceForWesternAspen pass
// through to the corresponding surface.Inputs mode activators.
func (s *Scenario) UpdateSurfaceForPalmettoGallberry(
	m1h, m10h, m100h, mHerb, mWoody common.Fraction,
	windHeightMode surface.WindHeightMode, windSpeed common.MilesPerHour, windDirection common.Degrees,
	ageOfRough float64, heightOfUnderstory common.Feet, palmettoCoverage common.Fraction, overstoryBasalArea float64,
	slope, aspect float64,
	canopyCover common.Fraction, canopyHeight common.Feet, crownRatio common.Fraction,
) {
	s.Inputs.UpdateForPalmettoGallberry(m1h, m10h, m100h, mHerb, mWoody,
		windHeightMode, windSpeed, windDirection, ageOfRough, heightOfUnderstory, palmettoCoverage, overstoryBasalArea,
		slope, aspect, canopyCover, canopyHeight, crownRatio)
}

func (s *Scenario) UpdateSurfaceForWesternAspen(
	aspenFuelModelNumber int, curingLevel common.Fraction, severity surface.AspenFireSeverity, dbh float64,
	m1h, m10h, m100h, mHerb, mWoody common.Fraction,
	windHeightMode surface.WindHeightMode, windSpeed common.MilesPerHour, windDirection common.Degrees,
	slope, aspect float64,
	canopyCover common.Fraction, canopyHeight common.Feet, crownRatio common.Fraction,
) {
	s.Inputs.UpdateForWesternAspen(aspenFuelModelNumber, curingLevel, severity, dbh,
		m1h, m10h, m100h, mHerb, mWoody, windHeightMode, windSpeed, windDirection,
		slope, aspect, canopyCover, canopyHeight, crownRatio)
}

// CalculateForwardSpreadRate runs the appropriate orchestrator (plain
// spread or two-fuel-models blend, depending on the active mode),
// caches the full FireBehavior, and returns the forward spread rate.
// Pass nil for directionOfInterest to get the true forward rate.
func (s *Scenario) CalculateForwardSpreadRate(directionOfInterest *float64) common.ChainsPerHour {
	if s.Inputs.IsUsingTwoFuelModels() {
		s.Results = twofuel.Compute(&s.Inputs, s.Catalog, directionOfInterest)
	} else {
		s.Results = spread.Compute(&s.Inputs, s.Catalog, directionOfInterest)
	}
	return s.Results.SpreadRate
}

func (s *Scenario) SpreadRate() common.ChainsPerHour             { return s.Results.SpreadRate }
func (s *Scenario) DirectionOfMaxSpread() common.Degrees         { return s.Results.DirectionOfMaxSpread }
func (s *Scenario) FlameLength() common.Feet                     { return s.Results.FlameLength }
func (s *Scenario) FirelineIntensity() common.BtuPerFtPerSec     { return s.Results.FirelineIntensity }
func (s *Scenario) EffectiveWindSpeed() common.MilesPerHour      { return s.Results.EffectiveWindSpeed }
func (s *Scenario) WindSpeedLimit() common.MilesPerHour          { return s.Results.WindSpeedLimit }
func (s *Scenario) WindLimitExceeded() bool                      { return s.Results.WindLimitExceeded }
func (s *Scenario) ReactionIntensity() common.BtuPerSqFtPerMin   { return s.Results.ReactionIntensity }
func (s *Scenario) ResidenceTime() common.Minutes                { return s.Results.ResidenceTime }
func (s *Scenario) HeatPerUnitArea() common.BtuPerSqFt           { return s.Results.HeatPerUnitArea }
func (s *Scenario) MidflameWindSpeed() common.MilesPerHour       { return s.Results.MidflameWindSpeed }
func (s *Scenario) LengthToWidthRatio() float64                  { return s.Results.LengthToWidthRatio }
func (s *Scenario) Eccentricity() float64                        { return s.Results.Eccentricity }
