// Package surface implements the Surface Inputs value object (spec.md
// §4.B): a scenario container that normalizes units and reference
// frames on ingest and exposes a tagged sum type for the three mutually
// exclusive operating modes.
//
// Grounded on original_source/src/behave/surfaceInputs.cpp: the field
// layout, the update*/set* method names, and the wind-direction and
// slope normalization rules are carried over directly. The copy-
// constructor bug that negates userProvidedWindAdjustmentFactor_ on copy
// is NOT reproduced; Go's normal struct-value copy semantics already do
// the straight copy the spec calls for (see spec.md §9, open question 1).
package surface

import (
	"math"

	"firebehave/common"
)

// TwoFuelModelsParams holds the parameters active only when Mode ==
// TwoFuelModelsMode.
type TwoFuelModelsParams struct {
	SecondFuelModelNumber int
	FirstModelCoverage    common.Fraction
	Method                TwoFuelMethod
}

// PalmettoGallberryParams holds the parameters active only when Mode ==
// PalmettoGallberryMode.
type PalmettoGallberryParams struct {
	AgeOfRough         float64
	HeightOfUnderstory common.Feet
	PalmettoCoverage   common.Fraction
	OverstoryBasalArea float64
}

// WesternAspenParams holds the parameters active only when Mode ==
// WesternAspenMode.
type WesternAspenParams struct {
	AspenFuelModelNumber int
	CuringLevel          common.Fraction
	FireSeverity         AspenFireSeverity
	DBH                  float64
}

// Inputs is the full scenario snapshot consumed by package spread.
// Wind direction and slope are always stored normalized (upslope-
// relative degrees in [0,360); slope in degrees) regardless of which
// mode the caller supplied them in. SlopeMode selects how the next
// Update* interprets slope; AngleMode also selects the frame package
// spread uses for direction of interest and reported direction.
type Inputs struct {
	FuelModelNumber int

	MoistureOneHour        common.Fraction
	MoistureTenHour        common.Fraction
	MoistureHundredHour    common.Fraction
	MoistureLiveHerbaceous common.Fraction
	MoistureLiveWoody      common.Fraction

	WindHeightMode WindHeightMode
	WindSpeed      common.MilesPerHour
	WindDirection  common.Degrees // stored upslope-relative

	// UserWindAdjustmentFactor is -1 (sentinel) when not supplied by the
	// caller, signaling package windadj should compute it instead.
	UserWindAdjustmentFactor float64

	Slope      common.Degrees // stored in degrees regardless of SlopeMode
	Aspect     common.Degrees
	SlopeMode  SlopeMode
	AngleMode  AngleMode

	CanopyCover  common.Fraction
	CanopyHeight common.Feet
	CrownRatio   common.Fraction

	Mode              ModeKind
	TwoFuelModels     TwoFuelModelsParams
	PalmettoGallberry PalmettoGallberryParams
	WesternAspen      WesternAspenParams
}

// New returns a zero-valued Inputs in StandardMode, mirroring
// SurfaceInputs::initializeMembers.
func New() *Inputs {
	return &Inputs{
		WindHeightMode:           DirectMidflame,
		UserWindAdjustmentFactor: -1.0,
		SlopeMode:                SlopePercent,
		AngleMode:                RelativeToUpslope,
		Mode:                     StandardMode,
	}
}

// normalizeWindDirection canonicalizes a raw wind direction into [0,360)
// upslope-relative degrees, per spec.md §3.
func (in *Inputs) normalizeWindDirection(raw common.Degrees) common.Degrees {
	d := raw.Normalize360()
	if in.AngleMode == RelativeToNorth {
		// The direction the wind pushes the fire, expressed relative to
		// upslope, is the north-relative bearing minus the slope aspect.
		d = common.Degrees(float64(d) - float64(in.Aspect)).Normalize360()
	}
	return d
}

// setSlope stores slope in degrees, converting from percent if
// SlopeMode is SlopePercent.
func (in *Inputs) setSlope(raw float64) {
	if in.SlopeMode == SlopePercent {
		in.Slope = common.Degrees(180.0 / math.Pi * math.Atan(raw/100.0))
		return
	}
	in.Slope = common.Degrees(raw)
}

// UpdateSurface resets the scenario to StandardMode and applies a fresh
// set of environmental inputs, per spec.md §6's Scenario.updateSurface.
func (in *Inputs) UpdateSurface(
	fuelModelNumber int,
	m1h, m10h, m100h, mHerb, mWoody common.Fraction,
	windHeightMode WindHeightMode, windSpeed common.MilesPerHour, windDirection common.Degrees,
	slope, aspect float64,
	canopyCover common.Fraction, canopyHeight common.Feet, crownRatio common.Fraction,
) {
	uwaf := in.UserWindAdjustmentFactor
	slopeMode, angleMode := in.SlopeMode, in.AngleMode
	*in = Inputs{
		WindHeightMode:           windHeightMode,
		UserWindAdjustmentFactor: uwaf,
		SlopeMode:                slopeMode,
		AngleMode:                angleMode,
		Mode:                     StandardMode,
	}
	in.Aspect = common.Degrees(aspect)
	in.setSlope(slope)

	in.FuelModelNumber = fuelModelNumber
	in.MoistureOneHour = m1h
	in.MoistureTenHour = m10h
	in.MoistureHundredHour = m100h
	in.MoistureLiveHerbaceous = mHerb
	in.MoistureLiveWoody = mWoody
	in.WindSpeed = windSpeed
	in.WindDirection = in.normalizeWindDirection(windDirection)
	in.CanopyCover = canopyCover
	in.CanopyHeight = canopyHeight
	in.CrownRatio = crownRatio
}

// UpdateForTwoFuelModels resets, then activates TwoFuelModelsMode.
func (in *Inputs) UpdateForTwoFuelModels(
	firstFuelModelNumber, secondFuelModelNumber int,
	m1h, m10h, m100h, mHerb, mWoody common.Fraction,
	windHeightMode WindHeightMode, windSpeed common.MilesPerHour, windDirection common.Degrees,
	firstModelCoverage common.Fraction, method TwoFuelMethod,
	slope, aspect float64,
	canopyCover common.Fraction, canopyHeight common.Feet, crownRatio common.Fraction,
) {
	in.UpdateSurface(firstFuelModelNumber, m1h, m10h, m100h, mHerb, mWoody,
		windHeightMode, windSpeed, windDirection, slope, aspect, canopyCover, canopyHeight, crownRatio)
	in.Mode = TwoFuelModelsMode
	in.TwoFuelModels = TwoFuelModelsParams{
		SecondFuelModelNumber: secondFuelModelNumber,
		FirstModelCoverage:    firstModelCoverage,
		Method:                method,
	}
}

// UpdateForPalmettoGallberry resets, then activates PalmettoGallberryMode.
func (in *Inputs) UpdateForPalmettoGallberry(
	m1h, m10h, m100h, mHerb, mWoody common.Fraction,
	windHeightMode WindHeightMode, windSpeed common.MilesPerHour, windDirection common.Degrees,
	ageOfRough float64, heightOfUnderstory common.Feet, palmettoCoverage common.Fraction, overstoryBasalArea float64,
	slope, aspect float64,
	canopyCover common.Fraction, canopyHeight common.Feet, crownRatio common.Fraction,
) {
	in.UpdateSurface(0, m1h, m10h, m100h, mHerb, mWoody,
		windHeightMode, windSpeed, windDirection, slope, aspect, canopyCover, canopyHeight, crownRatio)
	in.Mode = PalmettoGallberryMode
	in.PalmettoGallberry = PalmettoGallberryParams{
		AgeOfRough:         ageOfRough,
		HeightOfUnderstory: heightOfUnderstory,
		PalmettoCoverage:   palmettoCoverage,
		OverstoryBasalArea: overstoryBasalArea,
	}
}

// UpdateForWesternAspen resets, then activates WesternAspenMode.
func (in *Inputs) UpdateForWesternAspen(
	aspenFuelModelNumber int, curingLevel common.Fraction, severity AspenFireSeverity, dbh float64,
	m1h, m10h, m100h, mHerb, mWoody common.Fraction,
	windHeightMode WindHeightMode, windSpeed common.MilesPerHour, windDirection common.Degrees,
	slope, aspect float64,
	canopyCover common.Fraction, canopyHeight common.Feet, crownRatio common.Fraction,
) {
	in.UpdateSurface(0, m1h, m10h, m100h, mHerb, mWoody,
		windHeightMode, windSpeed, windDirection, slope, aspect, canopyCover, canopyHeight, crownRatio)
	in.Mode = WesternAspenMode
	in.WesternAspen = WesternAspenParams{
		AspenFuelModelNumber: aspenFuelModelNumber,
		CuringLevel:          curingLevel,
		FireSeverity:         severity,
		DBH:                  dbh,
	}
}

// SetWindAndSpreadAngleMode changes the reference frame for wind
// direction and direction-of-max-spread. It does not retroactively
// convert an already-stored WindDirection; call before Update*.
func (in *Inputs) SetWindAndSpreadAngleMode(mode AngleMode) {
	in.AngleMode = mode
}

// SetSlopeInputMode changes the unit setSlope expects on the next
// Update*. The stored Slope field is always in degrees; an already-
// stored Slope is not converted.
func (in *Inputs) SetSlopeInputMode(mode SlopeMode) {
	in.SlopeMode = mode
}

// SetUserProvidedWindAdjustmentFactor supplies a caller-computed WAF,
// bypassing package windadj. Pass -1 to clear it.
func (in *Inputs) SetUserProvidedWindAdjustmentFactor(waf float64) {
	in.UserWindAdjustmentFactor = waf
}

// HasUserProvidedWindAdjustmentFactor reports whether a non-sentinel WAF
// was supplied.
func (in *Inputs) HasUserProvidedWindAdjustmentFactor() bool {
	return in.UserWindAdjustmentFactor != -1.0
}

// SlopePercent reports slope converted back to percent (tan(slope)×100),
// regardless of SlopeMode, for callers that always want percent.
func (in *Inputs) SlopePercent() float64 {
	return math.Tan(float64(in.Slope.ToRadians())) * 100.0
}

// SlopeDegrees reports slope in degrees.
func (in *Inputs) SlopeDegrees() float64 {
	return float64(in.Slope)
}

// IsUsingTwoFuelModels, IsUsingPalmettoGallberry and IsUsingWesternAspen
// mirror the source's boolean accessors over the tagged Mode field.
func (in *Inputs) IsUsingTwoFuelModels() bool     { return in.Mode == TwoFuelModelsMode }
func (in *Inputs) IsUsingPalmettoGallberry() bool { return in.Mode == PalmettoGallberryMode }
func (in *Inputs) IsUsingWesternAspen() bool      { return in.Mode == WesternAspenMode }
