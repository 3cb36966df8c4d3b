// Package collaborators declares the interfaces the out-of-scope crown
// fire, spotting, and ignition-probability modules implement against the
// surface fire spread core, per spec.md §6 "Collaborator interfaces".
// No algorithm bodies live here: this package exists so the core can be
// compiled and tested independently of those modules while still
// documenting the contract they rely on.
package collaborators

import (
	"firebehave/common"
	"firebehave/fuelmodel"
	"firebehave/spread"
)

// CrownFireReader is implemented by the crown-fire transition/active-
// crown module. It reads reaction intensity, heat per unit area, and
// surface spread rate alongside the canopy geometry already present on
// surface.Inputs.
type CrownFireReader interface {
	ReadSurfaceFireBehavior(fb spread.FireBehavior) (
		reactionIntensity common.BtuPerSqFtPerMin,
		heatPerUnitArea common.BtuPerSqFt,
		spreadRate common.ChainsPerHour,
	)
}

// SpotReader is implemented by the spotting-distance module. It reads
// flame length, canopy height, and wind speed.
type SpotReader interface {
	ReadSpottingInputs(fb spread.FireBehavior, canopyHeight common.Feet) (
		flameLength common.Feet,
		windSpeed common.MilesPerHour,
	)
}

// IgnitionReader is implemented by the ignition-probability module. It
// reads moisture content and the fuel model parameters that govern how
// readily a fuelbed ignites.
type IgnitionReader interface {
	ReadIgnitionInputs(fm fuelmodel.FuelModel,
		moistureOneHour, moistureTenHour, moistureHundredHour common.Fraction,
	) bool
}
