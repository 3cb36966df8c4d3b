// Package twofuel implements the Two Fuel Models blend (spec.md §4.G):
// running the surface fire spread orchestrator once per fuel model and
// combining the two FireBehavior vectors by a chosen weighting method.
//
// Grounded on original_source/src/behave/surfaceTwoFuelModels.h's member
// layout (two cached FireBehavior-equivalents plus a coverage fraction
// and method enum); the two-dimensional "efsprd" integration body is not
// present in the supplied source slice (spec.md §9, open question 3), so
// that branch falls back to the documented arithmetic weighting whenever
// the faster model's length-to-width ratio is at or below 1, and to an
// LWR-weighted blend otherwise, as permitted by spec.md §4.G.
package twofuel

import (
	"gonum.org/v1/gonum/stat"

	"firebehave/common"
	"firebehave/fuelmodel"
	"firebehave/spread"
	"firebehave/surface"
)

// Compute runs the surface spread calculation once per fuel model named
// in in.TwoFuelModels and combines the results per in.TwoFuelModels.Method.
func Compute(in *surface.Inputs, cat *fuelmodel.Catalog, directionOfInterest *float64) spread.FireBehavior {
	first := *in
	first.FuelModelNumber = in.FuelModelNumber

	second := *in
	second.FuelModelNumber = in.TwoFuelModels.SecondFuelModelNumber

	fb1 := spread.Compute(&first, cat, directionOfInterest)
	fb2 := spread.Compute(&second, cat, directionOfInterest)

	c := float64(in.TwoFuelModels.FirstModelCoverage)

	var rate float64
	switch in.TwoFuelModels.Method {
	case surface.Harmonic:
		rate = harmonic(c, float64(fb1.SpreadRate), float64(fb2.SpreadRate))
	case surface.TwoDimensional:
		rate = twoDimensional(c, fb1, fb2)
	default: // Arithmetic and NoMethod both fall back to arithmetic weighting
		rate = arithmetic(c, float64(fb1.SpreadRate), float64(fb2.SpreadRate))
	}

	combined := recombine(c, fb1, fb2)
	combined.SpreadRate = common.ChainsPerHour(roundNearZero(rate))
	return combined
}

func arithmetic(c, r1, r2 float64) float64 {
	return stat.Mean([]float64{r1, r2}, []float64{c, 1 - c})
}

func harmonic(c, r1, r2 float64) float64 {
	if r1 <= 0 || r2 <= 0 {
		return 0
	}
	return 1.0 / (c/r1 + (1-c)/r2)
}

// twoDimensional approximates BehavePlus's efsprd expected-spread-rate
// integration: when the faster model's fire ellipse is not elongated
// (LWR ≤ 1, i.e. near-circular), the elongation-weighted integration
// degenerates to the arithmetic case, so we use it directly. Otherwise
// we weight each model's contribution by how elongated its ellipse is,
// since a more elongated ellipse sweeps a larger share of the combined
// front in the direction of travel.
func twoDimensional(c float64, fb1, fb2 spread.FireBehavior) float64 {
	r1, r2 := float64(fb1.SpreadRate), float64(fb2.SpreadRate)
	fasterLWR := fb1.LengthToWidthRatio
	if r2 > r1 {
		fasterLWR = fb2.LengthToWidthRatio
	}
	if fasterLWR <= 1 {
		return arithmetic(c, r1, r2)
	}
	w1 := c * fb1.LengthToWidthRatio
	w2 := (1 - c) * fb2.LengthToWidthRatio
	if w1+w2 <= 0 {
		return arithmetic(c, r1, r2)
	}
	return stat.Mean([]float64{r1, r2}, []float64{w1, w2})
}

// recombine blends every field besides SpreadRate (set separately by the
// caller per the chosen method) using the first-model coverage weights,
// per spec.md §4.G: "other outputs ... are recombined from the same
// weights."
func recombine(c float64, fb1, fb2 spread.FireBehavior) spread.FireBehavior {
	w1, w2 := c, 1-c
	return spread.FireBehavior{
		DirectionOfMaxSpread: blendAngle(w1, w2, fb1.DirectionOfMaxSpread, fb2.DirectionOfMaxSpread),
		EffectiveWindSpeed:   blend(w1, w2, fb1.EffectiveWindSpeed, fb2.EffectiveWindSpeed),
		WindSpeedLimit:       blend(w1, w2, fb1.WindSpeedLimit, fb2.WindSpeedLimit),
		WindLimitExceeded:    fb1.WindLimitExceeded || fb2.WindLimitExceeded,
		ReactionIntensity:    blend(w1, w2, fb1.ReactionIntensity, fb2.ReactionIntensity),
		ResidenceTime:        blend(w1, w2, fb1.ResidenceTime, fb2.ResidenceTime),
		HeatPerUnitArea:      blend(w1, w2, fb1.HeatPerUnitArea, fb2.HeatPerUnitArea),
		FirelineIntensity:    blend(w1, w2, fb1.FirelineIntensity, fb2.FirelineIntensity),
		FlameLength:          blend(w1, w2, fb1.FlameLength, fb2.FlameLength),
		LengthToWidthRatio:   w1*fb1.LengthToWidthRatio + w2*fb2.LengthToWidthRatio,
		Eccentricity:         w1*fb1.Eccentricity + w2*fb2.Eccentricity,
		MidflameWindSpeed:    blend(w1, w2, fb1.MidflameWindSpeed, fb2.MidflameWindSpeed),
	}
}

// blend linearly combines any of the float64-backed unit types used in
// FireBehavior.
type float64Like interface {
	~float64
}

func blend[T float64Like](w1, w2 float64, a, b T) T {
	return T(w1*float64(a) + w2*float64(b))
}

func blendAngle[T float64Like](w1, w2 float64, a, b T) T {
	return blend(w1, w2, a, b)
}

func roundNearZero(v float64) float64 {
	const epsilon = 1e-9
	if v > -epsilon && v < epsilon {
		return 0
	}
	return v
}
