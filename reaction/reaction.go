// Package reaction computes reaction intensity and the no-wind
// propagating flux ratio from fuelbed intermediates (spec.md §4.D).
//
// Grounded on the canonical Rothermel (1972) reaction-velocity and
// propagating-flux formulas; original_source/ does not carry this
// component's body (spec.md §9, open question 2), so the propagating
// flux formula is the literal one spec.md §4.D specifies.
package reaction

import (
	"math"

	"firebehave/fuelbed"
)

// effectiveMineralContent is Rothermel's fixed silica-free mineral
// fraction, used in the mineral damping coefficient.
const effectiveMineralContent = 0.0100

// Result bundles reaction intensity and propagating flux ratio, the two
// quantities package spread consumes directly.
type Result struct {
	ReactionIntensity    float64 // Btu/ft²/min
	PropagatingFluxRatio float64
}

func mineralDamping() float64 {
	return 0.174 * math.Pow(effectiveMineralContent, -0.19)
}

func moistureDamping(moisture, extinction float64) float64 {
	if extinction <= 0 {
		return 0
	}
	rm := moisture / extinction
	if rm > 1 {
		rm = 1
	}
	if rm < 0 {
		rm = 0
	}
	return 1 - 2.59*rm + 5.11*rm*rm - 3.52*rm*rm*rm
}

func optimumReactionVelocity(sigma, relativePacking float64) float64 {
	if sigma <= 0 {
		return 0
	}
	sigma15 := math.Pow(sigma, 1.5)
	gammaMax := sigma15 / (495.0 + 0.0594*sigma15)
	a := 133.0 * math.Pow(sigma, -0.7913)
	return gammaMax * math.Pow(relativePacking, a) * math.Exp(a*(1-relativePacking))
}

// Compute derives reaction intensity and propagating flux ratio from fb.
func Compute(fb fuelbed.Intermediates) Result {
	gammaPrime := optimumReactionVelocity(fb.CharacteristicSAVR, fb.RelativePackingRatio)
	etaS := mineralDamping()

	dead := fb.Dead.NetLoad * fb.Dead.HeatOfCombustion *
		moistureDamping(fb.Dead.WeightedMoisture, fb.Dead.MoistureOfExtinction)
	live := fb.Live.NetLoad * fb.Live.HeatOfCombustion *
		moistureDamping(fb.Live.WeightedMoisture, fb.Live.MoistureOfExtinction)

	reactionIntensity := gammaPrime * etaS * (dead + live)

	var flux float64
	sigma := fb.CharacteristicSAVR
	if sigma > 0 {
		flux = math.Exp((0.792+0.681*math.Sqrt(sigma))*(fb.PackingRatio+0.1)) / (192.0 + 0.2595*sigma)
	}

	return Result{
		ReactionIntensity:    reactionIntensity,
		PropagatingFluxRatio: flux,
	}
}
