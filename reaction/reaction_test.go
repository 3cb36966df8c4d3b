package reaction

import (
	"testing"

	"firebehave/fuelbed"
	"firebehave/fuelmodel"
)

func TestComputeZeroForEmptyFuelbed(t *testing.T) {
	fb := fuelbed.Compute(fuelmodel.FuelModel{}, 0.06, 0.07, 0.08, 0.60, 0.90)
	got := Compute(fb)
	if got.ReactionIntensity != 0 {
		t.Errorf("reaction intensity = %v, want 0 for an empty fuelbed", got.ReactionIntensity)
	}
	if got.PropagatingFluxRatio != 0 {
		t.Errorf("propagating flux ratio = %v, want 0 for an empty fuelbed", got.PropagatingFluxRatio)
	}
}

func TestReactionIntensityPositiveForDefinedModel(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	fb := fuelbed.Compute(cat.Get(1), 0.06, 0.07, 0.08, 0.60, 0.90)
	got := Compute(fb)
	if got.ReactionIntensity <= 0 {
		t.Errorf("reaction intensity = %v, want > 0", got.ReactionIntensity)
	}
	if got.PropagatingFluxRatio <= 0 {
		t.Errorf("propagating flux ratio = %v, want > 0", got.PropagatingFluxRatio)
	}
}

func TestMoistureDampingDecreasesReactionIntensity(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	dry := Compute(fuelbed.Compute(cat.Get(1), 0.03, 0.04, 0.05, 0.30, 0.60))
	wet := Compute(fuelbed.Compute(cat.Get(1), 0.20, 0.20, 0.20, 0.30, 0.60))
	if wet.ReactionIntensity >= dry.ReactionIntensity {
		t.Errorf("wetter dead fuel should reduce reaction intensity: dry=%v wet=%v",
			dry.ReactionIntensity, wet.ReactionIntensity)
	}
}

func TestMoistureAtOrAboveExtinctionDampsToNonNegative(t *testing.T) {
	if moistureDamping(1.0, 0.5) < 0 {
		t.Errorf("moisture damping must not go negative when moisture exceeds extinction")
	}
}
