package fuelbed

import (
	"math"
	"testing"

	"firebehave/fuelmodel"
)

func floatEquals(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestComputeNeverPanicsOnEmptyFuelbed(t *testing.T) {
	fm := fuelmodel.FuelModel{} // undefined, all zero
	got := Compute(fm, 0.06, 0.07, 0.08, 0.60, 0.90)
	if got.CharacteristicSAVR != 0 || got.PackingRatio != 0 || got.HeatSink != 0 {
		t.Fatalf("expected all-zero intermediates for an empty fuel model, got %+v", got)
	}
}

func TestCharacteristicSAVRIsBoundedByComponentSAVRs(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	fm := cat.Get(1)
	got := Compute(fm, 0.06, 0.07, 0.08, 0.60, 0.90)
	lo, hi := fm.SavrOneHour, fm.SavrOneHour
	for _, s := range []float64{savrTenHour, savrHundredHour, fm.SavrLiveHerbaceous, fm.SavrLiveWoody} {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if got.CharacteristicSAVR < lo-1e-6 || got.CharacteristicSAVR > hi+1e-6 {
		t.Errorf("characteristic SAVR %v outside component range [%v,%v]", got.CharacteristicSAVR, lo, hi)
	}
}

func TestPackingRatioPositiveForDefinedModel(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	fm := cat.Get(1)
	got := Compute(fm, 0.06, 0.07, 0.08, 0.60, 0.90)
	if got.PackingRatio <= 0 {
		t.Errorf("packing ratio = %v, want > 0", got.PackingRatio)
	}
	if got.OptimumPackingRatio <= 0 {
		t.Errorf("optimum packing ratio = %v, want > 0", got.OptimumPackingRatio)
	}
}

func TestDynamicCuringFullyTransfersBelowThreshold(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	fm := cat.Get(101) // GR1, dynamic
	got := Compute(fm, 0.06, 0.07, 0.08, 0.25, 0.90) // mHerb below 0.30
	if got.Live.NetLoad != 0 {
		t.Errorf("expected all live herb load transferred to dead at mHerb<=0.30, got live net load %v", got.Live.NetLoad)
	}
	if got.Dead.NetLoad <= 0 {
		t.Errorf("expected transferred load to raise dead net load, got %v", got.Dead.NetLoad)
	}
}

func TestDynamicCuringNoTransferAboveThreshold(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	fm := cat.Get(101)
	curedLow := Compute(fm, 0.06, 0.07, 0.08, 0.10, 0.90)
	curedHigh := Compute(fm, 0.06, 0.07, 0.08, 1.00, 0.90)
	if curedHigh.Live.NetLoad <= curedLow.Live.NetLoad {
		t.Errorf("higher herb moisture should retain more live load: low=%v high=%v",
			curedLow.Live.NetLoad, curedHigh.Live.NetLoad)
	}
}

func TestCuringFractionClampedToUnitInterval(t *testing.T) {
	if curingFraction(0.0) != 1.0 {
		t.Errorf("curingFraction(0) = %v, want 1", curingFraction(0.0))
	}
	if curingFraction(0.30) != 1.0 {
		t.Errorf("curingFraction(0.30) = %v, want 1", curingFraction(0.30))
	}
	if curingFraction(0.42) != 0.0 {
		t.Errorf("curingFraction(0.42) = %v, want 0", curingFraction(0.42))
	}
	if curingFraction(5.0) != 0.0 {
		t.Errorf("curingFraction(5.0) = %v, want 0", curingFraction(5.0))
	}
}

func TestLiveMoistureOfExtinctionFloorsAtDeadValue(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	fm := cat.Get(1)
	got := Compute(fm, 0.06, 0.07, 0.08, 3.00, 3.00) // very wet live fuel
	if got.Live.MoistureOfExtinction < got.Dead.MoistureOfExtinction-1e-9 {
		t.Errorf("live moisture of extinction %v should never fall below dead's %v",
			got.Live.MoistureOfExtinction, got.Dead.MoistureOfExtinction)
	}
}

func TestNoLiveFuelFallsBackToDeadMoistureOfExtinction(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	fm := cat.Get(8) // closed timber litter, no live load
	got := Compute(fm, 0.06, 0.07, 0.08, 0.60, 0.90)
	if !floatEquals(got.Live.MoistureOfExtinction, float64(fm.MoistureOfExtinctionDead), 1e-9) {
		t.Errorf("no-live-fuel model should report live Mext = dead Mext, got %v want %v",
			got.Live.MoistureOfExtinction, fm.MoistureOfExtinctionDead)
	}
}
