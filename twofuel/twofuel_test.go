package twofuel

import (
	"math"
	"testing"

	"firebehave/common"
	"firebehave/fuelmodel"
	"firebehave/spread"
	"firebehave/surface"
)

func floatEquals(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func newInputs(coverage float64, method surface.TwoFuelMethod) *surface.Inputs {
	in := surface.New()
	in.UpdateForTwoFuelModels(1, 8, 0.06, 0.07, 0.08, 0.60, 0.90,
		surface.DirectMidflame, 5, 0, common.Fraction(coverage), method, 30, 0, 0, 0, 0)
	return in
}

func TestArithmeticMatchesWeightedSum(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	in := newInputs(0.7, surface.Arithmetic)

	single1 := *in
	single1.FuelModelNumber = 1
	single2 := *in
	single2.FuelModelNumber = 8
	fb1 := spread.Compute(&single1, cat, nil)
	fb2 := spread.Compute(&single2, cat, nil)

	got := Compute(in, cat, nil)
	want := 0.7*float64(fb1.SpreadRate) + 0.3*float64(fb2.SpreadRate)
	if !floatEquals(float64(got.SpreadRate), want, 1e-9) {
		t.Errorf("arithmetic blend = %v, want %v", got.SpreadRate, want)
	}
}

func TestHarmonicZeroWhenEitherRateIsZero(t *testing.T) {
	if got := harmonic(0.5, 0, 10); got != 0 {
		t.Errorf("harmonic(0.5, 0, 10) = %v, want 0", got)
	}
	if got := harmonic(0.5, 10, 0); got != 0 {
		t.Errorf("harmonic(0.5, 10, 0) = %v, want 0", got)
	}
}

func TestHarmonicMatchesClosedForm(t *testing.T) {
	got := harmonic(0.4, 20, 50)
	want := 1.0 / (0.4/20 + 0.6/50)
	if !floatEquals(got, want, 1e-9) {
		t.Errorf("harmonic = %v, want %v", got, want)
	}
}

func TestTwoDimensionalFallsBackToArithmeticWhenNotElongated(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	in := surface.New()
	// Zero wind/slope yields LWR == 1 for both models.
	in.UpdateForTwoFuelModels(1, 8, 0.06, 0.07, 0.08, 0.60, 0.90,
		surface.DirectMidflame, 0, 0, 0.6, surface.TwoDimensional, 0, 0, 0, 0, 0)

	single1 := *in
	single1.FuelModelNumber = 1
	single2 := *in
	single2.FuelModelNumber = 8
	fb1 := spread.Compute(&single1, cat, nil)
	fb2 := spread.Compute(&single2, cat, nil)

	got := Compute(in, cat, nil)
	want := 0.6*float64(fb1.SpreadRate) + 0.4*float64(fb2.SpreadRate)
	if !floatEquals(float64(got.SpreadRate), want, 1e-9) {
		t.Errorf("two-dimensional (unelongated) = %v, want arithmetic %v", got.SpreadRate, want)
	}
}

func TestWindLimitExceededIsOrOfBothModels(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	in := surface.New()
	in.UpdateForTwoFuelModels(1, 8, 0.03, 0.04, 0.05, 0.30, 0.60,
		surface.DirectMidflame, 60, 0, 0.5, surface.Arithmetic, 0, 0, 0, 0, 0)

	got := Compute(in, cat, nil)

	single1 := *in
	single1.FuelModelNumber = 1
	single2 := *in
	single2.FuelModelNumber = 8
	fb1 := spread.Compute(&single1, cat, nil)
	fb2 := spread.Compute(&single2, cat, nil)

	want := fb1.WindLimitExceeded || fb2.WindLimitExceeded
	if got.WindLimitExceeded != want {
		t.Errorf("windLimitExceeded = %v, want %v", got.WindLimitExceeded, want)
	}
}

func TestFullCoverageReducesToFirstModelAlone(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	in := newInputs(1.0, surface.Arithmetic)

	single := *in
	single.FuelModelNumber = 1
	want := spread.Compute(&single, cat, nil)

	got := Compute(in, cat, nil)
	if !floatEquals(float64(got.SpreadRate), float64(want.SpreadRate), 1e-9) {
		t.Errorf("coverage=1.0 spread rate = %v, want %v (first model alone)", got.SpreadRate, want.SpreadRate)
	}
}
