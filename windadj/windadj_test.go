package windadj

import (
	"math"
	"testing"
)

func floatEquals(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestUnshelteredMatchesClosedForm(t *testing.T) {
	got := Compute(0, 0, 0, 1.0)
	want := 1.83 / math.Log((20+0.36*1.0)/(0.13*1.0))
	if !floatEquals(got, want, 1e-9) {
		t.Errorf("WAF = %v, want %v", got, want)
	}
}

func TestUnshelteredZeroDepthYieldsZero(t *testing.T) {
	got := Compute(0, 0, 0, 0)
	if got != 0 {
		t.Errorf("WAF = %v, want 0 for zero fuelbed depth", got)
	}
}

func TestShelteredBranchSelectedAboveThreshold(t *testing.T) {
	got := Compute(0.8, 40, 0.5, 1.0) // canopyCover*crownRatio = 0.4 > 0.05
	want := sheltered(0.8, 40, 0.5)
	if !floatEquals(got, clamp01(want), 1e-9) {
		t.Errorf("WAF = %v, want %v (sheltered branch)", got, want)
	}
}

func TestResultAlwaysClamped(t *testing.T) {
	for _, canopyCover := range []float64{0, 0.3, 0.9} {
		for _, fuelbedDepth := range []float64{0.1, 1, 6} {
			got := Compute(canopyCover, 50, 0.6, fuelbedDepth)
			if got < 0 || got > 1 {
				t.Errorf("WAF = %v out of [0,1] range", got)
			}
		}
	}
}
