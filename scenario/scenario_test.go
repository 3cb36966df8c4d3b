package scenario

import (
	"math"
	"testing"

	"firebehave/fuelmodel"
	"firebehave/surface"
)

func floatEquals(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestCalculateForwardSpreadRateCachesResults(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	s := New(cat)
	s.UpdateSurface(1, 0.06, 0.07, 0.08, 0.60, 0.90,
		surface.DirectMidflame, 5, 0, 30, 0, 0, 0, 0)

	rate := s.CalculateForwardSpreadRate(nil)
	if rate != s.SpreadRate() {
		t.Errorf("returned rate %v should equal cached SpreadRate() %v", rate, s.SpreadRate())
	}
	if s.FlameLength() <= 0 {
		t.Errorf("expected a positive flame length, got %v", s.FlameLength())
	}
}

func TestTwoFuelModelsModeUsesTwofuelOrchestrator(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	s := New(cat)
	s.UpdateSurfaceTwoFuelModels(1, 8, 0.06, 0.07, 0.08, 0.60, 0.90,
		surface.DirectMidflame, 5, 0, 0.6, surface.Arithmetic, 30, 0, 0, 0, 0)

	rate := s.CalculateForwardSpreadRate(nil)
	if rate <= 0 {
		t.Errorf("expected a positive blended spread rate, got %v", rate)
	}
}

func TestZeroWindZeroSlopeGetters(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	s := New(cat)
	s.UpdateSurface(1, 0.06, 0.07, 0.08, 0.60, 0.90,
		surface.DirectMidflame, 0, 0, 0, 0, 0, 0, 0)
	s.CalculateForwardSpreadRate(nil)

	if !floatEquals(float64(s.DirectionOfMaxSpread()), 0, 1e-9) {
		t.Errorf("dirMax = %v, want 0", s.DirectionOfMaxSpread())
	}
	if !floatEquals(s.LengthToWidthRatio(), 1, 1e-9) {
		t.Errorf("LWR = %v, want 1", s.LengthToWidthRatio())
	}
	if !floatEquals(s.Eccentricity(), 0, 1e-9) {
		t.Errorf("eccentricity = %v, want 0", s.Eccentricity())
	}
	if s.WindLimitExceeded() {
		t.Errorf("windLimitExceeded should be false")
	}
}

func TestReUpdateSurfaceResetsModeFromTwoFuelModels(t *testing.T) {
	cat := fuelmodel.NewCatalog()
	s := New(cat)
	s.UpdateSurfaceTwoFuelModels(1, 8, 0.06, 0.07, 0.08, 0.60, 0.90,
		surface.DirectMidflame, 5, 0, 0.6, surface.Arithmetic, 30, 0, 0, 0, 0)
	s.UpdateSurface(1, 0.06, 0.07, 0.08, 0.60, 0.90,
		surface.DirectMidflame, 5, 0, 30, 0, 0, 0, 0)

	if s.Inputs.IsUsingTwoFuelModels() {
		t.Fatalf("expected plain UpdateSurface to clear two-fuel-models mode")
	}
}
