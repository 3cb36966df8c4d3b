package config

import "testing"

func TestDefaultScenarioConfigIsValid(t *testing.T) {
	sc := DefaultScenarioConfig()
	if err := sc.Validate(); err != nil {
		t.Fatalf("default scenario should validate, got %v", err)
	}
}

func TestNewAppConfigIsValid(t *testing.T) {
	ac := NewAppConfig()
	if err := ac.Validate(); err != nil {
		t.Fatalf("default app config should validate, got %v", err)
	}
}

func TestValidateRejectsUnsupportedMode(t *testing.T) {
	ac := NewAppConfig()
	ac.Cli.Mode = "bogus"
	if err := ac.Validate(); err == nil {
		t.Fatalf("expected error for unsupported mode")
	}
}

func TestValidateRejectsOutOfRangeMoisture(t *testing.T) {
	sc := DefaultScenarioConfig()
	sc.MoistureOneHour = 1.5
	if err := sc.Validate(); err == nil {
		t.Fatalf("expected error for moistureOneHour > 1")
	}
}

func TestValidateRejectsUnknownWindHeightMode(t *testing.T) {
	sc := DefaultScenarioConfig()
	sc.WindHeightMode = "bogus"
	if err := sc.Validate(); err == nil {
		t.Fatalf("expected error for unknown windHeightMode")
	}
}

func TestValidateRejectsSameFuelModelForTwoFuelModels(t *testing.T) {
	sc := DefaultScenarioConfig()
	sc.UseTwoFuelModels = true
	sc.SecondFuelModelNumber = sc.FuelModelNumber
	if err := sc.Validate(); err == nil {
		t.Fatalf("expected error when both fuel models in two-fuel-models mode are the same")
	}
}

func TestBuildInputsActivatesTwoFuelModelsMode(t *testing.T) {
	sc := DefaultScenarioConfig()
	sc.UseTwoFuelModels = true
	sc.SecondFuelModelNumber = 8
	sc.FirstModelCoverage = 0.6

	in, err := sc.BuildInputs()
	if err != nil {
		t.Fatalf("BuildInputs failed: %v", err)
	}
	if !in.IsUsingTwoFuelModels() {
		t.Errorf("expected two-fuel-models mode to be active")
	}
}

func TestDirectionOfInterestPtrNilByDefault(t *testing.T) {
	sc := DefaultScenarioConfig()
	if sc.DirectionOfInterestPtr() != nil {
		t.Errorf("expected nil direction of interest by default")
	}
	sc.UseDirectionOfInterest = true
	sc.DirectionOfInterest = 45
	ptr := sc.DirectionOfInterestPtr()
	if ptr == nil || *ptr != 45 {
		t.Errorf("expected direction of interest pointer to 45, got %v", ptr)
	}
}

func TestCatalogModeRequiresPositiveNumberForShow(t *testing.T) {
	ac := NewAppConfig()
	ac.Cli.Mode = ModeCatalog
	ac.Cli.CatalogSubcommand = CatalogShow
	ac.Cli.CatalogNumber = 0
	if err := ac.Validate(); err == nil {
		t.Fatalf("expected error for catalog show without --number")
	}
}
