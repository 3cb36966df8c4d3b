package fuelmodel

import "testing"

func TestStandardModelsSeededAndReserved(t *testing.T) {
	c := NewCatalog()
	for _, n := range []int{1, 13, 101, 149, 204} {
		if !c.IsDefined(n) {
			t.Errorf("fuel model %d should be defined at construction", n)
		}
		if !c.IsReserved(n) {
			t.Errorf("fuel model %d should be reserved", n)
		}
	}
	if c.IsDefined(200 - 1) { // 199 is unused, inside the SB gap
		// not a hard requirement, just documents the gap; skip if it ever
		// becomes used.
	}
}

func TestStandardModelInvariants(t *testing.T) {
	c := NewCatalog()
	for n := 0; n <= MaxFuelModelNumber; n++ {
		if !c.IsDefined(n) {
			continue
		}
		m := c.Get(n)
		if m.FuelbedDepth <= 0 {
			t.Errorf("model %d: fuelbed depth must be positive, got %v", n, m.FuelbedDepth)
		}
		if m.LoadOneHour < 0 || m.LoadTenHour < 0 || m.LoadHundredHour < 0 ||
			m.LoadLiveHerbaceous < 0 || m.LoadLiveWoody < 0 {
			t.Errorf("model %d: loads must be non-negative", n)
		}
		if m.SavrOneHour <= 0 || m.SavrLiveHerbaceous <= 0 || m.SavrLiveWoody <= 0 {
			t.Errorf("model %d: SAVRs must be positive when defined", n)
		}
	}
}

func TestUndefinedReadReturnsZeroValue(t *testing.T) {
	c := NewCatalog()
	m := c.Get(50) // not in either standard set
	if m.IsDefined {
		t.Fatalf("expected slot 50 to be undefined")
	}
	if m.FuelbedDepth != 0 || m.LoadOneHour != 0 || m.Code != "" {
		t.Errorf("undefined read should return the zero FuelModel, got %+v", m)
	}
}

func TestSetCustomOnReservedSlotFails(t *testing.T) {
	c := NewCatalog()
	before := c.Get(1)
	ok := c.SetCustom(1, "XX", "hack", 1, 0.1, 8000, 8000, 0, 0, 0, 0, 0, 2000, 1500, 1500, false)
	if ok {
		t.Fatalf("SetCustom on reserved slot 1 should return false")
	}
	if c.Get(1) != before {
		t.Fatalf("reserved slot must not be mutated by a failed SetCustom")
	}
}

func TestCustomFuelModelRoundTrip(t *testing.T) {
	c := NewCatalog()
	const n = 200
	ok := c.SetCustom(n, "CF1", "My Custom Fuel", 2.5, 0.25, 8200, 8500,
		0.05, 0.04, 0.03, 0.02, 0.01, 2100, 1700, 1450, true)
	if !ok {
		t.Fatalf("SetCustom on free slot %d should succeed", n)
	}
	if !c.IsDefined(n) {
		t.Fatalf("slot %d should be defined after SetCustom", n)
	}
	got := c.Get(n)
	want := FuelModel{
		Number: n, Code: "CF1", Name: "My Custom Fuel",
		FuelbedDepth: 2.5, MoistureOfExtinctionDead: 0.25,
		HeatOfCombustionDead: 8200, HeatOfCombustionLive: 8500,
		LoadOneHour: 0.05, LoadTenHour: 0.04, LoadHundredHour: 0.03,
		LoadLiveHerbaceous: 0.02, LoadLiveWoody: 0.01,
		SavrOneHour: 2100, SavrLiveHerbaceous: 1700, SavrLiveWoody: 1450,
		IsDynamic: true, IsReserved: false, IsDefined: true,
	}
	if got != want {
		t.Fatalf("round-trip mismatch:\n got  %+v\n want %+v", got, want)
	}

	if !c.ClearCustom(n) {
		t.Fatalf("ClearCustom on custom slot %d should succeed", n)
	}
	if c.IsDefined(n) {
		t.Fatalf("slot %d should be undefined after ClearCustom", n)
	}
}

func TestClearCustomOnReservedSlotFails(t *testing.T) {
	c := NewCatalog()
	if c.ClearCustom(1) {
		t.Fatalf("ClearCustom on reserved slot 1 should return false")
	}
	if !c.IsDefined(1) {
		t.Fatalf("reserved slot must remain defined after a failed ClearCustom")
	}
}

func TestOutOfRangeSlotsAreInertNotPanicking(t *testing.T) {
	c := NewCatalog()
	if c.IsDefined(-1) || c.IsDefined(MaxFuelModelNumber+1) {
		t.Fatalf("out-of-range slots must report undefined")
	}
	if c.SetCustom(-1, "x", "x", 1, 0.1, 8000, 8000, 0, 0, 0, 0, 0, 1, 1, 1, false) {
		t.Fatalf("SetCustom must fail for an out-of-range slot")
	}
	if c.ClearCustom(MaxFuelModelNumber + 1) {
		t.Fatalf("ClearCustom must fail for an out-of-range slot")
	}
}
