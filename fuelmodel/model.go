// Package fuelmodel implements the Fuel Model Catalog: an immutable
// mapping from fuel-model number to its physical fire-behavior
// parameters, pre-seeded with the standard 13 (Anderson 1982) and
// standard 40 (Scott & Burgan 2005) fuel models, with room for
// host-supplied custom entries in non-reserved slots.
//
// Grounded on original_source/src/behave/fuelModelSet.h: field names and
// the setCustom/clearCustom contract mirror FuelModelSet's record layout
// and isReserved/isDefined bookkeeping.
package fuelmodel

// MaxFuelModelNumber bounds the dense small-integer key space of the
// catalog. The standard sets occupy [1,13] and [101,204]; everything
// else up to this bound is available for custom fuel models.
const MaxFuelModelNumber = 256

// FuelModel is an immutable bundle of physical parameters describing a
// vegetation type, per spec.md §3 "FuelModel".
type FuelModel struct {
	Number int
	Code   string
	Name   string

	// FuelbedDepth is the fuelbed depth in feet.
	FuelbedDepth float64
	// MoistureOfExtinctionDead is the dead-fuel moisture of extinction,
	// a fraction.
	MoistureOfExtinctionDead float64
	// HeatOfCombustionDead and HeatOfCombustionLive are in Btu/lb.
	HeatOfCombustionDead float64
	HeatOfCombustionLive float64

	// Oven-dry fuel loads, lb/ft².
	LoadOneHour        float64
	LoadTenHour        float64
	LoadHundredHour    float64
	LoadLiveHerbaceous float64
	LoadLiveWoody      float64

	// Surface-area-to-volume ratios, ft²/ft³.
	SavrOneHour        float64
	SavrLiveHerbaceous float64
	SavrLiveWoody      float64

	// IsDynamic marks fuel models whose live herbaceous load partially
	// transfers to a synthetic dead-herbaceous class as live moisture
	// drops (see package fuelbed).
	IsDynamic bool
	// IsReserved protects a standard catalog entry from custom writes.
	IsReserved bool
	// IsDefined is true exactly when the slot has been fully populated.
	IsDefined bool
}
