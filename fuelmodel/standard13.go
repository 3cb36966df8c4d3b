package fuelmodel

// standardHeatOfCombustion is the Btu/lb heat of combustion BehavePlus
// assigns to both dead and live fuel in the standard 13 and standard 40
// sets, absent a model-specific override.
const standardHeatOfCombustion = 8000.0

// standardRecord's load fields are lb/ft², FuelModel's own storage unit:
// the standard13 table below is already lb/ft² as published (see
// fuelModelSet.h's record-layout comment), and standard40's table has
// been converted from its tons/acre publication units at transcription
// time rather than at load time, so toFuelModel never needs a
// unit-conversion factor.
type standardRecord struct {
	number                     int
	code, name                 string
	fuelbedDepthFt             float64
	moistureOfExtinctionPct    float64
	load1h, load10h, load100h  float64 // lb/ft²
	loadHerb, loadWoody        float64 // lb/ft²
	savr1h, savrHerb, savrWoody float64
	isDynamic                  bool
}

// standard13 is the Anderson (1982) original 13 fuel models, reproduced
// from the table carried verbatim across every Rothermel implementation
// derived from BehavePlus (NFFL 1-13). None of the original 13 are
// dynamic: dynamic curing was introduced with the standard 40 set.
var standard13 = []standardRecord{
	{1, "1", "Short grass (1 ft)", 1.0, 12, 0.034, 0, 0, 0, 0, 3500, 1500, 1500, false},
	{2, "2", "Timber (grass and understory)", 1.0, 15, 0.092, 0.046, 0.023, 0.023, 0, 3000, 1500, 1500, false},
	{3, "3", "Tall grass (2.5 ft)", 2.5, 25, 0.138, 0, 0, 0, 0, 1500, 1500, 1500, false},
	{4, "4", "Chaparral (6 ft)", 6.0, 20, 0.230, 0.184, 0.092, 0, 0.230, 2000, 1500, 1500, false},
	{5, "5", "Brush (2 ft)", 2.0, 20, 0.046, 0.023, 0, 0, 0.092, 2000, 1500, 1500, false},
	{6, "6", "Dormant brush, hardwood slash", 2.5, 25, 0.069, 0.115, 0.092, 0, 0, 1750, 1500, 1500, false},
	{7, "7", "Southern rough", 2.5, 40, 0.052, 0.086, 0.069, 0, 0.017, 1750, 1500, 1550, false},
	{8, "8", "Closed timber litter", 0.2, 30, 0.069, 0.046, 0.115, 0, 0, 2000, 1500, 1500, false},
	{9, "9", "Hardwood litter", 0.2, 25, 0.134, 0.019, 0.007, 0, 0, 2500, 1500, 1500, false},
	{10, "10", "Timber (litter and understory)", 1.0, 25, 0.138, 0.092, 0.230, 0, 0.092, 2000, 1500, 1500, false},
	{11, "11", "Light logging slash", 1.0, 15, 0.069, 0.207, 0.253, 0, 0, 1500, 1500, 1500, false},
	{12, "12", "Medium logging slash", 2.3, 20, 0.184, 0.644, 0.759, 0, 0, 1500, 1500, 1500, false},
	{13, "13", "Heavy logging slash", 3.0, 25, 0.322, 1.058, 1.288, 0, 0, 1500, 1500, 1500, false},
}

// toFuelModel converts a standardRecord (lb/ft² loads, percent
// moisture-of-extinction) to the catalog's storage units (lb/ft²,
// fraction).
func (r standardRecord) toFuelModel() FuelModel {
	return FuelModel{
		Number:                   r.number,
		Code:                     r.code,
		Name:                     r.name,
		FuelbedDepth:             r.fuelbedDepthFt,
		MoistureOfExtinctionDead: r.moistureOfExtinctionPct / 100.0,
		HeatOfCombustionDead:     standardHeatOfCombustion,
		HeatOfCombustionLive:     standardHeatOfCombustion,
		LoadOneHour:              r.load1h,
		LoadTenHour:              r.load10h,
		LoadHundredHour:          r.load100h,
		LoadLiveHerbaceous:       r.loadHerb,
		LoadLiveWoody:            r.loadWoody,
		SavrOneHour:              r.savr1h,
		SavrLiveHerbaceous:       r.savrHerb,
		SavrLiveWoody:            r.savrWoody,
		IsDynamic:                r.isDynamic,
		IsReserved:               true,
		IsDefined:                true,
	}
}
