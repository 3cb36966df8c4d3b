// Package fuelbed computes the Rothermel fuelbed intermediates (spec.md
// §4.C): characteristic surface-area-to-volume ratio, packing ratio,
// live moisture of extinction, and heat sink, aggregated from a
// fuelmodel.FuelModel and the current moisture scenario.
//
// Grounded on the surface-area weighting scheme described in Rothermel
// (1972) and reproduced throughout BehavePlus; no single file in
// original_source/ carries this component's body (fuelModelSet.h only
// supplies the raw per-particle fields), so the weighting formulas
// below follow the canonical published form referenced in spec.md's
// glossary and §4.C.
package fuelbed

import (
	"math"

	"firebehave/common"
	"firebehave/fuelmodel"
)

const (
	// particleDensity is the fixed oven-dry particle density ρ_p, lb/ft³.
	particleDensity = 32.0
	// savrTenHour and savrHundredHour are the fixed SAVRs BehavePlus
	// assigns to the 10-h and 100-h timelag classes; unlike 1-h,
	// herbaceous and woody SAVR these are never fuel-model-specific.
	savrTenHour     = 109.0
	savrHundredHour = 30.0

	// totalMineralContent and effectiveMineralContent are Rothermel's
	// fixed silica and silica-free mineral fractions.
	totalMineralContent     = 0.0555
	effectiveMineralContent = 0.0100

	// curingTransferSpan is the herbaceous-moisture window (fraction)
	// over which dynamic curing linearly transfers live load to the
	// synthetic dead-herbaceous class.
	curingTransferLow  = 0.30
	curingTransferSpan = 0.120
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type sizeClass struct {
	load, savr, moisture float64
}

// LifeClass bundles the per-life-class quantities package reaction needs
// to compute reaction intensity: the mineral-free net fuel load, the
// surface-area-weighted moisture content, the life class's moisture of
// extinction, and its heat of combustion.
type LifeClass struct {
	NetLoad              float64
	WeightedMoisture     float64
	MoistureOfExtinction float64
	HeatOfCombustion     float64
}

// Intermediates is the full set of fuelbed aggregates, recomputed fresh
// for every calculation (spec.md §3: "not persisted").
type Intermediates struct {
	CharacteristicSAVR   float64
	BulkDensity          float64
	PackingRatio         float64
	OptimumPackingRatio  float64
	RelativePackingRatio float64
	HeatSink             float64

	Dead LifeClass
	Live LifeClass
}

// curingFraction returns the fraction of live herbaceous load that
// transfers to the synthetic dead-herbaceous class, per spec.md §4.C:
// 1 at or below 30% herb moisture, 0 at or above 42%, linear between.
func curingFraction(mHerb float64) float64 {
	return clamp01(1.0 - (mHerb-curingTransferLow)/curingTransferSpan)
}

// Compute derives the fuelbed intermediates for fm under the given
// moisture scenario. Moistures are fractions of dry weight (0-5).
func Compute(fm fuelmodel.FuelModel, m1h, m10h, m100h, mHerb, mWoody common.Fraction) Intermediates {
	deadHerbLoad, liveHerbLoad := 0.0, float64(fm.LoadLiveHerbaceous)
	if fm.IsDynamic {
		k := curingFraction(float64(mHerb))
		deadHerbLoad = float64(fm.LoadLiveHerbaceous) * k
		liveHerbLoad = float64(fm.LoadLiveHerbaceous) * (1 - k)
	}

	dead := []sizeClass{
		{float64(fm.LoadOneHour), fm.SavrOneHour, float64(m1h)},
		{float64(fm.LoadTenHour), savrTenHour, float64(m10h)},
		{float64(fm.LoadHundredHour), savrHundredHour, float64(m100h)},
	}
	if deadHerbLoad > 0 {
		// Synthetic dead-herbaceous class: inherits herb SAVR, assigned
		// 1-h timelag moisture since it is now treated as fine dead fuel.
		dead = append(dead, sizeClass{deadHerbLoad, fm.SavrLiveHerbaceous, float64(m1h)})
	}
	live := []sizeClass{
		{liveHerbLoad, fm.SavrLiveHerbaceous, float64(mHerb)},
		{float64(fm.LoadLiveWoody), fm.SavrLiveWoody, float64(mWoody)},
	}

	areaDead, areaLive := surfaceAreaTotal(dead), surfaceAreaTotal(live)
	areaTotal := areaDead + areaLive

	var lifeWeightDead, lifeWeightLive float64
	if areaTotal > common.Smidgen {
		lifeWeightDead = areaDead / areaTotal
		lifeWeightLive = areaLive / areaTotal
	}

	sigmaDead := weightedSAVR(dead, areaDead)
	sigmaLive := weightedSAVR(live, areaLive)
	sigma := lifeWeightDead*sigmaDead + lifeWeightLive*sigmaLive

	totalLoad := sumLoad(dead) + sumLoad(live)
	bulkDensity := 0.0
	if fm.FuelbedDepth > common.Smidgen {
		bulkDensity = totalLoad / fm.FuelbedDepth
	}
	packingRatio := bulkDensity / particleDensity

	var optimumPackingRatio, relativePackingRatio float64
	if sigma > common.Smidgen {
		optimumPackingRatio = 3.348 * math.Pow(sigma, -0.8189)
		relativePackingRatio = packingRatio / optimumPackingRatio
	}

	liveMext := liveMoistureOfExtinction(dead, live, common.Fraction(fm.MoistureOfExtinctionDead))

	epsilonDead := weightedHeatOfPreignition(dead, areaDead)
	epsilonLive := weightedHeatOfPreignition(live, areaLive)
	epsilon := lifeWeightDead*epsilonDead + lifeWeightLive*epsilonLive

	return Intermediates{
		CharacteristicSAVR:   sigma,
		BulkDensity:          bulkDensity,
		PackingRatio:         packingRatio,
		OptimumPackingRatio:  optimumPackingRatio,
		RelativePackingRatio: relativePackingRatio,
		HeatSink:             bulkDensity * epsilon,
		Dead: LifeClass{
			NetLoad:              sumLoad(dead) * (1 - totalMineralContent),
			WeightedMoisture:     weightedMoisture(dead, areaDead),
			MoistureOfExtinction: float64(fm.MoistureOfExtinctionDead),
			HeatOfCombustion:     fm.HeatOfCombustionDead,
		},
		Live: LifeClass{
			NetLoad:              sumLoad(live) * (1 - totalMineralContent),
			WeightedMoisture:     weightedMoisture(live, areaLive),
			MoistureOfExtinction: liveMext,
			HeatOfCombustion:     fm.HeatOfCombustionLive,
		},
	}
}

func surfaceAreaTotal(classes []sizeClass) float64 {
	sum := 0.0
	for _, c := range classes {
		sum += c.load * c.savr / particleDensity
	}
	return sum
}

func sumLoad(classes []sizeClass) float64 {
	sum := 0.0
	for _, c := range classes {
		sum += c.load
	}
	return sum
}

func weightedSAVR(classes []sizeClass, lifeArea float64) float64 {
	if lifeArea <= common.Smidgen {
		return 0
	}
	sum := 0.0
	for _, c := range classes {
		area := c.load * c.savr / particleDensity
		sum += (area / lifeArea) * c.savr
	}
	return sum
}

func weightedMoisture(classes []sizeClass, lifeArea float64) float64 {
	if lifeArea <= common.Smidgen {
		return 0
	}
	sum := 0.0
	for _, c := range classes {
		area := c.load * c.savr / particleDensity
		sum += (area / lifeArea) * c.moisture
	}
	return sum
}

func weightedHeatOfPreignition(classes []sizeClass, lifeArea float64) float64 {
	if lifeArea <= common.Smidgen {
		return 0
	}
	sum := 0.0
	for _, c := range classes {
		area := c.load * c.savr / particleDensity
		f := area / lifeArea
		sum += f * math.Exp(-138.0/c.savr) * (250.0 + 1116.0*c.moisture)
	}
	return sum
}

// liveMoistureOfExtinction implements the standard BehavePlus formula:
// the dead/live fine-fuel load ratio scales how much the dead fuel's
// moisture of extinction elevates the live one.
func liveMoistureOfExtinction(dead, live []sizeClass, deadMext common.Fraction) float64 {
	fineDead, fineDeadMoisture := 0.0, 0.0
	for _, c := range dead {
		fine := c.load * math.Exp(-138.0/c.savr)
		fineDead += fine
		fineDeadMoisture += fine * c.moisture
	}
	fineLive := 0.0
	for _, c := range live {
		fineLive += c.load * math.Exp(-138.0/c.savr)
	}
	if fineLive <= common.Smidgen {
		return float64(deadMext)
	}
	wPrime := fineDead / fineLive
	fdmois := 0.0
	if fineDead > common.Smidgen {
		fdmois = fineDeadMoisture / fineDead
	}
	mext := 2.9*wPrime*(1-fdmois/float64(deadMext)) - 0.226
	if mext < float64(deadMext) {
		mext = float64(deadMext)
	}
	return mext
}
