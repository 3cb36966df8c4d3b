// Package spread implements the Surface Fire Spread orchestrator
// (spec.md §4.F): the eighteen-step calculation chaining fuelbed
// intermediates and reaction intensity through wind and slope factors
// into a complete fire-behavior vector.
//
// Grounded on original_source/src/surfaceFireSpread.cpp, which performs
// the same chain of sub-formulas in the same order (midflame wind, wind
// factor, slope factor, no-wind spread rate, direction-of-max-spread
// vector composition, effective wind inversion, wind-speed-limit clamp,
// residence time, fire ellipse, optional spread-at-vector, fireline
// intensity, flame length). The step ordering here is contractual per
// spec.md §4.F and matches the source's calculateForwardSpreadRate.
package spread

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"firebehave/common"
	"firebehave/fuelbed"
	"firebehave/fuelmodel"
	"firebehave/reaction"
	"firebehave/surface"
	"firebehave/windadj"
)

// FireBehavior is the full output vector of a forward-spread
// calculation, per spec.md §3.
type FireBehavior struct {
	SpreadRate           common.ChainsPerHour
	DirectionOfMaxSpread common.Degrees // in the inputs' configured frame
	EffectiveWindSpeed   common.MilesPerHour
	WindSpeedLimit       common.MilesPerHour
	WindLimitExceeded    bool
	ReactionIntensity    common.BtuPerSqFtPerMin
	ResidenceTime        common.Minutes
	HeatPerUnitArea      common.BtuPerSqFt
	FirelineIntensity    common.BtuPerFtPerSec
	FlameLength          common.Feet
	LengthToWidthRatio   float64
	Eccentricity         float64
	MidflameWindSpeed    common.MilesPerHour
}

// windFactorCoefficients are the sigma-derived C, B, E exponents in
// Rothermel's wind factor φ_W and its inversion.
type windFactorCoefficients struct{ C, B, E float64 }

func deriveWindFactorCoefficients(sigma float64) windFactorCoefficients {
	return windFactorCoefficients{
		C: 7.47 * math.Exp(-0.133*math.Pow(sigma, 0.55)),
		B: 0.02526 * math.Pow(sigma, 0.54),
		E: 0.715 * math.Exp(-3.59e-4*sigma),
	}
}

func (w windFactorCoefficients) windFactor(uFtPerMin, relativePacking float64) float64 {
	if uFtPerMin < common.Smidgen || relativePacking <= 0 {
		return 0
	}
	return w.C * math.Pow(uFtPerMin, w.B) * math.Pow(relativePacking, -w.E)
}

func (w windFactorCoefficients) invert(phi, relativePacking float64) float64 {
	if phi <= 0 {
		return 0
	}
	return math.Pow(phi*math.Pow(relativePacking, w.E)/w.C, 1/w.B)
}

// midflameWindSpeed implements step 3: derive midflame wind (mi/h) from
// the configured reference height, consulting package windadj only when
// the caller has not supplied a wind adjustment factor.
func midflameWindSpeed(in *surface.Inputs, fuelbedDepth float64) common.MilesPerHour {
	if in.WindHeightMode == surface.DirectMidflame {
		return in.WindSpeed
	}
	v20 := float64(in.WindSpeed)
	if in.WindHeightMode == surface.TenMeter {
		v20 = v20 / 1.15
	}
	waf := float64(0)
	if in.HasUserProvidedWindAdjustmentFactor() {
		waf = in.UserWindAdjustmentFactor
	} else {
		waf = windadj.Compute(float64(in.CanopyCover), float64(in.CanopyHeight), float64(in.CrownRatio), fuelbedDepth)
	}
	return common.MilesPerHour(waf * v20)
}

// Compute runs the full eighteen-step forward-spread calculation for
// in against cat, optionally re-expressing the result along
// directionOfInterest (degrees, in the frame in.AngleMode names) per
// step 15. Pass nil to skip step 15 and report the true forward rate.
func Compute(in *surface.Inputs, cat *fuelmodel.Catalog, directionOfInterest *float64) FireBehavior {
	fm := cat.Get(in.FuelModelNumber)
	fb := fuelbed.Compute(fm, in.MoistureOneHour, in.MoistureTenHour, in.MoistureHundredHour,
		in.MoistureLiveHerbaceous, in.MoistureLiveWoody)
	rx := reaction.Compute(fb)

	sigma := fb.CharacteristicSAVR
	relPacking := fb.RelativePackingRatio
	coeffs := deriveWindFactorCoefficients(sigma)

	midflame := midflameWindSpeed(in, fm.FuelbedDepth)
	uFtPerMin := float64(midflame) * 88.0
	phiW := coeffs.windFactor(uFtPerMin, relPacking)

	slopeRad := float64(in.Slope.ToRadians())
	var phiS float64
	if fb.PackingRatio > 0 {
		tanSlope := math.Tan(slopeRad)
		phiS = 5.275 * math.Pow(fb.PackingRatio, -0.3) * tanSlope * tanSlope
	}

	var r0 float64
	if !scalar.EqualWithinAbs(fb.HeatSink, 0, common.Smidgen) {
		r0 = rx.ReactionIntensity * rx.PropagatingFluxRatio / fb.HeatSink
	}

	uLimFtPerMin := 0.9 * rx.ReactionIntensity
	if phiS > uLimFtPerMin {
		phiS = uLimFtPerMin
	}

	thetaW := float64(in.WindDirection) * math.Pi / 180.0
	x := r0*phiS + r0*phiW*math.Cos(thetaW)
	y := r0 * phiW * math.Sin(thetaW)
	magnitude := math.Sqrt(x*x + y*y)
	r := r0 + magnitude

	azimuth := math.Atan2(y, x) * 180.0 / math.Pi
	azimuth = float64(common.Degrees(azimuth).Normalize360())
	if scalar.EqualWithinAbs(float64(azimuth), 0, 0.5) || scalar.EqualWithinAbs(float64(azimuth), 360, 0.5) {
		azimuth = 0
	}
	dirMaxUpslope := float64(azimuth)

	var phiEff float64
	if !scalar.EqualWithinAbs(r0, 0, common.Smidgen) {
		phiEff = r/r0 - 1
	}
	uEffFtPerMin := coeffs.invert(phiEff, relPacking)

	windLimitExceeded := false
	if uEffFtPerMin > uLimFtPerMin {
		uEffFtPerMin = uLimFtPerMin
		phiEff = coeffs.windFactor(uLimFtPerMin, relPacking)
		r = r0 * (1 + phiEff)
		windLimitExceeded = true
	}

	uEffMph := uEffFtPerMin / 88.0
	uLimMph := uLimFtPerMin / 88.0

	var residenceTime float64
	if !scalar.EqualWithinAbs(sigma, 0, common.Smidgen) {
		residenceTime = 384.0 / sigma
	}

	lwr := 1.0
	if !scalar.EqualWithinAbs(uEffMph, 0, common.Smidgen) {
		lwr = 1 + 0.25*uEffMph
	}
	eccentricity := 0.0
	if lwr*lwr-1 > 0 {
		eccentricity = math.Sqrt(lwr*lwr-1) / lwr
	}

	if directionOfInterest != nil {
		doi := *directionOfInterest
		if in.AngleMode == surface.RelativeToNorth {
			doi = float64(common.Degrees(doi - float64(in.Aspect) - 180).Normalize360())
		}
		betaAngle := math.Abs(dirMaxUpslope - doi)
		if betaAngle > 180 {
			betaAngle = 360 - betaAngle
		}
		if betaAngle > 0.1 {
			betaRad := betaAngle * math.Pi / 180.0
			r = r * (1 - eccentricity) / (1 - eccentricity*math.Cos(betaRad))
		}
	}

	firelineIntensity := r * rx.ReactionIntensity * residenceTime / 60.0
	flameLength := 0.0
	if !scalar.EqualWithinAbs(firelineIntensity, 0, common.Smidgen) {
		flameLength = 0.45 * math.Pow(firelineIntensity, 0.46)
	}

	spreadRate := common.FeetPerMinute(r).ToChainsPerHour()

	reportedDirection := common.Degrees(dirMaxUpslope)
	if in.AngleMode == surface.RelativeToNorth {
		reportedDirection = common.Degrees(dirMaxUpslope + float64(in.Aspect) + 180).Normalize360()
	}

	return FireBehavior{
		SpreadRate:           spreadRate,
		DirectionOfMaxSpread: reportedDirection,
		EffectiveWindSpeed:   common.MilesPerHour(uEffMph),
		WindSpeedLimit:       common.MilesPerHour(uLimMph),
		WindLimitExceeded:    windLimitExceeded,
		ReactionIntensity:    common.BtuPerSqFtPerMin(rx.ReactionIntensity),
		ResidenceTime:        common.Minutes(residenceTime),
		HeatPerUnitArea:      common.BtuPerSqFt(rx.ReactionIntensity * residenceTime),
		FirelineIntensity:    common.BtuPerFtPerSec(firelineIntensity),
		FlameLength:          common.Feet(flameLength),
		LengthToWidthRatio:   lwr,
		Eccentricity:         eccentricity,
		MidflameWindSpeed:    midflame,
	}
}
