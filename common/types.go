// Package common defines the typed unit wrappers shared by every
// firebehave core package. Strongly typed units (ft/min vs chains/hr vs
// mi/h, degrees vs radians vs percent) eliminate a class of bugs present
// in the original Rothermel implementation, where raw doubles cross unit
// boundaries silently.
package common

import "math"

// Fraction is a dimensionless ratio, typically in [0,1] (moisture content,
// coverage, canopy cover). Some moisture fields are allowed up to 5.0 per
// spec.
type Fraction float64

// Degrees is an angle in degrees, direction unspecified by the type alone
// (callers must track which reference frame: upslope or north).
type Degrees float64

// Radians is an angle in radians.
type Radians float64

// ToRadians converts an angle in degrees to radians.
func (d Degrees) ToRadians() Radians {
	return Radians(float64(d) * math.Pi / 180.0)
}

// Normalize360 reduces an angle to the canonical [0,360) range.
func (d Degrees) Normalize360() Degrees {
	v := math.Mod(float64(d), 360.0)
	if v < 0 {
		v += 360
	}
	return Degrees(v)
}

// MilesPerHour is a wind or effective-wind speed in miles per hour.
type MilesPerHour float64

// FeetPerMinute is a spread rate or wind speed in feet per minute, the
// working unit of the Rothermel formulas.
type FeetPerMinute float64

// ToMilesPerHour converts a speed from ft/min to mi/h (÷88).
func (f FeetPerMinute) ToMilesPerHour() MilesPerHour {
	return MilesPerHour(float64(f) / 88.0)
}

// ToFeetPerMinute converts a speed from mi/h to ft/min (×88).
func (m MilesPerHour) ToFeetPerMinute() FeetPerMinute {
	return FeetPerMinute(float64(m) * 88.0)
}

// ChainsPerHour is a spread rate expressed in chains per hour, the
// conventional reporting unit for fire spread rate (1 chain = 66 ft).
type ChainsPerHour float64

// feetPerMinuteToChainsPerHour is the Rothermel ft/min -> chains/hr factor.
const feetPerMinuteToChainsPerHour = 10.0 / 11.0

// ToChainsPerHour converts a spread rate from ft/min to chains/hr.
func (f FeetPerMinute) ToChainsPerHour() ChainsPerHour {
	return ChainsPerHour(float64(f) * feetPerMinuteToChainsPerHour)
}

// BtuPerSqFtPerMin is a reaction-intensity unit (Btu/ft²/min).
type BtuPerSqFtPerMin float64

// BtuPerSqFt is a heat-per-unit-area unit (Btu/ft²).
type BtuPerSqFt float64

// BtuPerFtPerSec is a fireline-intensity unit (Btu/ft/s).
type BtuPerFtPerSec float64

// Feet is a length in feet.
type Feet float64

// Minutes is a duration in minutes.
type Minutes float64

// Smidgen is the Rothermel source's epsilon for "close enough to zero" to
// guard divisions and sqrt near degeneracy.
const Smidgen = 1.0e-07
