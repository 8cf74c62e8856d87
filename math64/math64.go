// math64 is a stand-in for the built-in math package, extended with the interpolation, damping, and angle helpers that
// game code usually reaches for. Everything works in float64, so it can back the double-precision vectors and quaternions in
// the root package without any narrowing conversions.
package math64

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	Pi      = math.Pi
	Rad2Deg = 180 / Pi
	Deg2Rad = Pi / 180
	Epsilon = math.SmallestNonzeroFloat64
)

var (
	Infinity         = math.Inf(1)
	NegativeInfinity = math.Inf(-1)
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ToRadians is a helper function to easily convert degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * Deg2Rad
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float64) float64 {
	return radians * Rad2Deg
}

// Min returns the minimum value out of two provided values.
func Min[N Number](x, y N) N {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[N Number](x, y N) N {
	if x > y {
		return x
	}
	return y
}

// MinOf returns the smallest of the given values, or 0 if none are given.
func MinOf[N Number](values ...N) N {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

// MaxOf returns the largest of the given values, or 0 if none are given.
func MaxOf[N Number](values ...N) N {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[N Number](value, min, max N) N {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Clamp01 clamps the value to the range [0, 1].
func Clamp01(value float64) float64 {
	return Clamp(value, 0, 1)
}

// Sign returns 1 if f is positive or zero, and -1 otherwise.
func Sign(f float64) float64 {
	if f >= 0 {
		return 1
	}
	return -1
}

// Sin returns the sine of the radian argument x.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x float64) float64 {
	return math.Sin(x)
}

// Cos returns the cosine of the radian argument x.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x float64) float64 {
	return math.Cos(x)
}

// Tan returns the tangent of the radian argument x.
//
// Special cases are:
//
//	Tan(±0) = ±0
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
func Tan(x float64) float64 {
	return math.Tan(x)
}

// Asin returns the arcsine, in radians, of x.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(x) = NaN if x < -1 or x > 1
func Asin(x float64) float64 {
	return math.Asin(x)
}

// Acos returns the arccosine, in radians, of x.
//
// Special case is:
//
//	Acos(x) = NaN if x < -1 or x > 1
func Acos(x float64) float64 {
	return math.Acos(x)
}

// Atan returns the arctangent, in radians, of x.
//
// Special cases are:
//
//	Atan(±0) = ±0
//	Atan(±Inf) = ±Pi/2
func Atan(x float64) float64 {
	return math.Atan(x)
}

// Atan2 returns the arc tangent of y/x, using
// the signs of the two to determine the quadrant
// of the return value.
//
// Special cases are (in order):
//
//	Atan2(y, NaN) = NaN
//	Atan2(NaN, x) = NaN
//	Atan2(+0, x>=0) = +0
//	Atan2(-0, x>=0) = -0
//	Atan2(+0, x<=-0) = +Pi
//	Atan2(-0, x<=-0) = -Pi
//	Atan2(y>0, 0) = +Pi/2
//	Atan2(y<0, 0) = -Pi/2
//	Atan2(y, +Inf) = 0
//	Atan2(y>0, -Inf) = +Pi
//	Atan2(y<0, -Inf) = -Pi
//	Atan2(+Inf, x) = +Pi/2
//	Atan2(-Inf, x) = -Pi/2
func Atan2(y, x float64) float64 {
	return math.Atan2(y, x)
}

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	return math.Abs(x)
}

// Pow returns x**y, the base-x exponential of y. Special cases follow math.Pow.
func Pow(x, y float64) float64 {
	return math.Pow(x, y)
}

// Exp returns e**x, the base-e exponential of x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Log returns the natural logarithm of x.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
func Log(x float64) float64 {
	return math.Log(x)
}

// LogBase returns the logarithm of x in the given base.
func LogBase(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}

// Log10 returns the decimal logarithm of x.
func Log10(x float64) float64 {
	return math.Log10(x)
}

// Mod returns the floating-point remainder of x/y. The sign of the result agrees with that of x.
//
// Special cases are:
//
//	Mod(±Inf, y) = NaN
//	Mod(NaN, y) = NaN
//	Mod(x, 0) = NaN
//	Mod(x, ±Inf) = x
func Mod(x, y float64) float64 {
	return math.Mod(x, y)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float64) float64 {
	return math.Ceil(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float64) float64 {
	return math.Floor(x)
}

// Round returns the nearest integer, rounding ties to even (so Round(2.5) is 2 and Round(3.5) is 4).
func Round(x float64) float64 {
	return math.RoundToEven(x)
}

// CeilToInt returns the smallest integer greater than or equal to x.
func CeilToInt(x float64) int {
	return int(math.Ceil(x))
}

// FloorToInt returns the largest integer less than or equal to x.
func FloorToInt(x float64) int {
	return int(math.Floor(x))
}

// RoundToInt returns x rounded to the nearest integer, ties to even.
func RoundToInt(x float64) int {
	return int(Round(x))
}

// NextPowerOfTwo returns the next power of two that is equal to, or greater than, the argument.
func NextPowerOfTwo(value int) int {
	value--
	value |= value >> 32
	value |= value >> 16
	value |= value >> 8
	value |= value >> 4
	value |= value >> 2
	value |= value >> 1
	return value + 1
}

// ClosestPowerOfTwo returns the power of two closest to value.
func ClosestPowerOfTwo(value int) int {
	next := NextPowerOfTwo(value)
	prev := next >> 1
	if value-prev < next-value {
		return prev
	}
	return next
}

// IsPowerOfTwo returns if value is a power of two.
func IsPowerOfTwo(value int) bool {
	return value&(value-1) == 0
}
