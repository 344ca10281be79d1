package sign

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Signed is implemented by values that may carry a sign.
type Signed interface {
	// Sign returns the value's sign, or false if it has none.
	Sign() (Sign, bool)
}

// Value adapts a number to the Signed interface.
type Value[T Number] struct {
	v T
}

// ValueOf wraps v as a Signed.
func ValueOf[T Number](v T) Value[T] {
	return Value[T]{v: v}
}

// Sign implements Signed.
func (v Value[T]) Sign() (Sign, bool) {
	return Of(v.v)
}

// Of returns the sign of v.
//
// Integers: zero has no sign. Floats: the sign bit decides for zero, so +0.0 is
// Positive and -0.0 is Negative; NaN has no sign.
func Of[T Number](v T) (Sign, bool) {
	switch {
	case v > 0:
		return Positive, true
	case v < 0:
		return Negative, true
	case math.IsNaN(float64(v)):
		return 0, false
	case isFloat[T]():
		if math.Signbit(float64(v)) {
			return Negative, true
		}
		return Positive, true
	default:
		return 0, false
	}
}

// OfInt64 is Of for int64.
func OfInt64(v int64) (Sign, bool) { return Of(v) }

// OfFloat64 is Of for float64.
func OfFloat64(v float64) (Sign, bool) { return Of(v) }

// isFloat reports whether T is a floating-point type: only those keep the
// fractional part of 1/2.
func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

// Parity returns Positive for even n and Negative for odd n.
func Parity[T constraints.Integer](n T) Sign {
	if n%2 == 0 {
		return Positive
	}
	return Negative
}

// ParityBool is Parity for a bool counted as 0 (false) or 1 (true).
func ParityBool(b bool) Sign {
	if b {
		return Parity(1)
	}
	return Parity(0)
}
