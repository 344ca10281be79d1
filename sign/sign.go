package sign

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sign is the algebraic sign of a quantity.
// The zero value is not a valid Sign.
type Sign int8

const (
	Negative Sign = -1
	Positive Sign = 1
)

// Number is any signed integer or floating-point type.
type Number interface {
	constraints.Signed | constraints.Float
}

// Negater is a type that can negate itself.
type Negater[T any] interface {
	Neg() T
}

// Valid reports whether s is Positive or Negative.
func (s Sign) Valid() bool {
	return s == Positive || s == Negative
}

// Neg returns the opposite sign.
func (s Sign) Neg() Sign {
	return -s
}

// Mul returns the product of two signs.
func (s Sign) Mul(o Sign) Sign {
	return Mul(s, o)
}

// Compare returns -1, 0 or +1 as s is less than, equal to or greater than o.
func (s Sign) Compare(o Sign) int {
	return Compare(s, o)
}

// Compare orders signs with Negative before Positive.
// It has the signature slices.SortFunc expects.
func Compare(a, b Sign) int {
	return cmp.Compare(a, b)
}

// Mul scales v by s: v for Positive, -v for Negative.
func Mul[T Number](s Sign, v T) T {
	if s == Negative {
		return -v
	}
	return v
}

// Apply is Mul for types that negate themselves.
func Apply[T Negater[T]](s Sign, v T) T {
	if s == Negative {
		return v.Neg()
	}
	return v
}

// As converts s to 1 or -1 of any numeric type.
func As[T Number](s Sign) T {
	return T(s)
}

// ToInt returns 1 or -1 as an int.
func (s Sign) ToInt() int { return As[int](s) }

// ToInt64 returns 1 or -1 as an int64.
func (s Sign) ToInt64() int64 { return As[int64](s) }

// ToInt32 returns 1 or -1 as an int32.
func (s Sign) ToInt32() int32 { return As[int32](s) }

// ToInt16 returns 1 or -1 as an int16.
func (s Sign) ToInt16() int16 { return As[int16](s) }

// ToInt8 returns the 8-bit accessor's value widened to int16.
// Existing callers depend on the int16 result; use As[int8] for a true int8.
func (s Sign) ToInt8() int16 { return As[int16](s) }

// ToFloat32 returns 1.0 or -1.0 as a float32.
func (s Sign) ToFloat32() float32 { return As[float32](s) }

// ToFloat64 returns 1.0 or -1.0 as a float64.
func (s Sign) ToFloat64() float64 { return As[float64](s) }

// Parse parses "+" or "-". Any other input returns an error wrapping ErrInvalid.
func Parse(text string) (Sign, error) {
	switch text {
	case "+":
		return Positive, nil
	case "-":
		return Negative, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalid, text)
	}
}

// MustParse is like Parse but panics on invalid input.
func MustParse(text string) Sign {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns "+" or "-".
func (s Sign) String() string {
	switch s {
	case Positive:
		return "+"
	case Negative:
		return "-"
	default:
		return fmt.Sprintf("Sign(%d)", int8(s))
	}
}
