// Package sign implements a two-valued algebraic sign.
//
// A Sign is either Positive or Negative. It carries no magnitude and is
// represented by its discriminant (1 or -1), so it converts directly to any
// numeric type and orders with Negative < Positive.
//
// # Algebra
//
// Neg flips a sign. Mul scales any signed number by a sign and Apply does the
// same for types with their own Neg method. Because Sign satisfies both, sign
// multiplication falls out of the same operation:
//
//	sign.Mul(sign.Negative, 3.5)             // -3.5
//	sign.Negative.Mul(sign.Negative)         // Positive
//	sign.Apply(sign.Negative, sign.Positive) // Negative
//
// # Classification
//
// Of returns the sign of a number, with false when the number has none.
// Integer zero has no sign. Floating-point zero does: +0.0 is Positive and
// -0.0 is Negative. NaN has no sign.
//
// # Text form
//
// The canonical text form is "+" or "-". Parse, String and the encoding
// methods (text, JSON, YAML) all use it and round-trip exactly.
package sign
