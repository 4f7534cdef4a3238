// Package curve defines the field and group abstractions the polynomial
// packages compute over, together with a secp256k1 implementation.
package curve

import (
	"encoding"
	"errors"

	"github.com/cronokirby/saferith"
)

var (
	// ErrDivideByZero is returned by checked division when the divisor is the
	// additive identity of the scalar field.
	ErrDivideByZero = errors.New("curve: division by zero scalar")
	// ErrInvalidLength is returned when an encoding has the wrong size.
	ErrInvalidLength = errors.New("curve: invalid encoding length")
	// ErrScalarOverflow is returned when a scalar encoding is not reduced
	// modulo the group order.
	ErrScalarOverflow = errors.New("curve: scalar encoding overflows group order")
	// ErrNotOnCurve is returned when a candidate x coordinate does not lift to
	// a point with the requested parity.
	ErrNotOnCurve = errors.New("curve: x coordinate is not on the curve")
)

// Parity selects which of the two points sharing an x coordinate is returned
// by LiftX.
type Parity uint8

const (
	// EvenY selects the point whose y coordinate is even.
	EvenY Parity = iota
	// OddY selects the point whose y coordinate is odd.
	OddY
)

func (p Parity) String() string {
	switch p {
	case EvenY:
		return "even"
	case OddY:
		return "odd"
	default:
		return "unknown"
	}
}

// Curve represents a prime order group together with its scalar field.
type Curve interface {
	// NewPoint returns the identity element.
	NewPoint() Point
	// NewBasePoint returns the canonical generator.
	NewBasePoint() Point
	// NewScalar returns the additive identity of the scalar field.
	NewScalar() Scalar
	// Name returns the name of the curve.
	Name() string
	// ScalarBits returns the bit length of the group order.
	ScalarBits() int
	// SafeScalarBytes returns how many uniform random bytes are needed to
	// sample a scalar with negligible bias.
	SafeScalarBytes() int
	// Order returns the order of the group.
	Order() *saferith.Modulus
	// LiftX interprets x as a big-endian field element and returns the point
	// with that x coordinate and the requested y parity.
	//
	// This runs in variable time and must only be used with public inputs.
	LiftX(x []byte, parity Parity) (Point, error)
}

// Scalar represents an element of the scalar field of a Curve.
//
// Arithmetic methods modify the receiver and return it, so that calls can be
// chained: s.Set(a).Mul(b).Add(c).
// No division operator is provided. Invert maps zero to zero; code that needs
// a division which refuses a zero divisor must check for it explicitly.
type Scalar interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	Curve() Curve

	// Add sets s = s + t and returns s.
	Add(Scalar) Scalar
	// Sub sets s = s - t and returns s.
	Sub(Scalar) Scalar
	// Mul sets s = s * t and returns s.
	Mul(Scalar) Scalar
	// Negate sets s = -s and returns s.
	Negate() Scalar
	// Invert sets s = 1/s and returns s. The inverse of zero is zero.
	Invert() Scalar
	// Equal reports whether s and t hold the same value.
	Equal(Scalar) bool
	// IsZero reports whether s is the additive identity.
	IsZero() bool
	// Set copies t into s and returns s.
	Set(Scalar) Scalar
	// SetNat sets s to x modulo the group order and returns s.
	SetNat(*saferith.Nat) Scalar
	// Act returns s·P as a new point.
	Act(Point) Point
	// ActOnBase returns s·G as a new point.
	ActOnBase() Point
}

// Point represents an element of the group of a Curve.
//
// Unlike Scalar, Point methods never modify their receiver.
type Point interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	Curve() Curve

	// Add returns p + q.
	Add(Point) Point
	// Sub returns p - q.
	Sub(Point) Point
	// Negate returns -p.
	Negate() Point
	// Equal reports whether p and q are the same group element.
	Equal(Point) bool
	// IsIdentity reports whether p is the identity element.
	IsIdentity() bool
	// XScalar returns the x coordinate of p reduced modulo the group order, or
	// nil for the identity.
	XScalar() Scalar
	// HasEvenY reports whether the affine y coordinate of p is even. The
	// identity reports false.
	HasEvenY() bool
}
