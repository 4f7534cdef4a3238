// Package polynomial implements polynomials in standard form and in Lagrange
// form over any field, with outputs in any module over that field.
//
// The same code evaluates scalar polynomials (coefficients in the scalar field
// of a curve) and point polynomials (coefficients in the group), which is what
// allows a secret polynomial and its public image to be handled uniformly.
package polynomial

// Polynomial is implemented by every polynomial representation in this
// package. Callers that only evaluate do not need to know which
// representation they hold.
type Polynomial[I, O any] interface {
	// Evaluate returns the value of the polynomial at x.
	Evaluate(x I) O
	// Degree returns the degree of the polynomial. A polynomial without
	// coefficients or samples has degree zero.
	Degree() int
	// InterpolationThreshold returns the number of evaluations needed to
	// interpolate the polynomial, Degree() + 1.
	InterpolationThreshold() int
}

// Equaler compares two values of the same type.
type Equaler[T any] interface {
	Equal(a, b T) bool
}

// Module describes the arithmetic on polynomial outputs O, which are scaled by
// inputs I.
//
// Implementations must not modify their arguments.
type Module[I, O any] interface {
	Equaler[O]

	// Zero returns the additive identity.
	Zero() O
	// IsZero reports whether o is the additive identity.
	IsZero(o O) bool
	// Add returns a + b.
	Add(a, b O) O
	// Scale returns o·s.
	Scale(o O, s I) O
}

// Field describes the arithmetic on polynomial inputs.
//
// Div is the only division available to this package. It must fail with an
// error rather than return a value when denom is zero.
type Field[T any] interface {
	Module[T, T]

	// One returns the multiplicative identity.
	One() T
	// Sub returns a - b.
	Sub(a, b T) T
	// Mul returns a·b.
	Mul(a, b T) T
	// Div returns num/denom, or an error if denom is zero.
	Div(num, denom T) (T, error)
}
