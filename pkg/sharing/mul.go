package sharing

import (
	"errors"
	"fmt"

	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/math/polynomial"
)

// ErrUnsupportedPolynomial is returned by ToPointPolynomial for polynomial
// types other than the ones defined in this package.
var ErrUnsupportedPolynomial = errors.New("sharing: unsupported polynomial representation")

// ToPointPolynomial multiplies every coefficient or sample output of poly by
// q, keeping its representation: a *SecretSharingPolynomial becomes a
// *PointSharingPolynomial and an *InterpolatedSecretPolynomial becomes an
// *InterpolatedPointPolynomial.
//
// For every x, the result evaluates to poly.Evaluate(x)·q.
func ToPointPolynomial(poly polynomial.Polynomial[curve.Scalar, curve.Scalar], q curve.Point) (polynomial.Polynomial[curve.Scalar, curve.Point], error) {
	switch p := poly.(type) {
	case *SecretSharingPolynomial:
		return MulStandard(p, q), nil
	case *InterpolatedSecretPolynomial:
		return MulInterpolated(p, q), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPolynomial, poly)
	}
}

// ToGeneratorPolynomial is ToPointPolynomial with q fixed to the base point of
// group.
func ToGeneratorPolynomial(group curve.Curve, poly polynomial.Polynomial[curve.Scalar, curve.Scalar]) (polynomial.Polynomial[curve.Scalar, curve.Point], error) {
	return ToPointPolynomial(poly, group.NewBasePoint())
}

// MulStandard returns the standard-form polynomial whose coefficients are
// those of poly multiplied by q.
func MulStandard(poly *SecretSharingPolynomial, q curve.Point) *PointSharingPolynomial {
	return polynomial.MapCoefficients(poly, polynomial.PointModule(q.Curve()), actOn(q))
}

// MulInterpolated returns the interpolated polynomial sampled at the same
// inputs as poly, with every output multiplied by q.
func MulInterpolated(poly *InterpolatedSecretPolynomial, q curve.Point) *InterpolatedPointPolynomial {
	return polynomial.MapEvaluations(poly, polynomial.PointModule(q.Curve()), actOn(q))
}

func actOn(q curve.Point) func(curve.Scalar) curve.Point {
	return func(s curve.Scalar) curve.Point {
		return s.Act(q)
	}
}
