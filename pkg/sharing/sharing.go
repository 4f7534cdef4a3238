// Package sharing specializes the polynomial package to secret sharing over a
// curve.
//
// A dealer holds a SecretSharingPolynomial f whose constant term is the
// secret, and issues SecretShares f(xᵢ) to shareholders. Multiplying f by a
// public point Q gives the PointSharingPolynomial Q·f, whose value at zero can
// be turned into secret bytes with DeriveSecret. Any threshold of shares can
// rebuild either polynomial in interpolated form without learning its
// coefficients, and distinct points Q yield independent secrets from the same
// set of shares.
package sharing

import (
	"errors"
	"fmt"
	"io"

	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/math/polynomial"
	"github.com/luxfi/qudoku/pkg/math/sample"
)

// ErrInvalidThreshold is returned when a threshold below one is requested.
var ErrInvalidThreshold = errors.New("sharing: threshold must be at least 1")

// SecretShare is a share held by exactly one shareholder.
type SecretShare = polynomial.Evaluation[curve.Scalar, curve.Scalar]

// PointShare is a share of a point-sharing polynomial, which may be published.
// It is the product of a SecretShare's output with a fixed point Q.
type PointShare = polynomial.Evaluation[curve.Scalar, curve.Point]

// SecretSharingPolynomial is the dealer's polynomial with scalar coefficients.
type SecretSharingPolynomial = polynomial.StandardForm[curve.Scalar, curve.Scalar]

// PointSharingPolynomial is the image of a SecretSharingPolynomial under
// multiplication by a point.
type PointSharingPolynomial = polynomial.StandardForm[curve.Scalar, curve.Point]

// InterpolatedSecretPolynomial is a secret-sharing polynomial rebuilt from
// SecretShares.
type InterpolatedSecretPolynomial = polynomial.Lagrange[curve.Scalar, curve.Scalar]

// InterpolatedPointPolynomial is a point-sharing polynomial rebuilt from
// PointShares.
type InterpolatedPointPolynomial = polynomial.Lagrange[curve.Scalar, curve.Point]

// NewSecretSharingPolynomial returns the polynomial with the given
// coefficients, constant term first.
func NewSecretSharingPolynomial(group curve.Curve, coefficients []curve.Scalar) *SecretSharingPolynomial {
	return polynomial.NewStandardForm[curve.Scalar, curve.Scalar](polynomial.ScalarField(group), coefficients)
}

// NewPointSharingPolynomial returns the polynomial with the given point
// coefficients, constant term first.
func NewPointSharingPolynomial(group curve.Curve, coefficients []curve.Point) *PointSharingPolynomial {
	return polynomial.NewStandardForm[curve.Scalar, curve.Point](polynomial.PointModule(group), coefficients)
}

// Interpolate returns the secret-sharing polynomial through shares. The
// shares must have distinct inputs.
func Interpolate(group curve.Curve, shares []SecretShare) *InterpolatedSecretPolynomial {
	field := polynomial.ScalarField(group)
	return polynomial.NewLagrange[curve.Scalar, curve.Scalar](field, field, shares)
}

// InterpolatePoints returns the point-sharing polynomial through shares. The
// shares must have distinct inputs.
func InterpolatePoints(group curve.Curve, shares []PointShare) *InterpolatedPointPolynomial {
	return polynomial.NewLagrange[curve.Scalar, curve.Point](polynomial.ScalarField(group), polynomial.PointModule(group), shares)
}

// RandomPolynomial returns a secret-sharing polynomial of degree threshold-1
// with the given constant term and uniformly random non-zero higher
// coefficients. A nil secret is replaced by a random one.
func RandomPolynomial(rand io.Reader, group curve.Curve, secret curve.Scalar, threshold int) (*SecretSharingPolynomial, error) {
	if threshold < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, threshold)
	}
	if secret == nil {
		secret = sample.Scalar(rand, group)
	}
	coefficients := make([]curve.Scalar, 0, threshold)
	coefficients = append(coefficients, group.NewScalar().Set(secret))
	coefficients = append(coefficients, sample.Coefficients(rand, group, threshold-1)...)
	return NewSecretSharingPolynomial(group, coefficients), nil
}

// ToPointShare returns the point share Q·share.
func ToPointShare(share SecretShare, q curve.Point) PointShare {
	return PointShare{Input: share.Input, Output: share.Output.Act(q)}
}

// SecretSharesEqual reports whether a and b have the same input and output.
func SecretSharesEqual(a, b SecretShare) bool {
	return a.Input.Equal(b.Input) && a.Output.Equal(b.Output)
}

// PointSharesEqual reports whether a and b have the same input and output.
func PointSharesEqual(a, b PointShare) bool {
	return a.Input.Equal(b.Input) && a.Output.Equal(b.Output)
}
