package sharing

import (
	"fmt"

	"github.com/luxfi/qudoku/pkg/hash"
	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/math/polynomial"
)

// DeriveSecret evaluates poly at input and returns the SHA-256 digest of the
// compressed encoding of the resulting point.
//
// Hashing removes the structure of the point encoding (such as its parity
// byte) from the secret material.
func DeriveSecret(poly polynomial.Polynomial[curve.Scalar, curve.Point], input curve.Scalar) ([hash.DigestSize]byte, error) {
	return DeriveSecretWith(hash.SHA256, poly, input)
}

// DeriveSecretWith is DeriveSecret with a configurable hash function.
func DeriveSecretWith(fn hash.Function, poly polynomial.Polynomial[curve.Scalar, curve.Point], input curve.Scalar) ([hash.DigestSize]byte, error) {
	var out [hash.DigestSize]byte
	p, err := evaluate(poly, input)
	if err != nil {
		return out, fmt.Errorf("sharing: failed to evaluate point polynomial: %w", err)
	}
	data, err := p.MarshalBinary()
	if err != nil {
		return out, fmt.Errorf("sharing: failed to marshal point: %w", err)
	}
	return fn.Sum(data), nil
}
