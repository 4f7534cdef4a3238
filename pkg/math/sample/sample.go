// Package sample draws random scalars.
package sample

import (
	"errors"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/luxfi/qudoku/pkg/math/curve"
)

const maxIterations = 255

// ErrMaxIterations is the panic value when the randomness source keeps failing.
var ErrMaxIterations = errors.New("sample: failed to generate after 255 iterations")

func mustReadBits(rand io.Reader, buffer []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buffer); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Scalar returns a uniformly distributed scalar of group.
//
// It reads group.SafeScalarBytes() bytes and reduces them modulo the order,
// so the bias is negligible.
func Scalar(rand io.Reader, group curve.Curve) curve.Scalar {
	buffer := make([]byte, group.SafeScalarBytes())
	mustReadBits(rand, buffer)
	n := new(saferith.Nat).SetBytes(buffer)
	return group.NewScalar().SetNat(n)
}

// ScalarUnit returns a uniformly distributed non-zero scalar of group.
func ScalarUnit(rand io.Reader, group curve.Curve) curve.Scalar {
	for i := 0; i < maxIterations; i++ {
		s := Scalar(rand, group)
		if !s.IsZero() {
			return s
		}
	}
	panic(ErrMaxIterations)
}

// Coefficients returns n independent non-zero scalars, suitable as the
// coefficients of a random polynomial.
func Coefficients(rand io.Reader, group curve.Curve, n int) []curve.Scalar {
	out := make([]curve.Scalar, n)
	for i := range out {
		out[i] = ScalarUnit(rand, group)
	}
	return out
}
