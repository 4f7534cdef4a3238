package hash

import (
	"errors"
	"fmt"

	"github.com/luxfi/qudoku/pkg/math/curve"
)

type options struct {
	function Function
	parity   curve.Parity
}

// Option configures ToPoint.
type Option func(*options)

// WithFunction selects the hash applied to the input. The default is SHA256.
func WithFunction(f Function) Option {
	return func(o *options) {
		o.function = f
	}
}

// WithParity selects the y parity of the returned point. The default is
// curve.EvenY.
func WithParity(p curve.Parity) Option {
	return func(o *options) {
		o.parity = p
	}
}

// ToPoint maps input to a point of group whose discrete logarithm with respect
// to the base point is unknown.
//
// The input is hashed and the digest is tried as an x coordinate. Digests that
// do not lift onto the curve are incremented as big-endian integers until one
// does; about half of all candidates succeed, so the loop terminates quickly
// in practice but has no fixed bound.
//
// ToPoint runs in variable time. Only use it on public data.
func ToPoint(group curve.Curve, input []byte, opts ...Option) (curve.Point, error) {
	o := options{function: SHA256, parity: curve.EvenY}
	for _, opt := range opts {
		opt(&o)
	}

	digest := o.function.Sum(input)
	candidate := digest[:]
	for {
		p, err := group.LiftX(candidate, o.parity)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, curve.ErrNotOnCurve) {
			return nil, fmt.Errorf("hash: failed to lift digest onto %s: %w", group.Name(), err)
		}
		IncrementBE(candidate)
	}
}

// IncrementBE adds one to b, read as a big-endian unsigned integer. A value
// made only of 0xFF bytes wraps around to zero and an empty slice is left
// unchanged.
func IncrementBE(b []byte) {
	for i := len(b) - 1; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}
