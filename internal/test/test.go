// Package test holds fixtures shared by the package tests.
package test

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/party"
)

// PartyIDs returns n sorted party IDs "a", "b", ... followed by numbered ones
// once the alphabet runs out.
func PartyIDs(n int) party.IDSlice {
	ids := make([]party.ID, n)
	for i := range ids {
		if i < 26 {
			ids[i] = party.ID(rune('a' + i))
		} else {
			ids[i] = party.ID(fmt.Sprintf("z%03d", i))
		}
	}
	return party.NewIDSlice(ids)
}

// Scalar returns v as a scalar of group.
func Scalar(group curve.Curve, v uint64) curve.Scalar {
	return group.NewScalar().SetNat(new(saferith.Nat).SetUint64(v))
}

// Scalars returns each of vs as a scalar of group.
func Scalars(group curve.Curve, vs ...uint64) []curve.Scalar {
	out := make([]curve.Scalar, len(vs))
	for i, v := range vs {
		out[i] = Scalar(group, v)
	}
	return out
}

// Point returns v·G.
func Point(group curve.Curve, v uint64) curve.Point {
	return Scalar(group, v).ActOnBase()
}
