package polynomial

import (
	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/party"
)

// LagrangeCoefficients returns the Lagrange weights at zero for the
// interpolation domain given by ids, keyed by party.
//
// Multiplying each party's share by its weight and summing yields the value
// of the shared polynomial at zero. If two ids map to the same scalar an
// *InvariantError is returned.
func LagrangeCoefficients(group curve.Curve, ids []party.ID) (map[party.ID]curve.Scalar, error) {
	inputs := make([]curve.Scalar, len(ids))
	for i, id := range ids {
		inputs[i] = id.Scalar(group)
	}
	weights, err := BasisValues(ScalarField(group), inputs, group.NewScalar())
	if err != nil {
		return nil, err
	}
	out := make(map[party.ID]curve.Scalar, len(ids))
	for i, id := range ids {
		out[id] = weights[i]
	}
	return out, nil
}
