package polynomial

import (
	"github.com/cronokirby/saferith"
	"github.com/luxfi/qudoku/pkg/math/curve"
)

type scalarField struct {
	group curve.Curve
}

// ScalarField returns the scalar field of group. Its Div returns
// curve.ErrDivideByZero for a zero divisor.
func ScalarField(group curve.Curve) Field[curve.Scalar] {
	return scalarField{group: group}
}

func (f scalarField) Zero() curve.Scalar {
	return f.group.NewScalar()
}

func (f scalarField) One() curve.Scalar {
	return f.group.NewScalar().SetNat(new(saferith.Nat).SetUint64(1))
}

func (scalarField) IsZero(s curve.Scalar) bool {
	return s.IsZero()
}

func (scalarField) Equal(a, b curve.Scalar) bool {
	return a.Equal(b)
}

func (f scalarField) Add(a, b curve.Scalar) curve.Scalar {
	return f.group.NewScalar().Set(a).Add(b)
}

func (f scalarField) Sub(a, b curve.Scalar) curve.Scalar {
	return f.group.NewScalar().Set(a).Sub(b)
}

func (f scalarField) Mul(a, b curve.Scalar) curve.Scalar {
	return f.group.NewScalar().Set(a).Mul(b)
}

func (f scalarField) Scale(o, s curve.Scalar) curve.Scalar {
	return f.Mul(o, s)
}

func (f scalarField) Div(num, denom curve.Scalar) (curve.Scalar, error) {
	if denom.IsZero() {
		return nil, curve.ErrDivideByZero
	}
	return f.group.NewScalar().Set(denom).Invert().Mul(num), nil
}

type pointModule struct {
	group curve.Curve
}

// PointModule returns the group of group as a module over its scalar field,
// where scaling a point by s is the scalar multiplication s·P.
func PointModule(group curve.Curve) Module[curve.Scalar, curve.Point] {
	return pointModule{group: group}
}

func (m pointModule) Zero() curve.Point {
	return m.group.NewPoint()
}

func (pointModule) IsZero(p curve.Point) bool {
	return p.IsIdentity()
}

func (pointModule) Equal(a, b curve.Point) bool {
	return a.Equal(b)
}

func (pointModule) Add(a, b curve.Point) curve.Point {
	return a.Add(b)
}

func (pointModule) Scale(p curve.Point, s curve.Scalar) curve.Point {
	return s.Act(p)
}
