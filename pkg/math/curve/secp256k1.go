package curve

import (
	"fmt"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// pointEncodingSize is the size of a compressed SEC1 point. The identity is
// encoded as this many zero bytes.
const pointEncodingSize = 33

var secp256k1OrderNat, _ = new(saferith.Nat).SetHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
var secp256k1Order = saferith.ModulusFromNat(secp256k1OrderNat)

// Secp256k1 implements Curve for the secp256k1 group.
type Secp256k1 struct{}

func (Secp256k1) NewPoint() Point {
	return new(Secp256k1Point)
}

func (Secp256k1) NewBasePoint() Point {
	var one secp256k1.ModNScalar
	one.SetInt(1)
	out := new(Secp256k1Point)
	secp256k1.ScalarBaseMultNonConst(&one, &out.value)
	return out
}

func (Secp256k1) NewScalar() Scalar {
	return new(Secp256k1Scalar)
}

func (Secp256k1) Name() string {
	return "secp256k1"
}

func (Secp256k1) ScalarBits() int {
	return 256
}

func (Secp256k1) SafeScalarBytes() int {
	return 32 + 16
}

func (Secp256k1) Order() *saferith.Modulus {
	return secp256k1Order
}

func (Secp256k1) LiftX(x []byte, parity Parity) (Point, error) {
	if len(x) != 32 {
		return nil, fmt.Errorf("%w: x coordinate has %d bytes, want 32", ErrInvalidLength, len(x))
	}
	var buf [32]byte
	copy(buf[:], x)

	var fx, fy secp256k1.FieldVal
	if overflow := fx.SetBytes(&buf); overflow != 0 {
		return nil, ErrNotOnCurve
	}
	if !secp256k1.DecompressY(&fx, parity == OddY, &fy) {
		return nil, ErrNotOnCurve
	}

	out := new(Secp256k1Point)
	out.value.X.Set(&fx)
	out.value.Y.Set(&fy)
	out.value.Z.SetInt(1)
	return out, nil
}

// Secp256k1Scalar is an element of the secp256k1 scalar field.
type Secp256k1Scalar struct {
	value secp256k1.ModNScalar
}

func secp256k1CastScalar(generic Scalar) *Secp256k1Scalar {
	out, ok := generic.(*Secp256k1Scalar)
	if !ok {
		panic(fmt.Sprintf("curve: failed to convert %T to *Secp256k1Scalar", generic))
	}
	return out
}

func (*Secp256k1Scalar) Curve() Curve {
	return Secp256k1{}
}

func (s *Secp256k1Scalar) MarshalBinary() ([]byte, error) {
	data := s.value.Bytes()
	return data[:], nil
}

func (s *Secp256k1Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != 32 {
		return fmt.Errorf("%w: scalar has %d bytes, want 32", ErrInvalidLength, len(data))
	}
	var buf [32]byte
	copy(buf[:], data)
	if overflow := s.value.SetBytes(&buf); overflow != 0 {
		return ErrScalarOverflow
	}
	return nil
}

func (s *Secp256k1Scalar) Add(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Add(&other.value)
	return s
}

func (s *Secp256k1Scalar) Sub(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	var negated secp256k1.ModNScalar
	negated.NegateVal(&other.value)
	s.value.Add(&negated)
	return s
}

func (s *Secp256k1Scalar) Mul(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Mul(&other.value)
	return s
}

func (s *Secp256k1Scalar) Negate() Scalar {
	s.value.Negate()
	return s
}

func (s *Secp256k1Scalar) Invert() Scalar {
	s.value.InverseNonConst()
	return s
}

func (s *Secp256k1Scalar) Equal(that Scalar) bool {
	other := secp256k1CastScalar(that)

	return s.value.Equals(&other.value)
}

func (s *Secp256k1Scalar) IsZero() bool {
	return s.value.IsZero()
}

func (s *Secp256k1Scalar) Set(that Scalar) Scalar {
	other := secp256k1CastScalar(that)

	s.value.Set(&other.value)
	return s
}

func (s *Secp256k1Scalar) SetNat(x *saferith.Nat) Scalar {
	reduced := new(saferith.Nat).Mod(x, secp256k1Order)
	var buf [32]byte
	reduced.FillBytes(buf[:])
	s.value.SetBytes(&buf)
	return s
}

func (s *Secp256k1Scalar) Act(that Point) Point {
	other := secp256k1CastPoint(that)

	out := new(Secp256k1Point)
	secp256k1.ScalarMultNonConst(&s.value, &other.value, &out.value)
	return out
}

func (s *Secp256k1Scalar) ActOnBase() Point {
	out := new(Secp256k1Point)
	secp256k1.ScalarBaseMultNonConst(&s.value, &out.value)
	return out
}

func (s *Secp256k1Scalar) String() string {
	return s.value.String()
}

// Secp256k1Point is an element of the secp256k1 group, kept in Jacobian
// coordinates. The zero value is the identity.
type Secp256k1Point struct {
	value secp256k1.JacobianPoint
}

func secp256k1CastPoint(generic Point) *Secp256k1Point {
	out, ok := generic.(*Secp256k1Point)
	if !ok {
		panic(fmt.Sprintf("curve: failed to convert %T to *Secp256k1Point", generic))
	}
	return out
}

func (*Secp256k1Point) Curve() Curve {
	return Secp256k1{}
}

// affine returns a normalized affine copy of p. It must not be called on the
// identity.
func (p *Secp256k1Point) affine() secp256k1.JacobianPoint {
	var out secp256k1.JacobianPoint
	out.Set(&p.value)
	out.ToAffine()
	return out
}

// MarshalBinary returns the 33-byte compressed SEC1 encoding of p. The
// identity encodes as 33 zero bytes.
func (p *Secp256k1Point) MarshalBinary() ([]byte, error) {
	if p.IsIdentity() {
		return make([]byte, pointEncodingSize), nil
	}
	a := p.affine()
	return secp256k1.NewPublicKey(&a.X, &a.Y).SerializeCompressed(), nil
}

func (p *Secp256k1Point) UnmarshalBinary(data []byte) error {
	if len(data) != pointEncodingSize {
		return fmt.Errorf("%w: point has %d bytes, want %d", ErrInvalidLength, len(data), pointEncodingSize)
	}
	identity := true
	for _, b := range data {
		if b != 0 {
			identity = false
			break
		}
	}
	if identity {
		p.value = secp256k1.JacobianPoint{}
		return nil
	}
	key, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return fmt.Errorf("curve: failed to parse point: %w", err)
	}
	key.AsJacobian(&p.value)
	return nil
}

func (p *Secp256k1Point) Add(that Point) Point {
	other := secp256k1CastPoint(that)

	out := new(Secp256k1Point)
	secp256k1.AddNonConst(&p.value, &other.value, &out.value)
	return out
}

func (p *Secp256k1Point) Sub(that Point) Point {
	return p.Add(that.Negate())
}

func (p *Secp256k1Point) Negate() Point {
	out := new(Secp256k1Point)
	if p.IsIdentity() {
		return out
	}
	out.value = p.affine()
	out.value.Y.Negate(1).Normalize()
	return out
}

func (p *Secp256k1Point) Equal(that Point) bool {
	other := secp256k1CastPoint(that)

	switch {
	case p.IsIdentity() && other.IsIdentity():
		return true
	case p.IsIdentity() || other.IsIdentity():
		return false
	}
	a, b := p.affine(), other.affine()
	return a.X.Equals(&b.X) && a.Y.Equals(&b.Y)
}

func (p *Secp256k1Point) IsIdentity() bool {
	return (p.value.X.IsZero() && p.value.Y.IsZero()) || p.value.Z.IsZero()
}

func (p *Secp256k1Point) XScalar() Scalar {
	if p.IsIdentity() {
		return nil
	}
	a := p.affine()
	out := new(Secp256k1Scalar)
	// x < p < 2n, so a single reduction suffices.
	out.value.SetBytes(a.X.Bytes())
	return out
}

func (p *Secp256k1Point) HasEvenY() bool {
	if p.IsIdentity() {
		return false
	}
	a := p.affine()
	return !a.Y.IsOdd()
}

func (p *Secp256k1Point) String() string {
	data, _ := p.MarshalBinary()
	return fmt.Sprintf("%x", data)
}
