package sharing

import (
	"github.com/luxfi/qudoku/pkg/math/curve"
)

// Commitment is the Feldman commitment to a secret-sharing polynomial f: the
// point polynomial whose coefficients are aᵢ·G. It can be published without
// revealing f, and its constant term is the public key secret·G.
type Commitment = PointSharingPolynomial

// Commit returns the commitment to poly.
func Commit(group curve.Curve, poly *SecretSharingPolynomial) *Commitment {
	return MulStandard(poly, group.NewBasePoint())
}

// VerifyShare reports whether share lies on the polynomial committed to by
// commitment, that is whether share.Output·G = commitment(share.Input).
func VerifyShare(commitment *Commitment, share SecretShare) bool {
	return share.Output.ActOnBase().Equal(commitment.Evaluate(share.Input))
}
