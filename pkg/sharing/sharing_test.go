package sharing_test

import (
	"context"
	"crypto/rand"
	"testing/quick"

	"github.com/luxfi/qudoku/internal/test"
	"github.com/luxfi/qudoku/pkg/hash"
	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/math/polynomial"
	"github.com/luxfi/qudoku/pkg/math/sample"
	"github.com/luxfi/qudoku/pkg/party"
	"github.com/luxfi/qudoku/pkg/sharing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func issueAll(f *sharing.SecretSharingPolynomial, xs []curve.Scalar) []sharing.SecretShare {
	shares := make([]sharing.SecretShare, len(xs))
	for i, x := range xs {
		shares[i] = sharing.IssueShare[curve.Scalar](f, x)
	}
	return shares
}

var _ = Describe("Sharing", func() {
	var group curve.Curve

	BeforeEach(func() {
		group = curve.Secp256k1{}
	})

	Describe("Homomorphic point mapping", func() {
		var (
			f *sharing.SecretSharingPolynomial
			q curve.Point
			i curve.Scalar
		)

		BeforeEach(func() {
			f = sharing.NewSecretSharingPolynomial(group, test.Scalars(group, 4, 1, 8))
			// A point with a known discrete log is fine for a test; real points
			// come from hash.ToPoint.
			q = test.Point(group, 100000)
			i = test.Scalar(group, 49)
		})

		It("maps a standard-form polynomial", func() {
			z1 := sharing.MulStandard(f, group.NewBasePoint())
			z2 := sharing.MulStandard(f, q)

			Expect(z1.Evaluate(i).Equal(f.Evaluate(i).ActOnBase())).To(BeTrue())
			Expect(z2.Evaluate(i).Equal(f.Evaluate(i).Act(q))).To(BeTrue())
			Expect(z2.Degree()).To(Equal(f.Degree()))
		})

		It("maps an interpolated polynomial", func() {
			interpolated := sharing.Interpolate(group, issueAll(f, test.Scalars(group, 9, 10, 11)))
			Expect(interpolated.Evaluate(i).Equal(f.Evaluate(i))).To(BeTrue())

			z1 := sharing.MulStandard(f, group.NewBasePoint())
			z2 := sharing.MulStandard(f, q)
			Expect(sharing.MulInterpolated(interpolated, group.NewBasePoint()).Evaluate(i).Equal(z1.Evaluate(i))).To(BeTrue())
			Expect(sharing.MulInterpolated(interpolated, q).Evaluate(i).Equal(z2.Evaluate(i))).To(BeTrue())
		})

		It("keeps the representation", func() {
			mapped, err := sharing.ToPointPolynomial(f, q)
			Expect(err).NotTo(HaveOccurred())
			Expect(mapped).To(BeAssignableToTypeOf(&sharing.PointSharingPolynomial{}))

			interpolated := sharing.Interpolate(group, issueAll(f, test.Scalars(group, 1, 2, 3)))
			mapped, err = sharing.ToGeneratorPolynomial(group, interpolated)
			Expect(err).NotTo(HaveOccurred())
			Expect(mapped).To(BeAssignableToTypeOf(&sharing.InterpolatedPointPolynomial{}))
			Expect(mapped.Evaluate(i).Equal(f.Evaluate(i).ActOnBase())).To(BeTrue())
		})

		It("rejects foreign polynomial types", func() {
			_, err := sharing.ToPointPolynomial(constant{group: group}, q)
			Expect(err).To(MatchError(sharing.ErrUnsupportedPolynomial))
		})

		It("commutes with evaluation for any polynomial and input", func() {
			property := func(degreeRaw uint8, qRaw, xRaw uint64) bool {
				degree := int(degreeRaw % 8)
				f, err := sharing.RandomPolynomial(rand.Reader, group, nil, degree+1)
				if err != nil {
					return false
				}
				q := test.Point(group, qRaw|1)
				x := test.Scalar(group, xRaw)

				want := f.Evaluate(x).Act(q)
				if !sharing.MulStandard(f, q).Evaluate(x).Equal(want) {
					return false
				}
				xs := make([]curve.Scalar, degree+1)
				for k := range xs {
					xs[k] = sample.ScalarUnit(rand.Reader, group)
				}
				interpolated := sharing.Interpolate(group, issueAll(f, xs))
				return sharing.MulInterpolated(interpolated, q).Evaluate(x).Equal(want)
			}
			Expect(quick.Check(property, &quick.Config{MaxCount: 20})).To(Succeed())
		})
	})

	Describe("Share issuance", func() {
		It("round trips through interpolation", func() {
			secret := sample.Scalar(rand.Reader, group)
			f, err := sharing.RandomPolynomial(rand.Reader, group, secret, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.Degree()).To(Equal(2))
			Expect(f.InterpolationThreshold()).To(Equal(3))
			Expect(f.Constant().Equal(secret)).To(BeTrue())

			shares := issueAll(f, test.Scalars(group, 1, 2, 3, 4, 5))
			for _, subset := range [][]int{{0, 1, 2}, {2, 3, 4}, {0, 2, 4}, {0, 1, 2, 3, 4}} {
				picked := make([]sharing.SecretShare, len(subset))
				for k, idx := range subset {
					picked[k] = shares[idx]
				}
				interpolated := sharing.Interpolate(group, picked)
				Expect(interpolated.Validate()).To(Succeed())
				Expect(interpolated.Evaluate(group.NewScalar()).Equal(secret)).To(BeTrue())

				for _, share := range shares {
					reissued := sharing.IssueShare[curve.Scalar](interpolated, share.Input)
					Expect(sharing.SecretSharesEqual(reissued, share)).To(BeTrue())
				}
			}
		})

		It("does not reveal the secret below the threshold", func() {
			secret := sample.Scalar(rand.Reader, group)
			f, err := sharing.RandomPolynomial(rand.Reader, group, secret, 4)
			Expect(err).NotTo(HaveOccurred())

			shares := issueAll(f, test.Scalars(group, 1, 2, 3))
			interpolated := sharing.Interpolate(group, shares)
			Expect(interpolated.Evaluate(group.NewScalar()).Equal(secret)).To(BeFalse())
			for _, share := range shares {
				Expect(interpolated.Evaluate(share.Input).Equal(share.Output)).To(BeTrue())
			}
		})

		It("issues shares in parallel in input order", func() {
			f, err := sharing.RandomPolynomial(rand.Reader, group, nil, 5)
			Expect(err).NotTo(HaveOccurred())

			xs := make([]curve.Scalar, 64)
			for k := range xs {
				xs[k] = test.Scalar(group, uint64(k+1))
			}
			shares, err := sharing.IssueShares[curve.Scalar](context.Background(), f, xs)
			Expect(err).NotTo(HaveOccurred())
			Expect(shares).To(HaveLen(len(xs)))
			for k, share := range shares {
				Expect(sharing.SecretSharesEqual(share, sharing.IssueShare[curve.Scalar](f, xs[k]))).To(BeTrue())
			}
		})

		It("reports duplicate inputs instead of panicking", func() {
			shares := []sharing.SecretShare{
				polynomial.NewEvaluation(test.Scalar(group, 1), test.Scalar(group, 2)),
				polynomial.NewEvaluation(test.Scalar(group, 1), test.Scalar(group, 3)),
			}
			interpolated := sharing.Interpolate(group, shares)
			_, err := sharing.IssueShares[curve.Scalar](context.Background(), interpolated, test.Scalars(group, 7))
			Expect(err).To(MatchError(curve.ErrDivideByZero))
			Expect(func() { sharing.IssueShare[curve.Scalar](interpolated, test.Scalar(group, 7)) }).To(Panic())
		})

		It("stops on a cancelled context", func() {
			f, err := sharing.RandomPolynomial(rand.Reader, group, nil, 2)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err = sharing.IssueShares[curve.Scalar](ctx, f, test.Scalars(group, 1, 2, 3))
			Expect(err).To(MatchError(context.Canceled))
		})

		It("issues shares to parties", func() {
			f, err := sharing.RandomPolynomial(rand.Reader, group, nil, 2)
			Expect(err).NotTo(HaveOccurred())

			ids := test.PartyIDs(4)
			shares, err := sharing.IssuePartyShares[curve.Scalar](context.Background(), group, f, ids)
			Expect(err).NotTo(HaveOccurred())
			Expect(shares).To(HaveLen(4))

			weights, err := polynomial.LagrangeCoefficients(group, ids[:2])
			Expect(err).NotTo(HaveOccurred())
			secret := group.NewScalar()
			for _, id := range ids[:2] {
				Expect(shares[id].Input.Equal(id.Scalar(group))).To(BeTrue())
				secret.Add(group.NewScalar().Set(weights[id]).Mul(shares[id].Output))
			}
			Expect(secret.Equal(f.Constant())).To(BeTrue())
		})

		It("refuses parties that would receive the secret or a shared input", func() {
			f := sharing.NewSecretSharingPolynomial(group, test.Scalars(group, 1234, 5, 6))

			_, err := sharing.IssuePartyShares[curve.Scalar](context.Background(), group, f, []party.ID{"\x00", "a"})
			Expect(err).To(MatchError(party.ErrZeroInput))

			_, err = sharing.IssuePartyShares[curve.Scalar](context.Background(), group, f, []party.ID{"a", "\x00a"})
			Expect(err).To(MatchError(party.ErrInputCollision))
		})

		It("rejects a threshold below one", func() {
			_, err := sharing.RandomPolynomial(rand.Reader, group, nil, 0)
			Expect(err).To(MatchError(sharing.ErrInvalidThreshold))
		})
	})

	Describe("Secret derivation", func() {
		It("derives the same secret from the dealer and from shareholders", func() {
			f, err := sharing.RandomPolynomial(rand.Reader, group, nil, 3)
			Expect(err).NotTo(HaveOccurred())
			q, err := hash.ToPoint(group, []byte("secret number one"))
			Expect(err).NotTo(HaveOccurred())

			zero := group.NewScalar()
			want, err := sharing.DeriveSecret(sharing.MulStandard(f, q), zero)
			Expect(err).NotTo(HaveOccurred())

			data, err := f.Constant().Act(q).MarshalBinary()
			Expect(err).NotTo(HaveOccurred())
			Expect(want).To(Equal(hash.Sum256(data)))

			// Two holders contribute secret shares, one point share was
			// published by the dealer.
			ids := []party.ID{"alice", "bob", "carol"}
			pointShares := []sharing.PointShare{
				sharing.ToPointShare(sharing.IssueShare[curve.Scalar](f, ids[0].Scalar(group)), q),
				sharing.ToPointShare(sharing.IssueShare[curve.Scalar](f, ids[1].Scalar(group)), q),
				sharing.IssueShare[curve.Point](sharing.MulStandard(f, q), ids[2].Scalar(group)),
			}
			got, err := sharing.DeriveSecret(sharing.InterpolatePoints(group, pointShares), zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))

			other, err := hash.ToPoint(group, []byte("secret number two"))
			Expect(err).NotTo(HaveOccurred())
			second, err := sharing.DeriveSecret(sharing.MulStandard(f, other), zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).NotTo(Equal(want))
		})

		It("honours the hash function", func() {
			f := sharing.NewSecretSharingPolynomial(group, test.Scalars(group, 5))
			p := sharing.MulStandard(f, group.NewBasePoint())

			data, err := test.Point(group, 5).MarshalBinary()
			Expect(err).NotTo(HaveOccurred())
			got, err := sharing.DeriveSecretWith(hash.BLAKE3, p, test.Scalar(group, 1))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(hash.BLAKE3.Sum(data)))
		})

		It("fails on duplicate point share inputs", func() {
			shares := []sharing.PointShare{
				polynomial.NewEvaluation(test.Scalar(group, 1), test.Point(group, 2)),
				polynomial.NewEvaluation(test.Scalar(group, 1), test.Point(group, 3)),
			}
			_, err := sharing.DeriveSecret(sharing.InterpolatePoints(group, shares), group.NewScalar())
			Expect(err).To(MatchError(curve.ErrDivideByZero))
		})
	})

	Describe("Share verification", func() {
		It("accepts honest shares and rejects altered ones", func() {
			f, err := sharing.RandomPolynomial(rand.Reader, group, nil, 3)
			Expect(err).NotTo(HaveOccurred())
			commitment := sharing.Commit(group, f)
			Expect(commitment.Constant().Equal(f.Constant().ActOnBase())).To(BeTrue())

			generator, err := sharing.ToGeneratorPolynomial(group, f)
			Expect(err).NotTo(HaveOccurred())

			for _, x := range test.Scalars(group, 1, 2, 3, 1000) {
				share := sharing.IssueShare[curve.Scalar](f, x)
				Expect(sharing.VerifyShare(commitment, share)).To(BeTrue())
				Expect(generator.Evaluate(x).Equal(commitment.Evaluate(x))).To(BeTrue())

				forged := polynomial.NewEvaluation(share.Input, group.NewScalar().Set(share.Output).Add(test.Scalar(group, 1)))
				Expect(sharing.VerifyShare(commitment, forged)).To(BeFalse())
			}
		})
	})

	Describe("Share equality", func() {
		It("compares inputs and outputs", func() {
			a := polynomial.NewEvaluation(test.Scalar(group, 1), test.Point(group, 2))
			b := polynomial.NewEvaluation(test.Scalar(group, 1), test.Point(group, 2))
			c := polynomial.NewEvaluation(test.Scalar(group, 2), test.Point(group, 2))
			Expect(sharing.PointSharesEqual(a, b)).To(BeTrue())
			Expect(sharing.PointSharesEqual(a, c)).To(BeFalse())
		})
	})
})

type constant struct {
	group curve.Curve
}

func (c constant) Evaluate(curve.Scalar) curve.Scalar { return c.group.NewScalar() }
func (constant) Degree() int                          { return 0 }
func (constant) InterpolationThreshold() int          { return 1 }
