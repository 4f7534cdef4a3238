package sharing

import (
	"context"
	"fmt"
	"runtime"

	"github.com/luxfi/qudoku/pkg/math/curve"
	"github.com/luxfi/qudoku/pkg/math/polynomial"
	"github.com/luxfi/qudoku/pkg/party"
	"golang.org/x/sync/errgroup"
)

type tryEvaluator[O any] interface {
	TryEvaluate(x curve.Scalar) (O, error)
}

// evaluate uses TryEvaluate where the representation offers it, so that
// invariant violations come back as errors instead of panics.
func evaluate[O any](poly polynomial.Polynomial[curve.Scalar, O], x curve.Scalar) (O, error) {
	if p, ok := poly.(tryEvaluator[O]); ok {
		return p.TryEvaluate(x)
	}
	return poly.Evaluate(x), nil
}

// IssueShare returns the share (input, poly(input)).
//
// It works for all four polynomial types of this package and panics if poly
// is an interpolated polynomial built from samples with duplicate inputs.
func IssueShare[O any](poly polynomial.Polynomial[curve.Scalar, O], input curve.Scalar) polynomial.Evaluation[curve.Scalar, O] {
	return polynomial.NewEvaluation(input, poly.Evaluate(input))
}

// IssueShares issues one share per input, evaluating in parallel. The shares
// are returned in the order of inputs.
func IssueShares[O any](ctx context.Context, poly polynomial.Polynomial[curve.Scalar, O], inputs []curve.Scalar) ([]polynomial.Evaluation[curve.Scalar, O], error) {
	shares := make([]polynomial.Evaluation[curve.Scalar, O], len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, x := range inputs {
		i, x := i, x
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := evaluate(poly, x)
			if err != nil {
				return fmt.Errorf("sharing: failed to issue share %d: %w", i, err)
			}
			shares[i] = polynomial.NewEvaluation(x, out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return shares, nil
}

// IssuePartyShares issues one share to every party, at the input given by
// party.ID.Scalar. It refuses ids whose input is zero or shared with another
// id.
func IssuePartyShares[O any](ctx context.Context, group curve.Curve, poly polynomial.Polynomial[curve.Scalar, O], ids []party.ID) (map[party.ID]polynomial.Evaluation[curve.Scalar, O], error) {
	inputs, err := party.Scalars(group, ids)
	if err != nil {
		return nil, fmt.Errorf("sharing: %w", err)
	}
	shares, err := IssueShares(ctx, poly, inputs)
	if err != nil {
		return nil, err
	}
	out := make(map[party.ID]polynomial.Evaluation[curve.Scalar, O], len(ids))
	for i, id := range ids {
		out[id] = shares[i]
	}
	return out, nil
}
