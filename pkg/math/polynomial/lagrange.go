package polynomial

import "fmt"

// Lagrange is a polynomial known only through a set of samples. It is
// evaluated by Lagrange interpolation, without recovering its coefficients.
//
// The samples must have pairwise distinct inputs. With n samples the
// polynomial interpolated is the unique one of degree at most n-1 through
// them; if the samples came from a polynomial of higher degree, the result
// agrees with it only on the sampled inputs.
type Lagrange[I, O any] struct {
	field       Field[I]
	module      Module[I, O]
	evaluations []Evaluation[I, O]
}

// NewLagrange returns the polynomial interpolating evaluations.
//
// The inputs are not checked for uniqueness here; see Validate.
func NewLagrange[I, O any](field Field[I], module Module[I, O], evaluations []Evaluation[I, O]) *Lagrange[I, O] {
	evals := make([]Evaluation[I, O], len(evaluations))
	copy(evals, evaluations)
	return &Lagrange[I, O]{
		field:       field,
		module:      module,
		evaluations: evals,
	}
}

// Validate returns ErrDuplicateInput if two samples share an input.
func (p *Lagrange[I, O]) Validate() error {
	for i := range p.evaluations {
		for j := i + 1; j < len(p.evaluations); j++ {
			if p.field.Equal(p.evaluations[i].Input, p.evaluations[j].Input) {
				return fmt.Errorf("%w: samples %d and %d", ErrDuplicateInput, i, j)
			}
		}
	}
	return nil
}

// TryEvaluate returns the value at x of the polynomial interpolating the
// samples. It returns an *InvariantError if two samples share an input.
func (p *Lagrange[I, O]) TryEvaluate(x I) (O, error) {
	out := p.module.Zero()
	for i, eval := range p.evaluations {
		l, err := basisValue(p.field, p.evaluations, i, x)
		if err != nil {
			return p.module.Zero(), err
		}
		out = p.module.Add(out, p.module.Scale(eval.Output, l))
	}
	return out, nil
}

// Evaluate returns the value at x of the polynomial interpolating the samples.
//
// Evaluate panics with an *InvariantError if two samples share an input.
// Callers that cannot guarantee distinct inputs should call Validate first or
// use TryEvaluate.
func (p *Lagrange[I, O]) Evaluate(x I) O {
	out, err := p.TryEvaluate(x)
	if err != nil {
		panic(err)
	}
	return out
}

// Degree returns the number of samples minus one, or zero without samples.
func (p *Lagrange[I, O]) Degree() int {
	if len(p.evaluations) == 0 {
		return 0
	}
	return len(p.evaluations) - 1
}

func (p *Lagrange[I, O]) InterpolationThreshold() int {
	return p.Degree() + 1
}

// Evaluations returns a copy of the samples.
func (p *Lagrange[I, O]) Evaluations() []Evaluation[I, O] {
	out := make([]Evaluation[I, O], len(p.evaluations))
	copy(out, p.evaluations)
	return out
}

// Field returns the arithmetic used for the inputs.
func (p *Lagrange[I, O]) Field() Field[I] {
	return p.field
}

// Module returns the arithmetic used for the outputs.
func (p *Lagrange[I, O]) Module() Module[I, O] {
	return p.module
}

// MapEvaluations returns the polynomial sampled at the same inputs as p, with
// fn applied to every output.
//
// When fn is a homomorphism the result satisfies
// MapEvaluations(p, m, fn).Evaluate(x) = fn(p.Evaluate(x)).
func MapEvaluations[I, O, P any](p *Lagrange[I, O], module Module[I, P], fn func(O) P) *Lagrange[I, P] {
	evals := make([]Evaluation[I, P], len(p.evaluations))
	for i, eval := range p.evaluations {
		evals[i] = Evaluation[I, P]{Input: eval.Input, Output: fn(eval.Output)}
	}
	return &Lagrange[I, P]{
		field:       p.field,
		module:      module,
		evaluations: evals,
	}
}

// BasisValues returns Lᵢ(x) for every i, where Lᵢ is the Lagrange basis
// polynomial of inputs[i] over inputs.
func BasisValues[I any](field Field[I], inputs []I, x I) ([]I, error) {
	evals := make([]Evaluation[I, struct{}], len(inputs))
	for i, in := range inputs {
		evals[i].Input = in
	}
	out := make([]I, len(inputs))
	for i := range evals {
		l, err := basisValue(field, evals, i, x)
		if err != nil {
			return nil, err
		}
		out[i] = l
	}
	return out, nil
}

// basisValue computes
//
//	Lᵢ(x) = ∏_{j≠i} (x - xⱼ)/(xᵢ - xⱼ)
//
// It returns one when x = xᵢ and zero when x = xⱼ for another sample, without
// dividing in either case.
func basisValue[I, O any](field Field[I], evaluations []Evaluation[I, O], i int, x I) (I, error) {
	xi := evaluations[i].Input
	if field.Equal(x, xi) {
		return field.One(), nil
	}

	num, denom := field.One(), field.One()
	for j, eval := range evaluations {
		if j == i {
			continue
		}
		num = field.Mul(num, field.Sub(x, eval.Input))
		if field.IsZero(num) {
			return num, nil
		}
		denom = field.Mul(denom, field.Sub(xi, eval.Input))
	}

	out, err := field.Div(num, denom)
	if err != nil {
		return field.Zero(), &InvariantError{Index: i, Err: err}
	}
	return out, nil
}
