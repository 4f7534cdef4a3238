package polynomial

// StandardForm is a polynomial f(X) = a₀ + a₁X + … + aₙXⁿ given by its
// coefficients, with inputs of type I and coefficients of type O.
type StandardForm[I, O any] struct {
	module       Module[I, O]
	coefficients []O
}

// NewStandardForm returns the polynomial with the given coefficients, in
// ascending order of degree starting with the constant term.
//
// An empty or all-zero coefficient list is accepted and yields a polynomial of
// degree zero which evaluates to zero everywhere.
func NewStandardForm[I, O any](module Module[I, O], coefficients []O) *StandardForm[I, O] {
	coefs := make([]O, len(coefficients))
	copy(coefs, coefficients)
	return &StandardForm[I, O]{
		module:       module,
		coefficients: coefs,
	}
}

// Evaluate evaluates the polynomial at x using Horner's method:
//
//	f(x) = a₀ + x(a₁ + x(a₂ + … + x(aₙ)))
func (p *StandardForm[I, O]) Evaluate(x I) O {
	out := p.module.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		out = p.module.Add(p.module.Scale(out, x), p.coefficients[i])
	}
	return out
}

// Degree returns the index of the highest non-zero coefficient, or zero if
// there is none.
func (p *StandardForm[I, O]) Degree() int {
	for i := len(p.coefficients) - 1; i > 0; i-- {
		if !p.module.IsZero(p.coefficients[i]) {
			return i
		}
	}
	return 0
}

func (p *StandardForm[I, O]) InterpolationThreshold() int {
	return p.Degree() + 1
}

// Constant returns a₀, or zero if the polynomial has no coefficients.
func (p *StandardForm[I, O]) Constant() O {
	if len(p.coefficients) == 0 {
		return p.module.Zero()
	}
	return p.coefficients[0]
}

// Coefficients returns a copy of the coefficients, constant term first.
func (p *StandardForm[I, O]) Coefficients() []O {
	out := make([]O, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Module returns the arithmetic used for the coefficients.
func (p *StandardForm[I, O]) Module() Module[I, O] {
	return p.module
}

// MapCoefficients returns the polynomial whose coefficients are fn applied to
// each coefficient of p, in the same order.
//
// When fn is a homomorphism (fn(a+b) = fn(a)+fn(b) and fn(a·x) = fn(a)·x),
// the result satisfies MapCoefficients(p, m, fn).Evaluate(x) = fn(p.Evaluate(x)).
func MapCoefficients[I, O, P any](p *StandardForm[I, O], module Module[I, P], fn func(O) P) *StandardForm[I, P] {
	coefs := make([]P, len(p.coefficients))
	for i, c := range p.coefficients {
		coefs[i] = fn(c)
	}
	return &StandardForm[I, P]{
		module:       module,
		coefficients: coefs,
	}
}
