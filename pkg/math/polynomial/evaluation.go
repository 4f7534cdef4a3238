package polynomial

// Evaluation is a single (input, output) sample of a polynomial.
type Evaluation[I, O any] struct {
	// Input is the x value fed into the polynomial.
	Input I
	// Output is the y value the polynomial produced for Input.
	Output O
}

// NewEvaluation returns the sample (input, output).
func NewEvaluation[I, O any](input I, output O) Evaluation[I, O] {
	return Evaluation[I, O]{Input: input, Output: output}
}

// Equal reports whether e and other have equal inputs and equal outputs.
func (e Evaluation[I, O]) Equal(other Evaluation[I, O], inputs Equaler[I], outputs Equaler[O]) bool {
	return inputs.Equal(e.Input, other.Input) && outputs.Equal(e.Output, other.Output)
}
