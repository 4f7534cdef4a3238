package polynomial

import (
	"errors"
	"fmt"
)

// ErrDuplicateInput is returned by Validate when two samples share an input.
var ErrDuplicateInput = errors.New("polynomial: duplicate evaluation input")

// InvariantError reports that interpolation was attempted on samples which
// break the distinct-input precondition.
type InvariantError struct {
	// Index is the sample whose basis polynomial could not be computed.
	Index int
	Err   error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("polynomial: invariant violated at sample %d: %v", e.Index, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
