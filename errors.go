package qsim

import (
	"errors"
	"fmt"
)

// ErrUsage is wrapped by every error caused by the caller breaking the qubit identifier contract.
var ErrUsage = errors.New("qsim: usage error")

/*
UsageError reports an operation that referenced an identifier that is not
live, or listed the same qubit twice in one operand list. The operation that
returns it has not touched the state.
*/
type UsageError struct {
	Op     string
	Qubit  int
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("qsim: %s: %s", e.Op, e.Reason)
}

func (e *UsageError) Unwrap() error {
	return ErrUsage
}

func unknownQubit(op string, id int) *UsageError {
	return &UsageError{
		Op:     op,
		Qubit:  id,
		Reason: fmt.Sprintf("unable to find qubit with id %d", id),
	}
}

func duplicateQubit(op string, id int) *UsageError {
	return &UsageError{
		Op:     op,
		Qubit:  id,
		Reason: fmt.Sprintf("duplicate qubit id %d found in application", id),
	}
}
