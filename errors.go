package qsim

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQubitCount = errors.New("invalid qubit count")
	ErrQubitOutOfRange   = errors.New("qubit index out of range")
	ErrInvalidTargets    = errors.New("invalid gate targets")
	ErrUnsupportedGate   = errors.New("unsupported gate")
	ErrUnresolvedParam   = errors.New("unresolved default parameter")
	ErrInvalidShots      = errors.New("invalid shot count")
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

/*
GateError ties a failure to the gate that caused it, so a caller evolving a
long circuit can tell which position was rejected.
*/
type GateError struct {
	Index int    // Position of the gate in the circuit
	Gate  string // Gate identifier, e.g. "u3"
	Err   error
}

func (e *GateError) Error() string {
	return fmt.Sprintf("gate %d (%s): %v", e.Index, e.Gate, e.Err)
}

func (e *GateError) Unwrap() error {
	return e.Err
}
