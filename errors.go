package qtable

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrSynthesisUnavailable is returned when a build is requested without a
	// synthesized circuit.
	ErrSynthesisUnavailable = errors.New("circuit not synthesized")
	ErrNoOracle             = errors.New("no simulation oracle")

	ErrUnsupportedGate   = errors.New("unsupported gate")
	ErrStateWidth        = errors.New("input state width does not match circuit")
	ErrOutputWidth       = errors.New("output state width does not match circuit")
	ErrTooManyDataQubits = errors.New("too many data qubits")
	ErrQubitOrder        = errors.New("data qubits must precede ancilla qubits")
	ErrQubitRange        = errors.New("qubit index out of range")
)

/*
SimulationError reports that the oracle could not produce an output state for
one enumerated input state. It aborts the whole truth table build.
*/
type SimulationError struct {
	Index int
	Input State
	Err   error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf(
		"simulation of input state %s (#%d, least significant qubit at index 0) failed: %v",
		e.Input, e.Index, e.Err,
	)
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}

// TimeoutError reports a per-state simulation that exceeded its budget.
type TimeoutError struct {
	Input State
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("simulation of input state %s timed out after %v", e.Input, e.After)
}

// Timeout lets callers treat the error like net.Error style timeouts.
func (e *TimeoutError) Timeout() bool {
	return true
}

// ParseError describes a circuit document that could not be synthesized.
type ParseError struct {
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	default:
		return e.Msg
	}
}
