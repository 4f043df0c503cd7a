package qtable

import (
	"context"
	"fmt"
)

/*
BasisSimulator is a classical oracle for reversible circuits. Starting from a
computational basis state it applies the gates in order; X and SWAP gates
(with any positive or negative controls) keep the state a basis state, Z only
changes the phase and is skipped. Gates that would create a superposition
are rejected with ErrUnsupportedGate.

The ancilla part of an input state holds the values the circuit's own
initializer gates establish. Physically ancillas start at 0 and those gates
run as part of the circuit, so the simulator resets every ancilla to 0
before applying the gates.
*/
type BasisSimulator struct{}

// NewBasisSimulator returns the classical reference oracle.
func NewBasisSimulator() *BasisSimulator {
	return &BasisSimulator{}
}

func (sim *BasisSimulator) Simulate(ctx context.Context, c Computation, input State) (State, error) {
	if len(input) != c.NumQubits() {
		return nil, fmt.Errorf("%w: got %d, expected %d",
			ErrStateWidth, len(input), c.NumQubits())
	}

	wires := input.Clone()
	for q := range wires {
		if c.IsAncilla(q) {
			wires[q] = false
		}
	}

	for i := 0; i < c.NumOps(); i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		gate := c.Op(i)
		if err := apply(wires, gate); err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
	}
	return wires, nil
}

func apply(wires State, gate Gate) error {
	for _, q := range gate.Qubits() {
		if q < 0 || q >= len(wires) {
			return fmt.Errorf("%w: %d", ErrQubitRange, q)
		}
	}

	switch gate.Type {
	case X:
		if !controlled(wires, gate.Controls) {
			return nil
		}
		for _, t := range gate.Targets {
			wires[t] = !wires[t]
		}

	case SWAP:
		if len(gate.Targets) != 2 {
			return fmt.Errorf("%v gate needs 2 targets, got %d",
				gate.Type, len(gate.Targets))
		}
		if !controlled(wires, gate.Controls) {
			return nil
		}
		a, b := gate.Targets[0], gate.Targets[1]
		wires[a], wires[b] = wires[b], wires[a]

	case Z:
		// Phase only.

	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedGate, gate.Type)
	}
	return nil
}

func controlled(wires State, controls []Control) bool {
	for _, c := range controls {
		if wires[c.Qubit] == c.Negative {
			return false
		}
	}
	return true
}
