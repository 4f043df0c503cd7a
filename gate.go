package qtable

import (
	"fmt"
	"strings"
)

// GateType tags the operation a gate performs.
type GateType byte

// Gate types. Only X and SWAP carry meaning for ancilla inference and the
// basis state simulator; the rest are kept so synthesized circuits can be
// represented faithfully.
const (
	X GateType = iota
	SWAP
	Z
	H
	Custom
)

// NumGateTypes is the number of distinct gate types.
const NumGateTypes = int(Custom) + 1

func (t GateType) String() string {
	switch t {
	case X:
		return "X"
	case SWAP:
		return "SWAP"
	case Z:
		return "Z"
	case H:
		return "H"
	case Custom:
		return "CUSTOM"
	default:
		return fmt.Sprintf("{GateType %d}", t)
	}
}

// ParseGateType maps a textual gate name to its tag. NOT is an alias for X.
func ParseGateType(name string) (GateType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x", "not":
		return X, nil
	case "swap":
		return SWAP, nil
	case "z":
		return Z, nil
	case "h":
		return H, nil
	case "custom":
		return Custom, nil
	default:
		return Custom, fmt.Errorf("unknown gate type %q", name)
	}
}

// Control references the qubit a gate is conditioned on. Negative controls
// fire when the qubit is 0.
type Control struct {
	Qubit    int
	Negative bool
}

func (c Control) String() string {
	if c.Negative {
		return fmt.Sprintf("!%d", c.Qubit)
	}
	return fmt.Sprintf("%d", c.Qubit)
}

// Gate is one operation of a circuit.
type Gate struct {
	Type     GateType
	Targets  []int
	Controls []Control
}

func (g Gate) String() string {
	return fmt.Sprintf("%v %v %v", g.Type, g.Controls, g.Targets)
}

// Qubits returns all qubits the gate touches, controls first.
func (g Gate) Qubits() []int {
	result := make([]int, 0, len(g.Controls)+len(g.Targets))
	for _, c := range g.Controls {
		result = append(result, c.Qubit)
	}
	return append(result, g.Targets...)
}

func (g Gate) validate(numQubits int) error {
	switch g.Type {
	case X:
		if len(g.Targets) == 0 {
			return fmt.Errorf("%v gate without targets", g.Type)
		}
	case SWAP:
		if len(g.Targets) != 2 {
			return fmt.Errorf("%v gate needs 2 targets, got %d", g.Type, len(g.Targets))
		}
	}

	seen := make(map[int]bool)
	for _, q := range g.Qubits() {
		if q < 0 || q >= numQubits {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrQubitRange, q, numQubits)
		}
		if seen[q] {
			return fmt.Errorf("qubit %d used twice in %v", q, g)
		}
		seen[q] = true
	}
	return nil
}
