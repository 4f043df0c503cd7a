package qtable

import (
	"fmt"
	"math/big"
	"strings"
)

/*
State is a full assignment of boolean values to the qubits of a circuit.
Index 0 holds the least significant qubit, so the numeric value of a state
is the sum of 2^i over all set indices i.
*/
type State []bool

// NewState returns an all-zero state of the given width.
func NewState(width int) State {
	return make(State, width)
}

// ParseState parses a bit string written in index order, i.e. the first
// character is qubit 0.
func ParseState(bits string) (State, error) {
	state := make(State, 0, len(bits))
	for i, r := range bits {
		switch r {
		case '0':
			state = append(state, false)
		case '1':
			state = append(state, true)
		case '_', ' ':
		default:
			return nil, fmt.Errorf("invalid bit %q at offset %d", r, i)
		}
	}
	return state, nil
}

// String renders the state in index order, qubit 0 first.
func (s State) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, bit := range s {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (s State) Clone() State {
	if s == nil {
		return nil
	}
	result := make(State, len(s))
	copy(result, s)
	return result
}

// Value returns the numeric value of the state.
func (s State) Value() *big.Int {
	result := new(big.Int)
	for i, bit := range s {
		if bit {
			result.SetBit(result, i, 1)
		}
	}
	return result
}

// Uint64 returns the numeric value of the state and reports whether it fits.
func (s State) Uint64() (uint64, bool) {
	var result uint64
	for i, bit := range s {
		if !bit {
			continue
		}
		if i >= 64 {
			return 0, false
		}
		result |= 1 << uint(i)
	}
	return result, true
}

// Compare orders states by numeric value. Missing high qubits of the shorter
// state count as zero.
func (s State) Compare(o State) int {
	n := len(s)
	if len(o) > n {
		n = len(o)
	}
	for i := n - 1; i >= 0; i-- {
		a := i < len(s) && s[i]
		b := i < len(o) && o[i]
		if a == b {
			continue
		}
		if a {
			return 1
		}
		return -1
	}
	return 0
}

func (s State) Equal(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
