package qtable

import (
	"fmt"
)

// Stats holds statistics about a circuit.
type Stats struct {
	NumOps         int
	NumQubits      int
	NumData        int
	NumAncilla     int
	NumGarbage     int
	Gates          [NumGateTypes]int
	QuantumCost    uint64
	TransistorCost uint64
}

func (s Stats) String() string {
	var gates string
	for t := X; t <= Custom; t++ {
		if len(gates) > 0 {
			gates += " "
		}
		gates += fmt.Sprintf("%s=%d", t, s.Gates[t])
	}
	return fmt.Sprintf("#ops=%d (%s) #qubits=%d qc=%d tc=%d",
		s.NumOps, gates, s.NumQubits, s.QuantumCost, s.TransistorCost)
}

// Stat computes the statistics of c.
func Stat(c Computation) Stats {
	stats := Stats{
		NumOps:         c.NumOps(),
		NumQubits:      c.NumQubits(),
		NumData:        c.NumDataQubits(),
		NumAncilla:     c.NumAncillaQubits(),
		QuantumCost:    QuantumCost(c),
		TransistorCost: TransistorCost(c),
	}
	for q := 0; q < c.NumQubits(); q++ {
		if c.IsGarbage(q) {
			stats.NumGarbage++
		}
	}
	for i := 0; i < c.NumOps(); i++ {
		t := c.Op(i).Type
		if int(t) < NumGateTypes {
			stats.Gates[t]++
		}
	}
	return stats
}

/*
QuantumCost sums the NCV cost of every gate. A gate costs according to its
number of controls c, a SWAP counting as one more control, capped at
NumQubits-1. For larger gates the cost drops when enough unused lines are
available to serve as helpers.
*/
func QuantumCost(c Computation) uint64 {
	numQubits := uint64(c.NumQubits())
	if numQubits == 0 {
		return 0
	}

	var cost uint64
	for i := 0; i < c.NumOps(); i++ {
		gate := c.Op(i)
		controls := uint64(len(gate.Controls))
		if gate.Type == SWAP {
			controls++
		}
		if controls > numQubits-1 {
			controls = numQubits - 1
		}
		cost += gateCost(controls, numQubits-controls-1)
	}
	return cost
}

func gateCost(c, empty uint64) uint64 {
	switch c {
	case 0, 1:
		return 1
	case 2:
		return 5
	case 3:
		return 13
	case 4:
		if empty >= 2 {
			return 26
		}
		return 29
	case 5:
		switch {
		case empty >= 3:
			return 38
		case empty >= 1:
			return 52
		default:
			return 61
		}
	case 6:
		switch {
		case empty >= 4:
			return 50
		case empty >= 1:
			return 80
		default:
			return 125
		}
	case 7:
		switch {
		case empty >= 5:
			return 62
		case empty >= 1:
			return 100
		default:
			return 253
		}
	default:
		switch {
		case empty >= c-2:
			return 12*c - 22
		case empty >= 1:
			return 24*c - 87
		default:
			return (1 << (c + 1)) - 3
		}
	}
}

// TransistorCost charges 8 per control line.
func TransistorCost(c Computation) uint64 {
	var cost uint64
	for i := 0; i < c.NumOps(); i++ {
		cost += uint64(len(c.Op(i).Controls)) * 8
	}
	return cost
}
