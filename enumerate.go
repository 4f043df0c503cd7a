package qtable

import (
	"iter"
)

// MaxDataQubits is the hard bound on the data qubits a truth table can be
// built for. Config.MaxDataQubits sets the usual, lower limit.
const MaxDataQubits = 30

/*
EnumerateStates yields every assignment of the numData data qubits in binary
counting order, bit k of the counter going to qubit k. The ancilla suffix of
each state is filled from ancillas. The sequence is lazy and restarts from
zero each time it is ranged over; with numData == 0 it yields one state.
Each yielded state is a fresh slice owned by the receiver.
*/
func EnumerateStates(numData int, ancillas []bool) iter.Seq[State] {
	return func(yield func(State) bool) {
		if numData < 0 || numData > MaxDataQubits {
			return
		}
		total := uint64(1) << uint(numData)
		for v := uint64(0); v < total; v++ {
			state := make(State, numData+len(ancillas))
			for bit := 0; bit < numData; bit++ {
				state[bit] = v&(1<<uint(bit)) != 0
			}
			copy(state[numData:], ancillas)
			if !yield(state) {
				return
			}
		}
	}
}

// NumStates returns the number of states EnumerateStates yields.
func NumStates(numData int) int {
	if numData < 0 || numData > MaxDataQubits {
		return 0
	}
	return 1 << uint(numData)
}
