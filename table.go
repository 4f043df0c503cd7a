package qtable

import (
	"sort"
)

// Row pairs an input state with the output state the circuit produces.
type Row struct {
	Input  State
	Output State
}

/*
Table is the truth table of a circuit. Rows are ordered by the numeric value
of their full width input state, ancilla qubits included. A Table is not
modified after it has been built.
*/
type Table struct {
	NumQubits int
	NumData   int
	Ancillas  []bool
	Rows      []Row
}

// SortRows orders rows ascending by the numeric value of the input state.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Input.Compare(rows[j].Input) < 0
	})
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Sorted reports whether the input values of the rows strictly increase.
func (t *Table) Sorted() bool {
	for i := 1; i < len(t.Rows); i++ {
		if t.Rows[i-1].Input.Compare(t.Rows[i].Input) >= 0 {
			return false
		}
	}
	return true
}

// Lookup returns the output state for a full width input state.
func (t *Table) Lookup(input State) (State, bool) {
	idx := sort.Search(len(t.Rows), func(i int) bool {
		return t.Rows[i].Input.Compare(input) >= 0
	})
	if idx < len(t.Rows) && t.Rows[idx].Input.Equal(input) {
		return t.Rows[idx].Output, true
	}
	return nil, false
}

// Equal reports whether both tables hold bit-identical rows.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.NumQubits != o.NumQubits || t.NumData != o.NumData || len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Rows {
		if !t.Rows[i].Input.Equal(o.Rows[i].Input) ||
			!t.Rows[i].Output.Equal(o.Rows[i].Output) {
			return false
		}
	}
	return true
}
