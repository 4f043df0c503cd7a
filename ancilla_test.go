package qtable

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// newTestCircuit lays out numData data qubits followed by numAncilla ancillas
// and appends the gates unchecked.
func newTestCircuit(numData, numAncilla int, gates ...Gate) *Circuit {
	c := NewCircuit("test")
	for i := 0; i < numData; i++ {
		c.Qubits = append(c.Qubits, Qubit{Label: fmt.Sprintf("d%d", i)})
	}
	for i := 0; i < numAncilla; i++ {
		c.Qubits = append(c.Qubits, Qubit{Label: fmt.Sprintf("a%d", i), Ancilla: true})
	}
	c.Gates = append(c.Gates, gates...)
	return c
}

func not(target int) Gate {
	return Gate{Type: X, Targets: []int{target}}
}

func TestInferAncillaConstants(t *testing.T) {
	Convey("Given a circuit without ancillas", t, func() {
		c := newTestCircuit(3, 0, not(0), not(1))

		Convey("The constants should be empty", func() {
			So(InferAncillaConstants(c), ShouldBeEmpty)
		})
	})

	Convey("Given a circuit with ancillas and no gates", t, func() {
		c := newTestCircuit(2, 3)

		Convey("Every ancilla should default to false", func() {
			So(InferAncillaConstants(c), ShouldResemble, []bool{false, false, false})
		})
	})

	Convey("Given leading NOT gates on the ancillas", t, func() {
		c := newTestCircuit(2, 3, not(2), not(4), not(0), not(3))

		Convey("Each gate should toggle its ancilla until the first data gate", func() {
			So(InferAncillaConstants(c), ShouldResemble, []bool{true, false, true})
		})
	})

	Convey("Given two consecutive NOT gates on the same ancilla", t, func() {
		c := newTestCircuit(1, 2, not(1), not(1), not(2))

		Convey("The second toggle should restore false", func() {
			So(InferAncillaConstants(c), ShouldResemble, []bool{false, true})
		})
	})

	Convey("Given gates that do not initialize ancillas", t, func() {
		Convey("A controlled NOT should end the scan", func() {
			c := newTestCircuit(1, 2,
				Gate{Type: X, Targets: []int{1}, Controls: []Control{{Qubit: 0}}},
				not(2),
			)
			So(InferAncillaConstants(c), ShouldResemble, []bool{false, false})
		})

		Convey("A multi target NOT should end the scan", func() {
			c := newTestCircuit(1, 2,
				Gate{Type: X, Targets: []int{1, 2}},
				not(2),
			)
			So(InferAncillaConstants(c), ShouldResemble, []bool{false, false})
		})

		Convey("A SWAP should end the scan", func() {
			c := newTestCircuit(1, 2,
				not(1),
				Gate{Type: SWAP, Targets: []int{1, 2}},
				not(2),
			)
			So(InferAncillaConstants(c), ShouldResemble, []bool{true, false})
		})

		Convey("A NOT on a data qubit should end the scan", func() {
			c := newTestCircuit(2, 1, not(0), not(2))
			So(InferAncillaConstants(c), ShouldResemble, []bool{false})
		})
	})
}
