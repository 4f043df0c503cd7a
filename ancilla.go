package qtable

/*
InferAncillaConstants determines the value every ancilla qubit holds before
the data dependent part of the circuit starts. Ancillas start at 0 and the
circuit itself sets them, so the leading run of uncontrolled, single target
NOT gates on ancilla qubits is read as their initialization. Each such gate
toggles its ancilla, repeated gates included. The first gate that does not
fit the pattern ends the scan.

Ancillas initialized in any other way (controlled gates, initializers mixed
with data gates) are reported as 0.
*/
func InferAncillaConstants(c Computation) []bool {
	numAncilla := c.NumAncillaQubits()
	if numAncilla <= 0 {
		return []bool{}
	}

	constants := make([]bool, numAncilla)
	numData := c.NumDataQubits()
	numQubits := c.NumQubits()

	for i := 0; i < c.NumOps(); i++ {
		gate := c.Op(i)
		if gate.Type != X || len(gate.Controls) > 0 || len(gate.Targets) != 1 {
			break
		}
		target := gate.Targets[0]
		if target < numData || target >= numQubits {
			break
		}
		constants[target-numData] = !constants[target-numData]
	}

	return constants
}
