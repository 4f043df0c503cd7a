package qtable

import (
	"fmt"
)

/*
Computation is the read-only view of a synthesized circuit that the truth
table builder and the simulation oracle consume. Qubits are laid out with the
data qubits as a contiguous prefix [0, NumDataQubits) followed by the ancilla
qubits.
*/
type Computation interface {
	NumQubits() int
	NumDataQubits() int
	NumAncillaQubits() int
	NumOps() int
	Op(i int) Gate
	IsAncilla(qubit int) bool
	IsGarbage(qubit int) bool
	Label(qubit int) string
}

// Qubit describes one circuit line.
type Qubit struct {
	Label   string
	Ancilla bool
	Garbage bool
}

// Circuit is the concrete synthesized circuit handle.
type Circuit struct {
	Name   string
	Mode   Mode
	Qubits []Qubit
	Gates  []Gate
}

// NewCircuit creates an empty circuit.
func NewCircuit(name string) *Circuit {
	return &Circuit{
		Name: name,
	}
}

func (c *Circuit) String() string {
	return fmt.Sprintf("%s #qubits=%d (data=%d ancilla=%d) #ops=%d",
		c.Name, c.NumQubits(), c.NumDataQubits(), c.NumAncillaQubits(), c.NumOps())
}

func (c *Circuit) NumQubits() int {
	return len(c.Qubits)
}

func (c *Circuit) NumDataQubits() int {
	var count int
	for _, q := range c.Qubits {
		if !q.Ancilla {
			count++
		}
	}
	return count
}

func (c *Circuit) NumAncillaQubits() int {
	return c.NumQubits() - c.NumDataQubits()
}

func (c *Circuit) NumGarbageQubits() int {
	var count int
	for _, q := range c.Qubits {
		if q.Garbage {
			count++
		}
	}
	return count
}

func (c *Circuit) NumOps() int {
	return len(c.Gates)
}

func (c *Circuit) Op(i int) Gate {
	return c.Gates[i]
}

func (c *Circuit) IsAncilla(qubit int) bool {
	return qubit >= 0 && qubit < len(c.Qubits) && c.Qubits[qubit].Ancilla
}

func (c *Circuit) IsGarbage(qubit int) bool {
	return qubit >= 0 && qubit < len(c.Qubits) && c.Qubits[qubit].Garbage
}

func (c *Circuit) Label(qubit int) string {
	if qubit < 0 || qubit >= len(c.Qubits) {
		return ""
	}
	if c.Qubits[qubit].Label == "" {
		return fmt.Sprintf("q%d", qubit)
	}
	return c.Qubits[qubit].Label
}

// AddDataQubit appends a data qubit. Data qubits can only be added before
// the first ancilla.
func (c *Circuit) AddDataQubit(label string, garbage bool) (int, error) {
	if c.NumAncillaQubits() > 0 {
		return -1, fmt.Errorf("%w: %s", ErrQubitOrder, label)
	}
	if err := c.checkLabel(label); err != nil {
		return -1, err
	}
	c.Qubits = append(c.Qubits, Qubit{
		Label:   label,
		Garbage: garbage,
	})
	return len(c.Qubits) - 1, nil
}

// AddAncillaQubit appends an ancilla qubit. Ancillas start at 0, so an
// initial value of 1 is realized with a NOT gate on the new qubit.
func (c *Circuit) AddAncillaQubit(label string, initial bool) (int, error) {
	if err := c.checkLabel(label); err != nil {
		return -1, err
	}
	c.Qubits = append(c.Qubits, Qubit{
		Label:   label,
		Ancilla: true,
	})
	qubit := len(c.Qubits) - 1
	if initial {
		if err := c.AddNot(qubit); err != nil {
			return -1, err
		}
	}
	return qubit, nil
}

func (c *Circuit) checkLabel(label string) error {
	if label == "" {
		return nil
	}
	for _, q := range c.Qubits {
		if q.Label == label {
			return fmt.Errorf("duplicate qubit label %q", label)
		}
	}
	return nil
}

// Add appends a gate after checking its qubit references.
func (c *Circuit) Add(g Gate) error {
	if err := g.validate(c.NumQubits()); err != nil {
		return err
	}
	c.Gates = append(c.Gates, g)
	return nil
}

func (c *Circuit) AddNot(target int) error {
	return c.Add(Gate{
		Type:    X,
		Targets: []int{target},
	})
}

func (c *Circuit) AddCnot(control, target int) error {
	return c.AddMultiControlToffoli([]int{control}, target)
}

func (c *Circuit) AddToffoli(control0, control1, target int) error {
	return c.AddMultiControlToffoli([]int{control0, control1}, target)
}

func (c *Circuit) AddMultiControlToffoli(controls []int, target int) error {
	return c.Add(Gate{
		Type:     X,
		Targets:  []int{target},
		Controls: positiveControls(controls),
	})
}

// AddFredkin adds a swap of target0 and target1, conditioned on the
// optional controls.
func (c *Circuit) AddFredkin(target0, target1 int, controls ...int) error {
	return c.Add(Gate{
		Type:     SWAP,
		Targets:  []int{target0, target1},
		Controls: positiveControls(controls),
	})
}

// Validate checks the qubit layout and every gate.
func (c *Circuit) Validate() error {
	var ancilla bool
	for idx, q := range c.Qubits {
		if q.Ancilla {
			ancilla = true
		} else if ancilla {
			return fmt.Errorf("%w: qubit %d (%s)", ErrQubitOrder, idx, c.Label(idx))
		}
	}
	for idx, g := range c.Gates {
		if err := g.validate(c.NumQubits()); err != nil {
			return fmt.Errorf("gate %d: %w", idx, err)
		}
	}
	return nil
}

func positiveControls(qubits []int) []Control {
	if len(qubits) == 0 {
		return nil
	}
	result := make([]Control, len(qubits))
	for i, q := range qubits {
		result[i] = Control{
			Qubit: q,
		}
	}
	return result
}
