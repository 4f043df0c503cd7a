package qtable

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/theapemachine/errnie"
	"gopkg.in/yaml.v3"
)

// Mode selects the synthesis algorithm.
type Mode int

const (
	LineAware Mode = iota
	CostAware
)

func (m Mode) String() string {
	switch m {
	case LineAware:
		return "line-aware"
	case CostAware:
		return "cost-aware"
	default:
		return fmt.Sprintf("{Mode %d}", int(m))
	}
}

// ParseMode parses a synthesis mode name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "line-aware", "line", "lineaware":
		return LineAware, nil
	case "cost-aware", "cost", "costaware":
		return CostAware, nil
	default:
		return LineAware, fmt.Errorf("unknown synthesis mode %q", name)
	}
}

/*
Synthesizer turns program source into a circuit. The synthesis mode is passed
explicitly with every call. Source that cannot be synthesized yields a
*ParseError.
*/
type Synthesizer interface {
	Synthesize(ctx context.Context, source []byte, mode Mode) (*Circuit, error)
}

/*
DocumentSynthesizer reads circuits that have already been synthesized and
written out as YAML documents:

	name: toffoli
	qubits:
	  - label: a
	  - label: b
	  - label: c
	    garbage: true
	  - label: anc
	    ancilla: true
	    initial: 1
	gates:
	  - type: x
	    controls: [a, "!b"]
	    targets: [anc]

Qubits are referenced by label or index; a leading "!" marks a negative
control. Ancillas with initial value 1 get a leading NOT gate, the way the
synthesis engine initializes them. The mode is recorded on the circuit.
*/
type DocumentSynthesizer struct{}

func NewDocumentSynthesizer() *DocumentSynthesizer {
	return &DocumentSynthesizer{}
}

type document struct {
	Name   string          `yaml:"name"`
	Qubits []qubitDocument `yaml:"qubits"`
	Gates  []gateDocument  `yaml:"gates"`
}

type qubitDocument struct {
	Label   string `yaml:"label"`
	Ancilla bool   `yaml:"ancilla"`
	Garbage bool   `yaml:"garbage"`
	Initial int    `yaml:"initial"`
}

type gateDocument struct {
	Type     string   `yaml:"type"`
	Controls []string `yaml:"controls"`
	Targets  []string `yaml:"targets"`
}

func (s *DocumentSynthesizer) Synthesize(ctx context.Context, source []byte, mode Mode) (*Circuit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(source)) == 0 {
		return nil, &ParseError{Msg: "empty circuit document"}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(source, &root); err != nil {
		return nil, yamlParseError(err)
	}
	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, yamlParseError(err)
	}

	qubitLines := sequenceLines(&root, "qubits")
	gateLines := sequenceLines(&root, "gates")

	circuit := NewCircuit(doc.Name)
	circuit.Mode = mode

	for idx, q := range doc.Qubits {
		var err error
		switch {
		case q.Initial != 0 && q.Initial != 1:
			err = fmt.Errorf("initial value must be 0 or 1, got %d", q.Initial)
		case q.Initial == 1 && !q.Ancilla:
			err = fmt.Errorf("initial value on data qubit %q", q.Label)
		case q.Ancilla:
			var qubit int
			if qubit, err = circuit.AddAncillaQubit(q.Label, q.Initial == 1); err == nil {
				circuit.Qubits[qubit].Garbage = q.Garbage
			}
		default:
			_, err = circuit.AddDataQubit(q.Label, q.Garbage)
		}
		if err != nil {
			return nil, &ParseError{
				Line: lineOf(qubitLines, idx),
				Msg:  fmt.Sprintf("qubit %d: %v", idx, err),
			}
		}
	}
	if circuit.NumQubits() == 0 {
		return nil, &ParseError{Msg: "circuit has no qubits"}
	}

	for idx, g := range doc.Gates {
		gate, err := g.resolve(circuit)
		if err == nil {
			err = circuit.Add(gate)
		}
		if err != nil {
			return nil, &ParseError{
				Line: lineOf(gateLines, idx),
				Msg:  fmt.Sprintf("gate %d: %v", idx, err),
			}
		}
	}

	errnie.Info("synthesized %s (%v): %d qubits, %d ancillas, %d operations",
		circuit.Name, mode, circuit.NumQubits(), circuit.NumAncillaQubits(), circuit.NumOps())

	return circuit, nil
}

func (g gateDocument) resolve(c *Circuit) (Gate, error) {
	typ, err := ParseGateType(g.Type)
	if err != nil {
		return Gate{}, err
	}
	gate := Gate{
		Type: typ,
	}
	for _, ref := range g.Targets {
		q, err := resolveQubit(c, ref)
		if err != nil {
			return Gate{}, err
		}
		gate.Targets = append(gate.Targets, q)
	}
	for _, ref := range g.Controls {
		negative := strings.HasPrefix(ref, "!")
		q, err := resolveQubit(c, strings.TrimPrefix(ref, "!"))
		if err != nil {
			return Gate{}, err
		}
		gate.Controls = append(gate.Controls, Control{
			Qubit:    q,
			Negative: negative,
		})
	}
	return gate, nil
}

func resolveQubit(c *Circuit, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	for idx, q := range c.Qubits {
		if q.Label != "" && q.Label == ref {
			return idx, nil
		}
	}
	idx, err := strconv.Atoi(ref)
	if err != nil {
		return -1, fmt.Errorf("unknown qubit %q", ref)
	}
	if idx < 0 || idx >= c.NumQubits() {
		return -1, fmt.Errorf("%w: %d not in [0,%d)", ErrQubitRange, idx, c.NumQubits())
	}
	return idx, nil
}

func yamlParseError(err error) *ParseError {
	msg := err.Error()
	if typeErr, ok := err.(*yaml.TypeError); ok && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}
	msg = strings.TrimPrefix(msg, "yaml: ")

	var line int
	if _, scanErr := fmt.Sscanf(msg, "line %d:", &line); scanErr == nil {
		if idx := strings.Index(msg, ":"); idx >= 0 {
			msg = strings.TrimSpace(msg[idx+1:])
		}
	}
	return &ParseError{
		Line: line,
		Msg:  msg,
	}
}

// sequenceLines returns the source line of every item of the top level
// sequence stored under key.
func sequenceLines(root *yaml.Node, key string) []int {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		seq := mapping.Content[i+1]
		lines := make([]int, len(seq.Content))
		for j, item := range seq.Content {
			lines[j] = item.Line
		}
		return lines
	}
	return nil
}

func lineOf(lines []int, idx int) int {
	if idx < len(lines) {
		return lines[idx]
	}
	return 0
}
