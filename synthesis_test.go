package qtable

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const toffoliDocument = `
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
    controls: [a, b]
    targets: [c]
  - type: not
    controls: ["!a"]
    targets: [3]
  - type: swap
    controls: [anc]
    targets: [a, b]
`

func TestDocumentSynthesizer(t *testing.T) {
	synth := NewDocumentSynthesizer()
	ctx := context.Background()

	Convey("Given a circuit document", t, func() {
		c, err := synth.Synthesize(ctx, []byte(toffoliDocument), CostAware)

		Convey("It should produce the circuit with the initializer first", func() {
			So(err, ShouldBeNil)
			So(c.Name, ShouldEqual, "toffoli")
			So(c.Mode, ShouldEqual, CostAware)
			So(c.NumDataQubits(), ShouldEqual, 3)
			So(c.NumAncillaQubits(), ShouldEqual, 1)
			So(c.IsGarbage(2), ShouldBeTrue)
			So(c.NumOps(), ShouldEqual, 4)
			So(c.Op(0), ShouldResemble, Gate{Type: X, Targets: []int{3}})
			So(c.Op(1).Controls, ShouldResemble, []Control{{Qubit: 0}, {Qubit: 1}})
			So(c.Op(2).Controls, ShouldResemble, []Control{{Qubit: 0, Negative: true}})
			So(c.Op(3).Type, ShouldEqual, SWAP)
		})

		Convey("Its truth table should carry the inferred ancilla", func() {
			table, err := NewBuilder(NewBasisSimulator()).Build(ctx, c)
			So(err, ShouldBeNil)
			So(table.Ancillas, ShouldResemble, []bool{true})
			So(table.Len(), ShouldEqual, 8)
			So(table.Sorted(), ShouldBeTrue)

			out, ok := table.Lookup(mustState("1101"))
			So(ok, ShouldBeTrue)
			So(out.String(), ShouldEqual, "1111")
		})
	})

	Convey("Given an empty document", t, func() {
		_, err := synth.Synthesize(ctx, []byte("  \n"), LineAware)

		Convey("It should fail with a parse error", func() {
			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
			So(parseErr.Msg, ShouldEqual, "empty circuit document")
		})
	})

	Convey("Given malformed YAML", t, func() {
		_, err := synth.Synthesize(ctx, []byte("qubits:\n  - label: a\n bad: [\n"), LineAware)

		Convey("It should fail with a located parse error", func() {
			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
			So(parseErr.Line, ShouldBeGreaterThan, 0)
		})
	})

	Convey("Given a gate referencing an unknown qubit", t, func() {
		doc := "qubits:\n  - label: a\ngates:\n  - type: x\n    targets: [z]\n"
		_, err := synth.Synthesize(ctx, []byte(doc), LineAware)

		Convey("The error should point at the gate", func() {
			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
			So(parseErr.Line, ShouldEqual, 4)
			So(parseErr.Msg, ShouldContainSubstring, "unknown qubit")
		})
	})

	Convey("Given a data qubit after an ancilla", t, func() {
		doc := "qubits:\n  - label: anc\n    ancilla: true\n  - label: a\n"
		_, err := synth.Synthesize(ctx, []byte(doc), LineAware)

		Convey("The layout should be rejected", func() {
			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
			So(parseErr.Line, ShouldEqual, 4)
		})
	})

	Convey("Given an initial value on a data qubit", t, func() {
		doc := "qubits:\n  - label: a\n    initial: 1\n"
		_, err := synth.Synthesize(ctx, []byte(doc), LineAware)

		Convey("It should be rejected", func() {
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given mode names", t, func() {
		mode, err := ParseMode("cost")
		So(err, ShouldBeNil)
		So(mode, ShouldEqual, CostAware)
		So(mode.String(), ShouldEqual, "cost-aware")

		_, err = ParseMode("fastest")
		So(err, ShouldNotBeNil)
	})
}
