package qtable

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func simulate(c Computation, bits string) (string, error) {
	out, err := NewBasisSimulator().Simulate(context.Background(), c, mustState(bits))
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func TestBasisSimulator(t *testing.T) {
	Convey("Given a Toffoli gate", t, func() {
		c := NewCircuit("toffoli")
		for _, label := range []string{"a", "b", "c"} {
			_, err := c.AddDataQubit(label, false)
			So(err, ShouldBeNil)
		}
		So(c.AddToffoli(0, 1, 2), ShouldBeNil)

		Convey("The target should flip only when both controls are set", func() {
			for in, want := range map[string]string{
				"000": "000",
				"100": "100",
				"010": "010",
				"110": "111",
				"111": "110",
			} {
				got, err := simulate(c, in)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})
	})

	Convey("Given a negative control", t, func() {
		c := newTestCircuit(2, 0, Gate{
			Type:     X,
			Targets:  []int{1},
			Controls: []Control{{Qubit: 0, Negative: true}},
		})

		Convey("The target should flip when the control is 0", func() {
			got, err := simulate(c, "00")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "01")

			got, err = simulate(c, "10")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "10")
		})
	})

	Convey("Given a Fredkin gate", t, func() {
		c := newTestCircuit(3, 0)
		So(c.AddFredkin(1, 2, 0), ShouldBeNil)

		Convey("The targets should swap only when the control is set", func() {
			got, err := simulate(c, "010")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "010")

			got, err = simulate(c, "110")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "101")
		})
	})

	Convey("Given a phase gate", t, func() {
		c := newTestCircuit(1, 0, Gate{Type: Z, Targets: []int{0}})

		Convey("The basis state should be unchanged", func() {
			got, err := simulate(c, "1")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "1")
		})
	})

	Convey("Given a Hadamard gate", t, func() {
		c := newTestCircuit(1, 0, Gate{Type: H, Targets: []int{0}})

		Convey("Simulation should fail", func() {
			_, err := simulate(c, "0")
			So(errors.Is(err, ErrUnsupportedGate), ShouldBeTrue)
		})
	})

	Convey("Given an input of the wrong width", t, func() {
		c := newTestCircuit(2, 1)

		Convey("Simulation should fail", func() {
			_, err := simulate(c, "01")
			So(errors.Is(err, ErrStateWidth), ShouldBeTrue)
		})
	})

	Convey("Given an ancilla initialized to 1 by its leading NOT", t, func() {
		c := NewCircuit("init")
		d, err := c.AddDataQubit("d", false)
		So(err, ShouldBeNil)
		anc, err := c.AddAncillaQubit("anc", true)
		So(err, ShouldBeNil)
		So(c.AddCnot(anc, d), ShouldBeNil)

		Convey("The initializer should run on a reset ancilla", func() {
			got, err := simulate(c, "01")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, "11")

			table, err := BuildTruthTable(context.Background(), c, NewBasisSimulator())
			So(err, ShouldBeNil)
			So(table.Rows[0].Input.String(), ShouldEqual, "01")
			So(table.Rows[0].Output.String(), ShouldEqual, "11")
			So(table.Rows[1].Input.String(), ShouldEqual, "11")
			So(table.Rows[1].Output.String(), ShouldEqual, "01")
		})
	})

	Convey("Given an input state", t, func() {
		c := newTestCircuit(1, 0, not(0))
		input := mustState("0")
		_, err := NewBasisSimulator().Simulate(context.Background(), c, input)

		Convey("The input should not be modified", func() {
			So(err, ShouldBeNil)
			So(input.String(), ShouldEqual, "0")
		})
	})
}
