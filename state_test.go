package qtable

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func mustState(bits string) State {
	s, err := ParseState(bits)
	if err != nil {
		panic(err)
	}
	return s
}

func TestState(t *testing.T) {
	Convey("Given a bit string in index order", t, func() {
		s := mustState("011")

		Convey("It should round trip through String", func() {
			So(s.String(), ShouldEqual, "011")
		})

		Convey("Its value should treat index 0 as least significant", func() {
			v, ok := s.Uint64()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, uint64(6))
			So(s.Value().Int64(), ShouldEqual, int64(6))
		})
	})

	Convey("Given an invalid bit string", t, func() {
		_, err := ParseState("01x")

		Convey("Parsing should fail", func() {
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given states to compare", t, func() {
		Convey("The high bit should dominate", func() {
			So(mustState("01").Compare(mustState("11")), ShouldBeLessThan, 0)
			So(mustState("01").Compare(mustState("10")), ShouldBeGreaterThan, 0)
			So(mustState("101").Compare(mustState("101")), ShouldEqual, 0)
		})

		Convey("Missing high bits should count as zero", func() {
			So(mustState("1").Compare(mustState("100")), ShouldEqual, 0)
			So(mustState("1").Compare(mustState("001")), ShouldBeLessThan, 0)
		})
	})

	Convey("Given a wide state", t, func() {
		s := NewState(70)
		s[69] = true

		Convey("Uint64 should report overflow while Value still works", func() {
			_, ok := s.Uint64()
			So(ok, ShouldBeFalse)
			So(s.Value().BitLen(), ShouldEqual, 70)
		})
	})

	Convey("Given a cloned state", t, func() {
		s := mustState("10")
		clone := s.Clone()
		clone[1] = true

		Convey("The original should be unchanged", func() {
			So(s.String(), ShouldEqual, "10")
			So(s.Equal(clone), ShouldBeFalse)
		})
	})
}
