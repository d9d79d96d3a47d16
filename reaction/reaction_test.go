package reaction

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReaction(t *testing.T) {
	Convey("New", t, func() {
		Convey("copies the given slices so the caller may reuse them", func() {
			reactants := []Term{{Species: "a", Coefficient: 1}}
			r := New(reactants, nil, 1)
			reactants[0].Coefficient = 99
			So(r.Reactants[0].Coefficient, ShouldEqual, uint64(1))
		})
	})

	Convey("Equal and Key", t, func() {
		Convey("two structurally identical reactions are equal", func() {
			a := New([]Term{{Species: "a", Coefficient: 1}}, []Term{{Species: "b", Coefficient: 1}}, 5)
			b := New([]Term{{Species: "a", Coefficient: 1}}, []Term{{Species: "b", Coefficient: 1}}, 5)
			So(a.Equal(b), ShouldBeTrue)
			So(a.Key(), ShouldEqual, b.Key())
		})

		Convey("a differing rate makes reactions unequal", func() {
			a := New([]Term{{Species: "a", Coefficient: 1}}, nil, 5)
			b := New([]Term{{Species: "a", Coefficient: 1}}, nil, 6)
			So(a.Equal(b), ShouldBeFalse)
		})
	})

	Convey("Less", t, func() {
		Convey("orders lexicographically by reactant species first", func() {
			a := New([]Term{{Species: "a", Coefficient: 1}}, nil, 1)
			b := New([]Term{{Species: "b", Coefficient: 1}}, nil, 1)
			So(a.Less(b), ShouldBeTrue)
			So(b.Less(a), ShouldBeFalse)
		})

		Convey("falls back to rate when reactants and products match", func() {
			a := New([]Term{{Species: "a", Coefficient: 1}}, nil, 1)
			b := New([]Term{{Species: "a", Coefficient: 1}}, nil, 2)
			So(a.Less(b), ShouldBeTrue)
		})
	})

	Convey("IsNullSource", t, func() {
		Convey("is true for a reaction with no reactants", func() {
			r := New(nil, []Term{{Species: "a", Coefficient: 1}}, 1)
			So(r.IsNullSource(), ShouldBeTrue)
		})

		Convey("is false for a reaction with reactants", func() {
			r := New([]Term{{Species: "a", Coefficient: 1}}, nil, 1)
			So(r.IsNullSource(), ShouldBeFalse)
		})
	})

	Convey("SortedCopy", t, func() {
		Convey("returns a new slice in Less order, leaving the input untouched", func() {
			a := New([]Term{{Species: "b", Coefficient: 1}}, nil, 1)
			b := New([]Term{{Species: "a", Coefficient: 1}}, nil, 1)
			in := []Reaction{a, b}
			out := SortedCopy(in)
			So(out[0].Equal(b), ShouldBeTrue)
			So(out[1].Equal(a), ShouldBeTrue)
			So(in[0].Equal(a), ShouldBeTrue)
		})
	})
}
