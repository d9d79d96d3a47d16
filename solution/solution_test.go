package solution

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"crnensemble/reaction"
)

func TestSolution(t *testing.T) {
	Convey("Apply", t, func() {
		Convey("decrements reactants and increments products", func() {
			s := Solution{"a": 5, "b": 1}
			r := reaction.New(
				[]reaction.Term{{Species: "a", Coefficient: 2}},
				[]reaction.Term{{Species: "b", Coefficient: 1}, {Species: "c", Coefficient: 1}},
				1,
			)
			s.Apply(r)
			So(s["a"], ShouldEqual, Count(3))
			So(s["b"], ShouldEqual, Count(2))
			So(s["c"], ShouldEqual, Count(1))
		})
	})

	Convey("Validate", t, func() {
		Convey("is satisfied when every present reactant has enough count", func() {
			s := Solution{"a": 3}
			r := reaction.New([]reaction.Term{{Species: "a", Coefficient: 2}}, nil, 1)
			So(s.Validate(r), ShouldBeTrue)
		})

		Convey("fails when a present reactant's count is too low", func() {
			s := Solution{"a": 1}
			r := reaction.New([]reaction.Term{{Species: "a", Coefficient: 2}}, nil, 1)
			So(s.Validate(r), ShouldBeFalse)
		})

		Convey("treats an absent reactant species as satisfied", func() {
			s := New()
			r := reaction.New([]reaction.Term{{Species: "ghost", Coefficient: 100}}, nil, 1)
			So(s.Validate(r), ShouldBeTrue)
		})
	})

	Convey("Add", t, func() {
		Convey("sums pointwise across both operands' keys", func() {
			a := Solution{"x": 1, "y": 2}
			b := Solution{"y": 3, "z": 4}
			sum := a.Add(b)
			So(sum, ShouldResemble, Solution{"x": 1, "y": 5, "z": 4})
		})

		Convey("is the identity over New()", func() {
			a := Solution{"x": 1}
			So(a.Add(New()), ShouldResemble, a)
		})
	})

	Convey("Clone", t, func() {
		Convey("produces an independent copy", func() {
			a := Solution{"x": 1}
			b := a.Clone()
			b["x"] = 99
			So(a["x"], ShouldEqual, Count(1))
		})
	})

	Convey("Equal", t, func() {
		Convey("is order-independent", func() {
			a := Solution{"x": 1, "y": 2}
			b := Solution{"y": 2, "x": 1}
			So(a.Equal(b), ShouldBeTrue)
		})

		Convey("reports inequality when key sets differ", func() {
			a := Solution{"x": 1}
			b := Solution{"x": 1, "y": 0}
			So(a.Equal(b), ShouldBeFalse)
		})
	})
}
