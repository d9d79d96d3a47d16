package trial

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"crnensemble/network"
	"crnensemble/reaction"
	"crnensemble/solution"
)

func twoReactionNetwork() *network.ReactionNetwork {
	reactions := []reaction.Reaction{
		reaction.New(nil, []reaction.Term{{Species: "a", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "a", Coefficient: 1}}, []reaction.Term{{Species: "b", Coefficient: 1}}, 1),
	}
	// "a" and "b" are recorded at an explicit zero so Validate checks their
	// count rather than treating an absent reactant as trivially satisfied.
	return network.New(reactions, solution.Solution{"a": 0, "b": 0})
}

func deadEndNetwork() *network.ReactionNetwork {
	reactions := []reaction.Reaction{
		reaction.New([]reaction.Term{{Species: "a", Coefficient: 1}}, []reaction.Term{{Species: "b", Coefficient: 1}}, 1),
	}
	return network.New(reactions, solution.Solution{"a": 1})
}

func TestTrial(t *testing.T) {
	Convey("Step", t, func() {
		Convey("a trial whose only reaction uses up its reactant reaches Stable on the first step", func() {
			tr := New(deadEndNetwork(), 99, ID(0))
			state, err := tr.Step()
			So(err, ShouldBeNil)
			So(state.Done, ShouldBeTrue)
			So(state.Solution["b"], ShouldEqual, solution.Count(1))
		})

		Convey("a Stable trial performs no further reaction on subsequent Step calls", func() {
			tr := New(deadEndNetwork(), 99, ID(0))
			first, err := tr.Step()
			So(err, ShouldBeNil)
			So(first.Done, ShouldBeTrue)

			second, err := tr.Step()
			So(err, ShouldBeNil)
			So(second.Done, ShouldBeTrue)
			So(second.Solution, ShouldResemble, first.Solution)
		})

		Convey("the first entry into SemiStable performs a single React", func() {
			tr := New(twoReactionNetwork(), 99, ID(0))

			// Only the null-source reaction is possible from a:0, b:0; it
			// fires once, producing "a". Both reactions are now possible
			// and both lie in the null-adjacent closure, so the trial
			// becomes SemiStable without a second React on this call.
			state, err := tr.Step()
			So(err, ShouldBeNil)
			So(state.Done, ShouldBeFalse)
			So(tr.stability, ShouldEqual, stabilitySemiStable)
			So(tr.semiStableStep, ShouldEqual, 0)
			So(state.Solution["a"], ShouldEqual, solution.Count(1))
			So(state.Solution["b"], ShouldEqual, solution.Count(0))
		})

		Convey("remaining SemiStable performs a second React and advances the step count", func() {
			tr := New(twoReactionNetwork(), 99, ID(0))
			_, err := tr.Step()
			So(err, ShouldBeNil)
			So(tr.stability, ShouldEqual, stabilitySemiStable)

			state, err := tr.Step()
			So(err, ShouldBeNil)
			So(state.Done, ShouldBeFalse)
			So(tr.stability, ShouldEqual, stabilitySemiStable)
			So(tr.semiStableStep, ShouldEqual, 1)
			// Two reactions fired on this call (the top-level React plus
			// the SemiStable branch's second React). The a->b conversion
			// is count-neutral and the null-source reaction adds one. At
			// least one of the two is the null-source reaction: if a->b
			// fires first it uses up the only "a", leaving the null-source
			// reaction as the only possible one. So the combined count
			// grows from the 1 it held before this call to at least 2.
			So(state.Solution["a"]+state.Solution["b"], ShouldBeGreaterThanOrEqualTo, solution.Count(2))
		})

		Convey("exhausting tolerance promotes SemiStable to Stable on the following call", func() {
			tr := New(twoReactionNetwork(), 0, ID(0))
			_, err := tr.Step()
			So(err, ShouldBeNil)
			So(tr.stability, ShouldEqual, stabilitySemiStable)

			state, err := tr.Step()
			So(err, ShouldBeNil)
			So(state.Done, ShouldBeTrue)
		})
	})

	Convey("Clone", t, func() {
		Convey("copies stability classification and step count independently", func() {
			tr := New(twoReactionNetwork(), 99, ID(5))
			_, err := tr.Step()
			So(err, ShouldBeNil)
			So(tr.stability, ShouldEqual, stabilitySemiStable)
			So(tr.semiStableStep, ShouldEqual, 0)

			clone := tr.Clone()
			So(clone.ID(), ShouldEqual, ID(5))
			So(clone.stability, ShouldEqual, tr.stability)

			_, err = clone.Step()
			So(err, ShouldBeNil)
			So(clone.semiStableStep, ShouldEqual, 1)
			So(tr.semiStableStep, ShouldEqual, 0)
		})
	})

	Convey("Seed", t, func() {
		Convey("is retained from the underlying network for replay", func() {
			net := twoReactionNetwork()
			seed := net.Seed()
			tr := New(net, 99, ID(0))
			So(tr.Seed(), ShouldEqual, seed)
		})
	})
}
