package engine

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"crnensemble/demo"
	"crnensemble/network"
	"crnensemble/reaction"
	"crnensemble/solution"
	"crnensemble/trial"
)

func deadEndNetwork() *network.ReactionNetwork {
	reactions := []reaction.Reaction{
		reaction.New([]reaction.Term{{Species: "a", Coefficient: 1}}, []reaction.Term{{Species: "b", Coefficient: 1}}, 1),
	}
	return network.New(reactions, solution.Solution{"a": 1, "b": 0})
}

func neverStabilizesNetwork() *network.ReactionNetwork {
	reactions := []reaction.Reaction{
		reaction.New([]reaction.Term{{Species: "a", Coefficient: 1}}, []reaction.Term{{Species: "b", Coefficient: 1}}, 1),
		reaction.New([]reaction.Term{{Species: "b", Coefficient: 1}}, []reaction.Term{{Species: "a", Coefficient: 1}}, 1),
	}
	return network.New(reactions, solution.Solution{"a": 1, "b": 0})
}

func TestBuilder(t *testing.T) {
	Convey("New", t, func() {
		Convey("applies the documented defaults", func() {
			b := New(deadEndNetwork())
			So(b.numTrials, ShouldEqual, 100)
			So(b.maxSemiStableSteps, ShouldEqual, 99)
			So(b.verbosity, ShouldEqual, VerbosityMinimal)
		})
	})

	Convey("Verbose", t, func() {
		Convey("toggles Minimal to Full and back", func() {
			b := New(deadEndNetwork())
			b.Verbose()
			So(b.verbosity, ShouldEqual, VerbosityFull)
			b.Verbose()
			So(b.verbosity, ShouldEqual, VerbosityMinimal)
		})

		Convey("is a no-op once NoResponse has selected VerbosityNone", func() {
			b := New(deadEndNetwork())
			b.NoResponse()
			b.Verbose()
			So(b.verbosity, ShouldEqual, VerbosityNone)
		})
	})

	Convey("Build", t, func() {
		Convey("gives every trial an independent seed", func() {
			eng, _ := New(deadEndNetwork()).Trials(5).NoResponse().Build()
			seen := make(map[network.Seed]bool)
			for _, tr := range eng.processing {
				seen[tr.Seed()] = true
			}
			So(len(seen), ShouldEqual, 5)
		})

		Convey("returns a nil response channel under VerbosityNone", func() {
			_, responses := New(deadEndNetwork()).NoResponse().Build()
			So(responses, ShouldBeNil)
		})

		Convey("returns a buffered response channel otherwise", func() {
			_, responses := New(deadEndNetwork()).Build()
			So(responses, ShouldNotBeNil)
			So(cap(responses), ShouldEqual, responseChanCapacity)
		})
	})
}

func TestEngineRun(t *testing.T) {
	Convey("Run", t, func() {
		Convey("a trivially-stable network completes every trial and averages them", func() {
			eng, _ := New(deadEndNetwork()).Trials(10).NoResponse().Build()
			result, err := eng.Run()
			So(err, ShouldBeNil)
			So(result.Kind, ShouldEqual, Final)
			So(len(eng.Completed()), ShouldEqual, 10)

			var bValue float64
			for _, avg := range result.Values {
				if avg.Name == "b" {
					bValue = avg.Mean
				}
			}
			So(bValue, ShouldEqual, 1.0)
		})

		Convey("VerbosityFull streams an Intermediary result before the Final one", func() {
			eng, responses := New(deadEndNetwork()).Trials(3).Verbose().Build()

			done := make(chan struct{})
			var kinds []ResultKind
			go func() {
				for r := range responses {
					kinds = append(kinds, r.Kind)
				}
				close(done)
			}()

			_, err := eng.Run()
			So(err, ShouldBeNil)
			<-done

			So(len(kinds), ShouldBeGreaterThanOrEqualTo, 1)
			So(kinds[len(kinds)-1], ShouldEqual, Final)
		})

		Convey("an unreachable stability with a zero runtime budget returns ErrExceededRuntime", func() {
			eng, _ := New(neverStabilizesNetwork()).Trials(2).Runtime(0).NoResponse().Build()
			_, err := eng.Run()
			So(err, ShouldEqual, ErrExceededRuntime)
		})
	})

	Convey("Timeline", t, func() {
		Convey("replays a completed trial's exact seed to produce a per-species trajectory", func() {
			eng, _ := New(deadEndNetwork()).Trials(1).NoResponse().Build()
			_, err := eng.Run()
			So(err, ShouldBeNil)

			points, err := eng.Timeline(trial.ID(0))
			So(err, ShouldBeNil)
			So(len(points), ShouldBeGreaterThan, 0)

			var sawTerminalB bool
			for _, p := range points {
				if p.Name == "b" && p.Count == 1 {
					sawTerminalB = true
				}
			}
			So(sawTerminalB, ShouldBeTrue)
		})

		Convey("errors for an id that never completed", func() {
			eng, _ := New(deadEndNetwork()).Trials(1).NoResponse().Build()
			_, err := eng.Timeline(trial.ID(0))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFibonacciEnsemble(t *testing.T) {
	Convey("running the Fibonacci(10) network to stability", t, func() {
		Convey("the \"return\" species averages to Fibonacci(10) == 55", func() {
			reactions, initial := demo.Fibonacci()
			primeNetwork := network.New(reactions, initial)

			eng, _ := New(primeNetwork).Trials(20).NoResponse().Build()
			result, err := eng.Run()
			So(err, ShouldBeNil)

			var returnValue float64
			for _, avg := range result.Values {
				if avg.Name == "return" {
					returnValue = avg.Mean
				}
			}
			So(returnValue, ShouldBeBetween, 54.5, 55.5)
		})
	})
}
