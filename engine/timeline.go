package engine

import (
	"fmt"

	"crnensemble/solution"
	"crnensemble/trial"
)

// Step identifies a point in a trial's step-indexed trajectory (not a
// wall-clock time — this engine uses step-indexed events, never continuous
// Gillespie time, per spec.md §1 Non-goals).
type Step int

// Point is one sparse, graphable sample of a single species' count at a
// given step: a "significant point" where that species' count stopped
// changing at its previous rate.
type Point struct {
	Name  solution.Name
	Step  Step
	Count solution.Count
}

type slopeTracker struct {
	name      solution.Name
	start     Point
	last      Point
	haveSlope bool
	slope     int64 // signed count delta between consecutive samples
	midpoints []Point
}

// Timeline re-simulates a completed trial from its retained seed, replaying
// the exact same sequence of reactions (spec.md §6 "Reproducibility"), and
// returns a sparse, step-indexed trajectory per species: one point
// whenever that species' count's slope (signed count delta since the
// previous sample) changes, plus its final sample, per spec.md §9 Open
// Question 4. Timeline is a
// non-core convenience — it is not used by Run or averaging.
func (e *Engine) Timeline(id trial.ID) ([]Point, error) {
	completedTrial, ok := e.completed[id]
	if !ok {
		return nil, fmt.Errorf("engine: no completed trial with id %v", id)
	}

	seed := completedTrial.Seed()
	replayNet := e.primeNetwork.Clone().WithSeed(seed)
	replay := trial.New(replayNet, e.maxSemiStableSteps, id)

	trackers := make(map[solution.Name]*slopeTracker)
	var step Step

	record := func(snapshot solution.Solution) {
		for name, count := range snapshot {
			point := Point{Name: name, Step: step, Count: count}
			t, ok := trackers[name]
			if !ok {
				trackers[name] = &slopeTracker{name: name, start: point, last: point}
				continue
			}
			newSlope := int64(point.Count) - int64(t.last.Count)
			if !t.haveSlope {
				t.slope = newSlope
				t.haveSlope = true
			} else if newSlope != t.slope {
				t.midpoints = append(t.midpoints, t.last)
				t.start = t.last
				t.slope = newSlope
			}
			t.last = point
		}
	}

	for {
		state, err := replay.Step()
		if err != nil {
			return nil, err
		}
		record(state.Solution)
		step++
		if state.Done {
			break
		}
	}

	var timeline []Point
	for _, t := range trackers {
		timeline = append(timeline, t.midpoints...)
		timeline = append(timeline, t.last)
	}
	return timeline, nil
}
