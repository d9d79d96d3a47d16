// Package trial implements the per-trial stability state machine: step the
// underlying network forward and classify whether the trial has reached a
// stable terminal composition.
package trial

import (
	"crnensemble/network"
	"crnensemble/reaction"
	"crnensemble/solution"
)

// ID identifies a trial within an ensemble.
type ID int

// stability is the trial's classification after its most recent step.
type stability int

const (
	stabilityInitial stability = iota
	stabilityUnstable
	stabilitySemiStable // carries a step count, tracked alongside
	stabilityStable
)

// State is the observable result of one Step call: either the trial is
// still Processing (carries a solution snapshot) or it has reached
// Complete (carries the terminal solution snapshot).
type State struct {
	ID       ID
	Solution solution.Solution
	Done     bool
}

// Trial is the runtime environment for a single stochastic walk: a cloned,
// seeded ReactionNetwork plus the stability classifier. Once constructed,
// Step must be called repeatedly until it reports Done.
type Trial struct {
	net                *network.ReactionNetwork
	stability          stability
	semiStableStep     int
	maxSemiStableSteps int
	id                 ID
}

// New returns a Trial wrapping net (already seeded for this trial),
// tolerant of up to maxSemiStableSteps consecutive semi-stable rounds.
func New(net *network.ReactionNetwork, maxSemiStableSteps int, id ID) *Trial {
	return &Trial{
		net:                net,
		stability:          stabilityInitial,
		maxSemiStableSteps: maxSemiStableSteps,
		id:                 id,
	}
}

// ID returns the trial's identifier.
func (t *Trial) ID() ID {
	return t.id
}

// Solution returns the trial's current solution snapshot.
func (t *Trial) Solution() solution.Solution {
	return t.net.Solution()
}

// Seed returns the 32-byte seed this trial's network was constructed with,
// retained so the trial can be replayed from scratch for a timeline.
func (t *Trial) Seed() network.Seed {
	return t.net.Seed()
}

// Clone returns an independent copy of t's configuration, stability
// classification, and current solution. The clone's network PRNG restarts
// from the seed rather than continuing t's draw stream, so the clone is
// useful for branching a what-if continuation from the current solution,
// not for reproducing the exact sequence of draws t would make next.
func (t *Trial) Clone() *Trial {
	return &Trial{
		net:                t.net.Clone(),
		stability:          t.stability,
		semiStableStep:     t.semiStableStep,
		maxSemiStableSteps: t.maxSemiStableSteps,
		id:                 t.id,
	}
}

// Step advances the trial by exactly one round of the state machine
// described in spec.md §4.D: if the trial is not yet Stable, React once,
// then reclassify — which may itself perform a second React on the
// SemiStable -> SemiStable/Stable edges. A Trial already Stable performs
// no further reaction and reports Complete immediately.
func (t *Trial) Step() (State, error) {
	if t.stability == stabilityStable {
		return State{ID: t.id, Solution: t.net.Solution(), Done: true}, nil
	}

	if err := t.net.React(); err != nil {
		return State{}, err
	}

	possible := t.net.PossibleReactions()
	nullAdjacent := t.net.NullAdjacentReactions()

	switch t.stability {
	case stabilityInitial, stabilityUnstable:
		switch {
		case len(possible) == 0:
			t.stability = stabilityStable
		case isSubset(possible, nullAdjacent):
			t.stability = stabilitySemiStable
			t.semiStableStep = 0
		default:
			t.stability = stabilityUnstable
		}

	case stabilitySemiStable:
		switch {
		case len(possible) == 0:
			t.stability = stabilityStable
		case isSubset(possible, nullAdjacent) && t.semiStableStep < t.maxSemiStableSteps:
			if err := t.net.React(); err != nil {
				return State{}, err
			}
			t.semiStableStep++
		case isSubset(possible, nullAdjacent):
			if err := t.net.React(); err != nil {
				return State{}, err
			}
			t.stability = stabilityStable
		default:
			t.stability = stabilityUnstable
		}
	}

	return State{
		ID:       t.id,
		Solution: t.net.Solution(),
		Done:     t.stability == stabilityStable,
	}, nil
}

// isSubset reports whether every reaction in possible also appears in
// nullAdjacent, comparing by structural key against a lookup set built
// from nullAdjacent on each call; neither slice's order matters.
func isSubset(possible, nullAdjacent []reaction.Reaction) bool {
	if len(possible) == 0 {
		return true
	}
	lookup := make(map[string]struct{}, len(nullAdjacent))
	for _, r := range nullAdjacent {
		lookup[r.Key()] = struct{}{}
	}
	for _, r := range possible {
		if _, ok := lookup[r.Key()]; !ok {
			return false
		}
	}
	return true
}
