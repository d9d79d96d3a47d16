// Package network owns the reaction set, the mutable solution, and the
// deterministic PRNG a single trial steps against: the propensity-weighted
// next-reaction selection and the possible/null-adjacent reaction sets it
// depends on.
package network

import (
	"fmt"
	"math/rand/v2"

	"crnensemble/reaction"
	"crnensemble/solution"
)

// Seed is the 32-byte key seeding a network's deterministic PRNG, mirroring
// the fixed-width seed the source engine uses so a trial is byte-for-byte
// reproducible from it.
type Seed [32]byte

// ReactionNetwork owns an immutable reaction set, a mutable Solution, and a
// deterministic PRNG. possible_reactions and null_adjacent_reactions are
// cached, deterministically-ordered subsets recomputed as described in
// spec.md §4.C.
type ReactionNetwork struct {
	reactions             []reaction.Reaction // canonical order, deduplicated
	possibleReactions     []reaction.Reaction // canonical order subset
	nullAdjacentReactions []reaction.Reaction // canonical order subset

	solution solution.Solution

	rng  *rand.Rand
	seed Seed

	// RequirePresentReactants, when true, rejects a reaction whose
	// reactant species name is absent from the solution instead of
	// treating it as satisfied. Off by default to match the behavior
	// recorded in DESIGN.md's Open Question 1 decision.
	RequirePresentReactants bool
}

// New constructs a ReactionNetwork over reactions (deduplicated by
// structural key) and an initial solution, seeded from a fresh random
// 32-byte draw. The possible-reaction and null-adjacent sets are computed
// immediately so both are always available.
func New(reactions []reaction.Reaction, initial solution.Solution) *ReactionNetwork {
	n := &ReactionNetwork{
		reactions: dedup(reactions),
		solution:  initial,
	}
	n.seed = RandomSeed()
	n.rng = rand.New(rand.NewChaCha8(n.seed))
	n.generateNullAdjacent()
	n.findPossibleReactions()
	return n
}

func dedup(reactions []reaction.Reaction) []reaction.Reaction {
	seen := make(map[string]struct{}, len(reactions))
	out := make([]reaction.Reaction, 0, len(reactions))
	for _, r := range reactions {
		key := r.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return reaction.SortedCopy(out)
}

// RandomSeed draws a fresh, independent 32-byte PRNG seed, the Go
// equivalent of Rust's rand::random::<[u8;32]>(). Used both to seed a
// freshly constructed network and, by the engine builder, to give each
// cloned per-trial network its own independent seed.
func RandomSeed() Seed {
	var s Seed
	for i := range s {
		s[i] = byte(rand.IntN(256))
	}
	return s
}

// Clone deep-copies the reaction set and solution and copies the seed so the
// engine can give each trial an independent, seedable instance of the
// prime network. The clone's PRNG restarts from that seed; it does not
// continue n's draw stream.
func (n *ReactionNetwork) Clone() *ReactionNetwork {
	clone := &ReactionNetwork{
		reactions:               append([]reaction.Reaction(nil), n.reactions...),
		possibleReactions:       append([]reaction.Reaction(nil), n.possibleReactions...),
		nullAdjacentReactions:   append([]reaction.Reaction(nil), n.nullAdjacentReactions...),
		solution:                n.solution.Clone(),
		seed:                    n.seed,
		RequirePresentReactants: n.RequirePresentReactants,
	}
	clone.rng = rand.New(rand.NewChaCha8(clone.seed))
	return clone
}

// WithSeed reseeds the network's PRNG and retains the seed for replay,
// returning the same instance for fluent use at construction time.
func (n *ReactionNetwork) WithSeed(seed Seed) *ReactionNetwork {
	n.seed = seed
	n.rng = rand.New(rand.NewChaCha8(seed))
	return n
}

// Seed returns the PRNG seed currently in use, retained so a completed
// trial can be replayed from scratch.
func (n *ReactionNetwork) Seed() Seed {
	return n.seed
}

// Solution returns the current, mutable-by-reference solution.
func (n *ReactionNetwork) Solution() solution.Solution {
	return n.solution
}

// PossibleReactions returns the cached, canonically-ordered subset of
// reactions whose every reactant coefficient is currently satisfiable.
func (n *ReactionNetwork) PossibleReactions() []reaction.Reaction {
	return n.possibleReactions
}

// NullAdjacentReactions returns the cached, canonically-ordered
// null-adjacent closure computed once at construction (spec.md §4.C):
// null-source reactions, plus every reaction that consumes a species any
// null-source reaction produces.
func (n *ReactionNetwork) NullAdjacentReactions() []reaction.Reaction {
	return n.nullAdjacentReactions
}

func (n *ReactionNetwork) generateNullAdjacent() {
	included := make(map[string]struct{})
	var adjacent []reaction.Reaction

	includeOnce := func(r reaction.Reaction) bool {
		key := r.Key()
		if _, ok := included[key]; ok {
			return false
		}
		included[key] = struct{}{}
		adjacent = append(adjacent, r)
		return true
	}

	for _, r := range n.reactions {
		if !r.IsNullSource() {
			continue
		}
		if !includeOnce(r) {
			continue
		}
		for _, product := range r.Products {
			for _, candidate := range n.reactions {
				for _, reactant := range candidate.Reactants {
					if reactant.Species == product.Species {
						includeOnce(candidate)
					}
				}
			}
		}
	}

	n.nullAdjacentReactions = reaction.SortedCopy(adjacent)
}

func (n *ReactionNetwork) findPossibleReactions() {
	possible := make([]reaction.Reaction, 0, len(n.reactions))
	for _, r := range n.reactions {
		if n.validate(r) {
			possible = append(possible, r)
		}
	}
	n.possibleReactions = reaction.SortedCopy(possible)
}

func (n *ReactionNetwork) validate(r reaction.Reaction) bool {
	if !n.RequirePresentReactants {
		return n.solution.Validate(r)
	}
	for _, term := range r.Reactants {
		current, ok := n.solution[solution.Name(term.Species)]
		if !ok || solution.Count(term.Coefficient) > current {
			return false
		}
	}
	return true
}

func (n *ReactionNetwork) sumPossibleReactionRates() uint64 {
	var sum uint64
	for _, r := range n.possibleReactions {
		sum += r.Rate
	}
	return sum
}

// NextReaction draws one reaction from PossibleReactions, categorically
// weighted by rate: draw a uniform x in [0, W) where W is the sum of
// possible rates, then return the first reaction (in canonical order)
// whose cumulative rate exceeds x. The caller must ensure
// PossibleReactions is non-empty; an empty set is a programmer error.
func (n *ReactionNetwork) NextReaction() (reaction.Reaction, error) {
	total := n.sumPossibleReactionRates()
	if total == 0 {
		return reaction.Reaction{}, fmt.Errorf("network: NextReaction called with no possible reactions")
	}

	x := n.rng.Uint64N(total)
	var cumulative uint64
	for _, r := range n.possibleReactions {
		cumulative += r.Rate
		if cumulative > x {
			return r, nil
		}
	}
	// Unreachable given total == sum(rates), but fall back to the last
	// reaction rather than panic on a rounding edge case.
	return n.possibleReactions[len(n.possibleReactions)-1], nil
}

// React selects the next reaction, applies it to the solution, and
// recomputes PossibleReactions. NullAdjacentReactions is never recomputed
// here since it depends only on reaction topology, fixed at construction.
func (n *ReactionNetwork) React() error {
	next, err := n.NextReaction()
	if err != nil {
		return err
	}
	n.solution.Apply(next)
	n.findPossibleReactions()
	return nil
}
