// Package solution holds the species-count vector a ReactionNetwork mutates
// as it steps, and the pointwise arithmetic the ensemble averager depends on.
package solution

import "crnensemble/reaction"

// Name is an opaque species identifier. Equality and ordering are the
// underlying string's, which is what lets a Name serve as both a map key
// and a sort key.
type Name string

// Count is a non-negative species count. The type never goes negative in
// practice: Apply is only ever called with a reaction drawn from a
// network's possible_reactions set, whose every reactant present in the
// solution has already been checked against the current count. A reactant
// absent from the solution is not checked by Validate, and Apply on it
// wraps the unsigned count around.
type Count uint64

// Solution maps species Name to its current Count.
type Solution map[Name]Count

// New returns an empty Solution, the additive identity.
func New() Solution {
	return make(Solution)
}

// Clone returns an independent copy of s.
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))
	for name, count := range s {
		out[name] = count
	}
	return out
}

// Apply mutates s to reflect reaction r: every reactant is decremented by
// its coefficient, every product incremented by its coefficient. Apply is
// total only over reactions drawn from a possible_reactions set — calling
// it with a reaction whose Validate would return false is a programmer
// error and may underflow a Count.
func (s Solution) Apply(r reaction.Reaction) {
	for _, term := range r.Reactants {
		s[Name(term.Species)] -= Count(term.Coefficient)
	}
	for _, term := range r.Products {
		s[Name(term.Species)] += Count(term.Coefficient)
	}
}

// Validate reports whether every reactant of r that is present in s has a
// count at least its coefficient. A reactant whose species name is absent
// from s is treated as satisfied — see the RequirePresentReactants option
// on network.ReactionNetwork for the stricter alternative, and DESIGN.md
// for why this default matches the source behavior.
func (s Solution) Validate(r reaction.Reaction) bool {
	for _, term := range r.Reactants {
		if current, ok := s[Name(term.Species)]; ok {
			if Count(term.Coefficient) > current {
				return false
			}
		}
	}
	return true
}

// Add returns the pointwise sum of s and other: for every key present in
// either operand, result[k] = s[k] + other[k]. Add is commutative,
// associative, and New() is its identity.
func (s Solution) Add(other Solution) Solution {
	out := make(Solution, len(s)+len(other))
	for name, count := range s {
		out[name] += count
	}
	for name, count := range other {
		out[name] += count
	}
	return out
}

// Equal reports whether s and other hold identical name/count pairs,
// order-independent.
func (s Solution) Equal(other Solution) bool {
	if len(s) != len(other) {
		return false
	}
	for name, count := range s {
		if otherCount, ok := other[name]; !ok || otherCount != count {
			return false
		}
	}
	return true
}
