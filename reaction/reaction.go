// Package reaction holds the immutable stoichiometric records a
// ReactionNetwork selects from and applies to a solution.
package reaction

import (
	"sort"
	"strconv"
	"strings"
)

// Term is one reactant or product entry: a species name and a positive
// stoichiometric coefficient. Terms compare lexicographically by
// (Species, Coefficient), which gives Reaction a deterministic total order.
type Term struct {
	Species     string
	Coefficient uint64
}

// Less implements the (name, coefficient) lexicographic order from the
// data model.
func (t Term) Less(other Term) bool {
	if t.Species != other.Species {
		return t.Species < other.Species
	}
	return t.Coefficient < other.Coefficient
}

func (t Term) key() string {
	var b strings.Builder
	b.WriteString(t.Species)
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(t.Coefficient, 10))
	return b.String()
}

// Reaction is an immutable reactants -> products transform with a positive
// rate weight used as the categorical-sampling weight among the reactions
// currently possible in a network.
type Reaction struct {
	Reactants []Term
	Products  []Term
	Rate      uint64
}

// New returns a Reaction over copies of reactants and products, so the
// caller's slices may be reused or mutated afterward.
func New(reactants, products []Term, rate uint64) Reaction {
	r := Reaction{
		Reactants: append([]Term(nil), reactants...),
		Products:  append([]Term(nil), products...),
		Rate:      rate,
	}
	return r
}

// Key returns a structural digest over reactants, products, and rate,
// suitable for deduplicating reactions in a set (collapsing duplicates the
// way a Rust HashSet<Reaction> would).
func (r Reaction) Key() string {
	var b strings.Builder
	for _, t := range r.Reactants {
		b.WriteString(t.key())
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, t := range r.Products {
		b.WriteString(t.key())
		b.WriteByte(',')
	}
	b.WriteByte('|')
	b.WriteString(strconv.FormatUint(r.Rate, 10))
	return b.String()
}

// Equal reports structural equality over reactants, products, and rate.
func (r Reaction) Equal(other Reaction) bool {
	return r.Key() == other.Key()
}

// Less gives the total, deterministic order over reactions — lexicographic
// over reactants, then products, then rate — that every iteration over a
// set of reactions must respect for trials to be seed-reproducible.
func (r Reaction) Less(other Reaction) bool {
	if c := compareTerms(r.Reactants, other.Reactants); c != 0 {
		return c < 0
	}
	if c := compareTerms(r.Products, other.Products); c != 0 {
		return c < 0
	}
	return r.Rate < other.Rate
}

func compareTerms(a, b []Term) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].Less(b[i]) {
			return -1
		}
		if b[i].Less(a[i]) {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// IsNullSource reports whether r has no reactants — a pure-production
// reaction that synthesizes species out of nothing.
func (r Reaction) IsNullSource() bool {
	return len(r.Reactants) == 0
}

// SortedCopy returns a copy of reactions sorted into the deterministic
// total order defined by Less. Every set of reactions the engine iterates
// over (possible_reactions, null_adjacent_reactions) is rebuilt in this
// order rather than iterated in hash order, so seeded trials replay
// byte-identically.
func SortedCopy(reactions []Reaction) []Reaction {
	out := append([]Reaction(nil), reactions...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
