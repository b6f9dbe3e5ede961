// Package grid implements the shared N²-cell Sudoku board abstraction:
// candidates, cells, houses and their neighbour relation.
package grid

import (
	"fmt"
	"strings"

	"github.com/willf/bitset"
)

// Candidate is a 1-based digit in [1..N].
type Candidate int

// CandidateSet is a fixed-width (capacity N) set of candidates with full
// boolean algebra, backed by a bitset so that cardinality, membership and
// set operations are all cheap regardless of N.
type CandidateSet struct {
	n    int
	bits *bitset.BitSet
}

// NewCandidateSet returns the empty candidate set for grid size n.
func NewCandidateSet(n int) CandidateSet {
	return CandidateSet{n: n, bits: bitset.New(uint(n))}
}

// FullCandidateSet returns the set containing every digit in [1..n].
func FullCandidateSet(n int) CandidateSet {
	cs := NewCandidateSet(n)
	for d := 1; d <= n; d++ {
		cs.bits.Set(uint(d - 1))
	}
	return cs
}

// CandidatesFrom builds a set from the given candidates (duplicates and
// out-of-range values are ignored by the underlying bitset.Set calls).
func CandidatesFrom(n int, cands ...Candidate) CandidateSet {
	cs := NewCandidateSet(n)
	for _, c := range cands {
		cs.Add(c)
	}
	return cs
}

// UnionCandidateSets returns the union of zero or more sets over grid size n.
func UnionCandidateSets(n int, sets ...CandidateSet) CandidateSet {
	cs := NewCandidateSet(n)
	for _, s := range sets {
		cs.bits = cs.bits.Union(s.bits)
	}
	return cs
}

// Clone returns an independent copy.
func (cs CandidateSet) Clone() CandidateSet {
	return CandidateSet{n: cs.n, bits: cs.bits.Clone()}
}

// N returns the grid size this set is sized for.
func (cs CandidateSet) N() int { return cs.n }

// Contains reports whether d is a member.
func (cs CandidateSet) Contains(d Candidate) bool {
	return cs.bits.Test(uint(d - 1))
}

// Add inserts d, returning the set for chaining.
func (cs CandidateSet) Add(d Candidate) CandidateSet {
	cs.bits.Set(uint(d - 1))
	return cs
}

// Remove deletes d, returning the set for chaining.
func (cs CandidateSet) Remove(d Candidate) CandidateSet {
	cs.bits.Clear(uint(d - 1))
	return cs
}

// Union returns cs ∪ other as a new set.
func (cs CandidateSet) Union(other CandidateSet) CandidateSet {
	return CandidateSet{n: cs.n, bits: cs.bits.Union(other.bits)}
}

// Intersection returns cs ∩ other as a new set.
func (cs CandidateSet) Intersection(other CandidateSet) CandidateSet {
	return CandidateSet{n: cs.n, bits: cs.bits.Intersection(other.bits)}
}

// SymmetricDifference returns cs △ other as a new set.
func (cs CandidateSet) SymmetricDifference(other CandidateSet) CandidateSet {
	return CandidateSet{n: cs.n, bits: cs.bits.SymmetricDifference(other.bits)}
}

// Difference returns cs − other as a new set.
func (cs CandidateSet) Difference(other CandidateSet) CandidateSet {
	return CandidateSet{n: cs.n, bits: cs.bits.Difference(other.bits)}
}

// Complement returns the complement of cs within the universe [1..n].
func (cs CandidateSet) Complement() CandidateSet {
	full := FullCandidateSet(cs.n)
	return CandidateSet{n: cs.n, bits: full.bits.Difference(cs.bits)}
}

// Intersects reports whether cs and other share any member.
func (cs CandidateSet) Intersects(other CandidateSet) bool {
	return cs.bits.Intersection(other.bits).Any()
}

// Len returns the number of members.
func (cs CandidateSet) Len() int {
	return int(cs.bits.Count())
}

// IsEmpty reports whether the set has no members.
func (cs CandidateSet) IsEmpty() bool {
	return cs.bits.None()
}

// First returns the lowest member, if any.
func (cs CandidateSet) First() (Candidate, bool) {
	i, ok := cs.bits.NextSet(0)
	if !ok {
		return 0, false
	}
	return Candidate(i + 1), true
}

// Iter returns the members in increasing digit order.
func (cs CandidateSet) Iter() []Candidate {
	out := make([]Candidate, 0, cs.Len())
	for i, ok := cs.bits.NextSet(0); ok; i, ok = cs.bits.NextSet(i + 1) {
		out = append(out, Candidate(i+1))
	}
	return out
}

// Equal reports whether cs and other contain exactly the same digits.
func (cs CandidateSet) Equal(other CandidateSet) bool {
	return cs.bits.Equal(other.bits)
}

// String renders the set as "(1, 4, 7)".
func (cs CandidateSet) String() string {
	parts := make([]string, 0, cs.Len())
	for _, d := range cs.Iter() {
		parts = append(parts, fmt.Sprintf("%d", d))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
