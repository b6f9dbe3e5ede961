package grid

import (
	"strconv"

	"github.com/willf/bitset"
)

// CellIdx identifies a cell as row*n + col, in [0, n*n).
type CellIdx int

// NewCellIdx builds a CellIdx from a (row, col) pair for grid size n.
func NewCellIdx(n, row, col int) CellIdx {
	return CellIdx(row*n + col)
}

// Row recovers the row of c for grid size n.
func (c CellIdx) Row(n int) int { return int(c) / n }

// Col recovers the column of c for grid size n.
func (c CellIdx) Col(n int) int { return int(c) % n }

// Cell is either solved (Value != 0) or unsolved (a CandidateSet of
// remaining possibilities). Placing a value empties the candidate set.
type Cell struct {
	Value      Candidate
	Candidates CandidateSet
}

// EmptyCell returns an unsolved cell admitting every digit in [1..n].
func EmptyCell(n int) Cell {
	return Cell{Value: 0, Candidates: FullCandidateSet(n)}
}

// IsEmpty reports whether the cell is unsolved.
func (c Cell) IsEmpty() bool { return c.Value == 0 }

// SetValue solves the cell to d, clearing its candidate set.
func (c *Cell) SetValue(d Candidate) {
	c.Value = d
	c.Candidates = NewCandidateSet(c.Candidates.N())
}

// EliminateCandidate removes d from the cell's candidates; a no-op if solved.
func (c *Cell) EliminateCandidate(d Candidate) {
	if c.IsEmpty() {
		c.Candidates = c.Candidates.Remove(d)
	}
}

// NumCandidates returns the number of remaining candidates.
func (c Cell) NumCandidates() int { return c.Candidates.Len() }

// FirstCandidate returns the lowest remaining candidate, if any.
func (c Cell) FirstCandidate() (Candidate, bool) { return c.Candidates.First() }

// HasCandidate reports whether d remains a candidate.
func (c Cell) HasCandidate(d Candidate) bool { return c.Candidates.Contains(d) }

// HasAnyOfCandidates reports whether c admits any digit in values.
func (c Cell) HasAnyOfCandidates(values CandidateSet) bool {
	return c.Candidates.Intersects(values)
}

// CellSet is a fixed-width (capacity n*n) set of cells with full boolean
// algebra plus the mutators strategies use most: AddCell/RemoveCell and
// predicate-based filtering.
type CellSet struct {
	n    int
	bits *bitset.BitSet
}

// NewCellSet returns the empty cell set for grid size n.
func NewCellSet(n int) CellSet {
	return CellSet{n: n, bits: bitset.New(uint(n * n))}
}

// FullCellSet returns the set of every cell in a grid of size n.
func FullCellSet(n int) CellSet {
	cs := NewCellSet(n)
	for i := 0; i < n*n; i++ {
		cs.bits.Set(uint(i))
	}
	return cs
}

// CellsFrom builds a set from the given cells.
func CellsFrom(n int, cells ...CellIdx) CellSet {
	cs := NewCellSet(n)
	for _, c := range cells {
		cs.AddCell(c)
	}
	return cs
}

// Clone returns an independent copy.
func (cs CellSet) Clone() CellSet {
	return CellSet{n: cs.n, bits: cs.bits.Clone()}
}

// N returns the grid size this set is sized for.
func (cs CellSet) N() int { return cs.n }

// Contains reports whether c is a member.
func (cs CellSet) Contains(c CellIdx) bool {
	return cs.bits.Test(uint(c))
}

// AddCell inserts c, returning the set for chaining.
func (cs CellSet) AddCell(c CellIdx) CellSet {
	cs.bits.Set(uint(c))
	return cs
}

// RemoveCell deletes c, returning the set for chaining.
func (cs CellSet) RemoveCell(c CellIdx) CellSet {
	cs.bits.Clear(uint(c))
	return cs
}

// Union returns cs ∪ other as a new set.
func (cs CellSet) Union(other CellSet) CellSet {
	return CellSet{n: cs.n, bits: cs.bits.Union(other.bits)}
}

// Intersection returns cs ∩ other as a new set.
func (cs CellSet) Intersection(other CellSet) CellSet {
	return CellSet{n: cs.n, bits: cs.bits.Intersection(other.bits)}
}

// Difference returns cs − other as a new set.
func (cs CellSet) Difference(other CellSet) CellSet {
	return CellSet{n: cs.n, bits: cs.bits.Difference(other.bits)}
}

// Complement returns the complement of cs within all n*n cells.
func (cs CellSet) Complement() CellSet {
	return FullCellSet(cs.n).Difference(cs)
}

// Intersects reports whether cs and other share any cell.
func (cs CellSet) Intersects(other CellSet) bool {
	return cs.bits.Intersection(other.bits).Any()
}

// ContainsAll reports whether cs is a superset of other.
func (cs CellSet) ContainsAll(other CellSet) bool {
	return cs.bits.Intersection(other.bits).Equal(other.bits)
}

// Len returns the number of member cells.
func (cs CellSet) Len() int { return int(cs.bits.Count()) }

// IsEmpty reports whether the set has no members.
func (cs CellSet) IsEmpty() bool { return cs.bits.None() }

// First returns the lowest-indexed member, if any.
func (cs CellSet) First() (CellIdx, bool) {
	i, ok := cs.bits.NextSet(0)
	if !ok {
		return 0, false
	}
	return CellIdx(i), true
}

// Iter returns the members in increasing index order.
func (cs CellSet) Iter() []CellIdx {
	out := make([]CellIdx, 0, cs.Len())
	for i, ok := cs.bits.NextSet(0); ok; i, ok = cs.bits.NextSet(i + 1) {
		out = append(out, CellIdx(i))
	}
	return out
}

// Filter returns the subset of cs whose members satisfy pred.
func (cs CellSet) Filter(pred func(CellIdx) bool) CellSet {
	out := NewCellSet(cs.n)
	for _, c := range cs.Iter() {
		if pred(c) {
			out = out.AddCell(c)
		}
	}
	return out
}

// Equal reports whether cs and other contain exactly the same cells.
func (cs CellSet) Equal(other CellSet) bool {
	return cs.bits.Equal(other.bits)
}

// String renders the set as a comma-separated list of raw indices; used
// internally as a deduplication key, not as external-facing naming (see
// Grid.CellSetName for that).
func (cs CellSet) String() string {
	s := ""
	for _, c := range cs.Iter() {
		if s != "" {
			s += ","
		}
		s += strconv.Itoa(int(c))
	}
	return s
}
