// Package chaining implements the alternating-inference-chain search that
// underlies the XY-chain, X-chain, AIC and ALS-AIC strategies: a bipartite
// true/false endpoint graph over value, group and almost-locked-set nodes.
package chaining

import (
	"fmt"

	"github.com/feadoor/sudoxide/internal/grid"
)

// Kind distinguishes the three chain node flavours.
type Kind int

const (
	Value Kind = iota
	Group
	Als
)

// Node is "cell(s) hold digit d": a single cell (Value), a set of cells in
// the intersection of two houses (Group), or the value-cells of an
// almost-locked-set for a chosen digit (Als). AllCells is the full cell
// set of the underlying ALS for Als nodes; it equals ValueCells otherwise.
type Node struct {
	Kind       Kind
	Digit      grid.Candidate
	ValueCells grid.CellSet
	AllCells   grid.CellSet
}

// Description renders the node for chain-step descriptions.
func (n Node) Description(g *grid.Grid) string {
	switch n.Kind {
	case Value:
		cell, _ := n.ValueCells.First()
		return fmt.Sprintf("%d in %s", n.Digit, grid.CellName(g.N(), cell))
	case Group:
		return fmt.Sprintf("%d in %s", n.Digit, g.CellSetName(n.ValueCells))
	default:
		return fmt.Sprintf("%d in %s", n.Digit, g.CellSetName(n.AllCells))
	}
}

// allPairsSee reports whether every cell in a is a neighbour of every cell
// in b (and vice versa — the relation is symmetric since neighbour(x,y) =
// neighbour(y,x)). Shared cells always fail (a cell is never its own
// neighbour).
func allPairsSee(g *grid.Grid, a, b grid.CellSet) bool {
	for _, ca := range a.Iter() {
		for _, cb := range b.Iter() {
			if ca == cb || !g.Neighbours(ca).Contains(cb) {
				return false
			}
		}
	}
	return true
}

// IsWeaklyLinked implements the same-digit and different-digit weak link
// rules of the chain search, uniformly across all node-kind pairs.
func IsWeaklyLinked(g *grid.Grid, a, b Node) bool {
	if a.Digit == b.Digit {
		return allPairsSee(g, a.ValueCells, b.ValueCells)
	}
	return a.ValueCells.Len() == 1 && b.ValueCells.Len() == 1 && a.ValueCells.Equal(b.ValueCells)
}

// IsStronglyLinked implements the strong link rules. xyChainMode restricts
// Value/Value links to the same-cell bivalue rule only, per the XY-chain
// strategy variant.
func IsStronglyLinked(g *grid.Grid, a, b Node, xyChainMode bool) bool {
	if a.Kind == Value && b.Kind == Value {
		if a.ValueCells.Equal(b.ValueCells) && a.Digit != b.Digit {
			cell, _ := a.ValueCells.First()
			return g.NumCandidates(cell) == 2
		}
		if xyChainMode {
			return false
		}
		if a.Digit != b.Digit || a.ValueCells.Equal(b.ValueCells) {
			return false
		}
		return houseConjugatePair(g, a.ValueCells, b.ValueCells, a.Digit)
	}

	if a.Kind == Als && b.Kind == Als {
		return a.AllCells.Equal(b.AllCells) && a.Digit != b.Digit
	}

	if a.Digit != b.Digit {
		return false
	}

	if (a.Kind == Value && b.Kind == Group) || (a.Kind == Group && b.Kind == Value) {
		value, group := a, b
		if a.Kind == Group {
			value, group = b, a
		}
		return valueGroupStrongLink(g, value, group)
	}

	if a.Kind == Group && b.Kind == Group {
		return groupGroupStrongLink(g, a, b)
	}

	return false
}

func houseConjugatePair(g *grid.Grid, cellsA, cellsB grid.CellSet, digit grid.Candidate) bool {
	combined := cellsA.Union(cellsB)
	for _, h := range g.AllHouses() {
		if !h.Cells.ContainsAll(combined) {
			continue
		}
		if g.CellsWithCandidateIn(h.Cells, digit).Equal(combined) {
			return true
		}
	}
	return false
}

func valueGroupStrongLink(g *grid.Grid, value, group Node) bool {
	cell, _ := value.ValueCells.First()
	if group.ValueCells.Contains(cell) {
		return false
	}
	for _, h := range g.AllHouses() {
		if !h.Cells.Contains(cell) {
			continue
		}
		admitting := g.CellsWithCandidateIn(h.Cells, value.Digit)
		if admitting.Difference(value.ValueCells.Union(group.ValueCells)).IsEmpty() {
			return true
		}
	}
	return false
}

func groupGroupStrongLink(g *grid.Grid, a, b Node) bool {
	if a.ValueCells.Equal(b.ValueCells) {
		return false
	}
	for _, h := range g.AllHouses() {
		if !h.Cells.Intersects(a.ValueCells) {
			continue
		}
		admitting := g.CellsWithCandidateIn(h.Cells, a.Digit)
		if admitting.Difference(a.ValueCells.Union(b.ValueCells)).IsEmpty() {
			return true
		}
	}
	return false
}

// BivalueNodes returns one Value node per (digit, bivalue cell) pair —
// the node set used by the XY-chain strategy.
func BivalueNodes(g *grid.Grid) []Node {
	var out []Node
	for _, c := range g.CellsWithNCandidates(2).Iter() {
		for _, d := range g.Candidates(c).Iter() {
			out = append(out, Node{Kind: Value, Digit: d, ValueCells: grid.CellsFrom(g.N(), c), AllCells: grid.CellsFrom(g.N(), c)})
		}
	}
	return out
}

// ValueNodesForDigit returns one Value node per cell admitting digit.
func ValueNodesForDigit(g *grid.Grid, digit grid.Candidate) []Node {
	var out []Node
	for _, c := range g.CellsWithCandidate(digit).Iter() {
		out = append(out, Node{Kind: Value, Digit: digit, ValueCells: grid.CellsFrom(g.N(), c), AllCells: grid.CellsFrom(g.N(), c)})
	}
	return out
}

// GroupNodesForDigit returns one Group node per (pair of intersecting
// houses) whose intersection contains at least two cells admitting digit.
func GroupNodesForDigit(g *grid.Grid, digit grid.Candidate) []Node {
	var out []Node
	houses := g.AllHouses()
	for i := 0; i < len(houses); i++ {
		for j := i + 1; j < len(houses); j++ {
			inter := houses[i].Cells.Intersection(houses[j].Cells)
			if inter.IsEmpty() {
				continue
			}
			admitting := g.CellsWithCandidateIn(inter, digit)
			if admitting.Len() >= 2 {
				out = append(out, Node{Kind: Group, Digit: digit, ValueCells: admitting, AllCells: admitting})
			}
		}
	}
	return out
}

// ValueNodes returns Value nodes for every (cell, candidate) pair.
func ValueNodes(g *grid.Grid) []Node {
	var out []Node
	for d := 1; d <= g.N(); d++ {
		out = append(out, ValueNodesForDigit(g, grid.Candidate(d))...)
	}
	return out
}

// GroupNodes returns Group nodes for every digit.
func GroupNodes(g *grid.Grid) []Node {
	var out []Node
	for d := 1; d <= g.N(); d++ {
		out = append(out, GroupNodesForDigit(g, grid.Candidate(d))...)
	}
	return out
}

// AlsNodes enumerates almost-locked sets: for each house, every k-sized
// subset (k from 2 up to house size - 1) of its unsolved cells whose
// combined candidates number k+1, pruned by the cheap cardinality check
// before emitting one node per candidate digit of the set. Single cells
// are left out; their strong links are already the bivalue Value rule.
func AlsNodes(g *grid.Grid) []Node {
	var out []Node
	seen := map[string]bool{}
	for _, h := range g.AllHouses() {
		empties := g.EmptyCellsIn(h.Cells).Iter()
		for k := 2; k < len(empties); k++ {
			for _, combo := range combinations(len(empties), k) {
				cells := grid.NewCellSet(g.N())
				for _, idx := range combo {
					cells = cells.AddCell(empties[idx])
				}
				key := cells.String()
				if seen[key+"#subset"] {
					continue
				}
				combined := g.CandidatesIn(cells)
				if combined.Len() != k+1 {
					continue
				}
				seen[key+"#subset"] = true
				for _, d := range combined.Iter() {
					valueCells := g.CellsWithCandidateIn(cells, d)
					out = append(out, Node{Kind: Als, Digit: d, ValueCells: valueCells, AllCells: cells})
				}
			}
		}
	}
	return out
}

func combinations(n, k int) [][]int {
	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			c := make([]int, k)
			copy(c, combo)
			out = append(out, c)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}
