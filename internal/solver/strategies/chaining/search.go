package chaining

import (
	"sort"
	"strings"

	"github.com/feadoor/sudoxide/internal/grid"
)

// Elim is a single (cell, candidate) elimination implied by a chain.
type Elim struct {
	Cell  grid.CellIdx
	Value grid.Candidate
}

// ElimCandidates is the set of eliminations a node's assertion forces: the
// digit is removed from every common neighbour of the node's value cells,
// and if the node pins down a single cell, every other candidate at that
// cell is also removed (the cell is solved).
func ElimCandidates(g *grid.Grid, n Node) []Elim {
	seen := map[Elim]bool{}
	var out []Elim
	add := func(e Elim) {
		if !seen[e] {
			seen[e] = true
			out = append(out, e)
		}
	}

	common := g.CommonNeighbours(n.ValueCells)
	for _, c := range g.CellsWithCandidateIn(common, n.Digit).Iter() {
		add(Elim{Cell: c, Value: n.Digit})
	}
	if n.ValueCells.Len() == 1 {
		cell, _ := n.ValueCells.First()
		for _, d := range g.Candidates(cell).Iter() {
			if d == n.Digit {
				continue
			}
			add(Elim{Cell: cell, Value: d})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Cell != out[j].Cell {
			return out[i].Cell < out[j].Cell
		}
		return out[i].Value < out[j].Value
	})
	return out
}

func disjointElims(a, b []Elim) bool {
	set := make(map[Elim]bool, len(a))
	for _, e := range a {
		set[e] = true
	}
	for _, e := range b {
		if set[e] {
			return false
		}
	}
	return true
}

func unionElims(sets ...[]Elim) []Elim {
	seen := map[Elim]bool{}
	var out []Elim
	for _, s := range sets {
		for _, e := range s {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return sortElims(out)
}

func intersectElims(sets ...[]Elim) []Elim {
	if len(sets) == 0 {
		return nil
	}
	counts := map[Elim]int{}
	for _, s := range sets {
		present := map[Elim]bool{}
		for _, e := range s {
			if !present[e] {
				present[e] = true
				counts[e]++
			}
		}
	}
	var out []Elim
	for e, c := range counts {
		if c == len(sets) {
			out = append(out, e)
		}
	}
	return sortElims(out)
}

func sortElims(out []Elim) []Elim {
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cell != out[j].Cell {
			return out[i].Cell < out[j].Cell
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// inference is one link in a chain: a node together with whether it is
// being asserted (false) or negated (true) at that position.
type inference struct {
	node    Node
	negated bool
}

func (inf inference) description(g *grid.Grid) string {
	sign := "+"
	if inf.negated {
		sign = "-"
	}
	return sign + inf.node.Description(g)
}

// Chain is a found alternating inference chain (or, if IsLoop, a closed
// alternating inference loop).
type Chain struct {
	Kind   string
	Links  []inference
	IsLoop bool
}

// Description renders the chain per the step-description contract:
// "{Kind}; {sign}{node} --> {sign}{node} --> ... [--> Loop]".
func (c Chain) Description(g *grid.Grid) string {
	parts := make([]string, len(c.Links))
	for i, inf := range c.Links {
		parts[i] = inf.description(g)
	}
	desc := c.Kind + "; " + strings.Join(parts, " --> ")
	if c.IsLoop {
		desc += " --> Loop"
	}
	return desc
}

// Deductions computes the eliminations a chain licenses. A simple chain
// eliminates the intersection of what its two endpoint nodes would each
// remove. A loop eliminates the intersection of the union of eliminations
// at its even-position links and the union at its odd-position links —
// not the intersection within each parity class, matching the reference
// chain solver's actual accumulation (a plain per-position intersection,
// the more literal reading of the elimination rule, is strictly smaller
// and misses real deductions whenever two same-parity links would each
// eliminate a different candidate at the same cell).
func (c Chain) Deductions(g *grid.Grid) []grid.Deduction {
	var elims []Elim
	if c.IsLoop {
		var evens, odds [][]Elim
		for i, inf := range c.Links {
			if i%2 == 0 {
				evens = append(evens, ElimCandidates(g, inf.node))
			} else {
				odds = append(odds, ElimCandidates(g, inf.node))
			}
		}
		elims = intersectElims(unionElims(evens...), unionElims(odds...))
	} else {
		first := c.Links[0].node
		last := c.Links[len(c.Links)-1].node
		elims = intersectElims(ElimCandidates(g, first), ElimCandidates(g, last))
	}

	out := make([]grid.Deduction, len(elims))
	for i, e := range elims {
		out[i] = grid.EliminationDeduction(e.Cell, e.Value)
	}
	return out
}

// Search finds every alternating inference chain (or loop) over nodes,
// labelling results with kind (used as the description prefix: "XY-Chain",
// "X-Chain", "AIC" or "ALS-AIC"). xyChainMode restricts Value/Value strong
// links to the same-cell bivalue rule, per the XY-chain variant.
func Search(g *grid.Grid, kind string, nodes []Node, xyChainMode bool) ([]Chain, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	weak := func(a, b Node) bool { return IsWeaklyLinked(g, a, b) }
	strong := func(a, b Node) bool { return IsStronglyLinked(g, a, b, xyChainMode) }
	lg, err := buildLinkGraph(nodes, weak, strong)
	if err != nil {
		return nil, err
	}

	affected := make([][]Elim, len(nodes))
	for i, n := range nodes {
		affected[i] = ElimCandidates(g, n)
	}

	var chains []Chain
	for start := range nodes {
		startAffected := affected[start]
		if len(startAffected) == 0 {
			continue
		}

		startCol := lg.falseIdx[start]
		parent := map[int]int{startCol: -1}
		queue := []int{startCol}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range lg.successorsOf(cur) {
				if _, visited := parent[next]; visited {
					continue
				}
				parent[next] = cur
				queue = append(queue, next)

				if !lg.isTrue[next] {
					continue
				}
				nodeIdx := lg.nodeOf[next]
				if !disjointElims(affected[nodeIdx], startAffected) {
					chains = append(chains, buildChain(g, kind, nodes, lg, parent, startCol, next))
				}
			}
		}
	}
	return chains, nil
}

func buildChain(g *grid.Grid, kind string, nodes []Node, lg *linkGraph, parent map[int]int, startCol, endCol int) Chain {
	var path []int
	for c := endCol; ; {
		path = append(path, c)
		p := parent[c]
		if p == -1 {
			break
		}
		c = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	links := make([]inference, len(path))
	for i, col := range path {
		links[i] = inference{node: nodes[lg.nodeOf[col]], negated: !lg.isTrue[col]}
	}

	isLoop := IsWeaklyLinked(g, nodes[lg.nodeOf[endCol]], nodes[lg.nodeOf[startCol]])
	return Chain{Kind: kind, Links: links, IsLoop: isLoop}
}
