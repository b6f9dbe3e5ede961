package strategies

import (
	"fmt"

	"github.com/feadoor/sudoxide/internal/grid"
)

// YWingStrategy: a bivalue pivot {x,y} with two bivalue pincers {x,z} and
// {y,z}, both seen by the pivot; z is eliminated from cells seeing both
// pincers.
type YWingStrategy struct{}

func (YWingStrategy) Name() string { return "Y-Wing" }

func (YWingStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	bivalue := g.CellsWithNCandidates(2).Iter()
	for _, pivot := range bivalue {
		pivotCands := g.Candidates(pivot)
		neighbours := g.Neighbours(pivot)
		pincers := neighbours.Intersection(g.CellsWithNCandidates(2)).Iter()
		for i := 0; i < len(pincers); i++ {
			for j := i + 1; j < len(pincers); j++ {
				n1, n2 := pincers[i], pincers[j]
				c1, c2 := g.Candidates(n1), g.Candidates(n2)
				x1, z1, ok1 := splitPincer(pivotCands, c1)
				x2, z2, ok2 := splitPincer(pivotCands, c2)
				if !ok1 || !ok2 || x1 == x2 || z1 != z2 {
					continue
				}
				elim := g.Neighbours(n1).Intersection(g.Neighbours(n2))
				if !g.CandidateAppearsIn(elim, z1) {
					continue
				}
				steps = append(steps, yWingStep{pivot: pivot, pincer1: n1, pincer2: n2, value: z1})
			}
		}
	}
	return steps
}

// splitPincer checks that cand is a 2-element subset of pivotCands ∪ {z}
// sharing exactly one digit with pivotCands; returns the shared digit and
// the outside digit z.
func splitPincer(pivotCands, cand grid.CandidateSet) (shared, z grid.Candidate, ok bool) {
	if cand.Len() != 2 {
		return 0, 0, false
	}
	inside := cand.Intersection(pivotCands)
	outside := cand.Difference(pivotCands)
	if inside.Len() != 1 || outside.Len() != 1 {
		return 0, 0, false
	}
	s, _ := inside.First()
	o, _ := outside.First()
	return s, o, true
}

type yWingStep struct {
	pivot, pincer1, pincer2 grid.CellIdx
	value                   grid.Candidate
}

func (s yWingStep) Deductions(g *grid.Grid) []grid.Deduction {
	var out []grid.Deduction
	common := g.CommonNeighbours(grid.CellsFrom(g.N(), s.pincer1, s.pincer2))
	for _, c := range common.Iter() {
		if g.HasCandidate(c, s.value) {
			out = append(out, grid.EliminationDeduction(c, s.value))
		}
	}
	return out
}

func (s yWingStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("Y-Wing; pivot %s and pincers (%s, %s) eliminate %d from common neighbours",
		grid.CellName(g.N(), s.pivot), grid.CellName(g.N(), s.pincer1), grid.CellName(g.N(), s.pincer2), s.value)
}

// XYZWingStrategy: a trivalue pivot {x,y,z} with two bivalue pincers, each
// a distinct 2-subset of the pivot's candidates; z (the shared digit of
// the two pincers) is eliminated from cells seeing the pivot and both
// pincers.
type XYZWingStrategy struct{}

func (XYZWingStrategy) Name() string { return "XYZ-Wing" }

func (XYZWingStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	for _, pivot := range g.CellsWithNCandidates(3).Iter() {
		pivotCands := g.Candidates(pivot)
		var pincers []grid.CellIdx
		for _, nb := range g.Neighbours(pivot).Iter() {
			if g.NumCandidates(nb) == 2 && g.Candidates(nb).Difference(pivotCands).IsEmpty() {
				pincers = append(pincers, nb)
			}
		}
		for i := 0; i < len(pincers); i++ {
			for j := i + 1; j < len(pincers); j++ {
				n1, n2 := pincers[i], pincers[j]
				c1, c2 := g.Candidates(n1), g.Candidates(n2)
				if c1.Equal(c2) {
					continue
				}
				shared := c1.Intersection(c2)
				if shared.Len() != 1 {
					continue
				}
				z, _ := shared.First()
				elim := g.Neighbours(pivot).Intersection(g.Neighbours(n1)).Intersection(g.Neighbours(n2))
				if !g.CandidateAppearsIn(elim, z) {
					continue
				}
				steps = append(steps, xyzWingStep{pivot: pivot, pincer1: n1, pincer2: n2, value: z})
			}
		}
	}
	return steps
}

type xyzWingStep struct {
	pivot, pincer1, pincer2 grid.CellIdx
	value                   grid.Candidate
}

func (s xyzWingStep) Deductions(g *grid.Grid) []grid.Deduction {
	var out []grid.Deduction
	common := g.CommonNeighbours(grid.CellsFrom(g.N(), s.pivot, s.pincer1, s.pincer2))
	for _, c := range common.Iter() {
		if g.HasCandidate(c, s.value) {
			out = append(out, grid.EliminationDeduction(c, s.value))
		}
	}
	return out
}

func (s xyzWingStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("XYZ-Wing; pivot %s and pincers (%s, %s) eliminate %d from common neighbours",
		grid.CellName(g.N(), s.pivot), grid.CellName(g.N(), s.pincer1), grid.CellName(g.N(), s.pincer2), s.value)
}

// WWingStrategy: two bivalue cells sharing the same pair {x,y}, linked by a
// conjugate pair for x elsewhere (one conjugate cell seeing each pincer);
// y is eliminated from cells seeing both pincers.
type WWingStrategy struct{}

func (WWingStrategy) Name() string { return "W-Wing" }

func (WWingStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	bivalue := g.CellsWithNCandidates(2).Iter()
	for i := 0; i < len(bivalue); i++ {
		for j := i + 1; j < len(bivalue); j++ {
			p1, p2 := bivalue[i], bivalue[j]
			cands := g.Candidates(p1)
			if !cands.Equal(g.Candidates(p2)) {
				continue
			}
			steps = append(steps, findWWingsForPincers(g, p1, p2, cands)...)
		}
	}
	return steps
}

// findWWingsForPincers looks for a house, disjoint from the pincers, that
// confines one of their two shared digits to cells the pincers already see;
// that digit is then the "covered" link, and the other is eliminated from
// cells seeing both pincers.
func findWWingsForPincers(g *grid.Grid, p1, p2 grid.CellIdx, cands grid.CandidateSet) []Step {
	digits := cands.Iter()
	x, y := digits[0], digits[1]
	common := g.CommonNeighbours(grid.CellsFrom(g.N(), p1, p2))
	seen := g.Neighbours(p1).Union(g.Neighbours(p2))

	var steps []Step
	for _, house := range g.AllHouses() {
		if house.Cells.Contains(p1) || house.Cells.Contains(p2) {
			continue
		}
		unseen := house.Cells.Difference(seen)
		for _, pair := range [2][2]grid.Candidate{{x, y}, {y, x}} {
			covered, eliminated := pair[0], pair[1]
			if g.ValuePlacedIn(unseen, covered) || g.CandidateAppearsIn(unseen, covered) {
				continue
			}
			if !g.CandidateAppearsIn(common, eliminated) {
				continue
			}
			steps = append(steps, wWingStep{pincer1: p1, pincer2: p2, linkDigit: covered, elim: eliminated, house: house})
		}
	}
	return steps
}

type wWingStep struct {
	pincer1, pincer2 grid.CellIdx
	linkDigit, elim  grid.Candidate
	house            grid.House
}

func (s wWingStep) Deductions(g *grid.Grid) []grid.Deduction {
	var out []grid.Deduction
	common := g.CommonNeighbours(grid.CellsFrom(g.N(), s.pincer1, s.pincer2))
	for _, c := range common.Iter() {
		if g.HasCandidate(c, s.elim) {
			out = append(out, grid.EliminationDeduction(c, s.elim))
		}
	}
	return out
}

func (s wWingStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("W-Wing; pincers (%s, %s) cover %d in %s, and so eliminate %d from common neighbours",
		grid.CellName(g.N(), s.pincer1), grid.CellName(g.N(), s.pincer2), s.linkDigit, grid.HouseName(s.house), s.elim)
}
