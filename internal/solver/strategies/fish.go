package strategies

import (
	"fmt"
	"strings"

	"github.com/feadoor/sudoxide/internal/grid"
)

// FishStrategy finds basic fish of a fixed degree: k base lines (rows or
// columns) whose cells admitting d are covered by exactly k lines of the
// other orientation.
type FishStrategy struct{ Degree int }

func (s FishStrategy) Name() string { return fmt.Sprintf("Fish (%d)", s.Degree) }

func (s FishStrategy) FindSteps(g *grid.Grid) []Step {
	return findFish(g, s.Degree, false)
}

// FinnedFishStrategy is the same pattern with k+1..covers lines, where the
// excess lines' uncovered base cells ("fins") restrict eliminations to
// cells seeing every fin.
type FinnedFishStrategy struct{ Degree int }

func (s FinnedFishStrategy) Name() string { return fmt.Sprintf("Finned Fish (%d)", s.Degree) }

func (s FinnedFishStrategy) FindSteps(g *grid.Grid) []Step {
	return findFish(g, s.Degree, true)
}

func findFish(g *grid.Grid, degree int, finned bool) []Step {
	var steps []Step
	for d := 1; d <= g.N(); d++ {
		digit := grid.Candidate(d)
		steps = append(steps, findForBaseKind(g, degree, finned, digit, grid.Row, grid.Column)...)
		steps = append(steps, findForBaseKind(g, degree, finned, digit, grid.Column, grid.Row)...)
	}
	return steps
}

func findForBaseKind(g *grid.Grid, degree int, finned bool, digit grid.Candidate, baseKind, coverKind grid.HouseKind) []Step {
	baseHouses := housesWithCandidateOfKind(g, digit, baseKind)
	if len(baseHouses) < degree {
		return nil
	}
	var steps []Step
	for _, combo := range combinationsOfInts(len(baseHouses), degree) {
		bases := make([]grid.House, degree)
		baseCells := grid.NewCellSet(g.N())
		for i, idx := range combo {
			bases[i] = baseHouses[idx]
			baseCells = baseCells.Union(g.CellsWithCandidateIn(baseHouses[idx].Cells, digit))
		}

		var coverHouses []grid.House
		switch coverKind {
		case grid.Row:
			coverHouses = g.IntersectingRows(baseCells)
		case grid.Column:
			coverHouses = g.IntersectingCols(baseCells)
		default:
			coverHouses = g.IntersectingRegions(baseCells)
		}

		if !finned {
			if len(coverHouses) != degree {
				continue
			}
			cover := unionHouses(g, coverHouses)
			if !g.CandidateAppearsIn(cover.Difference(baseCells), digit) {
				continue
			}
			steps = append(steps, fishStep{
				degree: degree, finned: false, digit: digit,
				bases: bases, covers: coverHouses, cover: cover, base: baseCells,
				fins: grid.NewCellSet(g.N()),
			})
			continue
		}

		if len(coverHouses) <= degree {
			continue
		}
		for _, coverCombo := range combinationsOfInts(len(coverHouses), degree) {
			chosen := make([]grid.House, degree)
			cover := grid.NewCellSet(g.N())
			for i, ci := range coverCombo {
				chosen[i] = coverHouses[ci]
				cover = cover.Union(coverHouses[ci].Cells)
			}
			fins := baseCells.Difference(cover)
			if fins.IsEmpty() {
				continue
			}
			elim := g.CommonNeighbours(fins).Intersection(cover).Difference(baseCells)
			if !g.CandidateAppearsIn(elim, digit) {
				continue
			}
			steps = append(steps, fishStep{
				degree: degree, finned: true, digit: digit,
				bases: bases, covers: chosen, cover: cover, base: baseCells, fins: fins,
			})
		}
	}
	return steps
}

func housesWithCandidateOfKind(g *grid.Grid, digit grid.Candidate, kind grid.HouseKind) []grid.House {
	switch kind {
	case grid.Row:
		return g.RowsWithCandidate(digit)
	case grid.Column:
		return g.ColsWithCandidate(digit)
	default:
		return g.RegionsWithCandidate(digit)
	}
}

func unionHouses(g *grid.Grid, houses []grid.House) grid.CellSet {
	out := grid.NewCellSet(g.N())
	for _, h := range houses {
		out = out.Union(h.Cells)
	}
	return out
}

type fishStep struct {
	degree int
	finned bool
	digit  grid.Candidate
	bases  []grid.House
	covers []grid.House
	cover  grid.CellSet
	base   grid.CellSet
	fins   grid.CellSet
}

func (s fishStep) Deductions(g *grid.Grid) []grid.Deduction {
	var out []grid.Deduction
	eligible := g.CommonNeighbours(s.fins).Intersection(s.cover).Difference(s.base)
	for _, c := range eligible.Iter() {
		if g.HasCandidate(c, s.digit) {
			out = append(out, grid.EliminationDeduction(c, s.digit))
		}
	}
	return out
}

func (s fishStep) Description(g *grid.Grid) string {
	baseNames := houseNames(s.bases)
	coverNames := houseNames(s.covers)
	prefix := ""
	finsPart := ""
	if s.finned {
		prefix = "Finned "
		names := make([]string, 0, s.fins.Len())
		for _, c := range s.fins.Iter() {
			names = append(names, grid.CellName(g.N(), c))
		}
		finsPart = fmt.Sprintf(" and fins (%s)", strings.Join(names, ", "))
	}
	return fmt.Sprintf("%s%s; on value %d with base (%s), cover (%s)%s",
		prefix, grid.FishName(s.degree), s.digit, strings.Join(baseNames, ", "), strings.Join(coverNames, ", "), finsPart)
}

func houseNames(houses []grid.House) []string {
	out := make([]string, len(houses))
	for i, h := range houses {
		out[i] = grid.HouseName(h)
	}
	return out
}
