package strategies

import (
	"fmt"

	"github.com/feadoor/sudoxide/internal/grid"
)

// TurbotStrategy covers the three "turbot fish" shapes: Skyscraper (two
// rows or two columns), Two-String Kite (a row and a column whose
// intersection carries no candidate), and Empty Rectangle (a line and a
// region it doesn't meet). All three reduce to the same formula: take the
// candidate cells of digit in a pair of "base" houses, scan every house in
// the grid as a candidate "cover", and eliminate digit from whatever sees
// every base cell the cover doesn't already account for.
type TurbotStrategy struct{}

func (TurbotStrategy) Name() string { return "Turbot" }

func (TurbotStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	for d := 1; d <= g.N(); d++ {
		digit := grid.Candidate(d)
		steps = append(steps, findSkyscrapers(g, digit)...)
		steps = append(steps, findKites(g, digit)...)
		steps = append(steps, findRectangles(g, digit)...)
	}
	return steps
}

// findSkyscrapers pairs up rows with rows, and columns with columns, both
// carrying digit.
func findSkyscrapers(g *grid.Grid, digit grid.Candidate) []Step {
	var steps []Step
	for _, lines := range [][]grid.House{g.RowsWithCandidate(digit), g.ColsWithCandidate(digit)} {
		for i := 0; i < len(lines); i++ {
			for j := i + 1; j < len(lines); j++ {
				steps = append(steps, findForBases(g, "Skyscraper", digit, lines[i], lines[j])...)
			}
		}
	}
	return steps
}

// findKites pairs a row with a column, restricted to pairs whose
// intersection cell doesn't itself admit digit (otherwise the "kite" would
// overlap its own base).
func findKites(g *grid.Grid, digit grid.Candidate) []Step {
	var steps []Step
	for _, row := range g.RowsWithCandidate(digit) {
		for _, col := range g.ColsWithCandidate(digit) {
			if g.CandidateAppearsIn(row.Cells.Intersection(col.Cells), digit) {
				continue
			}
			steps = append(steps, findForBases(g, "2-String Kite", digit, row, col)...)
		}
	}
	return steps
}

// findRectangles pairs a line (row or column) carrying digit with a region
// carrying digit that the line doesn't meet.
func findRectangles(g *grid.Grid, digit grid.Candidate) []Step {
	var steps []Step
	lines := append(append([]grid.House{}, g.RowsWithCandidate(digit)...), g.ColsWithCandidate(digit)...)
	for _, line := range lines {
		for _, region := range g.RegionsWithCandidate(digit) {
			if line.Cells.Intersects(region.Cells) {
				continue
			}
			steps = append(steps, findForBases(g, "Empty Rectangle", digit, line, region)...)
		}
	}
	return steps
}

// findForBases scans every house as a cover for the given base pair and
// emits a step wherever the cover leaves at least one eliminable cell.
func findForBases(g *grid.Grid, name string, digit grid.Candidate, base1, base2 grid.House) []Step {
	var steps []Step
	base := g.CellsWithCandidateIn(base1.Cells.Union(base2.Cells), digit)
	for _, cover := range g.AllHouses() {
		coverCells := g.CellsWithCandidateIn(cover.Cells, digit)
		elim := g.CommonNeighbours(base.Difference(coverCells))
		if !g.CandidateAppearsIn(elim, digit) {
			continue
		}
		steps = append(steps, turbotStep{
			name: name, digit: digit, base1: base1, base2: base2, cover: cover,
			base: base, coverCells: coverCells,
		})
	}
	return steps
}

type turbotStep struct {
	name               string
	digit              grid.Candidate
	base1, base2, cover grid.House
	base               grid.CellSet
	coverCells         grid.CellSet
}

func (s turbotStep) Deductions(g *grid.Grid) []grid.Deduction {
	var out []grid.Deduction
	for _, c := range g.CommonNeighbours(s.base.Difference(s.coverCells)).Iter() {
		if g.HasCandidate(c, s.digit) {
			out = append(out, grid.EliminationDeduction(c, s.digit))
		}
	}
	return out
}

func (s turbotStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("%s; %d in %s and %s, linked by %s",
		s.name, s.digit, g.CellSetName(s.base1.Cells), g.CellSetName(s.base2.Cells), g.CellSetName(s.cover.Cells))
}
