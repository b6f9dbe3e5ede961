package strategies

import (
	"fmt"

	"github.com/feadoor/sudoxide/internal/grid"
)

// NakedSubsetStrategy finds k unsolved cells in one house whose combined
// candidates number exactly k, locking those digits out of the rest of
// their common neighbourhood.
type NakedSubsetStrategy struct{ Degree int }

func (s NakedSubsetStrategy) Name() string { return fmt.Sprintf("Naked Subset (%d)", s.Degree) }

func (s NakedSubsetStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	for _, h := range g.AllHouses() {
		empties := g.EmptyCellsIn(h.Cells).Iter()
		if len(empties) < 2*s.Degree {
			continue
		}
		for _, combo := range combinationsOfInts(len(empties), s.Degree) {
			cells := grid.NewCellSet(g.N())
			for _, idx := range combo {
				cells = cells.AddCell(empties[idx])
			}
			values := g.CandidatesIn(cells)
			if values.Len() != s.Degree {
				continue
			}
			if !g.CellsWithAnyOfCandidatesIn(g.CommonNeighbours(cells), values).IsEmpty() {
				steps = append(steps, nakedSubsetStep{cells: cells, values: values})
			}
		}
	}
	return steps
}

type nakedSubsetStep struct {
	cells  grid.CellSet
	values grid.CandidateSet
}

func (s nakedSubsetStep) Deductions(g *grid.Grid) []grid.Deduction {
	var out []grid.Deduction
	for _, c := range g.CommonNeighbours(s.cells).Difference(s.cells).Iter() {
		for _, d := range s.values.Iter() {
			if g.HasCandidate(c, d) {
				out = append(out, grid.EliminationDeduction(c, d))
			}
		}
	}
	return out
}

func (s nakedSubsetStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("Naked %s; %s in %s", grid.SubsetName(s.values.Len()), s.values, g.CellSetName(s.cells))
}

// HiddenSubsetStrategy finds k missing digits in a house confined to
// exactly k cells, eliminating every other candidate from those cells.
// Houses with at most 2k empty cells are skipped — they are already
// covered by NakedSubsetStrategy at the same degree.
type HiddenSubsetStrategy struct{ Degree int }

func (s HiddenSubsetStrategy) Name() string { return fmt.Sprintf("Hidden Subset (%d)", s.Degree) }

func (s HiddenSubsetStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	for _, h := range g.AllHouses() {
		empties := g.EmptyCellsIn(h.Cells)
		if empties.Len() <= 2*s.Degree {
			continue
		}
		missing := g.ValuesMissingFrom(h.Cells).Iter()
		if len(missing) < s.Degree {
			continue
		}
		for _, combo := range combinationsOfInts(len(missing), s.Degree) {
			values := grid.NewCandidateSet(g.N())
			for _, idx := range combo {
				values = values.Add(missing[idx])
			}
			cells := grid.NewCellSet(g.N())
			for _, d := range values.Iter() {
				cells = cells.Union(g.CellsWithCandidateIn(h.Cells, d))
			}
			if cells.Len() != s.Degree {
				continue
			}
			if !g.CellsWithAnyOfCandidatesIn(cells, values.Complement()).IsEmpty() {
				steps = append(steps, hiddenSubsetStep{house: h, cells: cells, values: values})
			}
		}
	}
	return steps
}

type hiddenSubsetStep struct {
	house  grid.House
	cells  grid.CellSet
	values grid.CandidateSet
}

func (s hiddenSubsetStep) Deductions(g *grid.Grid) []grid.Deduction {
	var out []grid.Deduction
	for _, c := range s.cells.Iter() {
		for _, d := range g.Candidates(c).Difference(s.values).Iter() {
			out = append(out, grid.EliminationDeduction(c, d))
		}
	}
	return out
}

func (s hiddenSubsetStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("Hidden %s; %s in %s %s",
		grid.SubsetName(s.values.Len()), s.values, grid.HouseName(s.house), g.CellSetName(s.cells))
}
