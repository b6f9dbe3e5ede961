package strategies

import (
	"fmt"

	"github.com/feadoor/sudoxide/internal/grid"
)

// FullHouseStrategy finds houses with exactly one unsolved cell.
type FullHouseStrategy struct{}

func (FullHouseStrategy) Name() string { return "Full House" }

func (FullHouseStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	for _, h := range g.AllHouses() {
		empties := g.EmptyCellsIn(h.Cells)
		if empties.Len() != 1 {
			continue
		}
		cell, _ := empties.First()
		if d, ok := g.FirstCandidate(cell); ok {
			steps = append(steps, fullHouseStep{cell: cell, house: h, digit: d})
		} else {
			steps = append(steps, noCandidatesStep{cell: cell})
		}
	}
	return steps
}

type fullHouseStep struct {
	cell  grid.CellIdx
	house grid.House
	digit grid.Candidate
}

func (s fullHouseStep) Deductions(g *grid.Grid) []grid.Deduction {
	return []grid.Deduction{grid.PlacementDeduction(s.cell, s.digit)}
}

func (s fullHouseStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("Full House; %s is the last cell in %s, and must contain %d",
		grid.CellName(g.N(), s.cell), grid.HouseName(s.house), s.digit)
}

// noCandidatesStep and noPlaceStep are the two strategy-proven dead ends:
// an unsolved cell with nothing left to hold, and a house with nowhere
// left to put a missing digit.
type noCandidatesStep struct {
	cell grid.CellIdx
}

func (s noCandidatesStep) Deductions(g *grid.Grid) []grid.Deduction {
	return []grid.Deduction{grid.ContradictionDeduction()}
}

func (s noCandidatesStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("No candidates remain for cell %s", grid.CellName(g.N(), s.cell))
}

type noPlaceStep struct {
	house grid.House
	digit grid.Candidate
}

func (s noPlaceStep) Deductions(g *grid.Grid) []grid.Deduction {
	return []grid.Deduction{grid.ContradictionDeduction()}
}

func (s noPlaceStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("No place for %d in %s", s.digit, grid.HouseName(s.house))
}

// HiddenSingleStrategy finds, for a house and digit, exactly one cell that
// admits that digit.
type HiddenSingleStrategy struct{}

func (HiddenSingleStrategy) Name() string { return "Hidden Single" }

func (HiddenSingleStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	for _, h := range g.AllHouses() {
		missing := g.ValuesMissingFrom(h.Cells)
		for _, d := range missing.Iter() {
			admitting := g.CellsWithCandidateIn(h.Cells, d)
			switch admitting.Len() {
			case 0:
				steps = append(steps, noPlaceStep{house: h, digit: d})
			case 1:
				cell, _ := admitting.First()
				steps = append(steps, hiddenSingleStep{cell: cell, house: h, digit: d})
			}
		}
	}
	return steps
}

type hiddenSingleStep struct {
	cell  grid.CellIdx
	house grid.House
	digit grid.Candidate
}

func (s hiddenSingleStep) Deductions(g *grid.Grid) []grid.Deduction {
	return []grid.Deduction{grid.PlacementDeduction(s.cell, s.digit)}
}

func (s hiddenSingleStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("Hidden Single; %s is the only place for %d in %s",
		grid.CellName(g.N(), s.cell), s.digit, grid.HouseName(s.house))
}

// NakedSingleStrategy finds unsolved cells with exactly one candidate.
type NakedSingleStrategy struct{}

func (NakedSingleStrategy) Name() string { return "Naked Single" }

func (NakedSingleStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	for _, cell := range g.EmptyCells().Iter() {
		switch g.NumCandidates(cell) {
		case 0:
			steps = append(steps, noCandidatesStep{cell: cell})
		case 1:
			d, _ := g.FirstCandidate(cell)
			steps = append(steps, nakedSingleStep{cell: cell, digit: d})
		}
	}
	return steps
}

type nakedSingleStep struct {
	cell  grid.CellIdx
	digit grid.Candidate
}

func (s nakedSingleStep) Deductions(g *grid.Grid) []grid.Deduction {
	return []grid.Deduction{grid.PlacementDeduction(s.cell, s.digit)}
}

func (s nakedSingleStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("Naked Single; %s can only contain %d", grid.CellName(g.N(), s.cell), s.digit)
}
