package strategies

import (
	"fmt"

	"github.com/feadoor/sudoxide/internal/grid"
)

// PointingClaimingStrategy: for a house H and digit d, the cells in H
// admitting d restrict d's placement within that house; any cell that sees
// every one of those cells (and is outside H) may have d eliminated.
type PointingClaimingStrategy struct{}

func (PointingClaimingStrategy) Name() string { return "Pointing/Claiming" }

func (PointingClaimingStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	for _, h := range g.AllHouses() {
		for _, d := range g.ValuesMissingFrom(h.Cells).Iter() {
			cells := g.CellsWithCandidateIn(h.Cells, d)
			if cells.IsEmpty() {
				continue
			}
			if !g.CandidateAppearsIn(g.CommonNeighbours(cells), d) {
				continue
			}
			steps = append(steps, pointingClaimingStep{house: h, digit: d, cells: cells})
		}
	}
	return steps
}

type pointingClaimingStep struct {
	house grid.House
	digit grid.Candidate
	cells grid.CellSet
}

func (s pointingClaimingStep) Deductions(g *grid.Grid) []grid.Deduction {
	var out []grid.Deduction
	for _, c := range g.CommonNeighbours(s.cells).Difference(s.house.Cells).Iter() {
		if g.HasCandidate(c, s.digit) {
			out = append(out, grid.EliminationDeduction(c, s.digit))
		}
	}
	return out
}

func (s pointingClaimingStep) Description(g *grid.Grid) string {
	return fmt.Sprintf("Pointing/Claiming; the %ds in %s eliminate further %ds from common neighbours",
		s.digit, grid.HouseName(s.house), s.digit)
}
