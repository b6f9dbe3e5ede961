package strategies

import (
	"testing"

	"github.com/feadoor/sudoxide/internal/grid"
)

func TestPointingClaimingEliminatesAcrossBoxIntoRow(t *testing.T) {
	g, err := grid.EmptyClassic(4)
	if err != nil {
		t.Fatalf("EmptyClassic(4): %v", err)
	}
	// Box 0 is cells {0,1,4,5}. Confine digit 1 within it to row 0 (cells
	// 0 and 1) by removing it from cells 4 and 5.
	g.EliminateCandidate(grid.CellIdx(4), grid.Candidate(1))
	g.EliminateCandidate(grid.CellIdx(5), grid.Candidate(1))

	steps := PointingClaimingStrategy{}.FindSteps(g)

	var found bool
	for _, step := range steps {
		deductions := step.Deductions(g)
		for _, d := range deductions {
			if d.Kind == grid.Elimination && d.Value == 1 && (d.Cell == grid.CellIdx(2) || d.Cell == grid.CellIdx(3)) {
				found = true
			}
			if d.Kind == grid.Elimination && d.Value == 1 && (d.Cell == grid.CellIdx(0) || d.Cell == grid.CellIdx(1)) {
				t.Fatalf("pointing/claiming must not eliminate from the confining house's own cells")
			}
		}
	}
	if !found {
		t.Fatalf("expected an elimination of digit 1 from row 0 outside box 0")
	}
}

func TestPointingClaimingSkipsHousesWithNoCandidateCells(t *testing.T) {
	g, err := grid.EmptyClassic(4)
	if err != nil {
		t.Fatalf("EmptyClassic(4): %v", err)
	}
	for _, c := range []grid.CellIdx{0, 1, 4, 5} {
		g.EliminateCandidate(c, grid.Candidate(1))
	}
	steps := PointingClaimingStrategy{}.FindSteps(g)
	for _, step := range steps {
		pcStep, ok := step.(pointingClaimingStep)
		if !ok {
			continue
		}
		box0 := grid.CellsFrom(4, grid.CellIdx(0), grid.CellIdx(1), grid.CellIdx(4), grid.CellIdx(5))
		if pcStep.digit == 1 && pcStep.house.Cells.Equal(box0) {
			t.Fatalf("a house with no candidate cells for a digit should not produce a step for it")
		}
	}
}
