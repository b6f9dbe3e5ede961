package strategies

import (
	"testing"

	"github.com/feadoor/sudoxide/internal/grid"
)

// TestNakedSubsetEliminatesFromCommonNeighbours puts the same two
// candidates {1,2} in both (0,0) and (0,1), which share row 0 and box 0;
// the naked pair should eliminate 1 and 2 from the rest of both houses.
func TestNakedSubsetEliminatesFromCommonNeighbours(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic(9): %v", err)
	}
	setCandidates(g, grid.NewCellIdx(9, 0, 0), 1, 2)
	setCandidates(g, grid.NewCellIdx(9, 0, 1), 1, 2)

	steps := NakedSubsetStrategy{Degree: 2}.FindSteps(g)
	if !containsElimination(steps, g, grid.NewCellIdx(9, 0, 5), grid.Candidate(1)) {
		t.Fatalf("expected the naked pair to eliminate 1 elsewhere in row 0")
	}
	if !containsElimination(steps, g, grid.NewCellIdx(9, 2, 2), grid.Candidate(2)) {
		t.Fatalf("expected the naked pair to eliminate 2 elsewhere in box 0")
	}
}

// TestHiddenSubsetEliminatesOtherCandidatesFromItsCells confines digits 7
// and 8, within row 0, to cells (0,3) and (0,4) only — but those two cells
// also admit other digits, so this is a hidden, not naked, pair. The
// hidden subset should strip every candidate but 7 and 8 from both cells.
func TestHiddenSubsetEliminatesOtherCandidatesFromItsCells(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic(9): %v", err)
	}
	for c := 0; c < 9; c++ {
		if c == 3 || c == 4 {
			continue
		}
		g.EliminateCandidate(grid.NewCellIdx(9, 0, c), grid.Candidate(7))
		g.EliminateCandidate(grid.NewCellIdx(9, 0, c), grid.Candidate(8))
	}

	steps := HiddenSubsetStrategy{Degree: 2}.FindSteps(g)
	if !containsElimination(steps, g, grid.NewCellIdx(9, 0, 3), grid.Candidate(1)) {
		t.Fatalf("expected the hidden pair to strip candidate 1 from (0,3)")
	}
	if !containsElimination(steps, g, grid.NewCellIdx(9, 0, 4), grid.Candidate(1)) {
		t.Fatalf("expected the hidden pair to strip candidate 1 from (0,4)")
	}
	if containsElimination(steps, g, grid.NewCellIdx(9, 0, 3), grid.Candidate(7)) {
		t.Fatalf("the hidden pair's own digits must not be eliminated from its cells")
	}
}
