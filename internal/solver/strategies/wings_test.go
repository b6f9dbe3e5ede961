package strategies

import (
	"testing"

	"github.com/feadoor/sudoxide/internal/grid"
)

// TestYWingEliminatesFromCommonNeighbourOfPincers builds a pivot/pincer
// triple all sharing box 0: pivot {1,2} at (0,0), pincers {1,3} at (0,2)
// and {2,3} at (2,0). Cell (1,1) shares box 0 with all three, so digit 3
// (the pincers' shared non-pivot digit) should be eliminated there.
func TestYWingEliminatesFromCommonNeighbourOfPincers(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic(9): %v", err)
	}
	setCandidates(g, grid.NewCellIdx(9, 0, 0), 1, 2)
	setCandidates(g, grid.NewCellIdx(9, 0, 2), 1, 3)
	setCandidates(g, grid.NewCellIdx(9, 2, 0), 2, 3)

	steps := YWingStrategy{}.FindSteps(g)
	if !containsElimination(steps, g, grid.NewCellIdx(9, 1, 1), grid.Candidate(3)) {
		t.Fatalf("expected Y-Wing to eliminate 3 from (1,1)")
	}
}

// TestXYZWingEliminatesFromCommonNeighbourOfAllThree uses the same box-0
// layout, but with a trivalue pivot {1,2,3}: the pincers must now share
// a neighbour with the pivot too, so only (1,1) (in box 0 with all three)
// qualifies, not e.g. a cell that only sees the pincers.
func TestXYZWingEliminatesFromCommonNeighbourOfAllThree(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic(9): %v", err)
	}
	setCandidates(g, grid.NewCellIdx(9, 0, 0), 1, 2, 3)
	setCandidates(g, grid.NewCellIdx(9, 0, 2), 1, 3)
	setCandidates(g, grid.NewCellIdx(9, 2, 0), 2, 3)

	steps := XYZWingStrategy{}.FindSteps(g)
	if !containsElimination(steps, g, grid.NewCellIdx(9, 1, 1), grid.Candidate(3)) {
		t.Fatalf("expected XYZ-Wing to eliminate 3 from (1,1)")
	}
}

// TestWWingEliminatesFromCommonNeighbourOfPincers builds two bivalue
// pincers {1,2} far apart (rows/boxes 0 and (1,1)), linked by column 7:
// digit 1 there only appears in the rows the pincers already see (row 0
// and row 4), so it is "covered", and digit 2 is eliminated from the
// pincers' common neighbours (0,4) and (4,0).
func TestWWingEliminatesFromCommonNeighbourOfPincers(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic(9): %v", err)
	}
	p1 := grid.NewCellIdx(9, 0, 0)
	p2 := grid.NewCellIdx(9, 4, 4)
	setCandidates(g, p1, 1, 2)
	setCandidates(g, p2, 1, 2)

	for r := 0; r < 9; r++ {
		if r == 0 || r == 4 {
			continue
		}
		g.EliminateCandidate(grid.NewCellIdx(9, r, 7), grid.Candidate(1))
	}

	steps := WWingStrategy{}.FindSteps(g)
	if !containsElimination(steps, g, grid.NewCellIdx(9, 0, 4), grid.Candidate(2)) {
		t.Fatalf("expected W-Wing to eliminate 2 from (0,4)")
	}
	if !containsElimination(steps, g, grid.NewCellIdx(9, 4, 0), grid.Candidate(2)) {
		t.Fatalf("expected W-Wing to eliminate 2 from (4,0)")
	}
}
