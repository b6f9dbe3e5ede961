package strategies

import (
	"testing"

	"github.com/feadoor/sudoxide/internal/grid"
)

// buildSkyscraperGrid confines digit 5, within column 2, to rows 1 and 8,
// and within column 7, to rows 2 and 8 — a Skyscraper with its base in
// row 8 and its roof cells (1,2) and (2,7) in the same band. Whatever
// sees both roof cells and still admits 5 — (1,6), (1,8), (2,0), (2,1) —
// should lose it.
func buildSkyscraperGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic(9): %v", err)
	}
	for r := 0; r < 9; r++ {
		if r != 1 && r != 8 {
			g.EliminateCandidate(grid.NewCellIdx(9, r, 2), grid.Candidate(5))
		}
		if r != 2 && r != 8 {
			g.EliminateCandidate(grid.NewCellIdx(9, r, 7), grid.Candidate(5))
		}
	}
	return g
}

func TestTurbotFindsSkyscraperAcrossLinkedColumns(t *testing.T) {
	g := buildSkyscraperGrid(t)
	steps := TurbotStrategy{}.FindSteps(g)
	if !containsElimination(steps, g, grid.NewCellIdx(9, 1, 6), grid.Candidate(5)) {
		t.Fatalf("expected a Skyscraper elimination of 5 at (1,6)")
	}
	if !containsElimination(steps, g, grid.NewCellIdx(9, 2, 0), grid.Candidate(5)) {
		t.Fatalf("expected a Skyscraper elimination of 5 at (2,0)")
	}
}

// TestTurbotFindsEmptyRectangle builds a region (box 0) whose candidates
// for digit 6 are confined to row 0 and column 2 — the "empty rectangle"
// corner — paired with a conjugate pair for 6 in row 5 at columns 2 and 7.
// Covering column 2 cancels the region's column-2 cells and the
// conjugate's column-2 end, leaving only the region's row-0 cells and the
// conjugate's free end (5,7); their common neighbour (0,7) should lose 6.
func TestTurbotFindsEmptyRectangle(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic(9): %v", err)
	}
	// Box 0 (rows 0-2, cols 0-2): confine digit 6 to row 0 and column 2.
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r != 0 && c != 2 {
				g.EliminateCandidate(grid.NewCellIdx(9, r, c), grid.Candidate(6))
			}
		}
	}
	// Row 5 confines digit 6 to columns 2 and 7 (a conjugate pair).
	for c := 0; c < 9; c++ {
		if c != 2 && c != 7 {
			g.EliminateCandidate(grid.NewCellIdx(9, 5, c), grid.Candidate(6))
		}
	}

	steps := TurbotStrategy{}.FindSteps(g)
	// (0,7) sees the region (row 0) and the conjugate partner's free cell
	// (5,7) via column 7 — a classic Empty Rectangle elimination.
	if !containsElimination(steps, g, grid.NewCellIdx(9, 0, 7), grid.Candidate(6)) {
		t.Fatalf("expected an Empty Rectangle elimination of 6 at (0,7)")
	}
}
