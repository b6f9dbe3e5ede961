package strategies

import (
	"testing"

	"github.com/feadoor/sudoxide/internal/grid"
)

// setCandidates restricts cell's remaining candidates to exactly digits,
// for building hand-crafted strategy scenarios.
func setCandidates(g *grid.Grid, cell grid.CellIdx, digits ...grid.Candidate) {
	keep := map[grid.Candidate]bool{}
	for _, d := range digits {
		keep[d] = true
	}
	for d := 1; d <= g.N(); d++ {
		if !keep[grid.Candidate(d)] {
			g.EliminateCandidate(cell, grid.Candidate(d))
		}
	}
}

func containsElimination(steps []Step, g *grid.Grid, cell grid.CellIdx, digit grid.Candidate) bool {
	for _, step := range steps {
		for _, d := range step.Deductions(g) {
			if d.Kind == grid.Elimination && d.Cell == cell && d.Value == digit {
				return true
			}
		}
	}
	return false
}

// TestFishEliminatesFromCoverLinesOutsideBase builds a classic X-Wing:
// digit 4 confined, within rows 1 and 4, to columns 2 and 6.
// Fish(2) over rows should then eliminate 4 from columns 2 and 6 in every
// other row.
func TestFishEliminatesFromCoverLinesOutsideBase(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic(9): %v", err)
	}
	for r := 0; r < 9; r++ {
		if r != 1 && r != 4 {
			continue
		}
		for c := 0; c < 9; c++ {
			if c != 2 && c != 6 {
				g.EliminateCandidate(grid.NewCellIdx(9, r, c), grid.Candidate(4))
			}
		}
	}

	steps := FishStrategy{Degree: 2}.FindSteps(g)
	if !containsElimination(steps, g, grid.NewCellIdx(9, 0, 2), grid.Candidate(4)) {
		t.Fatalf("expected Fish(2) to eliminate 4 from column 2 outside rows 1 and 4")
	}
	if !containsElimination(steps, g, grid.NewCellIdx(9, 0, 6), grid.Candidate(4)) {
		t.Fatalf("expected Fish(2) to eliminate 4 from column 6 outside rows 1 and 4")
	}
	if containsElimination(steps, g, grid.NewCellIdx(9, 0, 0), grid.Candidate(4)) {
		t.Fatalf("Fish(2) must not eliminate 4 outside the cover columns")
	}
}

func TestFinnedFishRestrictsEliminationsToFinNeighbours(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic(9): %v", err)
	}
	// Rows 1 and 4 confine digit 4 to columns 2 and 6, except row 4 also
	// keeps a fin at column 8 (box 5, rows 3-5 / cols 6-8). Covering
	// columns 2 and 6 leaves only that fin uncovered, restricting
	// eliminations to its own box neighbours in column 6.
	for r := 0; r < 9; r++ {
		if r != 1 && r != 4 {
			continue
		}
		for c := 0; c < 9; c++ {
			keep := c == 2 || c == 6 || (r == 4 && c == 8)
			if !keep {
				g.EliminateCandidate(grid.NewCellIdx(9, r, c), grid.Candidate(4))
			}
		}
	}

	steps := FinnedFishStrategy{Degree: 2}.FindSteps(g)
	if !containsElimination(steps, g, grid.NewCellIdx(9, 3, 6), grid.Candidate(4)) {
		t.Fatalf("expected a finned elimination of 4 at (3,6), seeing the fin at (4,8) via their shared box")
	}
	if !containsElimination(steps, g, grid.NewCellIdx(9, 5, 6), grid.Candidate(4)) {
		t.Fatalf("expected a finned elimination of 4 at (5,6), seeing the fin at (4,8) via their shared box")
	}
}
