package bruteforce

import (
	"testing"

	"github.com/feadoor/sudoxide/internal/grid"
)

func classicClues(s string) []int {
	clues := make([]int, len(s))
	for i, r := range s {
		if r >= '1' && r <= '9' {
			clues[i] = int(r - '0')
		}
	}
	return clues
}

func TestHasUniqueSolutionOnKnownUniquePuzzle(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic: %v", err)
	}
	puzzle := "000260701680070090190004500820100040004602900050003028009300074040050036703018000"
	if !HasUniqueSolution(g, classicClues(puzzle)) {
		t.Fatalf("expected puzzle to have a unique solution")
	}
}

func TestHasUniqueSolutionRejectsTooFewClues(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic: %v", err)
	}
	// A single clue leaves vastly more than one completion.
	clues := make([]int, 81)
	clues[0] = 5
	if HasUniqueSolution(g, clues) {
		t.Fatalf("expected a single clue to admit more than one solution")
	}
}

func TestHasUniqueSolutionRejectsContradictingClues(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic: %v", err)
	}
	clues := make([]int, 81)
	clues[0] = 5 // r1c1
	clues[1] = 5 // r1c2, same row: contradiction
	if HasUniqueSolution(g, clues) {
		t.Fatalf("expected contradicting clues to have no solution")
	}
}

func TestSolutionCompletesKnownPuzzle(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic: %v", err)
	}
	s := NewForEmptyGrid(g)
	clues := classicClues("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")

	if !s.HasUniqueSolution(clues) {
		t.Fatalf("expected puzzle to have a unique solution")
	}

	solution := s.Solution(clues)
	if solution == nil {
		t.Fatalf("expected a solution")
	}
	wantFirstRow := []int{5, 3, 4, 6, 7, 8, 9, 1, 2}
	for c, want := range wantFirstRow {
		if solution[c] != want {
			t.Fatalf("solution[%d] = %d, want %d", c, solution[c], want)
		}
	}
	for i, d := range clues {
		if d != 0 && solution[i] != d {
			t.Fatalf("solution overwrote clue at %d: got %d, want %d", i, solution[i], d)
		}
	}
}

func TestSolverIsReusableAcrossRuns(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic: %v", err)
	}
	s := NewForEmptyGrid(g)
	puzzle := classicClues("000260701680070090190004500820100040004602900050003028009300074040050036703018000")

	if !s.HasUniqueSolution(puzzle) {
		t.Fatalf("expected unique solution on first run")
	}
	if !s.HasUniqueSolution(puzzle) {
		t.Fatalf("expected unique solution on reused solver")
	}
}

func TestNewForStartingGridHonoursPlacedValues(t *testing.T) {
	g, err := grid.EmptyClassic(9)
	if err != nil {
		t.Fatalf("EmptyClassic: %v", err)
	}
	g.PlaceValue(grid.CellIdx(0), grid.Candidate(5))

	s := NewForStartingGrid(g)
	clues := make([]int, 81)
	clues[1] = 5 // same row as the already-placed 5: contradiction
	if s.HasUniqueSolution(clues) {
		t.Fatalf("expected starting-grid placement to be honoured as a constraint")
	}
}
