package solver

import (
	"testing"

	"github.com/feadoor/sudoxide/internal/grid"
	"github.com/feadoor/sudoxide/internal/solver/strategies"
)

// fullHousePuzzle4 is a 4x4 classic grid with exactly one blank per row,
// solvable by Full House alone: row 0 "123.", row 1 ".412", row 2
// "21.3", row 3 "432.".
const fullHousePuzzle4 = "123..41221.3432."

func TestSolveReachesSolvedUsingFullHouseAlone(t *testing.T) {
	g, err := grid.ParseClassic(4, fullHousePuzzle4)
	if err != nil {
		t.Fatalf("ParseClassic: %v", err)
	}

	details := Solve(g, []strategies.Strategy{strategies.FullHouseStrategy{}})
	if details.Status != "Solved" {
		t.Fatalf("expected Solved, got %s", details.Status)
	}
	if len(details.Steps) != 4 {
		t.Fatalf("expected 4 full-house steps, got %d", len(details.Steps))
	}
	if !g.IsSolved() {
		t.Fatalf("grid should be fully solved")
	}
}

func TestSolveReportsInsufficientStrategiesWhenStuck(t *testing.T) {
	g, err := grid.EmptyClassic(4)
	if err != nil {
		t.Fatalf("EmptyClassic: %v", err)
	}
	// An entirely empty grid has no full house, hidden single or naked
	// single anywhere.
	details := Solve(g, []strategies.Strategy{
		strategies.FullHouseStrategy{},
		strategies.HiddenSingleStrategy{},
		strategies.NakedSingleStrategy{},
	})
	if details.Status != "InsufficientStrategies" {
		t.Fatalf("expected InsufficientStrategies, got %s", details.Status)
	}
}

// fullCataloguePuzzle9 is a classic 9x9 grid that needs the full strategy
// catalogue (fish, wings, turbot fish and chains, not just singles and
// subsets) to reach Solved.
const fullCataloguePuzzle9 = "000260701680070090190004500820100040004602900050003028009300074040050036703018000"

func TestSolveReachesSolvedOnFullCataloguePuzzle(t *testing.T) {
	g, err := grid.ParseClassic(9, fullCataloguePuzzle9)
	if err != nil {
		t.Fatalf("ParseClassic: %v", err)
	}

	details := Solve(g, AllStrategies(9))
	if details.Status != "Solved" {
		t.Fatalf("expected Solved, got %s", details.Status)
	}
	if !g.IsSolved() {
		t.Fatalf("grid should be fully solved")
	}

	for _, h := range g.AllHouses() {
		seen := grid.NewCandidateSet(g.N())
		for _, c := range h.Cells.Iter() {
			v, ok := g.Value(c)
			if !ok {
				t.Fatalf("cell %s in house %s is unfilled", grid.CellName(g.N(), c), grid.HouseName(h))
			}
			if seen.Contains(v) {
				t.Fatalf("digit %d repeated in house %s", v, grid.HouseName(h))
			}
			seen = seen.Add(v)
		}
	}
}

func TestAllStrategiesIncludesEveryTier(t *testing.T) {
	strats := AllStrategies(9)
	names := map[string]bool{}
	for _, s := range strats {
		names[s.Name()] = true
	}
	for _, want := range []string{
		"Full House", "Hidden Single", "Naked Single", "Pointing/Claiming",
		"XY-Chain", "X-Chain", "AIC", "ALS-AIC",
	} {
		if !names[want] {
			t.Fatalf("expected AllStrategies to include %q, got %v", want, names)
		}
	}
}
