package solver

import (
	"testing"

	"github.com/feadoor/sudoxide/internal/grid"
	"github.com/feadoor/sudoxide/internal/solver/strategies"
)

func TestStepsToSolveCountsOnlyTheGroupThatContributed(t *testing.T) {
	g, err := grid.ParseClassic(4, fullHousePuzzle4)
	if err != nil {
		t.Fatalf("ParseClassic: %v", err)
	}

	groups := [][]strategies.Strategy{
		{strategies.FullHouseStrategy{}},
		{strategies.HiddenSingleStrategy{}, strategies.NakedSingleStrategy{}},
	}
	counts, ok := StepsToSolve(g, groups)
	if !ok {
		t.Fatalf("expected the puzzle to be solved")
	}
	if counts[0] != 4 {
		t.Fatalf("expected 4 full-house applications, got %d", counts[0])
	}
	if counts[1] != 0 {
		t.Fatalf("expected the harder group never to be needed, got %d", counts[1])
	}
}

func TestDefaultGroupsRatesAnEasyPuzzleAsSinglesOnly(t *testing.T) {
	g, err := grid.ParseClassic(4, fullHousePuzzle4)
	if err != nil {
		t.Fatalf("ParseClassic: %v", err)
	}
	counts, ok := StepsToSolve(g, DefaultGroups(4))
	if !ok {
		t.Fatalf("expected the puzzle to be solved")
	}
	for tier, count := range counts {
		if tier == 0 {
			continue
		}
		if count != 0 {
			t.Fatalf("expected tier %q never to be needed, got %d", Tier[tier], count)
		}
	}
}

func TestStepsToSolveFailsWhenNoGroupMakesProgress(t *testing.T) {
	g, err := grid.EmptyClassic(4)
	if err != nil {
		t.Fatalf("EmptyClassic: %v", err)
	}
	groups := [][]strategies.Strategy{{strategies.FullHouseStrategy{}}}
	_, ok := StepsToSolve(g, groups)
	if ok {
		t.Fatalf("expected an empty grid to be unsolvable by Full House alone")
	}
}
