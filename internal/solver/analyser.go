package solver

import (
	"github.com/feadoor/sudoxide/internal/grid"
	"github.com/feadoor/sudoxide/internal/solver/strategies"
	"github.com/feadoor/sudoxide/pkg/constants"
)

// Tier names the strategy groups DefaultGroups bins AllStrategies into, so a
// caller can report StepsToSolve's per-group counts against a stable label
// rather than a bare index.
var Tier = []string{
	constants.TierSingles,
	constants.TierSubsets,
	constants.TierFish,
	constants.TierWings,
	constants.TierChains,
}

// DefaultGroups bins AllStrategies(n) into the five cost tiers named by
// Tier, for use with StepsToSolve when rating a puzzle's difficulty by the
// hardest tier it requires.
func DefaultGroups(n int) [][]strategies.Strategy {
	groups := make([][]strategies.Strategy, len(Tier))
	for _, strat := range AllStrategies(n) {
		groups[tierOf(strat)] = append(groups[tierOf(strat)], strat)
	}
	return groups
}

func tierOf(strat strategies.Strategy) int {
	switch strat.(type) {
	case strategies.FullHouseStrategy, strategies.HiddenSingleStrategy, strategies.NakedSingleStrategy,
		strategies.PointingClaimingStrategy:
		return 0
	case strategies.NakedSubsetStrategy, strategies.HiddenSubsetStrategy:
		return 1
	case strategies.FishStrategy, strategies.FinnedFishStrategy, strategies.TurbotStrategy:
		return 2
	case strategies.YWingStrategy, strategies.WWingStrategy, strategies.XYZWingStrategy:
		return 3
	default:
		return 4
	}
}

// StepsToSolve repeatedly scans groups of strategies in order, restarting
// from the first group every time any group in the scan makes progress,
// and tallies how many times each group contributed a deduction. It
// reports ok=false if a contradiction is reached or no group in a full
// pass produces anything, leaving the grid unsolved.
//
// Restarting from group 0 after every successful group models a solver
// that always reaches for its cheapest applicable technique first, which
// is what makes the resulting counts usable as a difficulty signal: a
// puzzle solvable by groups[0] alone never touches groups[1:].
func StepsToSolve(g *grid.Grid, groups [][]strategies.Strategy) ([]int, bool) {
	counts := make([]int, len(groups))

outer:
	for !g.IsSolved() {
		for idx, group := range groups {
			var deductions []grid.Deduction
			for _, strat := range group {
				for _, step := range strat.FindSteps(g) {
					deductions = append(deductions, step.Deductions(g)...)
				}
			}
			if len(deductions) == 0 {
				continue
			}
			for _, d := range deductions {
				if d.Kind == grid.Contradiction {
					return counts, false
				}
				g.ApplyDeduction(d)
			}
			counts[idx]++
			continue outer
		}
		break
	}

	return counts, g.IsSolved()
}
