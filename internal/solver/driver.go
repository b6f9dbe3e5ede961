// Package solver drives the strategy catalogue to completion against a
// grid, and builds the catalogue itself in escalating order of cost.
package solver

import (
	"github.com/feadoor/sudoxide/internal/grid"
	"github.com/feadoor/sudoxide/internal/solver/strategies"
	"github.com/feadoor/sudoxide/pkg/constants"
)

// AppliedStep pairs a found Step with the deductions it produced at the
// moment it was applied, so a caller can render the full solve trace.
type AppliedStep struct {
	Step        strategies.Step
	Deductions  []grid.Deduction
}

// Details is the outcome of a solve attempt: the terminal status plus the
// full trace of steps taken to reach it.
type Details struct {
	Status string
	Steps  []AppliedStep
}

// Solve repeatedly finds and applies the first Step any strategy in order
// produces, until the grid is solved, a contradiction is found, or no
// strategy can make progress.
func Solve(g *grid.Grid, strats []strategies.Strategy) Details {
	var details Details
	for !g.IsSolved() {
		step, deductions, found := findStep(g, strats)
		if !found {
			details.Status = constants.StatusInsufficientStrategies
			return details
		}
		details.Steps = append(details.Steps, AppliedStep{Step: step, Deductions: deductions})

		for _, d := range deductions {
			if d.Kind == grid.Contradiction {
				details.Status = constants.StatusContradiction
				return details
			}
			g.ApplyDeduction(d)
		}
	}
	details.Status = constants.StatusSolved
	return details
}

// findStep returns the first Step (in strategy order, then FindSteps
// enumeration order) whose Deductions are non-empty.
func findStep(g *grid.Grid, strats []strategies.Strategy) (strategies.Step, []grid.Deduction, bool) {
	for _, strat := range strats {
		for _, step := range strat.FindSteps(g) {
			deductions := step.Deductions(g)
			if len(deductions) > 0 {
				return step, deductions, true
			}
		}
	}
	return nil, nil, false
}

// AllStrategies builds the full catalogue for an N-valued grid, in the
// escalating-cost order: singles, intersections, subsets, basic fish,
// turbot-family single-digit patterns, wings, finned fish, then chains.
func AllStrategies(n int) []strategies.Strategy {
	strats := []strategies.Strategy{
		strategies.FullHouseStrategy{},
		strategies.HiddenSingleStrategy{},
		strategies.NakedSingleStrategy{},
		strategies.PointingClaimingStrategy{},
	}
	for k := 2; k <= n/2; k++ {
		strats = append(strats, strategies.NakedSubsetStrategy{Degree: k})
	}
	for k := 2; k <= n/2; k++ {
		strats = append(strats, strategies.HiddenSubsetStrategy{Degree: k})
	}
	for k := 2; k <= n/2; k++ {
		strats = append(strats, strategies.FishStrategy{Degree: k})
	}
	strats = append(strats, strategies.TurbotStrategy{})
	strats = append(strats,
		strategies.YWingStrategy{},
		strategies.WWingStrategy{},
		strategies.XYZWingStrategy{},
	)
	for k := 2; k <= n/2; k++ {
		strats = append(strats, strategies.FinnedFishStrategy{Degree: k})
	}
	strats = append(strats,
		strategies.XYChainStrategy{},
		strategies.XChainStrategy{},
		strategies.AICStrategy{},
		strategies.AlsAICStrategy{},
	)
	return strats
}
