// Package strategies implements the catalogue of human-style deduction
// techniques that the solver driver applies, in escalating order of cost,
// from full house up through alternating inference chains.
package strategies

import "github.com/feadoor/sudoxide/internal/grid"

// Step is a located, named application of a Strategy. FindSteps
// enumeration order must be deterministic given grid contents; a Step
// whose Deductions would be empty is never emitted by a well-behaved
// Strategy, but callers still filter defensively.
type Step interface {
	Deductions(g *grid.Grid) []grid.Deduction
	Description(g *grid.Grid) string
}

// Strategy is a stateless, configuration-bearing kind tag that enumerates
// Steps over a grid.
type Strategy interface {
	Name() string
	FindSteps(g *grid.Grid) []Step
}
