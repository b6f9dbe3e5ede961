// Package constants collects the fixed numeric and string values shared
// across the grid, solver and generator packages.
package constants

// Classic grid sizing. Other sizes are supported by the grid package at
// runtime, but these are the defaults exercised by the CLI drivers.
const (
	ClassicN        = 9
	ClassicBoxSize  = 3
	ClassicCells    = ClassicN * ClassicN
	ClassicMinClues = 17
)

// Brute-force solver limits.
const (
	UniquenessCap = 2
)

// Strategy tiers, used by the analyser to group strategies of comparable
// cost when ranking puzzle difficulty.
const (
	TierSingles  = "singles"
	TierSubsets  = "subsets"
	TierFish     = "fish"
	TierWings    = "wings"
	TierChains   = "chains"
)

// Solve driver status strings, printed by the solve CLI.
const (
	StatusSolved                = "Solved"
	StatusContradiction         = "Contradiction"
	StatusInsufficientStrategies = "InsufficientStrategies"
)
