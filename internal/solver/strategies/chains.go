package strategies

import (
	"log"

	"github.com/feadoor/sudoxide/internal/grid"
	"github.com/feadoor/sudoxide/internal/solver/strategies/chaining"
)

// chainStep adapts a chaining.Chain to the Step interface; its Deductions
// and Description signatures already match Step exactly, so this wrapper
// exists only to keep the chaining package's return type out of this
// package's public surface.
type chainStep struct {
	chain chaining.Chain
}

func (s chainStep) Deductions(g *grid.Grid) []grid.Deduction { return s.chain.Deductions(g) }
func (s chainStep) Description(g *grid.Grid) string          { return s.chain.Description(g) }

func wrapChains(chains []chaining.Chain) []Step {
	steps := make([]Step, len(chains))
	for i, c := range chains {
		steps[i] = chainStep{chain: c}
	}
	return steps
}

// XYChainStrategy searches alternating inference chains over the bivalue
// Value nodes only, with Value/Value strong links restricted to the
// same-cell bivalue rule (no house-conjugate strong links).
type XYChainStrategy struct{}

func (XYChainStrategy) Name() string { return "XY-Chain" }

func (XYChainStrategy) FindSteps(g *grid.Grid) []Step {
	nodes := chaining.BivalueNodes(g)
	chains, err := chaining.Search(g, "XY-Chain", nodes, true)
	if err != nil {
		log.Printf("xy-chain search: %v", err)
		return nil
	}
	return wrapChains(chains)
}

// XChainStrategy searches, for each digit in turn, alternating inference
// chains over that digit's Value and Group nodes only.
type XChainStrategy struct{}

func (XChainStrategy) Name() string { return "X-Chain" }

func (XChainStrategy) FindSteps(g *grid.Grid) []Step {
	var steps []Step
	for d := 1; d <= g.N(); d++ {
		digit := grid.Candidate(d)
		nodes := append(chaining.ValueNodesForDigit(g, digit), chaining.GroupNodesForDigit(g, digit)...)
		chains, err := chaining.Search(g, "X-Chain", nodes, false)
		if err != nil {
			log.Printf("x-chain search (digit %d): %v", d, err)
			continue
		}
		steps = append(steps, wrapChains(chains)...)
	}
	return steps
}

// AICStrategy searches alternating inference chains over every Value and
// Group node across all digits.
type AICStrategy struct{}

func (AICStrategy) Name() string { return "AIC" }

func (AICStrategy) FindSteps(g *grid.Grid) []Step {
	nodes := append(chaining.ValueNodes(g), chaining.GroupNodes(g)...)
	chains, err := chaining.Search(g, "AIC", nodes, false)
	if err != nil {
		log.Printf("aic search: %v", err)
		return nil
	}
	return wrapChains(chains)
}

// AlsAICStrategy extends AICStrategy's node set with almost-locked-set
// nodes, letting chains pass through multi-cell, multi-digit eliminations.
type AlsAICStrategy struct{}

func (AlsAICStrategy) Name() string { return "ALS-AIC" }

func (AlsAICStrategy) FindSteps(g *grid.Grid) []Step {
	nodes := append(chaining.ValueNodes(g), chaining.GroupNodes(g)...)
	nodes = append(nodes, chaining.AlsNodes(g)...)
	chains, err := chaining.Search(g, "ALS-AIC", nodes, false)
	if err != nil {
		log.Printf("als-aic search: %v", err)
		return nil
	}
	return wrapChains(chains)
}
