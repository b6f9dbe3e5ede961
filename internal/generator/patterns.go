// Package generator produces puzzles with clues restricted to a fixed
// pattern of cells, each guaranteed (via the brute-force oracle) to admit
// exactly one solution.
package generator

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/feadoor/sudoxide/internal/bruteforce"
	"github.com/feadoor/sudoxide/internal/grid"
)

// Puzzle is one digit per cell, row-major, 0 for a blank.
type Puzzle []int

// PatternIterator is an infinite lazy source of unique-solution puzzles
// whose clues all lie on a fixed pattern of cells. Call Next repeatedly;
// it never runs out, though later puzzles grow rarer to find as the
// explored neighbourhood of each seed is exhausted and a fresh random
// seed is drawn. Not safe for concurrent use — create one per goroutine.
type PatternIterator struct {
	g              *grid.Grid
	n              int
	pattern        []grid.CellIdx
	startingValues []int
	canonicalise   bool
	solver         *bruteforce.Solver
	rng            *rand.Rand

	seedStack []Puzzle
	queue     []Puzzle
	seen      map[string]bool
}

// ForEmptyGridAndPattern builds an iterator seeding puzzles from scratch
// on an empty grid of g's geometry, canonicalising results so that
// digit-permuted duplicates are suppressed.
func ForEmptyGridAndPattern(g *grid.Grid, pattern []grid.CellIdx, rng *rand.Rand) *PatternIterator {
	total := g.N() * g.N()
	pi := &PatternIterator{
		g:              g,
		n:              g.N(),
		pattern:        pattern,
		startingValues: make([]int, total),
		canonicalise:   true,
		solver:         bruteforce.NewForEmptyGrid(g),
		rng:            rng,
		seen:           map[string]bool{},
	}
	pi.seedUntilSuccess()
	return pi
}

// ForStartingGridAndPattern builds an iterator that keeps g's already
// solved cells fixed and fills the pattern's remaining cells, without
// canonicalising (the starting grid already pins an absolute digit
// labelling, so permuted duplicates don't arise the same way).
func ForStartingGridAndPattern(g *grid.Grid, pattern []grid.CellIdx, rng *rand.Rand) *PatternIterator {
	total := g.N() * g.N()
	start := make([]int, total)
	for c := 0; c < total; c++ {
		cell := grid.CellIdx(c)
		if v, ok := g.Value(cell); ok {
			start[c] = int(v)
		}
	}
	pi := &PatternIterator{
		g:              g,
		n:              g.N(),
		pattern:        pattern,
		startingValues: start,
		canonicalise:   false,
		solver:         bruteforce.NewForStartingGrid(g),
		rng:            rng,
		seen:           map[string]bool{},
	}
	pi.seedUntilSuccess()
	return pi
}

// GeneratePuzzlesOnEmptyGridWithPattern is the entrypoint for generating
// brand new puzzles restricted to pattern.
func GeneratePuzzlesOnEmptyGridWithPattern(g *grid.Grid, pattern []grid.CellIdx, rng *rand.Rand) *PatternIterator {
	return ForEmptyGridAndPattern(g, pattern, rng)
}

// GeneratePuzzlesForStartingGridWithPattern is the entrypoint for filling
// out a partially-solved grid with additional clues restricted to pattern.
func GeneratePuzzlesForStartingGridWithPattern(g *grid.Grid, pattern []grid.CellIdx, rng *rand.Rand) *PatternIterator {
	return ForStartingGridAndPattern(g, pattern, rng)
}

func (pi *PatternIterator) seedUntilSuccess() {
	for {
		seed, ok := pi.randomSeed()
		if ok {
			pi.seedStack = append(pi.seedStack, seed)
			return
		}
	}
}

// randomSeed walks the pattern cells in order, picking a uniformly random
// valid digit for each given the choices already made for earlier pattern
// cells; it fails (ok=false) as soon as some cell has no valid choice.
func (pi *PatternIterator) randomSeed() (Puzzle, bool) {
	puzzle := make(Puzzle, len(pi.startingValues))
	copy(puzzle, pi.startingValues)
	for _, cell := range pi.pattern {
		choices := pi.validClues(puzzle, cell)
		if len(choices) == 0 {
			return nil, false
		}
		puzzle[cell] = choices[pi.rng.Intn(len(choices))]
	}
	return puzzle, true
}

// validClues is the set of digits cell could validly hold given the
// partial puzzle so far: the grid's own candidates there (or its fixed
// value, if already solved), minus any digit already placed at a
// neighbour within puzzle.
func (pi *PatternIterator) validClues(puzzle Puzzle, cell grid.CellIdx) []int {
	valid := make([]bool, pi.n+1)
	if pi.g.IsEmpty(cell) {
		for _, d := range pi.g.Candidates(cell).Iter() {
			valid[int(d)] = true
		}
	} else if v, ok := pi.g.Value(cell); ok {
		valid[int(v)] = true
	}
	for _, nb := range pi.g.Neighbours(cell).Iter() {
		if puzzle[nb] != 0 {
			valid[puzzle[nb]] = false
		}
	}

	var out []int
	for d := 1; d <= pi.n; d++ {
		if valid[d] {
			out = append(out, d)
		}
	}
	return out
}

// Next returns the next unique-solution puzzle. It never returns false:
// the iterator is infinite (bounded only by how long the caller keeps
// calling it).
func (pi *PatternIterator) Next() (Puzzle, bool) {
	for {
		if len(pi.queue) > 0 {
			p := pi.queue[len(pi.queue)-1]
			pi.queue = pi.queue[:len(pi.queue)-1]
			pi.seedStack = append(pi.seedStack, p)
			return p, true
		}

		for len(pi.seedStack) == 0 {
			seed, ok := pi.randomSeed()
			if ok {
				pi.seedStack = append(pi.seedStack, seed)
			}
		}
		current := pi.seedStack[len(pi.seedStack)-1]
		pi.seedStack = pi.seedStack[:len(pi.seedStack)-1]

		next := pi.exploreNeighbours(current)
		pi.rng.Shuffle(len(next), func(a, b int) { next[a], next[b] = next[b], next[a] })
		pi.queue = append(pi.queue, next...)
	}
}

// exploreNeighbours tries every two-clue swap of the pattern's cells
// against current, keeping each resulting puzzle that is new and has a
// unique solution.
func (pi *PatternIterator) exploreNeighbours(current Puzzle) []Puzzle {
	var found []Puzzle
	for i := 0; i < len(pi.pattern); i++ {
		for j := i + 1; j < len(pi.pattern); j++ {
			cellA, cellB := pi.pattern[i], pi.pattern[j]

			blanked := make(Puzzle, len(current))
			copy(blanked, current)
			blanked[cellA] = 0
			blanked[cellB] = 0

			choicesA := pi.validClues(blanked, cellA)
			choicesB := pi.validClues(blanked, cellB)
			for _, da := range choicesA {
				for _, db := range choicesB {
					candidate := make(Puzzle, len(blanked))
					copy(candidate, blanked)
					candidate[cellA] = da
					candidate[cellB] = db

					if pi.canonicalise {
						candidate = Canonicalise(candidate, pi.n)
					}
					key := puzzleKey(candidate)
					if pi.seen[key] {
						continue
					}
					if !pi.solver.HasUniqueSolution(candidate) {
						continue
					}
					pi.seen[key] = true
					found = append(found, candidate)
				}
			}
		}
	}
	return found
}

func puzzleKey(p Puzzle) string {
	var sb strings.Builder
	for _, d := range p {
		sb.WriteString(strconv.Itoa(d))
		sb.WriteByte(',')
	}
	return sb.String()
}
