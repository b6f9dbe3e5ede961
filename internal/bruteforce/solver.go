// Package bruteforce implements the dense bitmask propagation-and-guess
// solver used as a uniqueness oracle by the generator: given a grid's
// geometry and a set of clues, it determines whether those clues admit
// exactly one completion.
package bruteforce

import (
	"math/bits"

	"github.com/feadoor/sudoxide/internal/grid"
	"github.com/feadoor/sudoxide/pkg/constants"
)

// placement is a forced single-digit assignment waiting to be applied.
type placement struct {
	cell grid.CellIdx
	mask uint64
}

// guessRecord remembers the choice made at a branch point so backtrack can
// try the road not taken.
type guessRecord struct {
	cell      grid.CellIdx
	mask      uint64
	remaining uint64
}

// constantData is the grid geometry, computed once per grid shape and
// reused across many Solver runs (the generator tests thousands of
// candidate clue sets against the same classic 9x9 geometry).
type constantData struct {
	n             int
	numHouses     int
	cellsForHouse [][]grid.CellIdx
	housesForCell [][]int
	neighboursOf  [][]grid.CellIdx
	startCells    []uint64
}

func newConstantData(g *grid.Grid, fromCurrentState bool) *constantData {
	houses := g.AllHouses()
	total := g.N() * g.N()

	cd := &constantData{
		n:             g.N(),
		numHouses:     len(houses),
		cellsForHouse: make([][]grid.CellIdx, len(houses)),
		housesForCell: make([][]int, total),
		neighboursOf:  make([][]grid.CellIdx, total),
		startCells:    make([]uint64, total),
	}
	for i, h := range houses {
		cd.cellsForHouse[i] = h.Cells.Iter()
	}
	for c := 0; c < total; c++ {
		cell := grid.CellIdx(c)
		cd.neighboursOf[c] = g.Neighbours(cell).Iter()
		var hs []int
		for i, h := range houses {
			if h.Cells.Contains(cell) {
				hs = append(hs, i)
			}
		}
		cd.housesForCell[c] = hs

		if fromCurrentState {
			cd.startCells[c] = maskify(g, cell)
		} else {
			cd.startCells[c] = fullMask(g.N())
		}
	}
	return cd
}

// maskify folds a cell's remaining candidates and its placed value (if
// any) into a single digit mask, so a starting grid's eliminations carry
// over into the search as constraints.
func maskify(g *grid.Grid, cell grid.CellIdx) uint64 {
	var mask uint64
	for _, d := range g.Candidates(cell).Iter() {
		mask |= bitFor(int(d))
	}
	if v, ok := g.Value(cell); ok {
		mask |= bitFor(int(v))
	}
	return mask
}

func bitFor(d int) uint64 { return uint64(1) << uint(d-1) }

func fullMask(n int) uint64 { return uint64(1)<<uint(n) - 1 }

func digitFromBit(mask uint64) int {
	return bits.TrailingZeros64(mask) + 1
}

// boardState is the mutable part of the search: which candidates remain
// at each unsolved cell, which digit (if any) is placed, and which digits
// are already accounted for in each house.
type boardState struct {
	cells         []uint64
	solution      []int
	solvedInHouse []uint64
	remaining     int
}

func newBoardState(start []uint64, numHouses int) boardState {
	return boardState{
		cells:         append([]uint64(nil), start...),
		solution:      make([]int, len(start)),
		solvedInHouse: make([]uint64, numHouses),
		remaining:     len(start),
	}
}

func (b boardState) clone() boardState {
	return boardState{
		cells:         append([]uint64(nil), b.cells...),
		solution:      append([]int(nil), b.solution...),
		solvedInHouse: append([]uint64(nil), b.solvedInHouse...),
		remaining:     b.remaining,
	}
}

func onlyOneBit(m uint64) bool { return m != 0 && m&(m-1) == 0 }

// Solver is a reusable uniqueness oracle. Create one per grid geometry via
// NewForEmptyGrid or NewForStartingGrid, then call HasUniqueSolution (or
// PrepareWithClues/Run directly) as many times as needed; each call resets
// the mutable search state but reuses the precomputed geometry.
type Solver struct {
	cd       *constantData
	invalid  bool
	finished bool

	board      boardState
	boardStack []boardState
	guessStack []guessRecord
	queue      []placement

	solutionCount int
}

// NewForEmptyGrid builds a solver whose geometry is taken from g but whose
// board starts fully empty; useful for testing arbitrary clue sets.
func NewForEmptyGrid(g *grid.Grid) *Solver {
	s := &Solver{cd: newConstantData(g, false)}
	s.Reset()
	return s
}

// NewForStartingGrid builds a solver whose board starts from g's current
// state — placed values and remaining candidates alike — layering any
// additionally supplied clues on top; useful for completing a partially
// solved grid uniquely.
func NewForStartingGrid(g *grid.Grid) *Solver {
	s := &Solver{cd: newConstantData(g, true)}
	s.Reset()
	return s
}

// Reset discards all search progress and re-seeds the board from the
// starting masks, enqueueing every cell they already force (the grid's
// pre-placed values, for NewForStartingGrid solvers).
func (s *Solver) Reset() {
	s.board = newBoardState(s.cd.startCells, s.cd.numHouses)
	s.boardStack = nil
	s.guessStack = nil
	s.queue = nil
	s.invalid = false
	s.finished = false
	s.solutionCount = 0

	for c, mask := range s.board.cells {
		switch {
		case mask == 0:
			s.invalid = true
		case onlyOneBit(mask):
			s.queue = append(s.queue, placement{cell: grid.CellIdx(c), mask: mask})
		}
	}
}

// PrepareWithClues resets the solver, then enqueues the given clues (digit
// per cell, 0 for no clue) on top of any starting placements.
func (s *Solver) PrepareWithClues(clues []int) {
	s.Reset()
	for c, d := range clues {
		if d == 0 {
			continue
		}
		s.queue = append(s.queue, placement{cell: grid.CellIdx(c), mask: bitFor(d)})
	}
}

// HasUniqueSolution prepares the solver with clues and reports whether
// they admit exactly one completion, capped at constants.UniquenessCap
// solutions for speed (any puzzle with 2 or more is non-unique regardless
// of how many it actually has).
func (s *Solver) HasUniqueSolution(clues []int) bool {
	s.PrepareWithClues(clues)
	return s.Run(constants.UniquenessCap) == 1
}

// Solution prepares the solver with clues and returns the first solution
// found as one digit per cell, or nil if the clues admit none.
func (s *Solver) Solution(clues []int) []int {
	s.PrepareWithClues(clues)
	if s.Run(1) == 0 {
		return nil
	}
	return append([]int(nil), s.board.solution...)
}

// Run drives the search to completion (or until maxSolutions completions
// have been found) and returns the number of solutions found.
func (s *Solver) Run(maxSolutions int) int {
	for !s.finished {
		s.processQueue()
		if s.board.remaining > 0 && !s.invalid {
			s.checkHiddenSingles()
		}

		switch {
		case s.invalid:
			s.backtrack()
		case s.board.remaining == 0:
			s.solutionCount++
			if s.solutionCount >= maxSolutions {
				s.finished = true
			} else {
				s.backtrack()
			}
		case len(s.queue) == 0:
			s.guess()
		}
	}
	return s.solutionCount
}

// processQueue drains forced placements, propagating each one to its
// neighbours and enqueueing any neighbour that collapses to a single
// remaining candidate.
func (s *Solver) processQueue() {
	for len(s.queue) > 0 && !s.invalid {
		p := s.queue[len(s.queue)-1]
		s.queue = s.queue[:len(s.queue)-1]

		s.place(p)
		if s.invalid {
			return
		}

		for _, nb := range s.cd.neighboursOf[p.cell] {
			if s.board.solution[nb] != 0 {
				continue
			}
			if s.board.cells[nb]&p.mask == 0 {
				continue
			}
			s.board.cells[nb] &^= p.mask
			if s.board.cells[nb] == 0 {
				s.invalid = true
				return
			}
			if onlyOneBit(s.board.cells[nb]) {
				s.queue = append(s.queue, placement{cell: nb, mask: s.board.cells[nb]})
			}
		}
	}
}

func (s *Solver) place(p placement) {
	if s.board.solution[p.cell] != 0 {
		if s.board.solution[p.cell] != digitFromBit(p.mask) {
			s.invalid = true
		}
		return
	}
	if s.board.cells[p.cell]&p.mask == 0 {
		s.invalid = true
		return
	}
	s.board.cells[p.cell] = 0
	s.board.solution[p.cell] = digitFromBit(p.mask)
	s.board.remaining--
	for _, h := range s.cd.housesForCell[p.cell] {
		s.board.solvedInHouse[h] |= p.mask
	}
}

// checkHiddenSingles finds, per house, any digit admitted by exactly one
// still-unsolved cell and enqueues it as a forced placement. A house with
// a digit admitted by no cell (and not already solved) is a contradiction,
// as is a cell that is the unique holder of two or more such digits.
func (s *Solver) checkHiddenSingles() {
	full := fullMask(s.cd.n)
	for h := 0; h < s.cd.numHouses; h++ {
		var atLeastOnce, moreThanOnce uint64
		for _, c := range s.cd.cellsForHouse[h] {
			m := s.board.cells[c]
			moreThanOnce |= atLeastOnce & m
			atLeastOnce |= m
		}
		if atLeastOnce|s.board.solvedInHouse[h] != full {
			s.invalid = true
			return
		}

		exactlyOnce := atLeastOnce &^ moreThanOnce
		if exactlyOnce == 0 {
			continue
		}
		for _, c := range s.cd.cellsForHouse[h] {
			m := s.board.cells[c] & exactlyOnce
			if m == 0 {
				continue
			}
			if !onlyOneBit(m) {
				s.invalid = true
				return
			}
			s.queue = append(s.queue, placement{cell: c, mask: m})
		}
	}
}

// bestCellToGuess picks the unsolved cell with fewest remaining candidates
// (at least two), stopping early at two since nothing beats that.
func (s *Solver) bestCellToGuess() (grid.CellIdx, bool) {
	best := grid.CellIdx(-1)
	bestCount := -1
	for c := 0; c < len(s.board.cells); c++ {
		if s.board.solution[c] != 0 {
			continue
		}
		n := bits.OnesCount64(s.board.cells[c])
		if n < 2 {
			continue
		}
		if bestCount == -1 || n < bestCount {
			best, bestCount = grid.CellIdx(c), n
			if n == 2 {
				break
			}
		}
	}
	if bestCount == -1 {
		return 0, false
	}
	return best, true
}

// guess snapshots the board, picks the lowest remaining candidate of the
// chosen cell, and enqueues it as a trial placement.
func (s *Solver) guess() {
	cell, ok := s.bestCellToGuess()
	if !ok {
		s.invalid = true
		return
	}
	mask := s.board.cells[cell]
	lowest := mask & (^mask + 1)
	remaining := mask &^ lowest

	s.boardStack = append(s.boardStack, s.board.clone())
	s.guessStack = append(s.guessStack, guessRecord{cell: cell, mask: lowest, remaining: remaining})
	s.queue = append(s.queue, placement{cell: cell, mask: lowest})
}

// backtrack restores the board to the last guess point and either narrows
// the guessed cell to the untried candidates (if more than one remains) or
// forces the single remaining candidate as a placement. If no guess point
// remains, the search is finished.
func (s *Solver) backtrack() {
	if len(s.boardStack) == 0 {
		s.finished = true
		return
	}
	s.board = s.boardStack[len(s.boardStack)-1]
	s.boardStack = s.boardStack[:len(s.boardStack)-1]

	g := s.guessStack[len(s.guessStack)-1]
	s.guessStack = s.guessStack[:len(s.guessStack)-1]

	s.queue = nil
	s.invalid = false

	if bits.OnesCount64(g.remaining) > 1 {
		s.board.cells[g.cell] = g.remaining
	} else {
		s.queue = append(s.queue, placement{cell: g.cell, mask: g.remaining})
	}
}

// HasUniqueSolution is a convenience entry point for one-off checks; for
// repeated checks against the same geometry, build a Solver once and call
// its method directly instead.
func HasUniqueSolution(g *grid.Grid, clues []int) bool {
	return NewForEmptyGrid(g).HasUniqueSolution(clues)
}
