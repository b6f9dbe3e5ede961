package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadLength is returned when a puzzle string's length is not n*n.
var ErrBadLength = errors.New("the grid does not have the expected length")

// ContradictionError is returned when a clue's digit is not a candidate
// at its cell in the starting grid.
type ContradictionError struct {
	Cell CellIdx
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("the clue at position %d contradicts the others", e.Cell)
}

// ClassicRegions partitions an n*n grid into √n×√n boxes, generalising the
// N=9 3x3-box case to any perfect square n.
func ClassicRegions(n int) ([]CellSet, error) {
	box := int(math.Round(math.Sqrt(float64(n))))
	if box*box != n {
		return nil, fmt.Errorf("classic regions require a perfect square grid size, got %d", n)
	}
	regions := make([]CellSet, n)
	for boxRow := 0; boxRow < box; boxRow++ {
		for boxCol := 0; boxCol < box; boxCol++ {
			idx := boxRow*box + boxCol
			cs := NewCellSet(n)
			for r := 0; r < box; r++ {
				for c := 0; c < box; c++ {
					cs = cs.AddCell(NewCellIdx(n, boxRow*box+r, boxCol*box+c))
				}
			}
			regions[idx] = cs
		}
	}
	return regions, nil
}

// EmptyClassic builds an empty classic Sudoku grid of size n (n must be a
// perfect square) with no additional neighbour relation.
func EmptyClassic(n int) (*Grid, error) {
	regions, err := ClassicRegions(n)
	if err != nil {
		return nil, err
	}
	return Empty(n, regions, nil), nil
}

// ByteToCandidate maps a clue byte to a Candidate for classic puzzles.
// Puzzle strings carry one character per cell, so string parsing is
// defined for n <= 9 only; larger grids are populated through
// FromEmptyGridAndClues instead.
func ByteToCandidate(b byte) (Candidate, bool) {
	if b < '1' || b > '9' {
		return 0, false
	}
	return Candidate(b - '0'), true
}

// FromEmptyGridAndClues places each clue (cell, value) pair on a freshly
// built empty grid, returning a ContradictionError for the first clue
// whose digit is not currently a candidate at its cell.
func FromEmptyGridAndClues(empty *Grid, clues []struct {
	Cell  CellIdx
	Value Candidate
}) (*Grid, error) {
	g := empty
	for _, clue := range clues {
		if !g.HasCandidate(clue.Cell, clue.Value) {
			return nil, &ContradictionError{Cell: clue.Cell}
		}
		g.PlaceValue(clue.Cell, clue.Value)
	}
	return g, nil
}

// FromEmptyGridAndString parses a row-major puzzle string of length n*n
// (classic digit mapping) onto a freshly built empty grid.
func FromEmptyGridAndString(empty *Grid, s string) (*Grid, error) {
	n := empty.N()
	if len(s) != n*n {
		return nil, ErrBadLength
	}
	for i := 0; i < n*n; i++ {
		d, ok := ByteToCandidate(s[i])
		if !ok {
			continue
		}
		cell := CellIdx(i)
		if !empty.HasCandidate(cell, d) {
			return nil, &ContradictionError{Cell: cell}
		}
		empty.PlaceValue(cell, d)
	}
	return empty, nil
}

// ParseClassic is the convenience entry point used by the CLI drivers:
// build an empty classic grid of size n and parse s onto it.
func ParseClassic(n int, s string) (*Grid, error) {
	g, err := EmptyClassic(n)
	if err != nil {
		return nil, err
	}
	return FromEmptyGridAndString(g, s)
}
