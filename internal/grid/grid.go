package grid

import "fmt"

// DeductionKind tags the three things a Step can conclude.
type DeductionKind int

const (
	Placement DeductionKind = iota
	Elimination
	Contradiction
)

// Deduction is a single unit of progress a Step may yield. Cell/Value are
// meaningless for Contradiction.
type Deduction struct {
	Kind  DeductionKind
	Cell  CellIdx
	Value Candidate
}

// PlacementDeduction builds a Placement deduction.
func PlacementDeduction(cell CellIdx, value Candidate) Deduction {
	return Deduction{Kind: Placement, Cell: cell, Value: value}
}

// EliminationDeduction builds an Elimination deduction.
func EliminationDeduction(cell CellIdx, value Candidate) Deduction {
	return Deduction{Kind: Elimination, Cell: cell, Value: value}
}

// ContradictionDeduction builds a Contradiction deduction.
func ContradictionDeduction() Deduction {
	return Deduction{Kind: Contradiction}
}

// Description renders a Deduction for a solve trace.
func (d Deduction) Description(g *Grid) string {
	switch d.Kind {
	case Placement:
		return fmt.Sprintf("%d placed in %s", d.Value, CellName(g.N(), d.Cell))
	case Elimination:
		return fmt.Sprintf("%d eliminated from %s", d.Value, CellName(g.N(), d.Cell))
	default:
		return "Contradiction!"
	}
}

// Grid owns n*n Cells plus precomputed row/column/region CellSets, the
// flat list of all houses, and a per-cell neighbour CellSet.
type Grid struct {
	n          int
	cells      []Cell
	rows       []House
	cols       []House
	regions    []House
	allHouses  []House
	neighbours []CellSet
}

// Empty builds a Grid of size n with the given region partition and an
// additional, user-supplied symmetric neighbour relation (may be nil).
func Empty(n int, regions []CellSet, additionalNeighbours []CellSet) *Grid {
	cells := make([]Cell, n*n)
	for i := range cells {
		cells[i] = EmptyCell(n)
	}

	g := &Grid{n: n, cells: cells}
	g.rows = createLines(n, Row, func(r, i int) CellIdx { return NewCellIdx(n, r, i) })
	g.cols = createLines(n, Column, func(c, i int) CellIdx { return NewCellIdx(n, i, c) })

	g.regions = make([]House, len(regions))
	for i, cs := range regions {
		g.regions[i] = House{Kind: Region, Index: i, Cells: cs}
	}

	g.allHouses = make([]House, 0, len(g.regions)+len(g.rows)+len(g.cols))
	g.allHouses = append(g.allHouses, g.regions...)
	g.allHouses = append(g.allHouses, g.rows...)
	g.allHouses = append(g.allHouses, g.cols...)

	if additionalNeighbours == nil {
		additionalNeighbours = make([]CellSet, n*n)
		for i := range additionalNeighbours {
			additionalNeighbours[i] = NewCellSet(n)
		}
	}
	g.neighbours = createNeighbours(n, g.allHouses, additionalNeighbours)

	return g
}

func createLines(n int, kind HouseKind, cellAt func(line, i int) CellIdx) []House {
	houses := make([]House, n)
	for line := 0; line < n; line++ {
		cs := NewCellSet(n)
		for i := 0; i < n; i++ {
			cs = cs.AddCell(cellAt(line, i))
		}
		houses[line] = House{Kind: kind, Index: line, Cells: cs}
	}
	return houses
}

// createNeighbours symmetrizes the additional-neighbour relation, ORs in
// every house containing each cell, then removes each cell from its own
// neighbourhood.
func createNeighbours(n int, allHouses []House, neighbours []CellSet) []CellSet {
	for cell := 0; cell < n*n; cell++ {
		for _, nb := range neighbours[cell].Iter() {
			neighbours[nb] = neighbours[nb].AddCell(CellIdx(cell))
		}
	}

	for _, house := range allHouses {
		for _, cell := range house.Cells.Iter() {
			neighbours[cell] = neighbours[cell].Union(house.Cells)
		}
	}

	for cell := 0; cell < n*n; cell++ {
		neighbours[cell] = neighbours[cell].RemoveCell(CellIdx(cell))
	}

	return neighbours
}

// N returns the grid size.
func (g *Grid) N() int { return g.n }

// Rows, Cols, Regions and AllHouses expose the house lists.
func (g *Grid) Rows() []House       { return g.rows }
func (g *Grid) Cols() []House       { return g.cols }
func (g *Grid) Regions() []House    { return g.regions }
func (g *Grid) AllHouses() []House  { return g.allHouses }
func (g *Grid) Neighbours(c CellIdx) CellSet { return g.neighbours[c] }

// Clone returns a deep, independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	for i, c := range g.cells {
		cells[i] = Cell{Value: c.Value, Candidates: c.Candidates.Clone()}
	}
	neighbours := make([]CellSet, len(g.neighbours))
	for i, cs := range g.neighbours {
		neighbours[i] = cs.Clone()
	}
	return &Grid{
		n: g.n, cells: cells,
		rows: g.rows, cols: g.cols, regions: g.regions, allHouses: g.allHouses,
		neighbours: neighbours,
	}
}

// ApplyDeduction dispatches on the three deduction kinds.
func (g *Grid) ApplyDeduction(d Deduction) {
	switch d.Kind {
	case Placement:
		g.PlaceValue(d.Cell, d.Value)
	case Elimination:
		g.EliminateCandidate(d.Cell, d.Value)
	case Contradiction:
		// no-op; signalled to the caller via the deduction itself
	}
}

// PlaceValue solves cell to value and eliminates it from every neighbour.
func (g *Grid) PlaceValue(cell CellIdx, value Candidate) {
	g.cells[cell].SetValue(value)
	for _, nb := range g.neighbours[cell].Iter() {
		g.EliminateCandidate(nb, value)
	}
}

// EliminateCandidate removes value from cell's candidates.
func (g *Grid) EliminateCandidate(cell CellIdx, value Candidate) {
	g.cells[cell].EliminateCandidate(value)
}

// IsSolved reports whether every cell has a value.
func (g *Grid) IsSolved() bool {
	for _, c := range g.cells {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

func (g *Grid) IsEmpty(cell CellIdx) bool                    { return g.cells[cell].IsEmpty() }
func (g *Grid) Value(cell CellIdx) (Candidate, bool)          { v := g.cells[cell].Value; return v, v != 0 }
func (g *Grid) Candidates(cell CellIdx) CandidateSet           { return g.cells[cell].Candidates }
func (g *Grid) NumCandidates(cell CellIdx) int                 { return g.cells[cell].NumCandidates() }
func (g *Grid) FirstCandidate(cell CellIdx) (Candidate, bool) { return g.cells[cell].FirstCandidate() }
func (g *Grid) HasCandidate(cell CellIdx, v Candidate) bool   { return g.cells[cell].HasCandidate(v) }
func (g *Grid) HasAnyOfCandidates(cell CellIdx, v CandidateSet) bool {
	return g.cells[cell].HasAnyOfCandidates(v)
}

// EmptyCells returns every unsolved cell.
func (g *Grid) EmptyCells() CellSet { return g.EmptyCellsIn(FullCellSet(g.n)) }

// CellsWithCandidate returns every cell admitting value.
func (g *Grid) CellsWithCandidate(value Candidate) CellSet {
	return g.CellsWithCandidateIn(FullCellSet(g.n), value)
}

// CellsWithNCandidates returns every cell with exactly k remaining candidates.
func (g *Grid) CellsWithNCandidates(k int) CellSet {
	return g.CellsWithNCandidatesIn(FullCellSet(g.n), k)
}

func (g *Grid) EmptyCellsIn(cells CellSet) CellSet {
	return cells.Filter(func(c CellIdx) bool { return g.IsEmpty(c) })
}

func (g *Grid) CellsWithCandidateIn(cells CellSet, value Candidate) CellSet {
	return cells.Filter(func(c CellIdx) bool { return g.HasCandidate(c, value) })
}

func (g *Grid) CellsWithAnyOfCandidatesIn(cells CellSet, values CandidateSet) CellSet {
	return cells.Filter(func(c CellIdx) bool { return g.HasAnyOfCandidates(c, values) })
}

func (g *Grid) CellsWithExactCandidatesIn(cells CellSet, values CandidateSet) CellSet {
	return cells.Filter(func(c CellIdx) bool { return g.Candidates(c).Equal(values) })
}

func (g *Grid) CellsWithNCandidatesIn(cells CellSet, k int) CellSet {
	return cells.Filter(func(c CellIdx) bool { return g.NumCandidates(c) == k })
}

// ValuesIn returns the digits already placed among cells.
func (g *Grid) ValuesIn(cells CellSet) CandidateSet {
	cs := NewCandidateSet(g.n)
	for _, c := range cells.Iter() {
		if v, ok := g.Value(c); ok {
			cs = cs.Add(v)
		}
	}
	return cs
}

// CandidatesIn returns the union of candidates over the unsolved cells in cells.
func (g *Grid) CandidatesIn(cells CellSet) CandidateSet {
	cs := NewCandidateSet(g.n)
	for _, c := range cells.Iter() {
		cs = cs.Union(g.Candidates(c))
	}
	return cs
}

// ValuesMissingFrom returns the complement of ValuesIn(cells).
func (g *Grid) ValuesMissingFrom(cells CellSet) CandidateSet {
	return g.ValuesIn(cells).Complement()
}

// ValuePlacedIn reports whether value is already placed somewhere in cells.
func (g *Grid) ValuePlacedIn(cells CellSet, value Candidate) bool {
	for _, c := range cells.Iter() {
		if v, ok := g.Value(c); ok && v == value {
			return true
		}
	}
	return false
}

// CandidateAppearsIn reports whether any cell in cells admits value.
func (g *Grid) CandidateAppearsIn(cells CellSet, value Candidate) bool {
	for _, c := range cells.Iter() {
		if g.HasCandidate(c, value) {
			return true
		}
	}
	return false
}

// CommonNeighbours returns the intersection of Neighbours(c) over c in cells;
// the full cell set if cells is empty.
func (g *Grid) CommonNeighbours(cells CellSet) CellSet {
	its := cells.Iter()
	if len(its) == 0 {
		return FullCellSet(g.n)
	}
	result := g.Neighbours(its[0])
	for _, c := range its[1:] {
		result = result.Intersection(g.Neighbours(c))
	}
	return result
}

// AllHousesContaining returns every house that fully contains cells.
func (g *Grid) AllHousesContaining(cells CellSet) []House {
	var out []House
	for _, h := range g.allHouses {
		if h.Cells.ContainsAll(cells) {
			out = append(out, h)
		}
	}
	return out
}

// IntersectingRows returns every row intersecting cells.
func (g *Grid) IntersectingRows(cells CellSet) []House { return intersecting(g.rows, cells) }

// IntersectingCols returns every column intersecting cells.
func (g *Grid) IntersectingCols(cells CellSet) []House { return intersecting(g.cols, cells) }

// IntersectingRegions returns every region intersecting cells.
func (g *Grid) IntersectingRegions(cells CellSet) []House { return intersecting(g.regions, cells) }

func intersecting(houses []House, cells CellSet) []House {
	var out []House
	for _, h := range houses {
		if h.Cells.Intersects(cells) {
			out = append(out, h)
		}
	}
	return out
}

// GroupBy returns the non-empty intersections of cells with each house of
// the given kind.
func (g *Grid) GroupBy(cells CellSet, kind HouseKind) []CellSet {
	var houses []House
	switch kind {
	case Row:
		houses = g.rows
	case Column:
		houses = g.cols
	case Region:
		houses = g.regions
	}
	var out []CellSet
	for _, h := range houses {
		inter := h.Cells.Intersection(cells)
		if !inter.IsEmpty() {
			out = append(out, inter)
		}
	}
	return out
}

// RowsWithCandidate, ColsWithCandidate, RegionsWithCandidate return the
// houses of each kind in which value currently appears as a candidate.
func (g *Grid) RowsWithCandidate(value Candidate) []House {
	return withCandidate(g, g.rows, value)
}
func (g *Grid) ColsWithCandidate(value Candidate) []House {
	return withCandidate(g, g.cols, value)
}
func (g *Grid) RegionsWithCandidate(value Candidate) []House {
	return withCandidate(g, g.regions, value)
}

func withCandidate(g *Grid, houses []House, value Candidate) []House {
	var out []House
	for _, h := range houses {
		if g.CandidateAppearsIn(h.Cells, value) {
			out = append(out, h)
		}
	}
	return out
}
