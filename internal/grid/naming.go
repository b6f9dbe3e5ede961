package grid

import (
	"fmt"
	"strings"
)

// CellName renders c as "r{row+1}c{col+1}", the stable lowercase format
// used throughout step descriptions.
func CellName(n int, c CellIdx) string {
	return fmt.Sprintf("r%dc%d", c.Row(n)+1, c.Col(n)+1)
}

// HouseName renders h as "Row i" / "Column i" / "Region i", 1-based.
func HouseName(h House) string {
	switch h.Kind {
	case Row:
		return fmt.Sprintf("Row %d", h.Index+1)
	case Column:
		return fmt.Sprintf("Column %d", h.Index+1)
	default:
		return fmt.Sprintf("Region %d", h.Index+1)
	}
}

// CellSetName renders cells as its canonical house name if it exactly
// matches a row, column or region; otherwise a parenthesised,
// comma-separated list of cell names.
func (g *Grid) CellSetName(cells CellSet) string {
	for _, h := range g.allHouses {
		if h.Cells.Equal(cells) {
			return HouseName(h)
		}
	}
	names := make([]string, 0, cells.Len())
	for _, c := range cells.Iter() {
		names = append(names, CellName(g.n, c))
	}
	return "(" + strings.Join(names, ", ") + ")"
}

var subsetNames = []string{
	"", "", "Pair", "Triple", "Quad", "Quint",
	"Sextuple", "Septuple", "Octuple", "Nonuple", "Decuple",
}

// SubsetName returns the naked/hidden subset name for the given size.
func SubsetName(size int) string {
	if size >= 0 && size < len(subsetNames) && subsetNames[size] != "" {
		return subsetNames[size]
	}
	return fmt.Sprintf("%d-subset", size)
}

var fishNames = []string{
	"", "", "X-Wing", "Swordfish", "Jellyfish", "Squirmbag", "Whale", "Leviathan",
}

// FishName returns the fish name for the given degree, falling back to
// the generic "Fish" for degrees above the named table.
func FishName(degree int) string {
	if degree >= 0 && degree < len(fishNames) && fishNames[degree] != "" {
		return fishNames[degree]
	}
	return "Fish"
}
