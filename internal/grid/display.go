package grid

import (
	"strconv"
	"strings"
)

// String renders a bordered ASCII box: a top/bottom rule of "+" + 3N "-"
// + "+", each row as "|" + N three-column cells + "|". Unsolved cells
// display as ".".
func (g *Grid) String() string {
	var b strings.Builder
	dashes := "+" + strings.Repeat("-", 3*g.n) + "+"

	b.WriteString(dashes)
	b.WriteByte('\n')

	for _, row := range g.rows {
		b.WriteByte('|')
		for _, c := range row.Cells.Iter() {
			if v, ok := g.Value(c); ok {
				b.WriteString(centre3(strconv.Itoa(int(v))))
			} else {
				b.WriteString(" . ")
			}
		}
		b.WriteByte('|')
		b.WriteByte('\n')
	}

	b.WriteString(dashes)
	return b.String()
}

// centre3 pads a one- or two-character value to a three-column cell.
func centre3(s string) string {
	switch len(s) {
	case 1:
		return " " + s + " "
	case 2:
		return s + " "
	default:
		return s
	}
}
