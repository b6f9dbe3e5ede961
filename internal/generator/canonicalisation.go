package generator

// Canonicalise relabels a puzzle's digits by order of first appearance,
// so that any two puzzles differing only by a permutation of digits
// collapse to the same representation. The first nonzero clue becomes 1,
// the next previously-unseen digit becomes 2, and so on; blanks (0) are
// left as 0. n is the puzzle's digit range (1..=n).
func Canonicalise(puzzle Puzzle, n int) Puzzle {
	relabel := make([]int, n+1)
	count := 0
	out := make(Puzzle, len(puzzle))
	for i, d := range puzzle {
		if d != 0 && relabel[d] == 0 {
			count++
			relabel[d] = count
		}
		out[i] = relabel[d]
	}
	return out
}
