// Command generate produces classic Sudoku puzzles whose clues are
// restricted to a fixed, point-symmetric pattern of cells, each verified
// to have exactly one solution, and writes them out as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/feadoor/sudoxide/internal/generator"
	"github.com/feadoor/sudoxide/internal/grid"
	"github.com/feadoor/sudoxide/pkg/constants"
)

// patternSeeds is one representative cell per point-symmetric pair of the
// clue pattern; buildPattern mirrors each through the grid centre.
var patternSeeds = [][2]int{
	{0, 1}, {0, 4}, {0, 7},
	{1, 0}, {1, 3}, {1, 6},
	{2, 2}, {2, 5},
	{3, 1}, {3, 7},
	{4, 0},
	{6, 4},
}

func buildPattern(n int) []grid.CellIdx {
	seen := map[[2]int]bool{}
	var cells []grid.CellIdx
	add := func(r, c int) {
		rc := [2]int{r, c}
		if seen[rc] {
			return
		}
		seen[rc] = true
		cells = append(cells, grid.NewCellIdx(n, r, c))
	}
	for _, rc := range patternSeeds {
		r, c := rc[0], rc[1]
		add(r, c)
		add(n-1-r, n-1-c)
	}
	return cells
}

// GeneratedPuzzle is one output record.
type GeneratedPuzzle struct {
	Puzzle string `json:"puzzle"`
}

// PuzzleFile is the top-level JSON structure written to disk.
type PuzzleFile struct {
	Version int               `json:"version"`
	Count   int               `json:"count"`
	Puzzles []GeneratedPuzzle `json:"puzzles"`
}

func main() {
	count := flag.Int("n", 1000, "number of puzzles to generate")
	output := flag.String("o", "puzzles.json", "output file path")
	workers := flag.Int("w", 0, "number of worker goroutines (default: num CPUs)")
	startSeed := flag.Int64("seed", 1, "starting seed value")
	flag.Parse()

	if *workers <= 0 {
		*workers = runtime.NumCPU()
	}

	empty, err := grid.EmptyClassic(constants.ClassicN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building empty grid: %v\n", err)
		os.Exit(1)
	}
	pattern := buildPattern(constants.ClassicN)

	fmt.Printf("Generating %d puzzles with %d workers...\n", *count, *workers)
	start := time.Now()

	puzzles := make([]GeneratedPuzzle, *count)
	var generated int64

	done := make(chan bool)
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g := atomic.LoadInt64(&generated)
				elapsed := time.Since(start)
				rate := float64(g) / elapsed.Seconds()
				fmt.Printf("  Progress: %d/%d (%.1f/sec)\n", g, *count, rate)
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	perWorker := (*count + *workers - 1) / *workers
	for w := 0; w < *workers; w++ {
		lo := w * perWorker
		hi := lo + perWorker
		if hi > *count {
			hi = *count
		}
		if lo >= hi {
			continue
		}

		wg.Add(1)
		go func(workerID, lo, hi int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(*startSeed + int64(workerID)))
			iter := generator.GeneratePuzzlesOnEmptyGridWithPattern(empty.Clone(), pattern, rng)
			for idx := lo; idx < hi; idx++ {
				puzzle, _ := iter.Next()
				puzzles[idx] = GeneratedPuzzle{Puzzle: puzzleString(puzzle)}
				atomic.AddInt64(&generated, 1)
			}
		}(w, lo, hi)
	}

	wg.Wait()
	done <- true

	elapsed := time.Since(start)
	fmt.Printf("Generated %d puzzles in %v (%.1f puzzles/sec)\n", *count, elapsed, float64(*count)/elapsed.Seconds())

	file := PuzzleFile{Version: 1, Count: *count, Puzzles: puzzles}
	data, err := json.Marshal(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshaling JSON: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "writing file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *output)
}

func puzzleString(p generator.Puzzle) string {
	b := make([]byte, len(p))
	for i, d := range p {
		b[i] = byte('0' + d)
	}
	return string(b)
}
