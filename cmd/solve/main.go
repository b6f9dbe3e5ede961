// Command solve reads classic Sudoku puzzle strings from stdin, one per
// line, and prints the full human-technique solve trace for each.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/feadoor/sudoxide/internal/grid"
	"github.com/feadoor/sudoxide/internal/solver"
	"github.com/feadoor/sudoxide/pkg/constants"
)

func main() {
	strats := solver.AllStrategies(constants.ClassicN)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Enter a sudoku:")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Println("Enter a sudoku:")
			continue
		}

		g, err := grid.ParseClassic(constants.ClassicN, line)
		if err != nil {
			fmt.Printf("could not parse puzzle: %v\n", err)
			fmt.Println("Enter a sudoku:")
			continue
		}

		fmt.Println(g)
		details := solver.Solve(g, strats)
		for _, step := range details.Steps {
			descs := make([]string, len(step.Deductions))
			for i, d := range step.Deductions {
				descs[i] = d.Description(g)
			}
			fmt.Printf("- %s (%s)\n", step.Step.Description(g), strings.Join(descs, ", "))
		}
		fmt.Printf("Result: %s\n", details.Status)
		fmt.Println(g)
		fmt.Println("Enter a sudoku:")
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
}
