// Command rivercross solves the cannibals-and-explorers river crossing
// puzzle and prints the crossing sequence.
package main

import (
	"fmt"
	"log"

	"github.com/hailam/knighttour/internal/river"
)

func main() {
	moves := river.Solve()
	if moves == nil {
		log.Fatal("no solution found")
	}

	fmt.Printf("Solved in %d crossings.\n\nMoves In Order:\n\n", len(moves))
	fmt.Print(river.Transcript(moves))
}
