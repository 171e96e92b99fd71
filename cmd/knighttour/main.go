// Command knighttour searches for a knight's tour from a starting square
// given on the command line or read interactively, and reports the route
// together with search statistics.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/hailam/knighttour/internal/board"
	"github.com/hailam/knighttour/internal/storage"
	"github.com/hailam/knighttour/internal/tour"
)

const banner = `
    |\__/,|   (` + "`" + `\
  _.|o o  |_   ) )
-(((---(((--------
    KNIGHT'S TOUR
`

var (
	startFlag  = flag.String("start", "", "starting square in algebraic notation (e.g. a1); prompts if omitted")
	noCache    = flag.Bool("nocache", false, "skip the solved-tour cache and always search")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	fmt.Print(banner)

	start, err := resolveStart(*startFlag)
	if err != nil {
		log.Fatal(err)
	}

	var store *storage.Storage
	if !*noCache {
		store, err = storage.NewStorage()
		if err != nil {
			log.Printf("Warning: tour cache unavailable: %v", err)
		} else {
			defer store.Close()
		}
	}

	if store != nil {
		if cached := loadCached(store, start); cached != nil {
			fmt.Printf("\nCached tour from %v (solved %s, %d nodes):\n\n",
				start, cached.SolvedAt.Format(time.DateOnly), cached.Nodes)
			path, err := cached.Squares()
			if err != nil {
				log.Fatal(err)
			}
			printRoute(path)
			return
		}
	}

	fmt.Printf("\nStarting backtrack from %v:\n", start)

	searchStart := time.Now()
	res, err := tour.Search(start)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(searchStart)

	nps := 0.0
	if secs := elapsed.Seconds(); secs > 0 {
		nps = float64(res.Nodes) / secs
	}
	fmt.Printf("\nTime taken: %v\n", elapsed)
	fmt.Printf("Nodes: %d\n", res.Nodes)
	fmt.Printf("Nodes per second: %.0f\n", nps)

	if !res.Found {
		fmt.Println("\nNo tour found.")
		return
	}

	fmt.Println("\nRoute:")
	printRoute(res.Path)

	visited := board.Empty
	for _, sq := range res.Path {
		visited = visited.Set(sq)
	}
	fmt.Printf("\n%v\n", visited)

	if store != nil {
		rec := storage.NewTourRecord(start, res.Path, res.Nodes, elapsed)
		if err := store.SaveTour(rec); err != nil {
			log.Printf("Warning: could not cache tour: %v", err)
		}
		if err := store.RecordSearch(res.Nodes, elapsed); err != nil {
			log.Printf("Warning: could not record stats: %v", err)
		}
	}
}

// resolveStart parses the -start flag, or prompts until a well-formed
// square is entered. Malformed input re-prompts rather than failing.
func resolveStart(flagValue string) (board.Square, error) {
	if flagValue != "" {
		return board.ParseSquare(flagValue)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Please enter starting square (ex: a1): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return board.NoSquare, err
			}
			return board.NoSquare, fmt.Errorf("no starting square given")
		}

		sq, err := board.ParseSquare(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Println("Invalid square, try again.")
			continue
		}
		return sq, nil
	}
}

// loadCached returns the cached tour for a start square, if any. Cache
// failures fall back to searching.
func loadCached(store *storage.Storage, start board.Square) *storage.TourRecord {
	rec, err := store.LoadTour(start)
	if err != nil {
		log.Printf("Warning: tour cache read failed: %v", err)
		return nil
	}
	return rec
}

// printRoute prints the tour as a numbered list of coordinates.
func printRoute(path []board.Square) {
	for i, sq := range path {
		fmt.Printf("%2d: %v\n", i+1, sq)
	}
}
