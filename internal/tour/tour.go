// Package tour implements an exhaustive backtracking search for a
// knight's tour, with candidate moves ordered by Warnsdorff's rule.
package tour

import (
	"errors"
	"fmt"

	"github.com/hailam/knighttour/internal/board"
)

// Errors reported for violated caller contracts. Search exhaustion is not
// an error; it is reported as Result.Found == false.
var (
	ErrInvalidStart = errors.New("tour: starting square out of range")
	ErrSearcherUsed = errors.New("tour: searcher already used, create a new one")
)

// Result holds the outcome of one search invocation.
type Result struct {
	// Found reports whether a full 64-square tour was discovered.
	Found bool
	// Path lists the visited squares in order. When Found is true it is a
	// permutation of all 64 squares starting at the requested square;
	// otherwise it is empty and must be discarded.
	Path []board.Square
	// Nodes counts every square-visit event, including visits that were
	// later undone. It is never decremented on backtrack.
	Nodes int
}

// Searcher owns the state of one search invocation: the visited mask, the
// path stack and the success flag. A Searcher must not be reused; a second
// tour requires a fresh one so each search starts from zeroed state.
type Searcher struct {
	visited board.Bitboard
	path    []board.Square
	found   bool
	nodes   int
	used    bool
}

// NewSearcher returns a searcher with empty state.
func NewSearcher() *Searcher {
	return &Searcher{
		path: make([]board.Square, 0, 64),
	}
}

// Search runs the exhaustive depth-first search from the given starting
// square. It returns an error only for contract violations (invalid start,
// reused searcher); an exhausted search is a normal Result with Found false.
func (s *Searcher) Search(start board.Square) (Result, error) {
	if !start.IsValid() {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidStart, start)
	}
	if s.used || !s.visited.IsEmpty() || len(s.path) != 0 {
		return Result{}, ErrSearcherUsed
	}
	s.used = true

	s.step(start)

	res := Result{Found: s.found, Nodes: s.nodes}
	if s.found {
		res.Path = s.path
	}
	return res, nil
}

// step extends the path onto sq and recurses over the heuristically
// ordered candidates. On exhaustion the visit is undone; once s.found is
// set the undo is skipped at every pending level so the path survives as
// the discovered tour.
func (s *Searcher) step(sq board.Square) {
	s.nodes++
	s.visited = s.visited.Set(sq)
	s.path = append(s.path, sq)

	if s.visited == board.Universe {
		s.found = true
		return
	}

	var moves moveList
	moves.fill(s.visited, sq)

	for i := 0; i < moves.count; i++ {
		s.step(moves.moves[i].to)
		if s.found {
			return
		}
	}

	s.visited = s.visited.Clear(sq)
	s.path = s.path[:len(s.path)-1]
}

// candidate pairs a target square with its onward degree, the number of
// legal knight moves remaining from it after the hypothetical visit.
type candidate struct {
	to     board.Square
	degree int
}

// moveList holds the ordered candidates for one recursion frame. A knight
// has at most 8 moves, so a fixed array avoids churning the heap across
// the up-to-64-deep recursion.
type moveList struct {
	moves [8]candidate
	count int
}

// fill collects the unvisited knight targets from sq and insertion-sorts
// them ascending by onward degree (Warnsdorff's rule). Targets come off
// the bitboard lowest index first and the sort only displaces strictly
// larger degrees, so equal-degree candidates keep ascending square order.
func (ml *moveList) fill(visited board.Bitboard, sq board.Square) {
	targets := board.LegalTargets(visited, sq)
	for targets.More() {
		to := targets.PopLSB()
		c := candidate{to: to, degree: board.Degree(visited, to)}
		i := ml.count - 1
		for i >= 0 && ml.moves[i].degree > c.degree {
			ml.moves[i+1] = ml.moves[i]
			i--
		}
		ml.moves[i+1] = c
		ml.count++
	}
}

// Search is a convenience wrapper that runs one search on a fresh Searcher.
func Search(start board.Square) (Result, error) {
	return NewSearcher().Search(start)
}
