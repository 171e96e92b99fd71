// Package river implements the cannibals-and-explorers river crossing
// puzzle as a trial-and-undo backtracking search.
//
// Three cannibals and three explorers must cross a river in a two-seat
// boat. Cannibals may never outnumber explorers on a bank while any
// explorer is on it.
package river

// Puzzle parameters.
const (
	TotalCannibals = 3
	TotalExplorers = 3
	BoatCapacity   = 2
)

// Bank identifies a side of the river.
type Bank int

const (
	Left Bank = iota
	Right
)

// Move is one boat crossing: how many of each role are aboard. The
// direction is implied by the boat's current bank.
type Move struct {
	Cannibals int
	Explorers int
}

// State tracks how many of each role stand on each bank and where the
// boat is. It is a comparable value so it can key the visited-state set.
type State struct {
	LeftCannibals  int
	LeftExplorers  int
	RightCannibals int
	RightExplorers int
	Boat           Bank
}

// NewState returns the initial state with everyone on the left bank.
func NewState() State {
	return State{
		LeftCannibals: TotalCannibals,
		LeftExplorers: TotalExplorers,
		Boat:          Left,
	}
}

// Success reports whether everyone has reached the right bank.
func (s State) Success() bool {
	return s.RightCannibals == TotalCannibals && s.RightExplorers == TotalExplorers
}

// Valid reports whether no bank has cannibals outnumbering explorers.
// A bank with no explorers is safe regardless of cannibal count.
func (s State) Valid() bool {
	return !(s.LeftCannibals > s.LeftExplorers && s.LeftExplorers != 0) &&
		!(s.RightCannibals > s.RightExplorers && s.RightExplorers != 0)
}

// Apply moves the boat's passengers to the opposite bank and flips the
// boat. Applying the same move twice restores the prior state, so Apply
// doubles as the undo.
func (s *State) Apply(m Move) {
	if s.Boat == Right {
		s.LeftCannibals += m.Cannibals
		s.LeftExplorers += m.Explorers
		s.RightCannibals -= m.Cannibals
		s.RightExplorers -= m.Explorers
	} else {
		s.LeftCannibals -= m.Cannibals
		s.LeftExplorers -= m.Explorers
		s.RightCannibals += m.Cannibals
		s.RightExplorers += m.Explorers
	}
	s.Boat ^= 1
}

// Undo reverses a previously applied move.
func (s *State) Undo(m Move) {
	s.Apply(m)
}

// Moves enumerates the boat loads possible from the current state: every
// cannibal/explorer combination that fits the boat, is available on the
// boat's bank, and carries at least one passenger.
func (s State) Moves() []Move {
	cannibals, explorers := s.LeftCannibals, s.LeftExplorers
	if s.Boat == Right {
		cannibals, explorers = s.RightCannibals, s.RightExplorers
	}

	moves := make([]Move, 0, 5)
	for c := 0; c <= min(BoatCapacity, cannibals); c++ {
		for e := 0; e <= min(BoatCapacity-c, explorers); e++ {
			if c+e > 0 {
				moves = append(moves, Move{Cannibals: c, Explorers: e})
			}
		}
	}
	return moves
}

// Solver performs the backtracking search over crossing sequences.
type Solver struct {
	state   State
	trail   []Move
	visited map[State]struct{}
	best    []Move
}

// NewSolver returns a solver positioned at the initial state.
func NewSolver() *Solver {
	return &Solver{
		state:   NewState(),
		visited: make(map[State]struct{}),
	}
}

// Solve runs the search and returns the shortest crossing sequence found,
// or nil if the puzzle has no solution under the visited-state pruning.
func (s *Solver) Solve() []Move {
	s.search()
	return s.best
}

// search tries every move from the current state, recursing with the move
// applied and undoing it afterwards. States already seen are pruned so
// cycles (rowing the same pair back and forth) terminate.
func (s *Solver) search() {
	if !s.state.Valid() {
		return
	}
	if _, seen := s.visited[s.state]; seen {
		return
	}
	s.visited[s.state] = struct{}{}

	if s.state.Success() {
		if s.best == nil || len(s.trail) < len(s.best) {
			s.best = append([]Move(nil), s.trail...)
		}
		return
	}

	for _, m := range s.state.Moves() {
		s.state.Apply(m)
		s.trail = append(s.trail, m)
		s.search()
		s.state.Undo(m)
		s.trail = s.trail[:len(s.trail)-1]
	}
}

// Solve is a convenience wrapper running a fresh solver.
func Solve() []Move {
	return NewSolver().Solve()
}
