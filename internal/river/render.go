package river

import (
	"fmt"
	"strings"
)

// Rendering layout constants.
const (
	shoreSlots = TotalCannibals + TotalExplorers // characters per bank
	riverWidth = 30                              // gap between the banks
)

// renderBank returns the bank as one character per person: 'C' for each
// cannibal, 'E' for each explorer, '-' for each empty slot.
func renderBank(cannibals, explorers int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("C", cannibals))
	b.WriteString(strings.Repeat("E", explorers))
	b.WriteString(strings.Repeat("-", shoreSlots-cannibals-explorers))
	return b.String()
}

// renderBoat returns the boat hull with its passengers, e.g. `\CE/`.
func renderBoat(m Move) string {
	var b strings.Builder
	b.WriteByte('\\')
	b.WriteString(strings.Repeat("C", m.Cannibals))
	b.WriteString(strings.Repeat("E", m.Explorers))
	b.WriteString(strings.Repeat("-", BoatCapacity-m.Cannibals-m.Explorers))
	b.WriteByte('/')
	return b.String()
}

// renderState draws both banks with the empty boat moored on the side it
// currently occupies.
func renderState(s State) string {
	left := renderBank(s.LeftCannibals, s.LeftExplorers)
	right := renderBank(s.RightCannibals, s.RightExplorers)
	boat := renderBoat(Move{})

	if s.Boat == Left {
		return fmt.Sprintf("%s %s%s %s", left, boat, strings.Repeat(" ", riverWidth), right)
	}
	return fmt.Sprintf("%s %s%s %s", left, strings.Repeat(" ", riverWidth), boat, right)
}

// Transcript replays the crossing sequence from the initial state and
// renders each step: the banks before the crossing, then the loaded boat
// mid-river, and finally the banks after the last crossing.
func Transcript(moves []Move) string {
	var b strings.Builder
	state := NewState()

	center := len(renderBank(0, 0)) + 1 + riverWidth/2

	for _, m := range moves {
		b.WriteString(renderState(state))
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", center))
		b.WriteString(renderBoat(m))
		b.WriteByte('\n')
		state.Apply(m)
	}
	b.WriteString(renderState(state))
	b.WriteByte('\n')
	return b.String()
}
