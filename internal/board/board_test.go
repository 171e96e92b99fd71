package board

import "testing"

func TestSquareMapping(t *testing.T) {
	tests := []struct {
		file, rank int
		want       Square
		name       string
	}{
		{0, 0, 0, "a1"},
		{7, 0, 7, "h1"},
		{0, 7, 56, "a8"},
		{7, 7, 63, "h8"},
		{4, 3, 28, "e4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sq := NewSquare(tc.file, tc.rank)
			if sq != tc.want {
				t.Errorf("NewSquare(%d, %d) = %d, want %d", tc.file, tc.rank, sq, tc.want)
			}
			if sq.File() != tc.file || sq.Rank() != tc.rank {
				t.Errorf("round trip: got file=%d rank=%d, want file=%d rank=%d",
					sq.File(), sq.Rank(), tc.file, tc.rank)
			}
			if sq.String() != tc.name {
				t.Errorf("String() = %q, want %q", sq.String(), tc.name)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %d, want %d", sq.String(), got, sq)
		}
	}

	invalid := []string{"", "a", "a12", "i1", "a9", "A1", "11", "aa"}
	for _, s := range invalid {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) should fail", s)
		}
	}
}

func TestMarkUnmarkRoundTrip(t *testing.T) {
	base := Bitboard(0x55AA00FF00AA55F0)
	for sq := A1; sq <= H8; sq++ {
		if got := base.Set(sq).Clear(sq); got != base.Clear(sq) {
			t.Errorf("set/clear %v: got %x", sq, got)
		}
		if base.IsSet(sq) {
			continue
		}
		if got := base.Set(sq).Clear(sq); got != base {
			t.Errorf("set then clear %v did not restore mask: got %x, want %x", sq, got, base)
		}
	}
}

func TestPopLSBOrder(t *testing.T) {
	// PopLSB must yield squares in ascending index order; the search's
	// tie-break determinism depends on it.
	b := SquareBB(C2) | SquareBB(A1) | SquareBB(H8) | SquareBB(B3)
	want := []Square{A1, C2, B3, H8}
	for i, w := range want {
		if sq := b.PopLSB(); sq != w {
			t.Fatalf("PopLSB #%d = %v, want %v", i, sq, w)
		}
	}
	if !b.IsEmpty() {
		t.Errorf("bitboard not empty after popping all bits")
	}
}

// TestKnightMovesCorner verifies the reduced mobility of corner squares.
func TestKnightMovesCorner(t *testing.T) {
	targets := LegalTargets(Empty, A1).Squares()
	if len(targets) != 2 {
		t.Fatalf("a1 knight moves = %v, want exactly 2", targets)
	}
	// Squares() yields ascending order: c2 (10) before b3 (17).
	if targets[0] != C2 || targets[1] != B3 {
		t.Errorf("a1 knight moves = %v, want [c2 b3]", targets)
	}
}

// TestKnightMovesNoWraparound checks that shift arithmetic never carries a
// move across the a/h file edge.
func TestKnightMovesNoWraparound(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		for _, to := range KnightMoves(sq).Squares() {
			df := abs(to.File() - sq.File())
			dr := abs(to.Rank() - sq.Rank())
			if !(df == 1 && dr == 2 || df == 2 && dr == 1) {
				t.Errorf("%v -> %v is not a knight move (df=%d dr=%d)", sq, to, df, dr)
			}
		}
	}
}

func TestKnightMoveCounts(t *testing.T) {
	tests := []struct {
		sq   Square
		want int
	}{
		{A1, 2}, {H1, 2}, {A8, 2}, {H8, 2}, // corners
		{B1, 3}, {A2, 3},                   // next to corners
		{B2, 4},                            // inner corner ring
		{D4, 8}, {E5, 8},                   // center
	}
	for _, tc := range tests {
		t.Run(tc.sq.String(), func(t *testing.T) {
			if got := KnightMoves(tc.sq).PopCount(); got != tc.want {
				t.Errorf("KnightMoves(%v).PopCount() = %d, want %d", tc.sq, got, tc.want)
			}
		})
	}
}

func TestLegalTargetsExcludesVisited(t *testing.T) {
	visited := SquareBB(C2) // block one of a1's two exits
	targets := LegalTargets(visited, A1)
	if targets.IsSet(C2) {
		t.Errorf("LegalTargets returned a visited square")
	}
	if targets != SquareBB(B3) {
		t.Errorf("LegalTargets(a1) with c2 visited = %v, want [b3]", targets.Squares())
	}
}

// TestDegreeMonotonic checks that visiting more squares never increases the
// onward degree of a fixed square.
func TestDegreeMonotonic(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		mask := Empty
		prev := Degree(mask, sq)
		for block := A1; block <= H8; block++ {
			mask = mask.Set(block)
			d := Degree(mask, sq)
			if d > prev {
				t.Fatalf("degree(%v) rose from %d to %d after visiting %v", sq, prev, d, block)
			}
			prev = d
		}
		if prev != 0 {
			t.Errorf("degree(%v) under full mask = %d, want 0", sq, prev)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
