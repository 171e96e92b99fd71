package tour

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hailam/knighttour/internal/board"
)

// requireValidTour checks the full-permutation and legal-move properties
// of a successful search result.
func requireValidTour(t *testing.T, start board.Square, res Result) {
	t.Helper()

	require.True(t, res.Found, "no tour found from %v", start)
	require.Len(t, res.Path, 64)
	require.Equal(t, start, res.Path[0], "tour does not start at %v", start)

	seen := board.Empty
	for _, sq := range res.Path {
		require.True(t, sq.IsValid(), "square %d out of range", sq)
		require.False(t, seen.IsSet(sq), "square %v visited twice", sq)
		seen = seen.Set(sq)
	}
	require.Equal(t, board.Universe, seen, "tour does not cover the board")

	for i := 1; i < len(res.Path); i++ {
		from, to := res.Path[i-1], res.Path[i]
		df := abs(to.File() - from.File())
		dr := abs(to.Rank() - from.Rank())
		legal := (df == 1 && dr == 2) || (df == 2 && dr == 1)
		require.True(t, legal, "step %d: %v -> %v is not a knight move", i, from, to)
	}
}

func TestSearchFromA1(t *testing.T) {
	res, err := Search(board.A1)
	require.NoError(t, err)
	requireValidTour(t, board.A1, res)

	// Every visit event is counted, so at least the 64 tour squares.
	require.GreaterOrEqual(t, res.Nodes, 64)
}

func TestSearchFromEverySquare(t *testing.T) {
	// Warnsdorff ordering makes all 64 starts fast enough to sweep.
	for sq := board.A1; sq <= board.H8; sq++ {
		sq := sq
		t.Run(sq.String(), func(t *testing.T) {
			res, err := Search(sq)
			require.NoError(t, err)
			requireValidTour(t, sq, res)
		})
	}
}

func TestSearchRepeatable(t *testing.T) {
	// Two fresh searchers with the same start must both find a tour, and
	// with deterministic tie-breaking the same one.
	first, err := Search(board.E4)
	require.NoError(t, err)
	second, err := Search(board.E4)
	require.NoError(t, err)

	requireValidTour(t, board.E4, first)
	requireValidTour(t, board.E4, second)
	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Nodes, second.Nodes)
}

func TestSearchInvalidStart(t *testing.T) {
	_, err := NewSearcher().Search(board.NoSquare)
	require.ErrorIs(t, err, ErrInvalidStart)

	_, err = NewSearcher().Search(board.Square(200))
	require.ErrorIs(t, err, ErrInvalidStart)
}

func TestSearcherNotReusable(t *testing.T) {
	s := NewSearcher()
	res, err := s.Search(board.A1)
	require.NoError(t, err)
	require.True(t, res.Found)

	_, err = s.Search(board.A1)
	require.ErrorIs(t, err, ErrSearcherUsed)
}

func TestMoveListOrdering(t *testing.T) {
	// From a1 after visiting a1: candidates c2 and b3, each with 6 knight
	// moves of which a1 is already visited, so both have onward degree 5.
	// The tie falls back to ascending square index: c2 (10) before b3 (17).
	var ml moveList
	visited := board.SquareBB(board.A1)
	ml.fill(visited, board.A1)

	require.Equal(t, 2, ml.count)
	require.Equal(t, board.C2, ml.moves[0].to)
	require.Equal(t, board.B3, ml.moves[1].to)
	require.Equal(t, 5, ml.moves[0].degree)
	require.Equal(t, 5, ml.moves[1].degree)
}

func TestMoveListTieBreakAscending(t *testing.T) {
	// Equal-degree candidates must keep ascending square order.
	var ml moveList
	ml.fill(board.SquareBB(board.D4), board.D4)

	require.Equal(t, 8, ml.count)
	for i := 1; i < ml.count; i++ {
		prev, cur := ml.moves[i-1], ml.moves[i]
		require.LessOrEqual(t, prev.degree, cur.degree)
		if prev.degree == cur.degree {
			require.Less(t, prev.to, cur.to,
				"tie between %v and %v not broken by square index", prev.to, cur.to)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
