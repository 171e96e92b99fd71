package board

// Pre-computed knight move table, one bitboard per origin square.
var knightMoves [64]Bitboard

func init() {
	initKnightMoves()
}

func initKnightMoves() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// Knight moves: 2+1 or 1+2 in any direction
		moves := Empty

		// Up/down 2, left/right 1
		moves |= (bb << 17) & NotFileA  // NNE
		moves |= (bb << 15) & NotFileH  // NNW
		moves |= (bb >> 17) & NotFileH  // SSW
		moves |= (bb >> 15) & NotFileA  // SSE

		// Up/down 1, left/right 2
		moves |= (bb << 10) & NotFileAB // ENE
		moves |= (bb << 6) & NotFileGH  // WNW
		moves |= (bb >> 10) & NotFileGH // WSW
		moves |= (bb >> 6) & NotFileAB  // ESE

		knightMoves[sq] = moves
	}
}

// KnightMoves returns the knight move bitboard for a square on an empty board.
func KnightMoves(sq Square) Bitboard {
	return knightMoves[sq]
}

// LegalTargets returns the knight destinations from sq that have not been
// visited per the given mask.
func LegalTargets(visited Bitboard, sq Square) Bitboard {
	return knightMoves[sq] &^ visited
}

// Degree returns the number of legal knight moves from sq under the given
// visited mask (the onward degree used by Warnsdorff ordering).
func Degree(visited Bitboard, sq Square) int {
	return LegalTargets(visited, sq).PopCount()
}
