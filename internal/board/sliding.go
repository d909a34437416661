package board

import "fmt"

// Sliding piece attacks use Hyperbola Quintessence for files and diagonals
// and a first-rank lookup table for ranks.
// See https://www.chessprogramming.org/Hyperbola_Quintessence

// firstRankAttacks[file][occupancy] holds the attacked squares of a slider on
// file of an 8-square rank with the given occupancy. Written once by init.
var firstRankAttacks [8][256]uint8

func initFirstRankAttacks() {
	for file := 0; file < 8; file++ {
		for occ := 0; occ < 256; occ++ {
			firstRankAttacks[file][occ] = singleRankAttacks(uint8(1)<<file, uint8(occ))
		}
	}
}

// singleRankAttacks slides from the slider bit toward both ends of the rank,
// stopping on (and including) the first occupied square.
func singleRankAttacks(slider, occ uint8) uint8 {
	var attacks uint8

	for next := slider << 1; next != 0; next <<= 1 {
		attacks |= next
		if occ&next != 0 {
			break
		}
	}

	for next := slider >> 1; next != 0; next >>= 1 {
		attacks |= next
		if occ&next != 0 {
			break
		}
	}

	return attacks
}

// fileMask returns the file through sq, without sq.
func fileMask(sq Square) Bitboard {
	return (FileABB << sq.File()) ^ SquareBB(sq)
}

// diagonalMask returns the a1-h8 direction diagonal through sq, without sq.
func diagonalMask(sq Square) Bitboard {
	s := int(sq)
	diag := 8*(s&7) - (s & 56)
	north := -diag & (diag >> 31)
	south := diag & (-diag >> 31)
	return ((DiagonalA1H8 >> uint(south)) << uint(north)) ^ SquareBB(sq)
}

// antiDiagonalMask returns the h1-a8 direction diagonal through sq, without sq.
func antiDiagonalMask(sq Square) Bitboard {
	s := int(sq)
	diag := 56 - 8*(s&7) - (s & 56)
	north := -diag & (diag >> 31)
	south := diag & (-diag >> 31)
	return ((AntiDiagonalH1A8 >> uint(south)) << uint(north)) ^ SquareBB(sq)
}

// lineAttacks computes the attacks along a line holding at most one square
// per rank. The subtraction borrows up to the nearest blocker; doing the same
// on the vertically flipped board covers the opposite direction.
func lineAttacks(sq Square, occupied, mask Bitboard) Bitboard {
	s := SquareBB(sq)
	forward := occupied & mask
	reverse := forward.FlipVertical()
	forward -= s
	reverse -= s.FlipVertical()
	forward ^= reverse.FlipVertical()
	return forward & mask
}

func fileAttacks(sq Square, occupied Bitboard) Bitboard {
	return lineAttacks(sq, occupied, fileMask(sq))
}

func diagonalAttacks(sq Square, occupied Bitboard) Bitboard {
	return lineAttacks(sq, occupied, diagonalMask(sq))
}

func antiDiagonalAttacks(sq Square, occupied Bitboard) Bitboard {
	return lineAttacks(sq, occupied, antiDiagonalMask(sq))
}

func rankAttacks(sq Square, occupied Bitboard) Bitboard {
	shift := uint(sq.Rank()) * 8
	occ := uint8(occupied >> shift)
	return Bitboard(firstRankAttacks[sq.File()][occ]) << shift
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return fileAttacks(sq, occupied) | rankAttacks(sq, occupied)
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return diagonalAttacks(sq, occupied) | antiDiagonalAttacks(sq, occupied)
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// SlidingAttacks dispatches on the slider type. Passing a non-sliding piece
// type is a programming error and panics.
func SlidingAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Rook:
		return RookAttacks(sq, occupied)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		panic(fmt.Sprintf("board: sliding attacks requested for %v", pt))
	}
}
