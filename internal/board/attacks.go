package board

// Pre-computed attack tables for non-sliding pieces
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)
		knightAttacks[sq] = KnightAttacks(bb)
		kingAttacks[sq] = KingAttacks(bb)
		pawnAttacks[White][sq] = PawnAttacks(White, bb)
		pawnAttacks[Black][sq] = PawnAttacks(Black, bb)
	}
	initFirstRankAttacks() // From sliding.go
}

// Pawns

// PawnSinglePushTargets returns the empty squares one step in front of the pawns.
func PawnSinglePushTargets(c Color, pawns, empty Bitboard) Bitboard {
	if c == White {
		return pawns.North() & empty
	}
	return pawns.South() & empty
}

// PawnDoublePushTargets returns the squares reachable by a two-step push
// from the starting rank. Both squares must be empty.
func PawnDoublePushTargets(c Color, pawns, empty Bitboard) Bitboard {
	single := PawnSinglePushTargets(c, pawns, empty)
	if c == White {
		return single.North() & empty & Rank4BB
	}
	return single.South() & empty & Rank5BB
}

// PawnPushTargets returns all single and double push targets.
func PawnPushTargets(c Color, pawns, empty Bitboard) Bitboard {
	return PawnSinglePushTargets(c, pawns, empty) | PawnDoublePushTargets(c, pawns, empty)
}

// PawnAttacks returns every square attacked diagonally forward by the pawns.
func PawnAttacks(c Color, pawns Bitboard) Bitboard {
	if c == White {
		return pawns.NorthEast() | pawns.NorthWest()
	}
	return pawns.SouthEast() | pawns.SouthWest()
}

// PawnCaptureTargets returns the pawn attacks that land on targets.
// Pawns only move diagonally when capturing.
func PawnCaptureTargets(c Color, pawns, targets Bitboard) Bitboard {
	return PawnAttacks(c, pawns) & targets
}

// KnightAttacks returns the squares attacked by every knight in knights.
func KnightAttacks(knights Bitboard) Bitboard {
	l1 := (knights >> 1) & NotFileH
	l2 := (knights >> 2) & NotFileGH
	r1 := (knights << 1) & NotFileA
	r2 := (knights << 2) & NotFileAB
	h1 := l1 | r1
	h2 := l2 | r2
	return (h1 << 16) | (h1 >> 16) | (h2 << 8) | (h2 >> 8)
}

// KingAttacks returns the squares attacked by every king in kings.
func KingAttacks(kings Bitboard) Bitboard {
	attacks := kings.North() | kings.South()
	attacks |= kings.East() | kings.West()
	attacks |= kings.NorthEast() | kings.NorthWest()
	attacks |= kings.SouthEast() | kings.SouthWest()
	return attacks
}

// KnightAttacksFrom returns the knight attack bitboard for a square.
func KnightAttacksFrom(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacksFrom returns the king attack bitboard for a square.
func KingAttacksFrom(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacksFrom returns the pawn attack bitboard for a square and color.
func PawnAttacksFrom(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// AttackersTo returns a bitboard of all pieces, of both colors, attacking a square.
// Every generator is applied from the target square itself: a piece of type T
// standing on sq reaches exactly the squares a T on those squares would attack sq from.
func (p *Position) AttackersTo(sq Square, occupied Bitboard) Bitboard {
	rookLike := p.pieces[Rook] | p.pieces[Queen]
	bishopLike := p.pieces[Bishop] | p.pieces[Queen]
	return (pawnAttacks[Black][sq] & p.PiecesOf(Pawn, White)) |
		(pawnAttacks[White][sq] & p.PiecesOf(Pawn, Black)) |
		(knightAttacks[sq] & p.pieces[Knight]) |
		(kingAttacks[sq] & p.pieces[King]) |
		(BishopAttacks(sq, occupied) & bishopLike) |
		(RookAttacks(sq, occupied) & rookLike)
}

// SquareAttackedBy returns every piece attacking sq with the current occupancy.
func (p *Position) SquareAttackedBy(sq Square) Bitboard {
	return p.AttackersTo(sq, p.AllOccupied())
}

// AttackersByColor returns a bitboard of pieces of the given color attacking a square.
func (p *Position) AttackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	return p.AttackersTo(sq, occupied) & p.colors[c]
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	return p.AttackersByColor(sq, byColor, p.AllOccupied()) != 0
}

// InCheck returns true if the king of color c is attacked.
// A color without a king is never in check.
func (p *Position) InCheck(c Color) bool {
	king := p.PiecesOf(King, c)
	if king == 0 {
		return false
	}
	return p.IsSquareAttacked(king.LSB(), c.Other())
}

// Checkers returns the enemy pieces giving check to the side to move.
func (p *Position) Checkers() Bitboard {
	king := p.PiecesOf(King, p.turn)
	if king == 0 {
		return Empty
	}
	return p.AttackersByColor(king.LSB(), p.turn.Other(), p.AllOccupied())
}
