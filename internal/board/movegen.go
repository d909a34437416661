package board

import (
	"errors"
	"fmt"
	"log"
)

// DebugMoveValidation enables logging of rejected moves and inconsistent
// positions in ApplyMove.
var DebugMoveValidation bool

// Errors returned by ApplyMove. They are wrapped with the offending move.
var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrIllegalMove       = errors.New("illegal move")
	ErrLeavesKingInCheck = errors.New("move leaves king in check")
)

// castle describes one castling move of one color.
type castle struct {
	side     CastlingRight
	kingFrom Square
	kingTo   Square
	rookFrom Square
	rookTo   Square
	empty    Bitboard // Squares between king and rook
	path     Bitboard // Squares the king crosses, destination included
}

var castles = [2][2]castle{
	White: {
		{KingSide, E1, G1, H1, F1, SquareBB(F1) | SquareBB(G1), SquareBB(F1) | SquareBB(G1)},
		{QueenSide, E1, C1, A1, D1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), SquareBB(C1) | SquareBB(D1)},
	},
	Black: {
		{KingSide, E8, G8, H8, F8, SquareBB(F8) | SquareBB(G8), SquareBB(F8) | SquareBB(G8)},
		{QueenSide, E8, C8, A8, D8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), SquareBB(C8) | SquareBB(D8)},
	},
}

// cornerRight returns the castling right tied to a rook corner.
func cornerRight(sq Square) (Color, CastlingRight, bool) {
	switch sq {
	case A1:
		return White, QueenSide, true
	case H1:
		return White, KingSide, true
	case A8:
		return Black, QueenSide, true
	case H8:
		return Black, KingSide, true
	}
	return NoColor, NoRight, false
}

// IsValidMove checks the move against the board without regard to how the
// piece moves: a piece of the side to move leaves from, to is neither own
// nor a king, and any promotion is a pawn reaching its back rank.
func (p *Position) IsValidMove(m Move) bool {
	from, to := m.From(), m.To()
	if from == to {
		return false
	}

	pt := p.PieceAt(from, p.turn)
	if pt == NoPieceType {
		return false
	}
	if p.OwnPieces().IsSet(to) || p.pieces[King].IsSet(to) {
		return false
	}

	if m.IsPromotion() {
		promo := m.Promotion()
		if promo == King || promo == Pawn {
			return false
		}
		if pt != Pawn || !p.turn.BackRank().IsSet(to) {
			return false
		}
	}
	return true
}

// IsLegalMove reports whether the piece on the move's source square can
// reach its destination. A pawn reaching its back rank must promote.
func (p *Position) IsLegalMove(m Move) bool {
	from, to := m.From(), m.To()
	pt := p.PieceAt(from, p.turn)
	if pt == NoPieceType {
		return false
	}
	if pt == Pawn && !m.IsPromotion() && p.turn.BackRank().IsSet(to) {
		return false
	}
	return p.targets(pt, from).IsSet(to)
}

// targets returns the destination squares of the piece of the side to move
// standing on from. The mover's own king safety is checked by ApplyMove.
func (p *Position) targets(pt PieceType, from Square) Bitboard {
	us := p.turn
	own := p.colors[us]
	fromBB := SquareBB(from)

	switch pt {
	case Pawn:
		enemies := p.colors[us.Other()]
		if p.enPassant != NoSquare {
			enemies |= SquareBB(p.enPassant)
		}
		return PawnPushTargets(us, fromBB, p.EmptySquares()) |
			PawnCaptureTargets(us, fromBB, enemies)
	case Knight:
		return KnightAttacksFrom(from) &^ own
	case King:
		// Attacks are tested with the king still on from. A step along a
		// checking slider's ray passes here and fails ApplyMove's king check.
		occupied := p.AllOccupied()
		var safe Bitboard
		candidates := KingAttacksFrom(from) &^ own
		for candidates != 0 {
			to := candidates.PopLSB()
			if p.AttackersByColor(to, us.Other(), occupied) == 0 {
				safe |= SquareBB(to)
			}
		}
		return safe | p.castlingTargets(from)
	case Rook, Bishop, Queen:
		return SlidingAttacks(pt, from, p.AllOccupied()&^fromBB) &^ own
	}
	return Empty
}

// castlingTargets returns the king destinations of the castling moves
// available to the side to move with its king on from.
func (p *Position) castlingTargets(from Square) Bitboard {
	us := p.turn
	them := us.Other()
	rights := p.castling[us]
	if rights == NoRight || from != castles[us][0].kingFrom {
		return Empty
	}
	if p.IsSquareAttacked(from, them) {
		return Empty
	}

	var targets Bitboard
	occupied := p.AllOccupied()
	rooks := p.PiecesOf(Rook, us)
	for _, cs := range castles[us] {
		if !rights.Has(cs.side) || !rooks.IsSet(cs.rookFrom) || occupied&cs.empty != 0 {
			continue
		}
		attacked := false
		for path := cs.path; path != 0; {
			if p.IsSquareAttacked(path.PopLSB(), them) {
				attacked = true
				break
			}
		}
		if !attacked {
			targets |= SquareBB(cs.kingTo)
		}
	}
	return targets
}

// enPassantVictim returns the square of the pawn an en passant capture removes.
func (p *Position) enPassantVictim() Square {
	if p.turn == White {
		return p.enPassant - 8
	}
	return p.enPassant + 8
}

// findCastle returns the castling move of color c whose king lands on to.
func findCastle(c Color, from, to Square) (castle, bool) {
	for _, cs := range castles[c] {
		if cs.kingFrom == from && cs.kingTo == to {
			return cs, true
		}
	}
	return castle{}, false
}

// MakeMove returns the position after m, or false if m cannot be played.
// The receiver is not modified.
func (p *Position) MakeMove(m Move) (Position, bool) {
	next, err := p.ApplyMove(m)
	return next, err == nil
}

// ApplyMove returns the position after m. On failure the error wraps
// ErrInvalidMove, ErrIllegalMove or ErrLeavesKingInCheck and the receiver
// is returned unchanged.
func (p *Position) ApplyMove(m Move) (Position, error) {
	us := p.turn
	them := us.Other()

	if DebugMoveValidation {
		if p.PiecesOf(King, us) == 0 {
			log.Printf("MAKEMOVE ENTRY: %v King bitboard empty! move=%v", us, m)
		}
		if p.colors[White]&p.colors[Black] != 0 {
			log.Printf("MAKEMOVE ENTRY: color sets overlap at %x! move=%v", uint64(p.colors[White]&p.colors[Black]), m)
		}
	}

	if !p.IsValidMove(m) {
		if DebugMoveValidation {
			log.Printf("MAKEMOVE INVALID: %v cannot play %v", us, m)
		}
		return *p, fmt.Errorf("%w: %v", ErrInvalidMove, m)
	}
	if !p.IsLegalMove(m) {
		if DebugMoveValidation {
			log.Printf("MAKEMOVE ILLEGAL: %v piece on %v cannot reach %v", us, m.From(), m.To())
		}
		return *p, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}

	from, to := m.From(), m.To()
	pt := p.PieceAt(from, us)
	next := *p

	// Captures
	if captured := p.PieceAt(to, them); captured != NoPieceType {
		next.xor(captured, them, SquareBB(to))
	} else if pt == Pawn && to == p.enPassant {
		next.xor(Pawn, them, SquareBB(p.enPassantVictim()))
	}

	// Move the piece, promoting on arrival
	next.xor(pt, us, SquareBB(from))
	if m.IsPromotion() {
		next.xor(m.Promotion(), us, SquareBB(to))
	} else {
		next.xor(pt, us, SquareBB(to))
	}

	// Castling moves the rook as well
	if pt == King {
		if cs, ok := findCastle(us, from, to); ok {
			next.xor(Rook, us, SquareBB(cs.rookFrom)|SquareBB(cs.rookTo))
		}
		next.castling[us] = NoRight
	}

	// A rook leaving or captured on its corner loses that side
	for _, sq := range [2]Square{from, to} {
		if c, side, ok := cornerRight(sq); ok {
			next.castling[c] = next.castling[c].Remove(side)
		}
	}

	next.enPassant = NoSquare
	if pt == Pawn && (int(to)-int(from) == 16 || int(from)-int(to) == 16) {
		next.enPassant = (from + to) / 2
	}

	next.halfMoves++
	if us == Black {
		next.fullMoves++
	}
	next.turn = them

	// The mover's king must not be left attacked
	if next.InCheck(us) {
		if DebugMoveValidation {
			log.Printf("MAKEMOVE ILLEGAL: %v left King at %v in check! move=%v",
				us, next.KingSquare(us), m)
		}
		return *p, fmt.Errorf("%w: %v", ErrLeavesKingInCheck, m)
	}

	return next, nil
}

// forEachCandidate calls f for every move that passes IsValidMove and
// IsLegalMove, stopping when f returns false.
func (p *Position) forEachCandidate(f func(Move) bool) {
	us := p.turn
	blocked := p.pieces[King]
	for _, pt := range PieceTypes {
		movers := p.PiecesOf(pt, us)
		for movers != 0 {
			from := movers.PopLSB()
			targets := p.targets(pt, from) &^ blocked
			for targets != 0 {
				to := targets.PopLSB()
				if pt == Pawn && us.BackRank().IsSet(to) {
					for _, promo := range [4]PieceType{Queen, Rook, Bishop, Knight} {
						if !f(NewPromotion(from, to, promo)) {
							return
						}
					}
					continue
				}
				if !f(NewMove(from, to)) {
					return
				}
			}
		}
	}
}

// LegalMoves generates all legal moves for the position.
func (p *Position) LegalMoves() *MoveList {
	ml := NewMoveList()
	p.forEachCandidate(func(m Move) bool {
		if _, ok := p.MakeMove(m); ok {
			ml.Add(m)
		}
		return true
	})
	return ml
}

// HasLegalMoves returns true if the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	found := false
	p.forEachCandidate(func(m Move) bool {
		_, found = p.MakeMove(m)
		return !found
	})
	return found
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck(p.turn) && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move has no legal moves and is not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck(p.turn) && !p.HasLegalMoves()
}
