package board

import (
	"fmt"
	"strings"
)

// Position represents a complete chess position.
//
// A Position is a value: it is never modified after construction. MakeMove
// returns a new Position and leaves the receiver untouched, so positions can
// be shared freely between goroutines.
type Position struct {
	turn      Color
	halfMoves int // Moves since the position was set up, see MakeMove
	fullMoves int // Full move counter, starts at 1
	enPassant Square

	castling [2]CastlingRight // [Color]

	// Occupancy by color and by piece type. A square's bit is set in exactly
	// one colors entry and one pieces entry, or in none.
	colors [2]Bitboard
	pieces [6]Bitboard
}

// EmptyPosition returns a board with no pieces, White to move and no castling rights.
func EmptyPosition() Position {
	return Position{
		turn:      White,
		fullMoves: 1,
		enPassant: NoSquare,
	}
}

// NewPosition creates the starting position.
func NewPosition() Position {
	p := EmptyPosition()
	for _, c := range Colors {
		for _, pt := range PieceTypes {
			p.xor(pt, c, pt.InitialOccupancy()&c.InitialOccupancy())
		}
		p.castling[c] = BothSide
	}
	return p
}

// xor toggles bb in the piece and color sets together.
func (p *Position) xor(pt PieceType, c Color, bb Bitboard) {
	p.pieces[pt] ^= bb
	p.colors[c] ^= bb
}

// Turn returns the side to move.
func (p *Position) Turn() Color {
	return p.turn
}

// HalfMoveClock returns the number of half-moves played.
func (p *Position) HalfMoveClock() int {
	return p.halfMoves
}

// FullMoveNumber returns the full move counter.
func (p *Position) FullMoveNumber() int {
	return p.fullMoves
}

// EnPassant returns the en passant target square, or NoSquare.
func (p *Position) EnPassant() Square {
	return p.enPassant
}

// CastlingRights returns the castling rights of both colors.
func (p *Position) CastlingRights() [2]CastlingRight {
	return p.castling
}

// CastlingRight returns the castling rights of one color.
func (p *Position) CastlingRight(c Color) CastlingRight {
	return p.castling[c]
}

// Pieces returns every piece of the given type, both colors.
func (p *Position) Pieces(pt PieceType) Bitboard {
	return p.pieces[pt]
}

// PiecesOf returns the pieces of one type and color.
func (p *Position) PiecesOf(pt PieceType, c Color) Bitboard {
	return p.pieces[pt] & p.colors[c]
}

// Occupied returns all pieces of a color.
func (p *Position) Occupied(c Color) Bitboard {
	return p.colors[c]
}

// AllOccupied returns all pieces on the board.
func (p *Position) AllOccupied() Bitboard {
	return p.colors[White] | p.colors[Black]
}

// EmptySquares returns every unoccupied square.
func (p *Position) EmptySquares() Bitboard {
	return ^p.AllOccupied()
}

// OwnPieces returns the pieces of the side to move.
func (p *Position) OwnPieces() Bitboard {
	return p.colors[p.turn]
}

// EnemyPieces returns the pieces of the side not to move.
func (p *Position) EnemyPieces() Bitboard {
	return p.colors[p.turn.Other()]
}

// PieceAt returns the type of the piece of color c on sq, or NoPieceType.
func (p *Position) PieceAt(sq Square, c Color) PieceType {
	bb := SquareBB(sq)
	if p.colors[c]&bb == 0 {
		return NoPieceType
	}
	for _, pt := range PieceTypes {
		if p.pieces[pt]&bb != 0 {
			return pt
		}
	}
	return NoPieceType
}

// At returns the piece on sq and its color, or NoPieceType and NoColor.
func (p *Position) At(sq Square) (PieceType, Color) {
	for _, c := range Colors {
		if pt := p.PieceAt(sq, c); pt != NoPieceType {
			return pt, c
		}
	}
	return NoPieceType, NoColor
}

// KingSquare returns the square of the king of color c, or NoSquare.
func (p *Position) KingSquare(c Color) Square {
	return p.PiecesOf(King, c).LSB()
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := Rank8; ; rank-- {
		fmt.Fprintf(&sb, "%s  ", rank)
		for file := FileA; file <= FileH; file++ {
			pt, c := p.At(SquareAt(file, rank))
			switch {
			case pt == NoPieceType:
				sb.WriteString(". ")
			case c == Black:
				sb.WriteByte(pt.Char() | 0x20)
				sb.WriteByte(' ')
			default:
				sb.WriteByte(pt.Char())
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
		if rank == Rank1 {
			break
		}
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	fmt.Fprintf(&sb, "Side to move: %s\n", p.turn)
	fmt.Fprintf(&sb, "Castling: %s %s\n", p.castling[White], p.castling[Black])
	fmt.Fprintf(&sb, "En passant: %s\n", p.enPassant)
	fmt.Fprintf(&sb, "Half-move clock: %d\n", p.halfMoves)
	fmt.Fprintf(&sb, "Full move: %d\n", p.fullMoves)
	return sb.String()
}
