package board

import (
	"errors"
	"fmt"
)

// placement is a piece recorded by a Builder.
type placement struct {
	pt PieceType
	c  Color
	sq Square
}

// Builder assembles a Position from its parts. The zero value is not ready
// for use; call NewBuilder.
type Builder struct {
	turn      Color
	halfMoves int
	fullMoves int
	enPassant Square
	castling  [2]CastlingRight
	pieces    []placement
}

// NewBuilder returns a builder for an empty board, White to move, full move 1.
func NewBuilder() *Builder {
	return &Builder{
		turn:      White,
		fullMoves: 1,
		enPassant: NoSquare,
	}
}

// SetTurn sets the side to move.
func (b *Builder) SetTurn(c Color) *Builder {
	b.turn = c
	return b
}

// SetHalfMoveClock sets the half-move clock.
func (b *Builder) SetHalfMoveClock(n int) *Builder {
	b.halfMoves = n
	return b
}

// SetFullMoveNumber sets the full move number.
func (b *Builder) SetFullMoveNumber(n int) *Builder {
	b.fullMoves = n
	return b
}

// SetEnPassant sets the en passant target square. NoSquare clears it.
func (b *Builder) SetEnPassant(sq Square) *Builder {
	b.enPassant = sq
	return b
}

// SetCastlingRight sets the castling rights of one color.
func (b *Builder) SetCastlingRight(c Color, r CastlingRight) *Builder {
	b.castling[c] = r
	return b
}

// SetCastlingRights sets the castling rights of both colors.
func (b *Builder) SetCastlingRights(r [2]CastlingRight) *Builder {
	b.castling = r
	return b
}

// AddPiece places a piece. Conflicts are reported by Build.
func (b *Builder) AddPiece(pt PieceType, c Color, sq Square) *Builder {
	b.pieces = append(b.pieces, placement{pt: pt, c: c, sq: sq})
	return b
}

// Build validates the collected state and returns the position.
func (b *Builder) Build() (Position, error) {
	p := EmptyPosition()

	if b.turn != White && b.turn != Black {
		return p, fmt.Errorf("invalid side to move %d", b.turn)
	}
	if b.halfMoves < 0 {
		return p, fmt.Errorf("negative half-move clock %d", b.halfMoves)
	}
	if b.fullMoves < 1 {
		return p, fmt.Errorf("full move number %d must be at least 1", b.fullMoves)
	}
	for _, c := range Colors {
		if b.castling[c] > BothSide {
			return p, fmt.Errorf("invalid castling right %d for %s", b.castling[c], c)
		}
	}

	for _, pl := range b.pieces {
		switch {
		case pl.pt >= NoPieceType:
			return EmptyPosition(), fmt.Errorf("invalid piece type %d on %s", pl.pt, pl.sq)
		case pl.c != White && pl.c != Black:
			return EmptyPosition(), fmt.Errorf("invalid color %d on %s", pl.c, pl.sq)
		case !pl.sq.IsValid():
			return EmptyPosition(), fmt.Errorf("invalid square %d", pl.sq)
		case p.AllOccupied().IsSet(pl.sq):
			return EmptyPosition(), fmt.Errorf("square %s occupied twice", pl.sq)
		}
		p.xor(pl.pt, pl.c, SquareBB(pl.sq))
	}

	p.turn = b.turn
	p.halfMoves = b.halfMoves
	p.fullMoves = b.fullMoves
	p.castling = b.castling
	p.enPassant = b.enPassant

	if err := p.validate(); err != nil {
		return EmptyPosition(), err
	}
	return p, nil
}

// validate checks the placement rules a reachable position satisfies.
func (p *Position) validate() error {
	for _, c := range Colors {
		if p.PiecesOf(King, c).PopCount() > 1 {
			return fmt.Errorf("%s has more than one king", c)
		}
	}

	if p.pieces[Pawn]&(Rank1BB|Rank8BB) != 0 {
		return errors.New("pawns cannot be on rank 1 or 8")
	}

	if p.enPassant != NoSquare {
		if !p.enPassant.IsValid() {
			return fmt.Errorf("invalid en passant square %d", p.enPassant)
		}
		want := Rank6
		if p.turn == Black {
			want = Rank3
		}
		if p.enPassant.Rank() != want {
			return fmt.Errorf("en passant square %s not on rank %s", p.enPassant, want)
		}
		if p.AllOccupied().IsSet(p.enPassant) {
			return fmt.Errorf("en passant square %s is occupied", p.enPassant)
		}
		if !p.PiecesOf(Pawn, p.turn.Other()).IsSet(p.enPassantVictim()) {
			return fmt.Errorf("no pawn behind en passant square %s", p.enPassant)
		}
	}

	// The side that just moved cannot have left its king attacked.
	if p.InCheck(p.turn.Other()) {
		return fmt.Errorf("%s is in check but not to move", p.turn.Other())
	}

	return nil
}
