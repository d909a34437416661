// Package fen reads and writes positions in Forsyth-Edwards Notation.
//
// The package only uses the exported builder and accessors of package board.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/chesscore/internal/board"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every error returned by Parse.
var ErrInvalidFEN = errors.New("invalid FEN")

// Parse parses a FEN string and returns a Position. The clock fields are
// optional and default to 0 and 1.
func Parse(fen string) (board.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return board.EmptyPosition(), fmt.Errorf("%w: need 4 to 6 fields, got %d", ErrInvalidFEN, len(parts))
	}

	b := board.NewBuilder()

	// Piece placement (field 0)
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return board.EmptyPosition(), err
	}

	// Side to move (field 1)
	switch parts[1] {
	case "w":
		b.SetTurn(board.White)
	case "b":
		b.SetTurn(board.Black)
	default:
		return board.EmptyPosition(), fmt.Errorf("%w: invalid side to move: %s", ErrInvalidFEN, parts[1])
	}

	// Castling rights (field 2)
	rights, err := parseCastlingRights(parts[2])
	if err != nil {
		return board.EmptyPosition(), err
	}
	b.SetCastlingRights(rights)

	// En passant square (field 3)
	if parts[3] != "-" {
		sq, err := board.ParseSquare(parts[3])
		if err != nil {
			return board.EmptyPosition(), fmt.Errorf("%w: invalid en passant square: %s", ErrInvalidFEN, parts[3])
		}
		b.SetEnPassant(sq)
	}

	// Half-move clock (field 4, optional)
	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return board.EmptyPosition(), fmt.Errorf("%w: invalid half-move clock: %s", ErrInvalidFEN, parts[4])
		}
		b.SetHalfMoveClock(hmc)
	}

	// Full-move number (field 5, optional)
	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return board.EmptyPosition(), fmt.Errorf("%w: invalid full-move number: %s", ErrInvalidFEN, parts[5])
		}
		b.SetFullMoveNumber(fmn)
	}

	pos, err := b.Build()
	if err != nil {
		return board.EmptyPosition(), fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}
	return pos, nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(fen string) board.Position {
	pos, err := Parse(fen)
	if err != nil {
		panic(fmt.Sprintf("fen: MustParse(%q): %v", fen, err))
	}
	return pos
}

// parsePiecePlacement adds the pieces of the placement field to b.
func parsePiecePlacement(b *board.Builder, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := board.Rank(7 - i) // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %s", ErrInvalidFEN, rank)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			pt := board.PieceTypeFromChar(c)
			if pt == board.NoPieceType {
				return fmt.Errorf("%w: invalid piece character: %c", ErrInvalidFEN, c)
			}
			color := board.White
			if c >= 'a' {
				color = board.Black
			}
			b.AddPiece(pt, color, board.SquareAt(board.File(file), rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: invalid number of squares in rank %s: got %d", ErrInvalidFEN, rank, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling field. Each letter adds one side
// to its color's rights.
func parseCastlingRights(castling string) ([2]board.CastlingRight, error) {
	var rights [2]board.CastlingRight
	if castling == "-" {
		return rights, nil
	}

	for i := 0; i < len(castling); i++ {
		switch castling[i] {
		case 'K':
			rights[board.White] = rights[board.White].Merge(board.KingSide)
		case 'Q':
			rights[board.White] = rights[board.White].Merge(board.QueenSide)
		case 'k':
			rights[board.Black] = rights[board.Black].Merge(board.KingSide)
		case 'q':
			rights[board.Black] = rights[board.Black].Merge(board.QueenSide)
		default:
			return rights, fmt.Errorf("%w: invalid castling character: %c", ErrInvalidFEN, castling[i])
		}
	}

	return rights, nil
}

// Format returns the FEN representation of the position.
func Format(p board.Position) string {
	var sb strings.Builder

	// Piece placement
	for rank := board.Rank8; ; rank-- {
		empty := 0
		for file := board.FileA; file <= board.FileH; file++ {
			pt, c := p.At(board.SquareAt(file, rank))
			if pt == board.NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			ch := pt.Char()
			if c == board.Black {
				ch |= 0x20
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank == board.Rank1 {
			break
		}
		sb.WriteByte('/')
	}

	sb.WriteByte(' ')
	sb.WriteByte(p.Turn().Char())

	sb.WriteByte(' ')
	sb.WriteString(formatCastlingRights(p.CastlingRights()))

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant().String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber()))

	return sb.String()
}

func formatCastlingRights(rights [2]board.CastlingRight) string {
	s := ""
	if rights[board.White].Has(board.KingSide) {
		s += "K"
	}
	if rights[board.White].Has(board.QueenSide) {
		s += "Q"
	}
	if rights[board.Black].Has(board.KingSide) {
		s += "k"
	}
	if rights[board.Black].Has(board.QueenSide) {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
