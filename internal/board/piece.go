package board

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Colors lists both colors in index order.
var Colors = [2]Color{White, Black}

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// Char returns the FEN side-to-move character.
func (c Color) Char() byte {
	if c == Black {
		return 'b'
	}
	return 'w'
}

// InitialOccupancy returns the squares the color occupies in the starting position.
func (c Color) InitialOccupancy() Bitboard {
	if c == Black {
		return Rank7BB | Rank8BB
	}
	return Rank1BB | Rank2BB
}

// BackRank returns the rank a pawn of this color promotes on.
func (c Color) BackRank() Bitboard {
	if c == Black {
		return Rank1BB
	}
	return Rank8BB
}

// PieceType represents the type of a chess piece. The values index the
// per-type bitboards of a Position.
type PieceType uint8

const (
	Pawn PieceType = iota
	Rook
	Knight
	Bishop
	King
	Queen
	NoPieceType PieceType = 6
)

// PieceTypes lists every piece type in index order.
var PieceTypes = [6]PieceType{Pawn, Rook, Knight, Bishop, King, Queen}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case King:
		return "King"
	case Queen:
		return "Queen"
	default:
		return "None"
	}
}

// Char returns the uppercase letter for the piece type.
func (pt PieceType) Char() byte {
	chars := []byte{'P', 'R', 'N', 'B', 'K', 'Q', ' '}
	if pt > NoPieceType {
		return ' '
	}
	return chars[pt]
}

// PieceTypeFromChar converts a piece letter of either case to a PieceType.
func PieceTypeFromChar(c byte) PieceType {
	switch c | 0x20 {
	case 'p':
		return Pawn
	case 'r':
		return Rook
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'k':
		return King
	case 'q':
		return Queen
	default:
		return NoPieceType
	}
}

// IsSliding reports whether the piece attacks along lines.
func (pt PieceType) IsSliding() bool {
	return pt == Rook || pt == Bishop || pt == Queen
}

// InitialOccupancy returns the squares the piece type occupies in the
// starting position, for both colors.
func (pt PieceType) InitialOccupancy() Bitboard {
	switch pt {
	case Pawn:
		return 0x00FF00000000FF00
	case Rook:
		return 0x8100000000000081
	case Knight:
		return 0x4200000000000042
	case Bishop:
		return 0x2400000000000024
	case King:
		return 0x1000000000000010
	case Queen:
		return 0x0800000000000008
	default:
		return Empty
	}
}

// CastlingRight is the castling availability of one color.
type CastlingRight uint8

const (
	NoRight CastlingRight = iota
	QueenSide
	KingSide
	BothSide
)

// Merge joins two rights. NoRight is the identity and BothSide absorbs
// everything, so QueenSide merged with KingSide gives BothSide.
func (cr CastlingRight) Merge(other CastlingRight) CastlingRight {
	return cr | other
}

// Remove drops the sides in other from cr.
func (cr CastlingRight) Remove(other CastlingRight) CastlingRight {
	return cr &^ other
}

// Has returns true if every side in side is available.
func (cr CastlingRight) Has(side CastlingRight) bool {
	return side != NoRight && cr&side == side
}

// String returns the right name.
func (cr CastlingRight) String() string {
	switch cr {
	case NoRight:
		return "NoRight"
	case QueenSide:
		return "QueenSide"
	case KingSide:
		return "KingSide"
	case BothSide:
		return "BothSide"
	default:
		return "Invalid"
	}
}
