// Package board implements chess board representation using bitboards.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File is a column of the board, FileA (0) through FileH (7).
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank is a row of the board, Rank1 (0) through Rank8 (7).
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// String returns the file letter ("a".."h").
func (f File) String() string {
	if f > FileH {
		return "?"
	}
	return string(rune('a' + f))
}

// Number returns the 1-based file number.
func (f File) Number() int {
	return int(f) + 1
}

// String returns the rank digit ("1".."8").
func (r Rank) String() string {
	if r > Rank8 {
		return "?"
	}
	return string(rune('1' + r))
}

// Number returns the 1-based rank number.
func (r Rank) Number() int {
	return int(r) + 1
}

// ParseFile converts a file letter to a File.
func ParseFile(c byte) (File, bool) {
	if c < 'a' || c > 'h' {
		return 0, false
	}
	return File(c - 'a'), true
}

// ParseRank converts a rank digit to a Rank.
func ParseRank(c byte) (Rank, bool) {
	if c < '1' || c > '8' {
		return 0, false
	}
	return Rank(c - '1'), true
}

// NewSquare returns the square with the given index. It panics if the
// index is outside 0-63.
func NewSquare(index int) Square {
	if index < 0 || index >= 64 {
		panic(fmt.Sprintf("board: square index %d out of range", index))
	}
	return Square(index)
}

// SquareAt creates a square from file and rank.
func SquareAt(f File, r Rank) Square {
	return Square(r)<<3 | Square(f)
}

// SquareFromBitboard returns the square of a single-bit bitboard.
// bb must have exactly one bit set; anything else panics.
func SquareFromBitboard(bb Bitboard) Square {
	if bb.PopCount() != 1 {
		panic(fmt.Sprintf("board: square from bitboard with %d bits set", bb.PopCount()))
	}
	return bb.BitScanForward()
}

// Bitboard returns the one-bit mask of the square.
func (sq Square) Bitboard() Bitboard {
	return SquareBB(sq)
}

// File returns the file (column) of the square.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the rank (row) of the square.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	file, okFile := ParseFile(s[0])
	rank, okRank := ParseRank(s[1])
	if !okFile || !okRank {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	return SquareAt(file, rank), nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// Mirror returns the square mirrored vertically (for black's perspective).
func (sq Square) Mirror() Square {
	return sq ^ 56
}
