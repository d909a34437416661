package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

// File masks
const (
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = 0x0202020202020202
	FileCBB Bitboard = 0x0404040404040404
	FileDBB Bitboard = 0x0808080808080808
	FileEBB Bitboard = 0x1010101010101010
	FileFBB Bitboard = 0x2020202020202020
	FileGBB Bitboard = 0x4040404040404040
	FileHBB Bitboard = 0x8080808080808080
)

// Rank masks
const (
	Rank1BB Bitboard = 0x00000000000000FF
	Rank2BB Bitboard = 0x000000000000FF00
	Rank3BB Bitboard = 0x0000000000FF0000
	Rank4BB Bitboard = 0x00000000FF000000
	Rank5BB Bitboard = 0x000000FF00000000
	Rank6BB Bitboard = 0x0000FF0000000000
	Rank7BB Bitboard = 0x00FF000000000000
	Rank8BB Bitboard = 0xFF00000000000000
)

// Special masks
const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	// Edges
	NotFileA  Bitboard = ^FileABB
	NotFileH  Bitboard = ^FileHBB
	NotFileAB Bitboard = ^(FileABB | FileBBB)
	NotFileGH Bitboard = ^(FileGBB | FileHBB)

	// Long diagonals
	DiagonalA1H8     Bitboard = 0x8040201008040201
	AntiDiagonalH1A8 Bitboard = 0x0102040810204080

	LightSquares Bitboard = 0x55AA55AA55AA55AA
	DarkSquares  Bitboard = 0xAA55AA55AA55AA55
)

// FileMask returns the file mask for a given file (0-7).
var FileMask = [8]Bitboard{FileABB, FileBBB, FileCBB, FileDBB, FileEBB, FileFBB, FileGBB, FileHBB}

// RankMask returns the rank mask for a given rank (0-7).
var RankMask = [8]Bitboard{Rank1BB, Rank2BB, Rank3BB, Rank4BB, Rank5BB, Rank6BB, Rank7BB, Rank8BB}

// De Bruijn bit scan, see https://www.chessprogramming.org/BitScan
const debruijn64 = 0x03f79d71b4cb0a89

var debruijnIndex64 = [64]Square{
	0, 47, 1, 56, 48, 27, 2, 60,
	57, 49, 41, 37, 28, 16, 3, 61,
	54, 58, 35, 52, 50, 42, 21, 44,
	38, 32, 29, 23, 17, 11, 4, 62,
	46, 55, 26, 59, 40, 36, 15, 53,
	34, 51, 20, 43, 31, 22, 10, 45,
	25, 39, 14, 33, 19, 30, 9, 24,
	13, 18, 8, 12, 7, 6, 5, 63,
}

// SquareBB returns a bitboard with only the given square set.
func SquareBB(sq Square) Bitboard {
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | (1 << sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ (1 << sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&(1<<sq) != 0
}

// Toggle flips the bit at the given square.
func (b Bitboard) Toggle(sq Square) Bitboard {
	return b ^ (1 << sq)
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Complement returns the set of squares not in b.
func (b Bitboard) Complement() Bitboard {
	return ^b
}

// IsEmpty returns true if no bits are set.
func (b Bitboard) IsEmpty() bool {
	return b == 0
}

// Any returns true if there are any bits set.
func (b Bitboard) Any() bool {
	return b != 0
}

// BitScanForward returns the index of the least significant set bit.
// b must not be empty.
func (b Bitboard) BitScanForward() Square {
	if b == 0 {
		panic("board: bit scan of an empty bitboard")
	}
	return debruijnIndex64[((uint64(b)^(uint64(b)-1))*debruijn64)>>58]
}

// LSB returns the least significant bit (lowest square index), or NoSquare.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return b.BitScanForward()
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Shift operations for move generation

// North shifts the bitboard one rank up (toward rank 8).
func (b Bitboard) North() Bitboard {
	return b << 8
}

// South shifts the bitboard one rank down (toward rank 1).
func (b Bitboard) South() Bitboard {
	return b >> 8
}

// East shifts the bitboard one file right (toward file h).
func (b Bitboard) East() Bitboard {
	return (b << 1) & NotFileA
}

// West shifts the bitboard one file left (toward file a).
func (b Bitboard) West() Bitboard {
	return (b >> 1) & NotFileH
}

// NorthEast shifts the bitboard one square toward the h8 corner.
func (b Bitboard) NorthEast() Bitboard {
	return (b << 9) & NotFileA
}

// NorthWest shifts the bitboard one square toward the a8 corner.
func (b Bitboard) NorthWest() Bitboard {
	return (b << 7) & NotFileH
}

// SouthEast shifts the bitboard one square toward the h1 corner.
func (b Bitboard) SouthEast() Bitboard {
	return (b >> 7) & NotFileA
}

// SouthWest shifts the bitboard one square toward the a1 corner.
func (b Bitboard) SouthWest() Bitboard {
	return (b >> 9) & NotFileH
}

// Shift shifts left for positive steps and right for negative ones.
// Bits are not masked against the board edges.
func (b Bitboard) Shift(steps int) Bitboard {
	if steps > 0 {
		return b << uint(steps)
	}
	return b >> uint(-steps)
}

// RotateLeft rotates the bits circularly toward the high end.
func (b Bitboard) RotateLeft(steps int) Bitboard {
	return Bitboard(bits.RotateLeft64(uint64(b), steps))
}

// RotateRight rotates the bits circularly toward the low end.
func (b Bitboard) RotateRight(steps int) Bitboard {
	return Bitboard(bits.RotateLeft64(uint64(b), -steps))
}

// Geometric transformations, see
// https://www.chessprogramming.org/Flipping_Mirroring_and_Rotating

// FlipVertical maps rank 1 to rank 8 and vice versa.
func (b Bitboard) FlipVertical() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

// MirrorHorizontal maps file a to file h and vice versa.
func (b Bitboard) MirrorHorizontal() Bitboard {
	const (
		k1 = 0x5555555555555555
		k2 = 0x3333333333333333
		k4 = 0x0f0f0f0f0f0f0f0f
	)
	x := uint64(b)
	x = ((x >> 1) & k1) | ((x & k1) << 1)
	x = ((x >> 2) & k2) | ((x & k2) << 2)
	x = ((x >> 4) & k4) | ((x & k4) << 4)
	return Bitboard(x)
}

// FlipDiagA1H8 flips about the a1-h8 diagonal; h1 is mapped to a8.
func (b Bitboard) FlipDiagA1H8() Bitboard {
	const (
		k1 = 0x5500550055005500
		k2 = 0x3333000033330000
		k4 = 0x0f0f0f0f00000000
	)
	x := uint64(b)
	t := k4 & (x ^ (x << 28))
	x ^= t ^ (t >> 28)
	t = k2 & (x ^ (x << 14))
	x ^= t ^ (t >> 14)
	t = k1 & (x ^ (x << 7))
	x ^= t ^ (t >> 7)
	return Bitboard(x)
}

// FlipDiagA8H1 flips about the a8-h1 anti-diagonal; a1 is mapped to h8.
func (b Bitboard) FlipDiagA8H1() Bitboard {
	const (
		k1 = 0xaa00aa00aa00aa00
		k2 = 0xcccc0000cccc0000
		k4 = 0xf0f0f0f00f0f0f0f
	)
	x := uint64(b)
	t := x ^ (x << 36)
	x ^= k4 & (t ^ (x >> 36))
	t = k2 & (x ^ (x << 18))
	x ^= t ^ (t >> 18)
	t = k1 & (x ^ (x << 9))
	x ^= t ^ (t >> 9)
	return Bitboard(x)
}

// Rotate180 rotates the board by 180 degrees.
func (b Bitboard) Rotate180() Bitboard {
	return b.MirrorHorizontal().FlipVertical()
}

// Rotate90CW rotates the board 90 degrees clockwise.
func (b Bitboard) Rotate90CW() Bitboard {
	return b.FlipDiagA1H8().FlipVertical()
}

// Rotate90CCW rotates the board 90 degrees counter-clockwise.
func (b Bitboard) Rotate90CCW() Bitboard {
	return b.FlipVertical().FlipDiagA1H8()
}

// String returns a visual representation of the bitboard.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := Rank8; ; rank-- {
		sb.WriteString(rank.String())
		sb.WriteByte(' ')
		for file := FileA; file <= FileH; file++ {
			if b.IsSet(SquareAt(file, rank)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
		if rank == Rank1 {
			break
		}
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// ForEach calls the function for each set square.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		f(b.PopLSB())
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
