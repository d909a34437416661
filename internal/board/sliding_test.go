package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// rayAttacks walks each direction square by square until it leaves the
// board or hits an occupied square, which is included.
func rayAttacks(sq Square, occupied Bitboard, dirs [4][2]int) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		f, r := int(sq.File())+d[0], int(sq.Rank())+d[1]
		for f >= 0 && f < 8 && r >= 0 && r < 8 {
			s := SquareAt(File(f), Rank(r))
			attacks |= SquareBB(s)
			if occupied.IsSet(s) {
				break
			}
			f, r = f+d[0], r+d[1]
		}
	}
	return attacks
}

var (
	rookDirections   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirections = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
)

func rookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, rookDirections)
}

func bishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return rayAttacks(sq, occupied, bishopDirections)
}

// randomOccupancies returns sparse and dense occupancies from a fixed seed.
func randomOccupancies(n int) []Bitboard {
	rng := newPRNG(0x5EED5EED12345678)
	occs := make([]Bitboard, 0, n)
	for i := 0; i < n; i++ {
		a, b := Bitboard(rng.next()), Bitboard(rng.next())
		switch i % 3 {
		case 0:
			occs = append(occs, a&b) // ~16 squares
		case 1:
			occs = append(occs, a&b&Bitboard(rng.next())) // ~8 squares
		default:
			occs = append(occs, a)
		}
	}
	return occs
}

func TestRookAttacksEmptyBoard(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		want := (FileMask[sq.File()] | RankMask[sq.Rank()]) &^ SquareBB(sq)
		if got := RookAttacks(sq, Empty); got != want {
			t.Errorf("rook on %v: got %v, want %v", sq, got.Squares(), want.Squares())
		}
		if got := RookAttacks(sq, Empty).PopCount(); got != 14 {
			t.Errorf("rook on %v attacks %d squares, want 14", sq, got)
		}
	}
}

func TestRookAttacksCorner(t *testing.T) {
	want := (FileABB | Rank1BB) &^ SquareBB(A1)
	if got := RookAttacks(A1, SquareBB(A1)); got != want {
		t.Errorf("rook on a1 with its own square occupied: %v", got.Squares())
	}
}

func TestRookAttacksBlocker(t *testing.T) {
	occ := SquareBB(D1) | SquareBB(D6) | SquareBB(B4) | SquareBB(G4) | SquareBB(H4)
	want := SquareBB(D2) | SquareBB(D3) | SquareBB(D1) |
		SquareBB(D5) | SquareBB(D6) |
		SquareBB(C4) | SquareBB(B4) |
		SquareBB(E4) | SquareBB(F4) | SquareBB(G4)
	if got := RookAttacks(D4, occ); got != want {
		t.Errorf("got %v, want %v", got.Squares(), want.Squares())
	}
}

func TestQueenAttacksLongDiagonal(t *testing.T) {
	// Queen on a1 with a bishop on h8: the bishop is the first blocker and is attacked.
	got := QueenAttacks(A1, SquareBB(A1)|SquareBB(H8))
	if !got.IsSet(H8) {
		t.Error("queen on a1 must attack h8")
	}
	want := (FileABB | Rank1BB | DiagonalA1H8) &^ SquareBB(A1)
	if got != want {
		t.Errorf("got %v, want %v", got.Squares(), want.Squares())
	}
}

func TestBishopAttacksBlocked(t *testing.T) {
	occ := SquareBB(F6) | SquareBB(B2) | SquareBB(G1)
	want := SquareBB(E5) | SquareBB(F6) |
		SquareBB(C3) | SquareBB(B2) |
		SquareBB(C5) | SquareBB(B6) | SquareBB(A7) |
		SquareBB(E3) | SquareBB(F2) | SquareBB(G1)
	if got := BishopAttacks(D4, occ); got != want {
		t.Errorf("got %v, want %v", got.Squares(), want.Squares())
	}
}

func TestLineMasksExcludeSquare(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		for name, mask := range map[string]Bitboard{
			"file":          fileMask(sq),
			"diagonal":      diagonalMask(sq),
			"anti-diagonal": antiDiagonalMask(sq),
		} {
			if mask.IsSet(sq) {
				t.Errorf("%s mask of %v contains the square", name, sq)
			}
		}
		if got, want := diagonalMask(sq)|antiDiagonalMask(sq), bishopAttacksSlow(sq, Empty); got != want {
			t.Errorf("diagonal masks of %v: got %v, want %v", sq, got.Squares(), want.Squares())
		}
	}
}

func TestFirstRankAttacks(t *testing.T) {
	// Slider on c, pieces on a and f: attacks a, b, d, e and f.
	got := firstRankAttacks[FileC][0b00100001]
	if want := uint8(0b00111011); got != want {
		t.Errorf("got %08b, want %08b", got, want)
	}
	// The slider's own bit never affects the result
	for file := 0; file < 8; file++ {
		for occ := 0; occ < 256; occ++ {
			if firstRankAttacks[file][occ] != firstRankAttacks[file][occ^(1<<file)] {
				t.Fatalf("file %d occupancy %08b depends on the slider bit", file, occ)
			}
		}
	}
}

func TestSlidingAttacksMatchRayCasting(t *testing.T) {
	for _, occ := range randomOccupancies(300) {
		for sq := A1; sq <= H8; sq++ {
			if got, want := RookAttacks(sq, occ), rookAttacksSlow(sq, occ); got != want {
				t.Fatalf("rook on %v occ %x: got %v, want %v", sq, uint64(occ), got.Squares(), want.Squares())
			}
			if got, want := BishopAttacks(sq, occ), bishopAttacksSlow(sq, occ); got != want {
				t.Fatalf("bishop on %v occ %x: got %v, want %v", sq, uint64(occ), got.Squares(), want.Squares())
			}
		}
	}
}

func TestSlidingAttacksMatchDragontooth(t *testing.T) {
	for _, occ := range randomOccupancies(300) {
		for sq := A1; sq <= H8; sq++ {
			occ := occ | SquareBB(sq)
			wantRook := Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), uint64(occ)))
			if got := RookAttacks(sq, occ); got != wantRook {
				t.Fatalf("rook on %v occ %x: got %v, want %v", sq, uint64(occ), got.Squares(), wantRook.Squares())
			}
			wantBishop := Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), uint64(occ)))
			if got := BishopAttacks(sq, occ); got != wantBishop {
				t.Fatalf("bishop on %v occ %x: got %v, want %v", sq, uint64(occ), got.Squares(), wantBishop.Squares())
			}
		}
	}
}

func TestSlidingAttacksDispatch(t *testing.T) {
	occ := SquareBB(D6) | SquareBB(F2)
	if SlidingAttacks(Rook, D4, occ) != RookAttacks(D4, occ) ||
		SlidingAttacks(Bishop, D4, occ) != BishopAttacks(D4, occ) ||
		SlidingAttacks(Queen, D4, occ) != QueenAttacks(D4, occ) {
		t.Error("SlidingAttacks dispatches to the wrong generator")
	}

	for _, pt := range []PieceType{Pawn, Knight, King, NoPieceType} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SlidingAttacks(%v) did not panic", pt)
				}
			}()
			SlidingAttacks(pt, D4, occ)
		}()
	}
}

func BenchmarkRookAttacks(b *testing.B) {
	occ := Bitboard(0x00FF00000000FF00) | SquareBB(D5)
	for i := 0; i < b.N; i++ {
		_ = RookAttacks(Square(i&63), occ)
	}
}

func BenchmarkBishopAttacks(b *testing.B) {
	occ := Bitboard(0x00FF00000000FF00) | SquareBB(D5)
	for i := 0; i < b.N; i++ {
		_ = BishopAttacks(Square(i&63), occ)
	}
}
