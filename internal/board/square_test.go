package board

import "testing"

func TestSquareFileRank(t *testing.T) {
	tests := []struct {
		sq   Square
		file File
		rank Rank
		name string
	}{
		{A1, FileA, Rank1, "a1"},
		{H1, FileH, Rank1, "h1"},
		{E4, FileE, Rank4, "e4"},
		{A8, FileA, Rank8, "a8"},
		{H8, FileH, Rank8, "h8"},
	}

	for _, tc := range tests {
		if tc.sq.File() != tc.file || tc.sq.Rank() != tc.rank {
			t.Errorf("%v: file/rank = %v/%v, want %v/%v", tc.sq, tc.sq.File(), tc.sq.Rank(), tc.file, tc.rank)
		}
		if tc.sq.String() != tc.name {
			t.Errorf("String() = %q, want %q", tc.sq.String(), tc.name)
		}
		if SquareAt(tc.file, tc.rank) != tc.sq {
			t.Errorf("SquareAt(%v, %v) = %v, want %v", tc.file, tc.rank, SquareAt(tc.file, tc.rank), tc.sq)
		}
		parsed, err := ParseSquare(tc.name)
		if err != nil || parsed != tc.sq {
			t.Errorf("ParseSquare(%q) = %v, %v", tc.name, parsed, err)
		}
	}

	if E4.File().Number() != 5 || E4.Rank().Number() != 4 {
		t.Error("Number() must be 1-based")
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q", NoSquare.String())
	}
}

func TestParseSquareErrors(t *testing.T) {
	for _, s := range []string{"", "e", "e44", "i1", "a9", "A1", "a0"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) succeeded", s)
		}
	}
}

func TestNewSquare(t *testing.T) {
	for i := 0; i < 64; i++ {
		if NewSquare(i) != Square(i) {
			t.Errorf("NewSquare(%d) = %v", i, NewSquare(i))
		}
	}

	for _, i := range []int{-1, 64, 100} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewSquare(%d) did not panic", i)
				}
			}()
			NewSquare(i)
		}()
	}
}

func TestSquareFromBitboard(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if got := SquareFromBitboard(SquareBB(sq)); got != sq {
			t.Errorf("SquareFromBitboard(SquareBB(%v)) = %v", sq, got)
		}
		if sq.Bitboard() != SquareBB(sq) {
			t.Errorf("%v.Bitboard() differs from SquareBB", sq)
		}
	}

	for _, bb := range []Bitboard{Empty, SquareBB(A1) | SquareBB(B1), Universe} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SquareFromBitboard(%x) did not panic", uint64(bb))
				}
			}()
			SquareFromBitboard(bb)
		}()
	}
}

func TestSquareMirror(t *testing.T) {
	if A1.Mirror() != A8 || E2.Mirror() != E7 || H8.Mirror() != H1 {
		t.Error("Mirror must flip the rank")
	}
	if !H8.IsValid() || NoSquare.IsValid() {
		t.Error("IsValid must accept 0-63 only")
	}
}
