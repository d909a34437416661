package perft

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/fen"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestCount(t *testing.T) {
	start := board.NewPosition()
	kiwi := fen.MustParse(kiwipete)

	tests := []struct {
		name  string
		pos   board.Position
		depth int
		want  int64
	}{
		{"start depth 0", start, 0, 1},
		{"start depth 1", start, 1, 20},
		{"start depth 2", start, 2, 400},
		{"start depth 3", start, 3, 8902},
		{"kiwipete depth 1", kiwi, 1, 48},
		{"kiwipete depth 2", kiwi, 2, 2039},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Count(tc.pos, tc.depth); got != tc.want {
				t.Errorf("Count(%d) = %d, want %d", tc.depth, got, tc.want)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	pos := board.NewPosition()
	d := NewDivide(pos, 3)

	if len(d) != 20 {
		t.Fatalf("%d root moves, want 20", len(d))
	}
	if d.Total() != 8902 {
		t.Errorf("Total() = %d, want 8902", d.Total())
	}
	if n := d[board.NewMove(board.E2, board.E4)]; n != 600 {
		t.Errorf("e2e4 = %d, want 600", n)
	}

	moves := d.Moves()
	for i := 1; i < len(moves); i++ {
		if moves[i-1].String() >= moves[i].String() {
			t.Fatalf("Moves() not sorted at %d: %v %v", i, moves[i-1], moves[i])
		}
	}

	s := d.String()
	if !strings.HasPrefix(s, "a2a3: 380\n") {
		t.Errorf("String() starts with %q", s[:strings.IndexByte(s, '\n')])
	}
	if !strings.Contains(s, "Nodes searched: 8902") {
		t.Errorf("String() is missing the total:\n%s", s)
	}
	if lines := strings.Count(s, "\n"); lines != 22 {
		t.Errorf("String() has %d lines, want 20 moves, a blank line and the total", lines)
	}

	if len(NewDivide(pos, 0)) != 0 {
		t.Error("depth 0 has no root moves")
	}
}

func TestParallel(t *testing.T) {
	pos := fen.MustParse(kiwipete)
	want := Count(pos, 3)

	for _, workers := range []int{0, 1, 4} {
		var buf bytes.Buffer
		got, err := Parallel(context.Background(), pos, 3, Options{
			Workers: workers,
			Logger:  log.New(&buf, "", 0),
		})
		if err != nil {
			t.Fatalf("workers %d: %v", workers, err)
		}
		if got != want {
			t.Errorf("workers %d: Parallel = %d, want %d", workers, got, want)
		}
		if lines := strings.Count(buf.String(), "\n"); lines != 48 {
			t.Errorf("workers %d: %d log lines, want 48", workers, lines)
		}
	}
}

func TestParallelShallow(t *testing.T) {
	got, err := Parallel(context.Background(), board.NewPosition(), 1, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got != 20 {
		t.Errorf("Parallel(1) = %d, want 20", got)
	}
}

func TestParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parallel(ctx, board.NewPosition(), 3, Options{Workers: 2})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// oracleCount is Count computed by dragontoothmg's make/unmake board.
func oracleCount(b *dragontoothmg.Board, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += oracleCount(b, depth-1)
		unapply()
	}
	return nodes
}

func TestCountMatchesDragontooth(t *testing.T) {
	positions := []string{
		fen.StartFEN,
		kiwipete,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, s := range positions {
		ref := dragontoothmg.ParseFen(s)
		want := oracleCount(&ref, 3)
		if got := Count(fen.MustParse(s), 3); got != want {
			t.Errorf("%s: Count(3) = %d, dragontoothmg %d", s, got, want)
		}
	}
}

func BenchmarkParallelStart4(b *testing.B) {
	pos := board.NewPosition()
	for i := 0; i < b.N; i++ {
		if _, err := Parallel(context.Background(), pos, 4, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
