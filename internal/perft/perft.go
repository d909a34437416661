// Package perft counts the leaf nodes of the legal move tree of a position.
// Comparing the counts with published values verifies move generation.
package perft

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesscore/internal/board"
)

// Options configures Parallel.
type Options struct {
	// Workers bounds the number of root moves searched at once.
	// Zero or less means runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives one line per finished root move. Nil disables logging.
	Logger *log.Logger
}

// Count returns the number of leaf nodes at the given depth.
func Count(p board.Position, depth int) int64 {
	if depth <= 0 {
		return 1
	}

	moves := p.LegalMoves()
	if depth == 1 {
		return int64(moves.Len())
	}

	var nodes int64
	for _, m := range moves.Slice() {
		next, ok := p.MakeMove(m)
		if !ok {
			continue
		}
		nodes += Count(next, depth-1)
	}
	return nodes
}

// Divide maps each root move to the leaf count below it.
type Divide map[board.Move]int64

// NewDivide counts the leaves below every legal root move.
func NewDivide(p board.Position, depth int) Divide {
	d := make(Divide)
	if depth <= 0 {
		return d
	}
	for _, m := range p.LegalMoves().Slice() {
		m := m // per-iteration copy; the module targets go 1.21 loop semantics
		next, _ := p.MakeMove(m)
		d[m] = Count(next, depth-1)
	}
	return d
}

// Moves returns the root moves in UCI string order.
func (d Divide) Moves() []board.Move {
	byName := make(map[string]board.Move, len(d))
	for m := range d {
		byName[m.String()] = m
	}
	names := maps.Keys(byName)
	slices.Sort(names)

	moves := make([]board.Move, len(names))
	for i, name := range names {
		moves[i] = byName[name]
	}
	return moves
}

// Total returns the sum of all counts.
func (d Divide) Total() int64 {
	var total int64
	for _, n := range d {
		total += n
	}
	return total
}

// String lists "move: count" lines in move order followed by the total.
func (d Divide) String() string {
	var sb strings.Builder
	for _, m := range d.Moves() {
		fmt.Fprintf(&sb, "%s: %d\n", m, d[m])
	}
	fmt.Fprintf(&sb, "\nNodes searched: %d\n", d.Total())
	return sb.String()
}

// Parallel is Count with the root moves spread over a bounded group of
// goroutines. All workers read the same root position. Cancelling ctx stops
// new root moves from starting and returns the context error.
func Parallel(ctx context.Context, p board.Position, depth int, opts Options) (int64, error) {
	if depth <= 1 {
		return Count(p, depth), nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var nodes atomic.Int64
	for _, m := range p.LegalMoves().Slice() {
		m := m // per-iteration copy; the module targets go 1.21 loop semantics
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			next, ok := p.MakeMove(m)
			if !ok {
				return fmt.Errorf("perft: generated move %v rejected", m)
			}
			n := Count(next, depth-1)
			nodes.Add(n)
			if opts.Logger != nil {
				opts.Logger.Printf("%s: %d", m, n)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return nodes.Load(), nil
}
