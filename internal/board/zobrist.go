package board

// Zobrist hash keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristEnPassant  [8]uint64        // One per file
	zobristCastling   [2][4]uint64     // [Color][CastlingRight]
	zobristSideToMove uint64           // XOR when black to move
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234) // Fixed seed

	for _, c := range Colors {
		for _, pt := range PieceTypes {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	// NoRight hashes to zero so an empty board with no rights keys to 0.
	for _, c := range Colors {
		for cr := QueenSide; cr <= BothSide; cr++ {
			zobristCastling[c][cr] = rng.next()
		}
	}

	zobristSideToMove = rng.next()
}

// Hash returns the Zobrist key of the position. The clocks are not part of
// the key; two positions with the same placement, side to move, rights and
// en passant square hash equal.
func (p *Position) Hash() uint64 {
	var h uint64
	for _, c := range Colors {
		for _, pt := range PieceTypes {
			bb := p.PiecesOf(pt, c)
			for bb != 0 {
				h ^= zobristPiece[c][pt][bb.PopLSB()]
			}
		}
		h ^= zobristCastling[c][p.castling[c]]
	}
	if p.enPassant != NoSquare {
		h ^= zobristEnPassant[p.enPassant.File()]
	}
	if p.turn == Black {
		h ^= zobristSideToMove
	}
	return h
}
