package position

import (
	"github.com/tbreese3/helios/internal/assert"

	. "github.com/tbreese3/helios/internal/types"
)

// checkInvariants runs the debug-only consistency checks MakeMoveInPlace and
// UndoMoveInPlace rely on holding at every ply: the twelve piece bitboards
// are pairwise disjoint and union to occAll, White/Black occupancy is
// disjoint, each side has exactly one king, and the incrementally
// maintained Zobrist key matches a full recompute. where names the caller
// for the panic message. A no-op unless built with -tags debug.
func (p *Position) checkInvariants(where string) {
	if !assert.DEBUG {
		return
	}

	var seen Bitboard
	for pc := Piece(0); pc < NumPieces; pc++ {
		bb := p.pieces[pc]
		assert.Assert(bb&seen == 0, "%s: piece bitboards overlap on piece %d", where, pc)
		seen |= bb
	}
	assert.Assert(seen == p.occAll, "%s: union of piece bitboards does not match occAll", where)
	assert.Assert(p.occColor[White]&p.occColor[Black] == 0, "%s: white/black occupancy overlap", where)
	assert.Assert(p.PiecesBb(White, King).PopCount() == 1, "%s: white must have exactly one king, found %d", where, p.PiecesBb(White, King).PopCount())
	assert.Assert(p.PiecesBb(Black, King).PopCount() == 1, "%s: black must have exactly one king, found %d", where, p.PiecesBb(Black, King).PopCount())
	assert.Assert(p.fullHash() == p.zobristKey, "%s: incremental zobrist key diverged from full hash", where)
	assert.Assert(p.cookieTop >= 0 && p.cookieTop <= MaxPly, "%s: cookie stack pointer %d out of bounds", where, p.cookieTop)
}
