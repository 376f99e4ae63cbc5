package movegen

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tbreese3/helios/internal/logging"
	"github.com/tbreese3/helios/internal/moveslice"
	"github.com/tbreese3/helios/internal/position"
	. "github.com/tbreese3/helios/internal/types"
)

// Printer formats perft result tables with thousands separators, the same
// locale-aware presentation for its node counts.
var Printer = message.NewPrinter(language.English)

var log = logging.GetLog("perft")

// PerftResult collects the standard perft leaf-node breakdown: the plain
// node count plus the six move-kind counters expected to match the
// published reference vectors exactly at every depth.
type PerftResult struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	CheckMates uint64
}

// Perft runs the standard perft conformance check on pos to depth and
// returns the leaf-node counters. pos is mutated and restored via
// MakeMoveInPlace/UndoMoveInPlace and is left unchanged on return. Depth
// must be >= 1; depth 0 is not a meaningful call and returns a single node.
func Perft(pos *position.Position, depth int) PerftResult {
	var r PerftResult
	if depth <= 0 {
		r.Nodes = 1
		return r
	}
	bufs := make([]*moveslice.MoveSlice, depth+1)
	for i := range bufs {
		bufs[i] = moveslice.NewMoveSlice(bufferCap())
	}
	r.Nodes = perftRec(pos, depth, bufs, &r)
	log.Infof("perft depth %d: %d nodes, %d captures, %d ep, %d castles, %d promotions, %d checks, %d mates",
		depth, r.Nodes, r.Captures, r.EnPassant, r.Castles, r.Promotions, r.Checks, r.CheckMates)
	return r
}

func perftRec(pos *position.Position, depth int, bufs []*moveslice.MoveSlice, r *PerftResult) uint64 {
	buf := bufs[depth]
	Generate(pos, buf, ALL)

	var nodes uint64
	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)

		if depth > 1 {
			if pos.MakeMoveInPlace(m) {
				nodes += perftRec(pos, depth-1, bufs, r)
				pos.UndoMoveInPlace()
			}
			continue
		}

		captured := pos.PieceOn(m.To()) != PieceNone
		isEp := m.Type() == EnPassant
		isCastle := m.Type() == Castle
		isPromotion := m.Type() == Promotion

		if !pos.MakeMoveInPlace(m) {
			continue
		}
		nodes++
		if isEp {
			r.EnPassant++
			r.Captures++
		} else if captured {
			r.Captures++
		}
		if isCastle {
			r.Castles++
		}
		if isPromotion {
			r.Promotions++
		}
		if pos.KingAttacked(pos.SideToMove()) {
			r.Checks++
			eb := moveslice.NewMoveSlice(bufferCap())
			Generate(pos, eb, EVASIONS)
			if eb.Len() == 0 {
				r.CheckMates++
			}
		}
		pos.UndoMoveInPlace()
	}
	return nodes
}
