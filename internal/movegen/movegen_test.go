package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbreese3/helios/internal/moveslice"
	"github.com/tbreese3/helios/internal/position"
	. "github.com/tbreese3/helios/internal/types"
)

func TestGenerateStartPositionCounts(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	assert.NoError(t, err)

	buf := moveslice.NewMoveSlice(256)
	n := Generate(pos, buf, ALL)
	assert.Equal(t, 20, n)

	captures := moveslice.NewMoveSlice(256)
	Generate(pos, captures, CAPTURES)
	assert.Equal(t, 0, captures.Len())

	quiets := moveslice.NewMoveSlice(256)
	Generate(pos, quiets, QUIETS)
	assert.Equal(t, 20, quiets.Len())
}

func TestGenerateKiwipeteCounts(t *testing.T) {
	// The well known "Kiwipete" position, chosen for exercising castling,
	// en passant and promotions all from one FEN.
	pos, err := position.FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	buf := moveslice.NewMoveSlice(256)
	n := Generate(pos, buf, ALL)
	assert.Equal(t, 48, n)
}

func TestGenerateEnPassantCapture(t *testing.T) {
	pos, err := position.FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)

	buf := moveslice.NewMoveSlice(256)
	Generate(pos, buf, CAPTURES)

	found := false
	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if m.Type() == EnPassant {
			found = true
			assert.Equal(t, SqD6, m.To())
		}
	}
	assert.True(t, found, "expected an en passant capture in capture list")
}

func TestGeneratePromotionsAllFourPieces(t *testing.T) {
	pos, err := position.FromFEN("8/P6k/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	buf := moveslice.NewMoveSlice(256)
	Generate(pos, buf, QUIETS)

	promoTypes := map[PieceType]bool{}
	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if m.Type() == Promotion {
			promoTypes[m.PromotionType()] = true
		}
	}
	assert.Len(t, promoTypes, 4)
}

func TestGenerateCastlingBothSides(t *testing.T) {
	pos, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	buf := moveslice.NewMoveSlice(256)
	Generate(pos, buf, QUIETS)

	castles := 0
	for i := 0; i < buf.Len(); i++ {
		if buf.At(i).Type() == Castle {
			castles++
		}
	}
	assert.Equal(t, 2, castles)
}

func TestGenerateCastlingBlockedByCheckIsRejectedAtMakeTime(t *testing.T) {
	// Black rook on e8's file attacks e1: the king may not castle through
	// or out of check, even though the squares between king and rook are
	// empty (generator-time pseudo-legality only catches emptiness).
	pos, err := position.FromFEN("4r3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)

	buf := moveslice.NewMoveSlice(256)
	Generate(pos, buf, QUIETS)

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if m.Type() == Castle && m.To() == SqG1 {
			assert.False(t, pos.MakeMoveInPlace(m), "king-side castle must be rejected while king is in check")
		}
	}
}

func TestGenerateEvasionsOnlyResolvingMoves(t *testing.T) {
	// White king in check from a black rook on e8; only moves that block,
	// capture the rook, or move the king out of the file may survive.
	pos, err := position.FromFEN("4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	buf := moveslice.NewMoveSlice(256)
	Generate(pos, buf, EVASIONS)
	assert.Greater(t, buf.Len(), 0)

	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		assert.True(t, pos.MakeMoveInPlace(m))
		assert.False(t, pos.KingAttacked(White))
		pos.UndoMoveInPlace()
	}
}

func TestMoveFromUCI(t *testing.T) {
	pos, err := position.FromFEN(position.StartFEN)
	assert.NoError(t, err)

	m := MoveFromUCI(pos, "e2e4")
	assert.NotEqual(t, MoveNone, m)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())

	assert.Equal(t, MoveNone, MoveFromUCI(pos, "e2e5"))
}

func TestMoveFromUCIPromotion(t *testing.T) {
	pos, err := position.FromFEN("8/P6k/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)

	m := MoveFromUCI(pos, "a7a8q")
	assert.NotEqual(t, MoveNone, m)
	assert.Equal(t, Queen, m.PromotionType())
}
