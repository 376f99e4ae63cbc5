package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbreese3/helios/internal/config"

	. "github.com/tbreese3/helios/internal/types"
)

func TestFromFENStartPosition(t *testing.T) {
	p, err := FromFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingWhiteOO|CastlingWhiteOOO|CastlingBlackOO|CastlingBlackOOO, p.CastlingRights())
	assert.Equal(t, SqNone, p.EpSquare())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 5 50",
	}
	for _, fen := range fens {
		p, err := FromFEN(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.ToFEN())
	}
}

func TestFENCapturableEpSquare(t *testing.T) {
	// A pawn of the side to move actually attacks the ep square: it must
	// round-trip with the ep field present.
	p, err := FromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	assert.Equal(t, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", p.ToFEN())

	// No pawn of the side to move can reach the ep square: FEN output must
	// collapse it to "-" even though the field was supplied on parse.
	p2, err := FromFEN("4k3/8/8/3p4/8/8/8/4K3 w - d6 0 1")
	assert.NoError(t, err)
	assert.Equal(t, "4k3/8/8/3p4/8/8/8/4K3 w - - 0 1", p2.ToFEN())
}

func TestFromFENRejectsMalformedFields(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XYZkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
	}
	for _, fen := range cases {
		_, err := FromFEN(fen)
		assert.Error(t, err, fen)
		var fenErr *InvalidFenError
		assert.ErrorAs(t, err, &fenErr, fen)
	}
}

func TestMakeUndoRestoresExactState(t *testing.T) {
	p, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	before := p.ToFEN()
	beforeHash := p.ZobristKey()

	m := NewMove(SqE1, SqF1, Normal, MakePiece(White, King))
	assert.True(t, p.MakeMoveInPlace(m))
	assert.NotEqual(t, before, p.ToFEN())
	p.UndoMoveInPlace()

	assert.Equal(t, before, p.ToFEN())
	assert.Equal(t, beforeHash, p.ZobristKey())
	assert.Equal(t, 0, p.CookieDepth())
}

func TestMakeMoveRejectsKingCapture(t *testing.T) {
	// Contrived position: it is not legal chess, but MakeMoveInPlace must
	// still refuse to actually capture a king and leave state untouched.
	p := &Position{board: [SqLength]Piece{}, epSquare: SqNone}
	for i := range p.board {
		p.board[i] = PieceNone
	}
	p.putPiece(MakePiece(White, Rook), SqA1)
	p.putPiece(MakePiece(White, King), SqE1)
	p.putPiece(MakePiece(Black, King), SqA8)
	p.sideToMove = White
	p.fullmove = 1

	before := p.ToFEN()
	m := NewMove(SqA1, SqA8, Normal, MakePiece(White, Rook))
	assert.False(t, p.MakeMoveInPlace(m))
	assert.Equal(t, before, p.ToFEN())
	assert.Equal(t, 0, p.CookieDepth())
}

func TestMakeMoveRejectsSelfCheck(t *testing.T) {
	// A pinned rook may not step off the pin file.
	p, err := FromFEN("4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	m := NewMove(SqE2, SqF2, Normal, MakePiece(White, Rook))
	before := p.ToFEN()
	assert.False(t, p.MakeMoveInPlace(m))
	assert.Equal(t, before, p.ToFEN())
	assert.Equal(t, 0, p.CookieDepth())
}

func TestMakeMoveRejectsCastlingThroughCheck(t *testing.T) {
	// Black rook on f8 attacks f1, the square the king passes through.
	p, err := FromFEN("5r2/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)
	m := NewMove(SqE1, SqG1, Castle, MakePiece(White, King))
	before := p.ToFEN()
	assert.False(t, p.MakeMoveInPlace(m))
	assert.Equal(t, before, p.ToFEN())
	assert.Equal(t, 0, p.CookieDepth())
}

func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	// White knight captures the black rook on h8: black loses kingside
	// castling even though the move is neither a king move nor Normal
	// from a1/h1/a8/h8 for white.
	p, err := FromFEN("4k2r/5N2/8/8/8/8/8/4K3 w k - 0 1")
	assert.NoError(t, err)

	m := NewMove(SqF7, SqH8, Normal, MakePiece(White, Knight))
	assert.True(t, p.MakeMoveInPlace(m))
	assert.Equal(t, CastlingNone, p.CastlingRights())
}

func TestCastlingRightsLostOnKingMove(t *testing.T) {
	p, err := FromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	assert.NoError(t, err)

	m := NewMove(SqE1, SqE2, Normal, MakePiece(White, King))
	assert.True(t, p.MakeMoveInPlace(m))
	assert.Equal(t, CastlingNone, p.CastlingRights())
}

func TestZobristIncrementalMatchesFullHash(t *testing.T) {
	p, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, p.fullHash(), p.ZobristKey())

	moves := []Move{
		NewMove(SqE1, SqF1, Normal, MakePiece(White, King)),
	}
	for _, m := range moves {
		assert.True(t, p.MakeMoveInPlace(m))
		assert.Equal(t, p.fullHash(), p.ZobristKey(), "incremental hash diverged from full hash after make")
		p.UndoMoveInPlace()
		assert.Equal(t, p.fullHash(), p.ZobristKey(), "incremental hash diverged from full hash after undo")
	}
}

func TestBitboardsStayDisjoint(t *testing.T) {
	p, err := FromFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)

	var seen Bitboard
	for pc := Piece(0); pc < NumPieces; pc++ {
		bb := p.PieceBb(pc)
		assert.Equal(t, BbZero, bb&seen, "piece bitboards overlap")
		seen |= bb
	}
	assert.Equal(t, p.Occupied(), seen)
	assert.Equal(t, BbZero, p.OccupiedBy(White)&p.OccupiedBy(Black))
}

func TestEachSideHasExactlyOneKing(t *testing.T) {
	p, err := FromFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, 1, p.PiecesBb(White, King).PopCount())
	assert.Equal(t, 1, p.PiecesBb(Black, King).PopCount())
}

func TestConfiguredMaxPlyTightensCookieStackOverflow(t *testing.T) {
	saved := config.Settings.Core.MaxPly
	defer func() { config.Settings.Core.MaxPly = saved }()

	config.Settings.Core.MaxPly = 2
	p, err := FromFEN(StartFEN)
	assert.NoError(t, err)

	assert.True(t, p.MakeMoveInPlace(NewMove(SqE2, SqE4, Normal, MakePiece(White, Pawn))))
	assert.True(t, p.MakeMoveInPlace(NewMove(SqE7, SqE5, Normal, MakePiece(Black, Pawn))))
	assert.PanicsWithValue(t, ErrCookieStackOverflow, func() {
		p.MakeMoveInPlace(NewMove(SqG1, SqF3, Normal, MakePiece(White, Knight)))
	})

	config.Settings.Core.MaxPly = 0
	assert.Equal(t, MaxPly, effectiveMaxPly(), "zero config value must fall back to the compile-time capacity")

	config.Settings.Core.MaxPly = MaxPly + 100
	assert.Equal(t, MaxPly, effectiveMaxPly(), "configured MaxPly must never exceed the compile-time capacity")
}
