package position

import (
	"fmt"
	"strings"

	. "github.com/tbreese3/helios/internal/types"
)

// MaxPly bounds the cookie stack (capacity must be at least 128 plies).
const MaxPly = 256

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// cookie is the undo record for one made ply: everything MakeMoveInPlace
// cannot cheaply recompute in reverse: captured piece, prior castling
// rights, prior en-passant square, prior halfmove clock, and prior hash.
type cookie struct {
	move     Move
	captured Piece
	castling CastlingRights
	epSquare Square
	halfmove int
	fullmove int
	zobrist  Key
}

// Position is the board: twelve piece bitboards, per-color and total
// occupancy caches, a piece-at-square cache, scalar game state, and a
// fixed-capacity cookie stack for undo. It is a plain value type; the
// zero Position is not a legal chess position and must be built via
// NewPosition or FromFEN.
type Position struct {
	pieces   [NumPieces]Bitboard
	occColor [ColorLength]Bitboard
	occAll   Bitboard
	board    [SqLength]Piece

	sideToMove Color
	castling   CastlingRights
	epSquare   Square
	halfmove   int
	fullmove   int
	zobristKey Key
	kingSquare [ColorLength]Square

	cookies   [MaxPly]cookie
	cookieTop int
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := FromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return p
}

// ZobristKey returns the incrementally maintained Zobrist hash.
func (p *Position) ZobristKey() Key { return p.zobristKey }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the castling rights still available.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// EpSquare returns the current en-passant target square, or SqNone.
func (p *Position) EpSquare() Square { return p.epSquare }

// HalfmoveClock returns the 50-move-rule halfmove counter.
func (p *Position) HalfmoveClock() int { return p.halfmove }

// FullmoveNumber returns the current fullmove number (starts at 1).
func (p *Position) FullmoveNumber() int { return p.fullmove }

// PieceOn returns the piece occupying sq, or PieceNone if sq is empty.
func (p *Position) PieceOn(sq Square) Piece { return p.board[sq] }

// PieceBb returns the bitboard of piece index pc (0..11).
func (p *Position) PieceBb(pc Piece) Bitboard { return p.pieces[pc] }

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.pieces[MakePiece(c, pt)]
}

// OccupiedBy returns every square occupied by color c.
func (p *Position) OccupiedBy(c Color) Bitboard { return p.occColor[c] }

// Occupied returns every occupied square on the board.
func (p *Position) Occupied() Bitboard { return p.occAll }

// KingSquare returns the square color c's king stands on.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// CookieDepth returns the number of unmatched MakeMoveInPlace calls since
// the position was parsed (invariant: equals the cookie-stack pointer).
func (p *Position) CookieDepth() int { return p.cookieTop }

// putPiece places pc on an empty square sq, updating every cache and the
// incremental Zobrist key. The square must be empty.
func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	p.pieces[pc].PushSquare(sq)
	p.occColor[pc.ColorOf()].PushSquare(sq)
	p.occAll.PushSquare(sq)
	if pc.TypeOf() == King {
		p.kingSquare[pc.ColorOf()] = sq
	}
	p.zobristKey ^= zobrist.pieces[pc][sq]
}

// removePiece clears the piece on sq (which must be occupied) and returns
// it, updating every cache and the incremental Zobrist key.
func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	p.board[sq] = PieceNone
	p.pieces[pc].PopSquare(sq)
	p.occColor[pc.ColorOf()].PopSquare(sq)
	p.occAll.PopSquare(sq)
	p.zobristKey ^= zobrist.pieces[pc][sq]
	return pc
}

// movePiece relocates the piece on fromSq (which must be occupied) to toSq
// (which must be empty).
func (p *Position) movePiece(fromSq, toSq Square) {
	p.putPiece(p.removePiece(fromSq), toSq)
}

// clearEnPassant removes any current en-passant target, XORing its file
// key back out if one was set.
func (p *Position) clearEnPassant() {
	if p.epSquare != SqNone {
		p.zobristKey ^= zobrist.enPassantFile[p.epSquare.FileOf()]
		p.epSquare = SqNone
	}
}

// String renders the FEN followed by an 8x8 ASCII board, rank 8 on top.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(p.ToFEN())
	b.WriteString("\n")
	b.WriteString(p.StringBoard())
	return b.String()
}

// StringBoard renders an 8x8 ASCII board, rank 8 on top.
func (p *Position) StringBoard() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				b.WriteString("|   ")
			} else {
				b.WriteString(fmt.Sprintf("| %c ", pc.Char()))
			}
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return b.String()
}
