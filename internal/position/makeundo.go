package position

import (
	"github.com/tbreese3/helios/internal/assert"
	"github.com/tbreese3/helios/internal/config"
	"github.com/tbreese3/helios/internal/util"

	. "github.com/tbreese3/helios/internal/types"
)

// effectiveMaxPly is the cookie-stack overflow threshold: config.Settings
// lets an operator tighten it below the compile-time array capacity
// (MaxPly) but never raise it beyond the space actually allocated.
func effectiveMaxPly() int {
	if limit := config.Settings.Core.MaxPly; limit > 0 && limit < MaxPly {
		return limit
	}
	return MaxPly
}

// MakeMoveInPlace applies a packed move to the position. It assumes
// m came from Generate against this exact position and has not been
// revalidated since; callers that hold moves across an intervening mutation
// must regenerate. Returns true if the move was legal (state updated) or
// false if it would leave the mover's own king in check, including
// castling through/out-of/into check and attempted king capture -- in the
// false case the position is left exactly as it was found.
//
// Panics with ErrCookieStackOverflow if invoked beyond effectiveMaxPly()
// unmatched calls; this is a programmer error, not a recoverable one.
func (p *Position) MakeMoveInPlace(m Move) bool {
	if p.cookieTop >= effectiveMaxPly() {
		panic(ErrCookieStackOverflow)
	}
	if assert.DEBUG && !m.Mover().IsValid() {
		panic(&InvalidMoveEncodingError{Move: uint32(m)})
	}
	prevTop := p.cookieTop

	fromSq, toSq, mt, mover := m.From(), m.To(), m.Type(), m.Mover()
	us := mover.ColorOf()

	if mt == Castle && !p.castlePathIsSafe(fromSq, toSq, us) {
		return false
	}

	c := &p.cookies[p.cookieTop]
	c.move = m
	c.captured = PieceNone
	c.castling = p.castling
	c.epSquare = p.epSquare
	c.halfmove = p.halfmove
	c.fullmove = p.fullmove
	c.zobrist = p.zobristKey
	p.cookieTop++

	switch mt {
	case Normal:
		c.captured = p.doMakeNormal(fromSq, toSq, mover)
	case Promotion:
		c.captured = p.doMakePromotion(m, fromSq, toSq, mover)
	case EnPassant:
		c.captured = p.doMakeEnPassant(fromSq, toSq, mover)
	case Castle:
		p.doMakeCastle(fromSq, toSq)
	}

	if c.captured != PieceNone && c.captured.TypeOf() == King {
		p.reverseMove(c)
		p.cookieTop--
		return false
	}

	p.updateCastlingRights(fromSq, toSq)
	p.sideToMove = us.Flip()
	p.zobristKey ^= zobrist.sideToMove
	if us == Black {
		p.fullmove++
	}

	if p.KingAttacked(us) {
		p.reverseMove(c)
		p.cookieTop--
		return false
	}

	if assert.DEBUG {
		assert.Assert(p.cookieTop == prevTop+1, "MakeMoveInPlace: cookie stack pointer did not advance by exactly one")
		p.checkInvariants("MakeMoveInPlace")
	}
	return true
}

// UndoMoveInPlace reverses the most recent MakeMoveInPlace call. The
// caller must only invoke it after a make that returned true, and calls
// across different positions may interleave but a single position's undos
// must follow strict LIFO order with respect to its makes.
func (p *Position) UndoMoveInPlace() {
	if p.cookieTop == 0 {
		panic("position: UndoMoveInPlace called with an empty cookie stack")
	}
	prevTop := p.cookieTop
	p.cookieTop--
	p.reverseMove(&p.cookies[p.cookieTop])

	if assert.DEBUG {
		assert.Assert(p.cookieTop == prevTop-1, "UndoMoveInPlace: cookie stack pointer did not retreat by exactly one")
		p.checkInvariants("UndoMoveInPlace")
	}
}

// castlePathIsSafe implements the step-2 "castle early-reject": the king
// may not be in check, pass through an attacked square, or land on an
// attacked square. Castling-right/between-squares emptiness is the
// generator's job; this is only the check-safety half of castling
// legality.
func (p *Position) castlePathIsSafe(fromSq, toSq Square, us Color) bool {
	them := us.Flip()
	var passSq Square
	switch toSq {
	case SqG1:
		passSq = SqF1
	case SqC1:
		passSq = SqD1
	case SqG8:
		passSq = SqF8
	case SqC8:
		passSq = SqD8
	default:
		return false
	}
	return !p.SquareAttackedBy(fromSq, them, p.occAll) &&
		!p.SquareAttackedBy(passSq, them, p.occAll) &&
		!p.SquareAttackedBy(toSq, them, p.occAll)
}

func (p *Position) doMakeNormal(fromSq, toSq Square, mover Piece) Piece {
	captured := p.board[toSq]
	p.clearEnPassant()
	switch {
	case captured != PieceNone:
		p.removePiece(toSq)
		p.halfmove = 0
	case mover.TypeOf() == Pawn:
		p.halfmove = 0
		if util.Abs(int(toSq)-int(fromSq)) == 16 {
			p.epSquare = toSq.To(mover.ColorOf().Flip().PawnPushDirection())
			p.zobristKey ^= zobrist.enPassantFile[p.epSquare.FileOf()]
		}
	default:
		p.halfmove++
	}
	p.movePiece(fromSq, toSq)
	return captured
}

func (p *Position) doMakePromotion(m Move, fromSq, toSq Square, mover Piece) Piece {
	captured := p.board[toSq]
	p.clearEnPassant()
	if captured != PieceNone {
		p.removePiece(toSq)
	}
	p.removePiece(fromSq)
	p.putPiece(MakePiece(mover.ColorOf(), m.PromotionType()), toSq)
	p.halfmove = 0
	return captured
}

func (p *Position) doMakeEnPassant(fromSq, toSq Square, mover Piece) Piece {
	capSq := toSq.To(mover.ColorOf().Flip().PawnPushDirection())
	captured := p.removePiece(capSq)
	p.movePiece(fromSq, toSq)
	p.clearEnPassant()
	p.halfmove = 0
	return captured
}

func (p *Position) doMakeCastle(fromSq, toSq Square) {
	p.clearEnPassant()
	p.movePiece(fromSq, toSq)
	switch toSq {
	case SqG1:
		p.movePiece(SqH1, SqF1)
	case SqC1:
		p.movePiece(SqA1, SqD1)
	case SqG8:
		p.movePiece(SqH8, SqF8)
	case SqC8:
		p.movePiece(SqA8, SqD8)
	}
	p.halfmove++
}

// updateCastlingRights applies the two loss masks for any move
// touching a king/rook origin or a rook's home square, regardless of move
// type: a king move clears both of its side's rights via crLostFrom, and a
// capture landing on a1/h1/a8/h8 clears the matching right via crLostTo
// even when the move itself is a promotion.
func (p *Position) updateCastlingRights(fromSq, toSq Square) {
	next := p.castling & crLostFrom[fromSq] & crLostTo[toSq]
	if next != p.castling {
		p.zobristKey ^= zobrist.castlingRights[p.castling]
		p.castling = next
		p.zobristKey ^= zobrist.castlingRights[p.castling]
	}
}

// reverseMove undoes the board mutation a make performed for c.move and
// restores every scalar field from c. Used both by UndoMoveInPlace and by
// MakeMoveInPlace's own illegal-move rollback.
func (p *Position) reverseMove(c *cookie) {
	m := c.move
	fromSq, toSq, mt, mover := m.From(), m.To(), m.Type(), m.Mover()
	us := mover.ColorOf()

	switch mt {
	case Normal:
		p.movePiece(toSq, fromSq)
		if c.captured != PieceNone {
			p.putPiece(c.captured, toSq)
		}
	case Promotion:
		p.removePiece(toSq)
		p.putPiece(mover, fromSq)
		if c.captured != PieceNone {
			p.putPiece(c.captured, toSq)
		}
	case EnPassant:
		p.movePiece(toSq, fromSq)
		p.putPiece(c.captured, toSq.To(us.Flip().PawnPushDirection()))
	case Castle:
		p.movePiece(toSq, fromSq)
		switch toSq {
		case SqG1:
			p.movePiece(SqF1, SqH1)
		case SqC1:
			p.movePiece(SqD1, SqA1)
		case SqG8:
			p.movePiece(SqF8, SqH8)
		case SqC8:
			p.movePiece(SqD8, SqA8)
		}
	}

	p.castling = c.castling
	p.epSquare = c.epSquare
	p.halfmove = c.halfmove
	p.fullmove = c.fullmove
	p.zobristKey = c.zobrist
	p.sideToMove = us
}

