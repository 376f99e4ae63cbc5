// Package movegen implements the pseudo-legal move generator and the perft
// conformance harness: reads the precomputed attack tables and the
// position's bitboards, writes packed moves into a caller-owned
// moveslice.MoveSlice, never allocates on the hot path.
package movegen

import (
	"github.com/tbreese3/helios/internal/config"
	"github.com/tbreese3/helios/internal/moveslice"
	"github.com/tbreese3/helios/internal/position"
	. "github.com/tbreese3/helios/internal/types"
)

// Mode selects which subset of moves Generate writes.
type Mode int

// The four generation modes the move generator contract recognises.
const (
	ALL Mode = iota
	CAPTURES
	QUIETS
	EVASIONS
)

// defaultMoveBufferCap is used when config.Settings.Core.MoveBufferCap is
// left at its zero value (config.Setup was never called, e.g. in tests).
const defaultMoveBufferCap = 256

// bufferCap returns the configured move-buffer capacity for internal
// buffers this package allocates itself (perft's per-depth buffers, the
// scratch buffer MoveFromUCI uses); buffers a caller passes into Generate
// are sized by the caller, not by this package.
func bufferCap() int {
	if c := config.Settings.Core.MoveBufferCap; c > 0 {
		return c
	}
	return defaultMoveBufferCap
}

var pawnCaptureDirs = [ColorLength][2]Direction{
	{Northwest, Northeast},
	{Southwest, Southeast},
}

// Generate fills buf with the moves mode selects for pos's side to move
// and returns how many were written. buf is cleared first; its backing
// array is reused rather than reallocated.
// ALL/CAPTURES/QUIETS are pseudo-legal: callers check KingAttacked and
// switch to EVASIONS themselves. EVASIONS is legality-filtered here,
// since a pseudo-legal "resolves check" test is not cheaper than just
// trying the move.
func Generate(pos *position.Position, buf *moveslice.MoveSlice, mode Mode) int {
	buf.Clear()

	if mode == EVASIONS {
		generatePseudoLegal(pos, buf, ALL)
		buf.Filter(func(m Move) bool {
			if !pos.MakeMoveInPlace(m) {
				return false
			}
			pos.UndoMoveInPlace()
			return true
		})
		return buf.Len()
	}

	generatePseudoLegal(pos, buf, mode)
	return buf.Len()
}

func generatePseudoLegal(pos *position.Position, buf *moveslice.MoveSlice, mode Mode) {
	genCaptures := mode == ALL || mode == CAPTURES
	genQuiets := mode == ALL || mode == QUIETS

	generatePawnMoves(pos, buf, genCaptures, genQuiets)
	generateOfficerMoves(pos, buf, genCaptures, genQuiets)
	generateKingMoves(pos, buf, genCaptures, genQuiets)
	if genQuiets {
		generateCastling(pos, buf)
	}
}

func generatePawnMoves(pos *position.Position, buf *moveslice.MoveSlice, genCaptures, genQuiets bool) {
	us := pos.SideToMove()
	pawns := pos.PiecesBb(us, Pawn)
	if pawns == BbZero {
		return
	}
	mover := MakePiece(us, Pawn)
	push := us.PawnPushDirection()
	promRank := us.PromotionRankBb()
	occAll := pos.Occupied()

	if genCaptures {
		enemy := pos.OccupiedBy(us.Flip())
		for _, dir := range pawnCaptureDirs[us] {
			targets := Shift(pawns, dir) & enemy
			promos := targets & promRank
			for promos != BbZero {
				toSq := promos.PopLsb()
				fromSq := toSq.To(-dir)
				pushPromotions(buf, fromSq, toSq, mover)
			}
			plain := targets &^ promRank
			for plain != BbZero {
				toSq := plain.PopLsb()
				fromSq := toSq.To(-dir)
				buf.PushBack(NewMove(fromSq, toSq, Normal, mover))
			}
		}
		if ep := pos.EpSquare(); ep != SqNone {
			for _, dir := range pawnCaptureDirs[us] {
				fromSq := ep.To(-dir)
				if fromSq != SqNone && pos.PieceOn(fromSq) == mover {
					buf.PushBack(NewMove(fromSq, ep, EnPassant, mover))
				}
			}
		}
	}

	if genQuiets {
		singleTargets := Shift(pawns, push) &^ occAll
		promos := singleTargets & promRank
		for promos != BbZero {
			toSq := promos.PopLsb()
			fromSq := toSq.To(-push)
			pushPromotions(buf, fromSq, toSq, mover)
		}
		plain := singleTargets &^ promRank
		for plain != BbZero {
			toSq := plain.PopLsb()
			fromSq := toSq.To(-push)
			buf.PushBack(NewMove(fromSq, toSq, Normal, mover))
		}

		doubleSources := pawns & us.PawnStartRankBb()
		doubleIntermediate := Shift(doubleSources, push) &^ occAll
		doubleTargets := Shift(doubleIntermediate, push) &^ occAll
		for doubleTargets != BbZero {
			toSq := doubleTargets.PopLsb()
			fromSq := toSq.To(-push).To(-push)
			buf.PushBack(NewMove(fromSq, toSq, Normal, mover))
		}
	}
}

// pushPromotions appends the four promotion variants for one from/to pair
// in Queen, Rook, Bishop, Knight order.
func pushPromotions(buf *moveslice.MoveSlice, fromSq, toSq Square, mover Piece) {
	for _, pt := range PromotionPieceTypes {
		buf.PushBack(NewPromotionMove(fromSq, toSq, pt, mover))
	}
}

func generateOfficerMoves(pos *position.Position, buf *moveslice.MoveSlice, genCaptures, genQuiets bool) {
	us := pos.SideToMove()
	occAll := pos.Occupied()
	enemy := pos.OccupiedBy(us.Flip())

	for pt := Knight; pt <= Queen; pt++ {
		if pt == King {
			continue
		}
		pieces := pos.PiecesBb(us, pt)
		mover := MakePiece(us, pt)
		for pieces != BbZero {
			fromSq := pieces.PopLsb()
			attacks := GetAttacksBb(pt, fromSq, occAll)

			if genCaptures {
				captures := attacks & enemy
				for captures != BbZero {
					toSq := captures.PopLsb()
					buf.PushBack(NewMove(fromSq, toSq, Normal, mover))
				}
			}
			if genQuiets {
				quiets := attacks &^ occAll
				for quiets != BbZero {
					toSq := quiets.PopLsb()
					buf.PushBack(NewMove(fromSq, toSq, Normal, mover))
				}
			}
		}
	}
}

func generateKingMoves(pos *position.Position, buf *moveslice.MoveSlice, genCaptures, genQuiets bool) {
	us := pos.SideToMove()
	mover := MakePiece(us, King)
	fromSq := pos.KingSquare(us)
	attacks := GetAttacksBb(King, fromSq, pos.Occupied())

	if genCaptures {
		captures := attacks & pos.OccupiedBy(us.Flip())
		for captures != BbZero {
			toSq := captures.PopLsb()
			buf.PushBack(NewMove(fromSq, toSq, Normal, mover))
		}
	}
	if genQuiets {
		quiets := attacks &^ pos.Occupied()
		for quiets != BbZero {
			toSq := quiets.PopLsb()
			buf.PushBack(NewMove(fromSq, toSq, Normal, mover))
		}
	}
}

// generateCastling emits pseudo-legal castling moves: right available and
// the squares between king and rook empty. Check-safety along the king's
// path is the make-time early reject (position.castlePathIsSafe), not the
// generator's job.
func generateCastling(pos *position.Position, buf *moveslice.MoveSlice) {
	cr := pos.CastlingRights()
	if cr == CastlingNone {
		return
	}
	occAll := pos.Occupied()
	us := pos.SideToMove()
	mover := MakePiece(us, King)

	if us == White {
		if cr.Has(CastlingWhiteOO) && Between(SqE1, SqH1)&occAll == BbZero {
			buf.PushBack(NewMove(SqE1, SqG1, Castle, mover))
		}
		if cr.Has(CastlingWhiteOOO) && Between(SqE1, SqA1)&occAll == BbZero {
			buf.PushBack(NewMove(SqE1, SqC1, Castle, mover))
		}
	} else {
		if cr.Has(CastlingBlackOO) && Between(SqE8, SqH8)&occAll == BbZero {
			buf.PushBack(NewMove(SqE8, SqG8, Castle, mover))
		}
		if cr.Has(CastlingBlackOOO) && Between(SqE8, SqA8)&occAll == BbZero {
			buf.PushBack(NewMove(SqE8, SqC8, Castle, mover))
		}
	}
}
