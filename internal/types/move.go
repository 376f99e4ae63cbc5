package types

import "strings"

// Move is a packed 32-bit move: from | to<<6 | promo<<12 | type<<14 | mover<<16.
// It carries everything make/undo needs without a side table lookup: the
// mover's piece index is baked in at generation time since the generator
// already knows which piece is moving.
type Move uint32

// MoveType distinguishes the four kinds of move the DIFF_INFO/packed-move
// encoding recognises.
type MoveType uint32

// The four move kinds.
const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castle
)

// MoveNone is the zero move, never produced by the generator.
const MoveNone Move = 0

const (
	moveToShift    = 6
	movePromoShift = 12
	moveTypeShift  = 14
	moveMoverShift = 16

	moveFromMask  = 0x3F
	moveToMask    = 0x3F
	movePromoMask = 0x3
	moveTypeMask  = 0x3
	moveMoverMask = 0xF
)

// NewMove packs a normal or en-passant move.
func NewMove(from, to Square, mt MoveType, mover Piece) Move {
	return Move(uint32(from) | uint32(to)<<moveToShift | uint32(mt)<<moveTypeShift | uint32(mover)<<moveMoverShift)
}

// NewPromotionMove packs a promotion move; promo is the piece the pawn
// becomes (Knight, Bishop, Rook or Queen).
func NewPromotionMove(from, to Square, promo PieceType, mover Piece) Move {
	return Move(uint32(from) | uint32(to)<<moveToShift | promoCode(promo)<<movePromoShift |
		uint32(Promotion)<<moveTypeShift | uint32(mover)<<moveMoverShift)
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square(uint32(m) & moveFromMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((uint32(m) >> moveToShift) & moveToMask)
}

// Type returns the move kind.
func (m Move) Type() MoveType {
	return MoveType((uint32(m) >> moveTypeShift) & moveTypeMask)
}

// PromotionType returns the piece a pawn promotes to; only meaningful when
// Type() == Promotion.
func (m Move) PromotionType() PieceType {
	return pieceTypeFromPromoCode((uint32(m) >> movePromoShift) & movePromoMask)
}

// Mover returns the bitboard index of the piece making the move.
func (m Move) Mover() Piece {
	return Piece((uint32(m) >> moveMoverShift) & moveMoverMask)
}

// IsValid reports whether m has at least a non-degenerate from/to pair. It
// does not validate m against any particular position.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From() != m.To()
}

// promoCode maps Knight/Bishop/Rook/Queen to the packed move's 2-bit promotion
// selector (0=N,1=B,2=R,3=Q), which happens to be PieceType-1 given the
// Pawn,Knight,Bishop,Rook,Queen,King ordering.
func promoCode(pt PieceType) uint32 {
	return uint32(pt) - uint32(Knight)
}

func pieceTypeFromPromoCode(code uint32) PieceType {
	return PieceType(code + uint32(Knight))
}

// StringUci renders m in UCI long algebraic form: <from><to>[<promo>].
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.Type() == Promotion {
		b.WriteString(strings.ToLower(string(m.PromotionType().Char())))
	}
	return b.String()
}

// String renders m the same way StringUci does; packed moves have no
// independent human-readable form without a position to resolve SAN against.
func (m Move) String() string {
	return m.StringUci()
}
