package types

import "strings"

// CastlingRights is a 4-bit set of the castling rights still available,
// matching META bits 1-4: 0x1 white king-side, 0x2 white queen-side,
// 0x4 black king-side, 0x8 black queen-side.
type CastlingRights uint8

// The individual and combined castling rights.
const (
	CastlingNone     CastlingRights = 0x0
	CastlingWhiteOO  CastlingRights = 0x1
	CastlingWhiteOOO CastlingRights = 0x2
	CastlingBlackOO  CastlingRights = 0x4
	CastlingBlackOOO CastlingRights = 0x8

	CastlingWhite = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack = CastlingBlackOO | CastlingBlackOOO
	CastlingAny   = CastlingWhite | CastlingBlack
)

// Has reports whether every right in rhs is set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// String renders the castling rights in FEN order, e.g. "KQkq", or "-" if
// none remain.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(CastlingWhiteOO) {
		b.WriteByte('K')
	}
	if cr.Has(CastlingWhiteOOO) {
		b.WriteByte('Q')
	}
	if cr.Has(CastlingBlackOO) {
		b.WriteByte('k')
	}
	if cr.Has(CastlingBlackOOO) {
		b.WriteByte('q')
	}
	return b.String()
}
