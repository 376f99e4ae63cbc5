package types

// Piece indexes one of the twelve piece bitboards a position maintains:
// WP,WN,WB,WR,WQ,WK,BP,BN,BB,BR,BQ,BK, in that order. PieceNone is used by
// the optional piece-at-square cache to mark an empty square and by the
// DIFF_INFO "cap" field to mean "no capture"; it is never a valid bitboard
// index.
type Piece uint8

// NumPieces is the number of real pieces (0..11); PieceNone sits just past
// the valid range so it never aliases a bitboard index.
const NumPieces = ColorLength * NumPieceTypes

// PieceNone marks the absence of a piece.
const PieceNone Piece = NumPieces

// MakePiece returns the bitboard index for a piece of type pt and color c.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*NumPieceTypes + int(pt))
}

// IsValid reports whether p is one of the twelve real pieces.
func (p Piece) IsValid() bool {
	return int(p) < NumPieces
}

// ColorOf returns the color of p. Only valid for p.IsValid().
func (p Piece) ColorOf() Color {
	return Color(int(p) / NumPieceTypes)
}

// TypeOf returns the piece type of p. Only valid for p.IsValid().
func (p Piece) TypeOf() PieceType {
	return PieceType(int(p) % NumPieceTypes)
}

var pieceToChar = [NumPieces]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// Char returns the FEN character for p: upper-case for White, lower-case
// for Black.
func (p Piece) Char() byte {
	if !p.IsValid() {
		return '-'
	}
	return pieceToChar[p]
}

// PieceFromChar returns the piece encoded by a FEN piece letter, or
// PieceNone if c is not a recognised letter.
func PieceFromChar(c byte) Piece {
	for i, pc := range pieceToChar {
		if pc == c {
			return Piece(i)
		}
	}
	return PieceNone
}

// String returns the FEN character for p as a one-byte string.
func (p Piece) String() string {
	return string(p.Char())
}
