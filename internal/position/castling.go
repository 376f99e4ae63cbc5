package position

import . "github.com/tbreese3/helios/internal/types"

// crLostFrom and crLostTo are the two 64-entry castling-rights-loss masks.
// Updating castling rights after a move is a single
// `cr &= crLostFrom[from] & crLostTo[to]`: crLostFrom drops rights whose
// king or rook left its origin square, crLostTo drops the rook's right
// when it is captured on its home square.
var crLostFrom [SqLength]CastlingRights
var crLostTo [SqLength]CastlingRights

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		crLostFrom[sq] = CastlingAny
		crLostTo[sq] = CastlingAny
	}
	crLostFrom[SqE1] &^= CastlingWhite
	crLostFrom[SqA1] &^= CastlingWhiteOOO
	crLostFrom[SqH1] &^= CastlingWhiteOO
	crLostFrom[SqE8] &^= CastlingBlack
	crLostFrom[SqA8] &^= CastlingBlackOOO
	crLostFrom[SqH8] &^= CastlingBlackOO

	crLostTo[SqA1] &^= CastlingWhiteOOO
	crLostTo[SqH1] &^= CastlingWhiteOO
	crLostTo[SqA8] &^= CastlingBlackOOO
	crLostTo[SqH8] &^= CastlingBlackOO
}
