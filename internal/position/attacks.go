package position

import . "github.com/tbreese3/helios/internal/types"

// SquareAttackedBy reports whether any piece of color by attacks sq given
// occupancy occ. It uses the reverse-attack technique: stand a
// virtual attacker of each type on sq and intersect with the real piece
// bitboards of by. Five constant-time intersections, no loops.
func (p *Position) SquareAttackedBy(sq Square, by Color, occ Bitboard) bool {
	if GetPawnAttacks(by.Flip(), sq)&p.PiecesBb(by, Pawn) != 0 {
		return true
	}
	if GetAttacksBb(Knight, sq, occ)&p.PiecesBb(by, Knight) != 0 {
		return true
	}
	if GetAttacksBb(King, sq, occ)&p.PiecesBb(by, King) != 0 {
		return true
	}
	bishopsQueens := p.PiecesBb(by, Bishop) | p.PiecesBb(by, Queen)
	if GetAttacksBb(Bishop, sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.PiecesBb(by, Rook) | p.PiecesBb(by, Queen)
	if GetAttacksBb(Rook, sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// KingAttacked reports whether side's king is currently attacked by the
// opponent, using the position's live occupancy.
func (p *Position) KingAttacked(side Color) bool {
	return p.SquareAttackedBy(p.kingSquare[side], side.Flip(), p.occAll)
}
