package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnightAttacksFromCorner(t *testing.T) {
	assert := assert.New(t)
	attacks := GetAttacksBb(Knight, SqA1, BbZero)
	assert.Equal(2, attacks.PopCount())
	assert.True(attacks.Has(SqB3))
	assert.True(attacks.Has(SqC2))
}

func TestKingAttacksFromCenter(t *testing.T) {
	assert.Equal(t, 8, GetAttacksBb(King, SqE4, BbZero).PopCount())
}

func TestRookAttacksOnEmptyBoardFromCorner(t *testing.T) {
	attacks := GetAttacksBb(Rook, SqA1, BbZero)
	assert.Equal(t, 14, attacks.PopCount())
}

func TestRookAttacksBlockedByOccupancy(t *testing.T) {
	assert := assert.New(t)
	occ := SqA4.Bb() | SqD1.Bb()
	attacks := GetAttacksBb(Rook, SqA1, occ)
	assert.True(attacks.Has(SqA4))
	assert.False(attacks.Has(SqA5))
	assert.True(attacks.Has(SqD1))
	assert.False(attacks.Has(SqE1))
}

func TestBishopAttacksFromCenter(t *testing.T) {
	attacks := GetAttacksBb(Bishop, SqD4, BbZero)
	assert.Equal(t, 13, attacks.PopCount())
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	assert := assert.New(t)
	occ := SqD7.Bb()
	q := GetAttacksBb(Queen, SqD4, occ)
	r := GetAttacksBb(Rook, SqD4, occ)
	b := GetAttacksBb(Bishop, SqD4, occ)
	assert.Equal(r|b, q)
}

func TestBetweenOnSharedRank(t *testing.T) {
	assert := assert.New(t)
	between := Between(SqA1, SqD1)
	assert.Equal(2, between.PopCount())
	assert.True(between.Has(SqB1))
	assert.True(between.Has(SqC1))
}

func TestBetweenUnrelatedSquaresIsEmpty(t *testing.T) {
	assert.Equal(t, BbZero, Between(SqA1, SqB3))
}

func TestPawnAttacks(t *testing.T) {
	assert := assert.New(t)
	assert.True(GetPawnAttacks(White, SqE4).Has(SqD5))
	assert.True(GetPawnAttacks(White, SqE4).Has(SqF5))
	assert.True(GetPawnAttacks(Black, SqE4).Has(SqD3))
}

func TestSliderAttacksMatchBetweenMagicAndFallback(t *testing.T) {
	defer func() { UseMagicBitboards = true }()

	occ := SqA4.Bb() | SqD1.Bb() | SqD7.Bb()
	for _, pt := range []PieceType{Rook, Bishop, Queen} {
		for sq := SqA1; sq < SqNone; sq++ {
			UseMagicBitboards = true
			magic := GetAttacksBb(pt, sq, occ)
			UseMagicBitboards = false
			fallback := GetAttacksBb(pt, sq, occ)
			assert.Equal(t, magic, fallback, "%s attacks from %s disagree between magic and fallback", pt, sq)
		}
	}
}

func TestPopLsb(t *testing.T) {
	assert := assert.New(t)
	b := SqA1.Bb() | SqH8.Bb()
	assert.Equal(SqA1, b.PopLsb())
	assert.Equal(SqH8, b.PopLsb())
	assert.Equal(SqNone, b.PopLsb())
}
