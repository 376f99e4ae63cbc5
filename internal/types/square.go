package types

import "fmt"

// Square identifies one of the 64 board squares, numbered A1=0 ... H8=63.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
	SqLength = SqNone
)

// IsValid reports whether sq is a real board square (sq < 64).
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of sq.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of sq.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare parses a two character square label such as "e4". Returns
// SqNone if s does not encode a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf combines a file and rank into a square. Returns SqNone if either
// is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// To returns the square reached by moving one step in direction d, or
// SqNone if the step would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return sqTo[sq][0]
	case East:
		return sqTo[sq][1]
	case South:
		return sqTo[sq][2]
	case West:
		return sqTo[sq][3]
	case Northeast:
		return sqTo[sq][4]
	case Southeast:
		return sqTo[sq][5]
	case Southwest:
		return sqTo[sq][6]
	case Northwest:
		return sqTo[sq][7]
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// String returns the square label, e.g. "e4", or "-" for SqNone.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

var sqTo [SqLength][8]Square

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, dir := range Directions {
			sqTo[sq][i] = sq.stepPrecompute(dir)
		}
	}
}

// stepPrecompute computes To(d) the slow way, checking file wrap explicitly;
// it is only ever called from init to build the sqTo lookup table.
func (sq Square) stepPrecompute(d Direction) Square {
	switch d {
	case North, South:
		sq += Square(d)
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
		sq += Square(d)
	case West, Southwest, Northwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
		sq += Square(d)
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	if sq > SqH8 {
		return SqNone
	}
	return sq
}
