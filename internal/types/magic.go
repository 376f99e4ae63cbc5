package types

// Magic holds the fancy-magic-bitboard lookup data for sliding attacks from
// one square: a relevant-occupancy mask, a magic multiplier, a right shift
// and the slice of precomputed attack sets the multiplication indexes into.
//
// The technique and the constants below are the well known Stockfish
// "fancy magics" scheme: https://www.chessprogramming.org/Magic_Bitboards.
type Magic struct {
	mask   Bitboard
	magic  Bitboard
	shift  uint
	table  []Bitboard
}

func (m *Magic) index(occ Bitboard) uint {
	occ &= m.mask
	occ *= m.magic
	return uint(occ >> m.shift)
}

func (m *Magic) attacks(occ Bitboard) Bitboard {
	return m.table[m.index(occ)]
}

// initMagics computes the magic bitboard tables for one slider (rook or
// bishop) into table, one square at a time: build the relevant-occupancy
// mask, enumerate every occupancy subset with the carry-rippler trick, then
// search for a magic multiplier that maps each subset to a unique index via
// a collision check against the reference attack sets.
func initMagics(table []Bitboard, magics *[SqLength]Magic, directions [4]Direction) {
	seeds := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	cnt := 0
	offset := 0

	for sq := SqA1; sq < SqNone; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())
		m.table = table[offset:]

		var b Bitboard
		size := 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}
		offset += size

		rng := newSplitMix(seeds[sq.RankOf()])
		for i := 0; i < size; {
			for {
				m.magic = Bitboard(rng.sparse())
				if ((m.magic * m.mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.table[idx] = reference[i]
				} else if m.table[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each of the four directions one step at a time,
// stopping at the board edge or at the first occupied square (inclusive).
// Used both to build the magic-table reference sets above and, when
// UseMagicBitboards is false, as GetAttacksBb's runtime fallback.
func slidingAttack(directions [4]Direction, sq Square, occ Bitboard) Bitboard {
	var attacks Bitboard
	for _, d := range directions {
		s := sq
		for {
			to := s.To(d)
			if to == SqNone {
				break
			}
			attacks.PushSquare(to)
			if occ.Has(to) {
				break
			}
			s = to
		}
	}
	return attacks
}

// prng is the xorshift64star generator used to search for magic numbers.
// Originally due to Sebastiano Vigna; used here exactly as in the reference
// magic-bitboard implementations it was popularized by.
type prng struct{ state uint64 }

func newSplitMix(seed uint64) *prng {
	return &prng{state: seed}
}

func (r *prng) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// sparse returns a pseudo-random value with roughly 1/8th of its bits set,
// which converges to a valid magic much faster than a uniform random value.
func (r *prng) sparse() uint64 {
	return r.next() & r.next() & r.next()
}
