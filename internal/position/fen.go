package position

import (
	"strconv"
	"strings"

	. "github.com/tbreese3/helios/internal/types"
)

// FromFEN parses the standard six-field FEN and returns a fresh Position.
// On malformed input it returns an *InvalidFenError naming the offending
// field; the trailing halfmove-clock and fullmove-number fields are
// optional and default to 0 and 1 respectively, matching common FEN usage
// for positions set up mid-game without full move history.
func FromFEN(fen string) (*Position, error) {
	ensureZobristTable()

	fields := strings.Fields(fen)
	if len(fields) < 1 {
		return nil, &InvalidFenError{Field: "piece placement", Reason: "fen is empty"}
	}

	p := &Position{epSquare: SqNone}
	for i := range p.board {
		p.board[i] = PieceNone
	}

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	p.sideToMove = White
	p.fullmove = 1

	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			p.sideToMove = White
		case "b":
			p.sideToMove = Black
		default:
			return nil, &InvalidFenError{Field: "active colour", Reason: "must be 'w' or 'b'"}
		}
	}

	if len(fields) >= 3 {
		cr, err := parseCastling(fields[2])
		if err != nil {
			return nil, err
		}
		p.castling = cr
	}

	if len(fields) >= 4 && fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return nil, &InvalidFenError{Field: "en passant target", Reason: "not a square in a1-h8"}
		}
		p.epSquare = sq
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, &InvalidFenError{Field: "halfmove clock", Reason: "must be a non-negative integer"}
		}
		p.halfmove = n
	}

	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, &InvalidFenError{Field: "fullmove number", Reason: "must be a positive integer"}
		}
		p.fullmove = n
	}

	p.zobristKey = p.fullHash()
	return p, nil
}

func (p *Position) parsePlacement(placement string) error {
	sq := SqA8
	for _, c := range placement {
		switch {
		case c >= '1' && c <= '8':
			sq += Square(c - '0')
		case c == '/':
			sq -= 16
		default:
			pc := PieceFromChar(byte(c))
			if pc == PieceNone {
				return &InvalidFenError{Field: "piece placement", Reason: "unrecognised piece letter '" + string(c) + "'"}
			}
			if !sq.IsValid() || p.board[sq] != PieceNone {
				return &InvalidFenError{Field: "piece placement", Reason: "does not describe exactly 64 squares"}
			}
			p.putPiece(pc, sq)
			sq++
		}
	}
	if sq != SqA2 {
		return &InvalidFenError{Field: "piece placement", Reason: "does not describe exactly 64 squares"}
	}
	return nil
}

func parseCastling(field string) (CastlingRights, error) {
	var cr CastlingRights
	if field == "-" {
		return cr, nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			cr |= CastlingWhiteOO
		case 'Q':
			cr |= CastlingWhiteOOO
		case 'k':
			cr |= CastlingBlackOO
		case 'q':
			cr |= CastlingBlackOOO
		default:
			return 0, &InvalidFenError{Field: "castling rights", Reason: "unrecognised character '" + string(c) + "'"}
		}
	}
	return cr, nil
}

// ToFEN serializes the position to the canonical six-field FEN. The
// en-passant field applies the "capturable EP" test: the target square is
// written only if a pawn of the side to move actually attacks it, else "-".
func (p *Position) ToFEN() string {
	var b strings.Builder

	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteByte(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			b.WriteByte('/')
		} else {
			break
		}
	}

	b.WriteByte(' ')
	b.WriteString(p.sideToMove.String())

	b.WriteByte(' ')
	b.WriteString(p.castling.String())

	b.WriteByte(' ')
	b.WriteString(p.capturableEpSquare().String())

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.halfmove))

	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.fullmove))

	return b.String()
}

// capturableEpSquare returns p.epSquare if some pawn of the side to move
// attacks it right now, else SqNone. The test is pseudo-legal: it only
// checks that a pawn of the right color sits on one of the two flanking
// files on the rank the captured pawn stopped on, and does not check
// whether that capture would leave the capturing side's king in check.
func (p *Position) capturableEpSquare() Square {
	if p.epSquare == SqNone {
		return SqNone
	}
	us := p.sideToMove
	capturers := GetPawnAttacks(us.Flip(), p.epSquare) & p.PiecesBb(us, Pawn)
	if capturers == BbZero {
		return SqNone
	}
	return p.epSquare
}
