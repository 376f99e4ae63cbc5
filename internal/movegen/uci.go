package movegen

import (
	"regexp"
	"strings"

	"github.com/tbreese3/helios/internal/logging"
	"github.com/tbreese3/helios/internal/moveslice"
	"github.com/tbreese3/helios/internal/position"
	. "github.com/tbreese3/helios/internal/types"
)

var movegenLog = logging.GetLog("movegen")

var uciMovePattern = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// MoveFromUCI generates every legal move in pos and returns the one whose
// UCI long-algebraic notation matches uciMove, or MoveNone if none match
// (the bridge from UCI's plain-text move notation to a packed Move). Not
// cheap: it regenerates and legality-filters
// the whole move list on every call, so it is meant for CLI/test seeding,
// not the search hot path.
func MoveFromUCI(pos *position.Position, uciMove string) Move {
	matches := uciMovePattern.FindStringSubmatch(uciMove)
	if matches == nil {
		return MoveNone
	}
	movePart := matches[1]
	promoPart := ""
	if len(matches) == 3 {
		promoPart = strings.ToLower(matches[2])
	}
	want := movePart + promoPart

	mode := ALL
	if pos.KingAttacked(pos.SideToMove()) {
		mode = EVASIONS
	}
	buf := moveslice.NewMoveSlice(bufferCap())
	Generate(pos, buf, mode)
	for i := 0; i < buf.Len(); i++ {
		m := buf.At(i)
		if mode == ALL {
			if !pos.MakeMoveInPlace(m) {
				continue
			}
			pos.UndoMoveInPlace()
		}
		if m.StringUci() == want {
			return m
		}
	}
	movegenLog.Debugf("no legal move in position matches uci string %q", uciMove)
	return MoveNone
}
