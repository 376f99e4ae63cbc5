// Package moveslice provides the caller-owned move buffer the generator
// writes packed moves into. A MoveSlice is a thin wrapper around a
// []types.Move. PushBack uses append, so a buffer whose capacity is smaller
// than the number of moves written is reallocated; Generate does not check
// the capacity, and a 256-move buffer avoids the reallocation.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/tbreese3/helios/internal/types"
)

// MoveSlice is a slice of packed moves.
type MoveSlice []Move

// NewMoveSlice returns an empty MoveSlice with the given capacity. 256 is
// enough for any reachable chess position's legal move count.
func NewMoveSlice(cap int) *MoveSlice {
	moves := make([]Move, 0, cap)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the capacity of the underlying array.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends a move.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// At returns the move at index i.
func (ms *MoveSlice) At(i int) Move {
	return (*ms)[i]
}

// Filter compacts ms in place, keeping only the moves for which keep
// returns true. It reuses the backing array (no allocation), the same
// trick EVASIONS filtering relies on to drop illegal pseudo-legal moves
// without a temporary buffer.
func (ms *MoveSlice) Filter(keep func(m Move) bool) {
	out := (*ms)[:0]
	for _, m := range *ms {
		if keep(m) {
			out = append(out, m)
		}
	}
	*ms = out
}

// Clear empties the slice while retaining its capacity, so the same
// backing array can be reused across calls without allocating.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone copies the slice into a newly allocated MoveSlice.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals reports whether ms and other contain the same moves in the same
// order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// ForEach calls f with the index of each stored move, in order.
func (ms *MoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// String renders ms as a human-readable list.
func (ms *MoveSlice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveList: [%d] { ", ms.Len())
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.String())
	}
	b.WriteString(" }")
	return b.String()
}

// StringUci renders ms as a space-separated list of UCI move strings.
func (ms *MoveSlice) StringUci() string {
	var b strings.Builder
	for i, m := range *ms {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.StringUci())
	}
	return b.String()
}
