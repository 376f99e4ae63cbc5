// Package util provides small generic helpers shared by the core packages
// that don't belong to any one domain concern.
package util

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.English)

// Abs is a non-branching absolute value for int.
func Abs(n int) int {
	y := n >> 63
	return (n ^ y) - y
}

// Min returns the smaller of x and y.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of x and y.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// TimeTrack prints how long has elapsed since start, locale-formatted.
// Usage: defer util.TimeTrack(time.Now(), "perft depth 6")
func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	_, _ = out.Printf("%s took %d ns\n", name, elapsed.Nanoseconds())
}

// Nps computes nodes per second from a node count and an elapsed duration,
// tolerating a zero duration by padding it one nanosecond.
func Nps(nodes uint64, duration time.Duration) uint64 {
	ns := duration.Nanoseconds()
	if ns == 0 {
		ns = 1
	}
	return uint64(int64(nodes) * time.Second.Nanoseconds() / ns)
}
