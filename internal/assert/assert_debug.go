//go:build debug

package assert

import "fmt"

// DEBUG is true in binaries built with -tags debug.
const DEBUG = true

// Assert panics with msg (formatted per fmt.Sprintf) if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
