// Package must provides runtime assertions.
// Violation of these assertions indicates a program fault,
// and should cause a crash to prevent operating with invalid data.
package must

import "fmt"

// Bef panics if cond is false.
func Bef(cond bool, format string, args ...any) {
	if !cond {
		panicErrorf(format, args...)
	}
}

// NotFailf panics if err is non-nil.
// The panic value wraps err so that recovering callers
// may inspect it with errors.As.
func NotFailf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Errorf("%v: %w", fmt.Sprintf(format, args...), err))
	}
}

func panicErrorf(format string, args ...any) {
	panic(fmt.Errorf(format, args...))
}
