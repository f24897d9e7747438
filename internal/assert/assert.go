// Package assert provides contract checks that compile away in release builds.
//
// Build with -tags bitseqdebug to turn precondition violations (reversed
// ranges, offsets outside a word, mismatched lengths) into panics. Without
// the tag the checks are constant-folded out and violating a precondition is
// undefined behaviour, as documented on each operation.
package assert

import "fmt"

// That panics with the formatted message when checks are enabled and cond is false.
func That(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("bitseq: contract violation: "+format, args...))
	}
}
