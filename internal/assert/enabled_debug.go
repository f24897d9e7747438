//go:build bitseqdebug

package assert

// Enabled reports whether contract checks are compiled in.
const Enabled = true
