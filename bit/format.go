package bit

import (
	"strings"

	"github.com/hupe1980/bitseq/word"
)

// String renders [first, last) as one '0' or '1' per bit, first bit first.
func String[W word.Word](first, last Iterator[W]) string {
	checkRange(first, last)
	var sb strings.Builder
	sb.Grow(last.Diff(first))
	for it := first; it.Less(last); it.Inc() {
		sb.WriteByte(bitChar(it.Get()))
	}
	return sb.String()
}

// DebugString renders [first, last) like String, with a space before every
// storage word boundary and a "'" before every further 8-bit group inside a
// word. A 12-bit range over uint8 storage renders as "01001011 1110".
func DebugString[W word.Word](first, last Iterator[W]) string {
	checkRange(first, last)
	var sb strings.Builder
	n := last.Diff(first)
	sb.Grow(n + n/8)
	for it := first; it.Less(last); it.Inc() {
		if !it.Equal(first) {
			switch {
			case it.offset == 0:
				sb.WriteByte(' ')
			case it.offset%8 == 0:
				sb.WriteByte('\'')
			}
		}
		sb.WriteByte(bitChar(it.Get()))
	}
	return sb.String()
}

func bitChar(v Value) byte {
	if v == One {
		return '1'
	}
	return '0'
}
