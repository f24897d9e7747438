package bit

import "github.com/hupe1980/bitseq/word"

// Search returns the first position in [first, last) where the bit pattern
// [sFirst, sLast) occurs, or last if it does not occur. An empty pattern
// matches at first.
//
// Patterns of at most one word slide a word-sized window over the range and
// skip ahead by the popcount difference to the pattern, since a window moved
// by j bits can change its popcount by at most j. Longer patterns run a
// shift-or automaton over the range one bit at a time.
func Search[W word.Word](first, last, sFirst, sLast Iterator[W]) Iterator[W] {
	checkRange(first, last)
	checkRange(sFirst, sLast)
	n, m := last.Diff(first), sLast.Diff(sFirst)
	switch {
	case m == 0:
		return first
	case m > n:
		return last
	case m <= word.Digits[W]():
		return searchWord(first, last, sFirst, m)
	default:
		return searchShiftOr(first, last, sFirst, m)
	}
}

func searchWord[W word.Word](first, last, sFirst Iterator[W], m int) Iterator[W] {
	pat := getWord(sFirst, m)
	want := word.Popcount(pat)
	for it := first; last.Diff(it) >= m; {
		w := getWord(it, m)
		if w == pat {
			return it
		}
		delta := word.Popcount(w) - want
		if delta < 0 {
			delta = -delta
		}
		it = it.Add(max(delta, 1))
	}
	return last
}

// searchShiftOr keeps one state bit per pattern prefix; bit j is clear when
// the last j+1 text bits equal the first j+1 pattern bits.
func searchShiftOr[W word.Word](first, last, sFirst Iterator[W], m int) Iterator[W] {
	nw := (m + 63) / 64
	masks := [2][]uint64{make([]uint64, nw), make([]uint64, nw)}
	for i := range nw {
		p := ReadWord[uint64](sFirst.Add(i*64), min(64, m-i*64))
		masks[0][i] = p
		masks[1][i] = ^p
	}
	state := make([]uint64, nw)
	for i := range state {
		state[i] = ^uint64(0)
	}
	top, topBit := (m-1)/64, uint((m-1)%64)

	n := last.Diff(first)
	for pos := 0; pos < n; {
		chunk := min(64, n-pos)
		text := ReadWord[uint64](first.Add(pos), chunk)
		for j := range chunk {
			mask := masks[(text>>j)&1]
			var carry uint64
			for i := range state {
				next := state[i] >> 63
				state[i] = state[i]<<1 | carry | mask[i]
				carry = next
			}
			if state[top]>>topBit&1 == 0 {
				return first.Add(pos + j - m + 1)
			}
		}
		pos += chunk
	}
	return last
}
