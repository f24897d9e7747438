// Package parallel runs the bulk bit algorithms over large ranges on
// several goroutines.
//
// A range is split at word boundaries of the written storage, so no two
// goroutines ever store to the same word. Results are identical to the
// sequential functions in package bit.
package parallel

import (
	"context"
	"runtime"

	"github.com/hupe1980/bitseq/bit"
	"github.com/hupe1980/bitseq/word"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkBits is the default number of bits handed to one goroutine.
const DefaultChunkBits = 1 << 16

type options struct {
	chunkBits int
	workers   int
}

// Option configures a parallel call.
type Option func(*options)

// WithChunkBits sets the approximate number of bits per chunk. Chunks never
// end inside a word, so the effective size is rounded down to whole words
// and is at least one word.
func WithChunkBits(n int) Option {
	return func(o *options) {
		o.chunkBits = n
	}
}

// WithWorkers limits the number of goroutines running at once. Values below
// one mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		chunkBits: DefaultChunkBits,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// span is one chunk [first, last).
type span[W word.Word] struct {
	first, last bit.Iterator[W]
}

// split cuts [first, last) into chunks whose inner boundaries are word
// aligned.
func split[W word.Word](first, last bit.Iterator[W], chunkBits int) []span[W] {
	d := word.Digits[W]()
	step := max(chunkBits/d, 1) * d

	var out []span[W]
	for begin := first; begin.Less(last); {
		next := bit.NewIterator(begin.Words(), begin.Add(step).Base())
		if !next.Less(last) {
			next = last
		}
		out = append(out, span[W]{begin, next})
		begin = next
	}
	return out
}

// run calls fn for every chunk on an errgroup limited to o.workers and
// stops early when ctx is canceled.
func run[W word.Word](ctx context.Context, chunks []span[W], o options, fn func(i int, s span[W])) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, s := range chunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fn(i, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Count returns the number of bits in [first, last) equal to v.
func Count[W word.Word](ctx context.Context, first, last bit.Iterator[W], v bit.Value, optFns ...Option) (int, error) {
	o := applyOptions(optFns)
	chunks := split(first, last, o.chunkBits)
	counts := make([]int, len(chunks))

	if err := run(ctx, chunks, o, func(i int, s span[W]) {
		counts[i] = bit.Count(s.first, s.last, v)
	}); err != nil {
		return 0, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	return total, nil
}

// Fill sets every bit in [first, last) to v.
func Fill[W word.Word](ctx context.Context, first, last bit.Iterator[W], v bit.Value, optFns ...Option) error {
	o := applyOptions(optFns)
	return run(ctx, split(first, last, o.chunkBits), o, func(_ int, s span[W]) {
		bit.Fill(s.first, s.last, v)
	})
}

// Transform stores op applied to [first, last) into the range starting at
// dFirst, like bit.Transform. dFirst may equal first; otherwise the ranges
// must not overlap, though they may share storage words at the edges of the
// destination. On error the destination is partially written.
func Transform[W word.Word](ctx context.Context, first, last, dFirst bit.Iterator[W], op func(W) W, optFns ...Option) (bit.Iterator[W], error) {
	o := applyOptions(optFns)
	n := last.Diff(first)
	dLast := dFirst.Add(n)

	apply := func(_ int, s span[W]) {
		src := first.Add(s.first.Diff(dFirst))
		bit.Transform(src, src.Add(s.last.Diff(s.first)), s.first, op)
	}

	chunks := split(dFirst, dLast, o.chunkBits)
	// A partially written destination word may also hold source bits, so
	// the chunks owning one run after the others have finished.
	var edges []span[W]
	if !dFirst.Equal(first) && len(chunks) > 0 {
		if c := chunks[len(chunks)-1]; !c.last.Aligned() {
			edges = append(edges, c)
			chunks = chunks[:len(chunks)-1]
		}
		if len(chunks) > 0 && !chunks[0].first.Aligned() {
			edges = append(edges, chunks[0])
			chunks = chunks[1:]
		}
	}

	if err := run(ctx, chunks, o, apply); err != nil {
		return dFirst, err
	}
	for i, s := range edges {
		if err := ctx.Err(); err != nil {
			return dFirst, err
		}
		apply(i, s)
	}
	return dLast, nil
}
