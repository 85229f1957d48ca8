package reduce

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Options contains configuration options for a reduction.
type Options struct {
	// Workers is the maximum number of partitions folded concurrently.
	// Values <= 0 select runtime.GOMAXPROCS(0).
	Workers int

	// MinChunk is the minimum number of indices per partition.
	// A range shorter than 2*MinChunk is folded on the calling goroutine.
	MinChunk int
}

// DefaultOptions contains the default configuration options for a reduction.
var DefaultOptions = Options{
	Workers:  0,
	MinChunk: 4096,
}

// BlockFunc folds the half-open index range [lo, hi) into a MinLoc.
// Implementations must visit indices in ascending order.
type BlockFunc func(lo, hi int) MinLoc

// ArgMin returns the index in [0, n) whose value is minimal.
// value is called concurrently and must be safe for that.
func ArgMin(n int, value func(i int) float64, optFns ...func(o *Options)) MinLoc {
	return ArgMinBlocks(n, func(lo, hi int) MinLoc {
		acc := Identity()
		for i := lo; i < hi; i++ {
			acc = acc.Combine(Candidate(value(i), i))
		}
		return acc
	}, optFns...)
}

// ArgMinBlocks partitions [0, n) and folds each partition with block.
// n <= 0 yields Identity.
func ArgMinBlocks(n int, block BlockFunc, optFns ...func(o *Options)) MinLoc {
	if n <= 0 {
		return Identity()
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	parts := Partition(n, opts.Workers, opts.MinChunk)
	if len(parts) == 1 {
		return Identity().Combine(block(0, n))
	}

	partials := make([]MinLoc, len(parts))

	var g errgroup.Group
	for p, r := range parts {
		g.Go(func() error {
			partials[p] = block(r.Lo, r.Hi)
			return nil
		})
	}
	_ = g.Wait()

	acc := Identity()
	for _, partial := range partials {
		acc = acc.Combine(partial)
	}
	return acc
}

// Range is a half-open index range [Lo, Hi).
type Range struct {
	Lo, Hi int
}

// Len returns the number of indices in the range.
func (r Range) Len() int { return r.Hi - r.Lo }

// Partition splits [0, n) into contiguous ascending ranges.
// It returns at most workers ranges, each holding at least minChunk indices
// except when n itself is smaller.
func Partition(n, workers, minChunk int) []Range {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if minChunk <= 0 {
		minChunk = 1
	}

	count := min(workers, max(n/minChunk, 1))
	size := n / count
	rem := n % count

	parts := make([]Range, 0, count)
	lo := 0
	for p := 0; p < count; p++ {
		hi := lo + size
		if p < rem {
			hi++
		}
		parts = append(parts, Range{Lo: lo, Hi: hi})
		lo = hi
	}
	return parts
}
