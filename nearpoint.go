package nearpoint

import (
	"context"
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/nearpoint/distance"
	"github.com/hupe1980/nearpoint/internal/kernel"
	"github.com/hupe1980/nearpoint/point"
	"github.com/hupe1980/nearpoint/reduce"
)

// Result is the outcome of a nearest-point search.
type Result struct {
	Index int     // Index of the nearest point, -1 if there was no candidate
	Dist2 float64 // Squared Euclidean distance to the query, +Inf if there was no candidate
}

// Found reports whether the search produced a candidate.
func (r Result) Found() bool {
	return r.Index != reduce.NoIndex
}

// Distance returns the Euclidean distance.
func (r Result) Distance() float64 {
	return math.Sqrt(r.Dist2)
}

func resultOf(m reduce.MinLoc) Result {
	return Result{Index: m.Index, Dist2: m.Value}
}

// Searcher finds the point of an immutable set nearest to a query point.
// It is safe for concurrent use.
type Searcher struct {
	set     *point.Set
	kernel  Kernel
	workers int
	chunk   int
	metrics MetricsCollector
	logger  *Logger
}

// New creates a Searcher over set.
func New(set *point.Set, optFns ...Option) (*Searcher, error) {
	if set == nil {
		return nil, ErrNilPointSet
	}

	opts := applyOptions(optFns)

	workers := opts.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	s := &Searcher{
		set:     set,
		kernel:  kernel.Resolve(opts.kernel),
		workers: workers,
		chunk:   opts.minChunk,
		metrics: opts.metricsCollector,
	}
	s.logger = opts.logger.WithKernel(s.kernel).WithWorkers(workers)

	if s.kernel == KernelVector {
		// Build the column view up front so it is not timed as part of a search.
		set.Columns()
	}

	return s, nil
}

// Len returns the number of points.
func (s *Searcher) Len() int {
	return s.set.Len()
}

// Kernel returns the resolved block kernel.
func (s *Searcher) Kernel() Kernel {
	return s.kernel
}

// Workers returns the maximum number of concurrent partitions.
func (s *Searcher) Workers() int {
	return s.workers
}

func (s *Searcher) reduceOptions(o *reduce.Options) {
	o.Workers = s.workers
	o.MinChunk = s.chunk
}

// Nearest returns the point nearest to q. An empty set yields a Result with
// Index -1. The reduction is not interruptible; ctx is checked before it starts.
func (s *Searcher) Nearest(ctx context.Context, q point.Point) (Result, error) {
	n := s.set.Len()
	return s.observe(ctx, n, func() reduce.MinLoc {
		return reduce.ArgMinBlocks(n, kernel.Block(s.kernel, s.set, q), s.reduceOptions)
	})
}

// NearestIn returns the point nearest to q among the indices in allow.
// Indices outside the set are ignored; a nil or empty allow-list yields a
// Result with Index -1.
func (s *Searcher) NearestIn(ctx context.Context, q point.Point, allow *roaring.Bitmap) (Result, error) {
	var ids []uint32
	if allow != nil {
		ids = allow.ToArray()
	}

	n := s.set.Len()
	ids = ids[:sort.Search(len(ids), func(i int) bool { return int(ids[i]) >= n })]

	return s.observe(ctx, len(ids), func() reduce.MinLoc {
		best := reduce.ArgMin(len(ids), func(j int) float64 {
			return distance.Squared3(q, s.set.At(int(ids[j])))
		}, s.reduceOptions)
		if best.Found() {
			best.Index = int(ids[best.Index])
		}
		return best
	})
}

func (s *Searcher) observe(ctx context.Context, candidates int, fn func() reduce.MinLoc) (Result, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		s.metrics.RecordSearch(candidates, time.Since(start), err)
		s.logger.LogSearch(ctx, candidates, Result{}, 0, err)
		return resultOf(reduce.Identity()), err
	}

	res := resultOf(fn())
	elapsed := time.Since(start)

	s.metrics.RecordSearch(candidates, elapsed, nil)
	s.logger.LogSearch(ctx, candidates, res, elapsed, nil)
	return res, nil
}
