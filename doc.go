// Package nearpoint finds the point of a 3D point set nearest to a query
// point with a parallel arg-min reduction.
//
// # Quick Start
//
//	gen := point.NewGenerator(point.DefaultSeed)
//	set := gen.Set(100_000)
//	q := gen.Point()
//
//	s, _ := nearpoint.New(set, nearpoint.WithWorkers(8))
//	res, _ := s.Nearest(ctx, q)
//	fmt.Printf("Min indx: %d with dist2 %f\n", res.Index, res.Dist2)
//
// # Reduction
//
// The index range [0, N) is split into contiguous partitions, each folded by
// its own goroutine into a (value, index) accumulator. Partials are merged in
// ascending partition order with a strict less-than, so the lowest index wins
// among equal distances. An empty set yields Index -1 and Dist2 +Inf.
//
// # Kernels
//
// Partitions are folded by a block kernel: KernelScalar walks the interleaved
// coordinates, KernelVector processes column tiles with SIMD-accelerated
// slice operations. KernelAuto picks one based on CPU features.
//
// # Filtering
//
// NearestIn restricts the search to the indices of a Roaring bitmap:
//
//	allow := roaring.BitmapOf(3, 17, 42)
//	res, _ := s.NearestIn(ctx, q, allow)
//
// # Observability
//
// Use WithLogger for structured logging (log/slog) and WithMetricsCollector to
// receive per-search timings. The observability package provides a
// Prometheus-backed collector.
package nearpoint
