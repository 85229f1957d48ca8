// Package reduce implements a parallel arg-min reduction over an index range.
//
// The working state is a MinLoc: a (value, index) pair with an identity of
// (+Inf, -1). Combine keeps the left-hand accumulator unless the right-hand
// candidate is strictly smaller or the accumulator holds no candidate yet.
//
// # Partitioning
//
// [0, n) is split into at most Workers contiguous partitions of at least
// MinChunk indices. Each partition is folded sequentially in ascending index
// order by its own goroutine into a partial owned by that goroutine only.
// After the barrier the partials are merged in ascending partition order.
//
// # Ties
//
// Because every fold and every merge sees lower indices first and Combine is
// strict, the lowest index among equal minima is returned regardless of the
// worker count.
//
// # Usage
//
//	best := reduce.ArgMin(n, func(i int) float64 { return d2(i) })
//	if best.Found() {
//	    fmt.Println(best.Index, best.Value)
//	}
package reduce
