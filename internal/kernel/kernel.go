package kernel

import (
	"slices"
	"sync"

	"github.com/hupe1980/nearpoint/distance"
	"github.com/hupe1980/nearpoint/point"
	"github.com/hupe1980/nearpoint/reduce"
	"github.com/viterin/vek"
)

// TileSize is the number of points the vector kernel processes per step.
const TileSize = 1024

// Block returns the block kernel of kind k for the search of q in set.
// Auto is resolved with Resolve.
func Block(k Kind, set *point.Set, q point.Point) reduce.BlockFunc {
	if Resolve(k) == Vector {
		return vectorBlock(set.Columns(), q)
	}
	return scalarBlock(set.Coords(), q)
}

func scalarBlock(coords []float64, q point.Point) reduce.BlockFunc {
	return func(lo, hi int) reduce.MinLoc {
		acc := reduce.Identity()
		for i := lo; i < hi; i++ {
			o := i * point.Dim
			d2 := distance.Squared3(q, [point.Dim]float64(coords[o:o+point.Dim]))
			acc = acc.Combine(reduce.Candidate(d2, i))
		}
		return acc
	}
}

type scratch struct {
	d, diff, sq [TileSize]float64
}

var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

func vectorBlock(cols point.Columns, q point.Point) reduce.BlockFunc {
	return func(lo, hi int) reduce.MinLoc {
		buf := scratchPool.Get().(*scratch)
		defer scratchPool.Put(buf)

		acc := reduce.Identity()
		for start := lo; start < hi; start += TileSize {
			end := min(start+TileSize, hi)
			d := buf.d[:end-start]
			diff := buf.diff[:end-start]
			sq := buf.sq[:end-start]

			// ((dx*dx) + (dy*dy)) + (dz*dz), matching distance.Squared3.
			// vek panics when dst overlaps an input, so every step writes
			// into a buffer it does not read.
			vek.SubNumber_Into(diff, cols.X[start:end], q[0])
			vek.Mul_Into(d, diff, diff)
			vek.SubNumber_Into(diff, cols.Y[start:end], q[1])
			vek.Mul_Into(sq, diff, diff)
			vek.Add_Inplace(d, sq)
			vek.SubNumber_Into(diff, cols.Z[start:end], q[2])
			vek.Mul_Into(sq, diff, diff)
			vek.Add_Inplace(d, sq)

			j := vek.ArgMin(d)
			j = slices.Index(d[:j+1], d[j]) // first of equal minima
			acc = acc.Combine(reduce.Candidate(d[j], start+j))
		}
		return acc
	}
}
