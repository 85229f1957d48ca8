// Package kernel provides the block kernels that fold one partition of a
// point set into a reduce.MinLoc.
//
// Two kernels exist:
//   - Scalar walks the interleaved coordinate storage point by point.
//   - Vector works on the column view in tiles, computing squared distances
//     with github.com/viterin/vek and taking the tile minimum with vek.ArgMin.
//
// Both produce bit-identical distances and, because tiles and points are
// visited in ascending order, identical indices.
//
// Auto selects Vector when the CPU reports AVX2+FMA and vek confirms it runs
// accelerated code, and Scalar otherwise.
package kernel
