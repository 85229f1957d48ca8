package distance

// Squared3 calculates the squared Euclidean distance between two 3D points.
//
// Each product is converted explicitly so the compiler cannot fuse the
// multiply-add; results are bit-identical to the column kernels.
func Squared3(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return float64(dx*dx) + float64(dy*dy) + float64(dz*dz)
}
