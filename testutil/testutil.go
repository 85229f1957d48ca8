package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/nearpoint/distance"
	"github.com/hupe1980/nearpoint/point"
	"github.com/hupe1980/nearpoint/reduce"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformPoint returns a point with coordinates uniform in [0, extent).
func (r *RNG) UniformPoint(extent float64) point.Point {
	var p point.Point
	r.FillUniformRange(p[:], 0, extent)
	return p
}

// UniformSet generates n points with coordinates uniform in [0, extent).
// Uses a single backing array.
func (r *RNG) UniformSet(n int, extent float64) *point.Set {
	coords := make([]float64, n*point.Dim)
	r.FillUniformRange(coords, 0, extent)
	set, _ := point.FromCoords(coords) // length is a multiple of Dim
	return set
}

// GridSet generates n points with integer coordinates in [0, extent).
// Small extents produce many tied distances.
func (r *RNG) GridSet(n, extent int) *point.Set {
	r.mu.Lock()
	defer r.mu.Unlock()
	coords := make([]float64, n*point.Dim)
	for i := range coords {
		coords[i] = float64(r.rand.Intn(extent))
	}
	set, _ := point.FromCoords(coords)
	return set
}

// BruteForce returns the exact nearest point to q with a sequential scan.
// Ties resolve to the lowest index.
func BruteForce(set *point.Set, q point.Point) reduce.MinLoc {
	best := reduce.Identity()
	for i := 0; i < set.Len(); i++ {
		best = best.Combine(reduce.Candidate(distance.Squared3(q, set.At(i)), i))
	}
	return best
}

// BruteForceIn is BruteForce restricted to the given ascending indices.
func BruteForceIn(set *point.Set, q point.Point, ids []uint32) reduce.MinLoc {
	best := reduce.Identity()
	for _, id := range ids {
		if int(id) >= set.Len() {
			continue
		}
		best = best.Combine(reduce.Candidate(distance.Squared3(q, set.At(int(id))), int(id)))
	}
	return best
}
