package point

import (
	"math/rand"
	"sync"
)

const (
	// DefaultSeed is the seed used by the benchmark when none is given.
	DefaultSeed int64 = 90391

	// GridExtent bounds every coordinate to the integer grid [0, GridExtent).
	GridExtent = 1024 * 1024
)

// Generator draws random points on a bounded integer grid.
// It is thread-safe.
type Generator struct {
	rand   *rand.Rand
	seed   int64
	extent int
	mu     sync.Mutex
}

// NewGenerator creates a Generator with the given seed over [0, GridExtent).
func NewGenerator(seed int64) *Generator {
	return NewGeneratorWithExtent(seed, GridExtent)
}

// NewGeneratorWithExtent creates a Generator over [0, extent).
// extent <= 0 selects GridExtent.
func NewGeneratorWithExtent(seed int64, extent int) *Generator {
	if extent <= 0 {
		extent = GridExtent
	}
	return &Generator{
		rand:   rand.New(rand.NewSource(seed)),
		seed:   seed,
		extent: extent,
	}
}

// Seed returns the initial seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Reset rewinds the generator to its initial seed.
func (g *Generator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rand.Seed(g.seed)
}

// Point draws a single point.
func (g *Generator) Point() Point {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.point()
}

// Set draws n points. Coordinates are drawn point by point, x before y before z.
// n < 0 yields an empty set.
func (g *Generator) Set(n int) *Set {
	n = max(n, 0)

	g.mu.Lock()
	defer g.mu.Unlock()

	coords := make([]float64, n*Dim)
	for i := 0; i < n; i++ {
		p := g.point()
		copy(coords[i*Dim:], p[:])
	}
	return &Set{coords: coords}
}

func (g *Generator) point() Point {
	return Point{
		float64(g.rand.Intn(g.extent)),
		float64(g.rand.Intn(g.extent)),
		float64(g.rand.Intn(g.extent)),
	}
}
