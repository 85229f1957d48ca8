// Package point provides the immutable 3D point set searched by the reducer.
package point

import (
	"fmt"
	"sync"
)

// Dim is the number of coordinates per point.
const Dim = 3

// BytesPerPoint is the storage footprint of one point.
const BytesPerPoint = Dim * 8

// Point is a single (x, y, z) coordinate triple.
type Point [Dim]float64

// X returns the first coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p[1] }

// Z returns the third coordinate.
func (p Point) Z() float64 { return p[2] }

// Scale returns p with every coordinate multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{p[0] * k, p[1] * k, p[2] * k}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p[0], p[1], p[2])
}

// Columns is a column-major view of a Set: one slice per axis.
type Columns struct {
	X, Y, Z []float64
}

// Set is an ordered, immutable collection of points.
// Coordinates are stored interleaved: x0, y0, z0, x1, y1, z1, ...
// A Set is safe for concurrent reads.
type Set struct {
	coords []float64

	colsOnce sync.Once
	cols     Columns
}

// NewSet creates a set holding a copy of points.
func NewSet(points []Point) *Set {
	coords := make([]float64, 0, len(points)*Dim)
	for _, p := range points {
		coords = append(coords, p[0], p[1], p[2])
	}
	return &Set{coords: coords}
}

// FromCoords creates a set that takes ownership of interleaved coordinates.
// len(coords) must be a multiple of Dim.
func FromCoords(coords []float64) (*Set, error) {
	if len(coords)%Dim != 0 {
		return nil, fmt.Errorf("coordinate count %d is not a multiple of %d", len(coords), Dim)
	}
	return &Set{coords: coords}, nil
}

// Len returns the number of points.
func (s *Set) Len() int {
	return len(s.coords) / Dim
}

// At returns point i.
func (s *Set) At(i int) Point {
	o := i * Dim
	return Point{s.coords[o], s.coords[o+1], s.coords[o+2]}
}

// Coords returns the interleaved coordinate storage. It must not be modified.
func (s *Set) Coords() []float64 {
	return s.coords
}

// Columns returns the column-major view, building it on first use.
func (s *Set) Columns() Columns {
	s.colsOnce.Do(func() {
		n := s.Len()
		backing := make([]float64, n*Dim)
		cols := Columns{
			X: backing[0:n:n],
			Y: backing[n : 2*n : 2*n],
			Z: backing[2*n:],
		}
		for i := 0; i < n; i++ {
			o := i * Dim
			cols.X[i] = s.coords[o]
			cols.Y[i] = s.coords[o+1]
			cols.Z[i] = s.coords[o+2]
		}
		s.cols = cols
	})
	return s.cols
}

// SizeBytes returns the coordinate footprint in bytes.
func (s *Set) SizeBytes() int64 {
	return int64(s.Len()) * BytesPerPoint
}

// Scale returns a new set with every coordinate multiplied by k.
func (s *Set) Scale(k float64) *Set {
	coords := make([]float64, len(s.coords))
	for i, c := range s.coords {
		coords[i] = c * k
	}
	return &Set{coords: coords}
}
