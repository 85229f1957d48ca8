package nearpoint_test

import (
	"context"
	"fmt"
	"log"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/nearpoint"
	"github.com/hupe1980/nearpoint/point"
)

// ExampleSearcher_Nearest finds the point closest to (1,1,1).
func ExampleSearcher_Nearest() {
	set := point.NewSet([]point.Point{
		{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {0, 0, 10}, {5, 5, 5},
	})

	s, err := nearpoint.New(set, nearpoint.WithKernel(nearpoint.KernelScalar))
	if err != nil {
		log.Fatal(err)
	}

	res, err := s.Nearest(context.Background(), point.Point{1, 1, 1})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Min indx: %d with dist2 %f\n", res.Index, res.Dist2)
	// Output: Min indx: 0 with dist2 3.000000
}

// ExampleSearcher_NearestIn restricts the search to an allow-list of indices.
func ExampleSearcher_NearestIn() {
	set := point.NewSet([]point.Point{
		{0, 0, 0}, {10, 0, 0}, {0, 10, 0}, {0, 0, 10}, {5, 5, 5},
	})

	s, err := nearpoint.New(set)
	if err != nil {
		log.Fatal(err)
	}

	res, err := s.NearestIn(context.Background(), point.Point{1, 1, 1}, roaring.BitmapOf(1, 4))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Min indx: %d with dist2 %f\n", res.Index, res.Dist2)
	// Output: Min indx: 4 with dist2 48.000000
}
