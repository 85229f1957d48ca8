package nearpoint

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPointSet is returned when a Searcher is created without points.
	ErrNilPointSet = errors.New("point set must not be nil")
)

// ErrInvalidPointCount indicates a negative number of points.
type ErrInvalidPointCount struct {
	Count int
}

func (e *ErrInvalidPointCount) Error() string {
	return fmt.Sprintf("invalid point count: %d", e.Count)
}

// ErrInvalidRepeat indicates a negative number of repetitions.
type ErrInvalidRepeat struct {
	Repeat int
}

func (e *ErrInvalidRepeat) Error() string {
	return fmt.Sprintf("invalid repeat count: %d", e.Repeat)
}

// ValidatePointCount returns an error if n is not a valid point count.
func ValidatePointCount(n int) error {
	if n < 0 {
		return &ErrInvalidPointCount{Count: n}
	}
	return nil
}

// ValidateRepeat returns an error if r is not a valid repetition count.
func ValidateRepeat(r int) error {
	if r < 0 {
		return &ErrInvalidRepeat{Repeat: r}
	}
	return nil
}
