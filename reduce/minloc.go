package reduce

import (
	"fmt"
	"math"
)

// NoIndex is the sentinel index of a MinLoc that has seen no candidate.
const NoIndex = -1

// MinLoc is the accumulator of an arg-min reduction.
type MinLoc struct {
	Value float64 // Smallest value seen
	Index int     // Index that produced Value, NoIndex if none
}

// Identity returns the neutral element of Combine.
func Identity() MinLoc {
	return MinLoc{Value: math.Inf(1), Index: NoIndex}
}

// Candidate returns the MinLoc for a single index.
func Candidate(value float64, index int) MinLoc {
	return MinLoc{Value: value, Index: index}
}

// Combine merges other into m. On equal values m is kept, unless m holds no
// candidate yet; a candidate whose value is +Inf still replaces Identity.
func (m MinLoc) Combine(other MinLoc) MinLoc {
	if m.Index == NoIndex || other.Value < m.Value {
		return other
	}
	return m
}

// Found reports whether the accumulator holds a candidate.
func (m MinLoc) Found() bool {
	return m.Index != NoIndex
}

func (m MinLoc) String() string {
	return fmt.Sprintf("MinLoc{index=%d, value=%g}", m.Index, m.Value)
}
