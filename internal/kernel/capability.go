package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/viterin/vek"
)

// ErrUnknownKind is returned when a kernel name cannot be parsed.
var ErrUnknownKind = errors.New("unknown kernel")

// Kind selects a block kernel implementation.
type Kind uint8

const (
	// Auto picks the best kernel for the current CPU.
	Auto Kind = iota
	// Scalar is the portable point-by-point kernel.
	Scalar
	// Vector is the column-wise kernel backed by vek.
	Vector
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case Auto:
		return "auto"
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	default:
		return "unknown"
	}
}

// ParseKind parses a kernel name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "scalar":
		return Scalar, nil
	case "vector":
		return Vector, nil
	default:
		return Auto, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// hasAVX2 reports x86-64 AVX2 + FMA (set by platform-specific init).
var hasAVX2 bool

// Best returns the kernel Auto resolves to on this CPU. Vector is chosen only
// where vek runs accelerated code.
func Best() Kind {
	if hasAVX2 && vek.Info().Acceleration {
		return Vector
	}
	return Scalar
}

// Resolve maps Auto to Best and returns every other Kind unchanged.
func Resolve(k Kind) Kind {
	if k == Auto {
		return Best()
	}
	return k
}
