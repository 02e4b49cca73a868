// Package lattice applies gates across arrays of amplitudes according to
// fixed adjacency patterns (rings, a star) or a geometric proximity test
// over positioned amplitudes. Every pattern prepares the array with a
// Hadamard on each element and then wires CNOTs along the pattern edges in
// a fixed, deterministic order. Arrays are caller-owned; the generator
// borrows references only.
package lattice

import (
	"errors"
	"fmt"

	"github.com/qsymlib/qsym/gate"
)

var (
	// ErrTooFewQubits is returned when the array is shorter than the
	// pattern's minimum size. Nothing is mutated.
	ErrTooFewQubits = errors.New("lattice: array shorter than pattern minimum")

	// ErrNilElement is returned when the array holds a nil reference.
	// Detected up front, before any mutation.
	ErrNilElement = errors.New("lattice: nil qubit in array")

	// ErrUnknownPattern is returned by Run for an unrecognized pattern
	// name.
	ErrUnknownPattern = errors.New("lattice: unknown pattern")
)

// Named ring sizes. The ring wires element i to element (i+1) mod k over
// the first k elements.
const (
	TriangleSize = 3
	HexagonSize  = 6
	HeptagonSize = 7
	OctagonSize  = 8
	Ring13Size   = 13
	Ring19Size   = 19

	// StarMin is the smallest array a star pattern accepts: the center
	// plus at least one spoke.
	StarMin = 2
)

// Generator runs lattice patterns through one gate engine.
type Generator[C any] struct {
	eng *gate.Engine[C]
}

// NewGenerator wraps an engine.
func NewGenerator[C any](eng *gate.Engine[C]) *Generator[C] {
	return &Generator[C]{eng: eng}
}

// validate rejects short arrays and nil elements before anything mutates.
func validate[C any](qs []*gate.Qubit[C], min int) error {
	if len(qs) < min {
		return fmt.Errorf("%w: have %d, need %d", ErrTooFewQubits, len(qs), min)
	}
	for _, q := range qs {
		if q == nil {
			return ErrNilElement
		}
	}
	return nil
}

// ring applies Hadamard to every element and CNOT around the k-cycle.
// Pattern events are the constituent gate events themselves; the pattern
// adds no envelope record of its own.
func (g *Generator[C]) ring(qs []*gate.Qubit[C], k int) error {
	if err := validate(qs, k); err != nil {
		return err
	}
	for _, q := range qs {
		if err := g.eng.Hadamard(q); err != nil {
			return err
		}
	}
	for i := 0; i < k; i++ {
		if err := g.eng.CNOT(qs[i], qs[(i+1)%k]); err != nil {
			return err
		}
	}
	return nil
}

// Triangle runs the 3-cycle ring pattern.
func (g *Generator[C]) Triangle(qs []*gate.Qubit[C]) error {
	return g.ring(qs, TriangleSize)
}

// Hexagon runs the 6-cycle ring pattern.
func (g *Generator[C]) Hexagon(qs []*gate.Qubit[C]) error {
	return g.ring(qs, HexagonSize)
}

// Heptagon runs the 7-cycle ring pattern.
func (g *Generator[C]) Heptagon(qs []*gate.Qubit[C]) error {
	return g.ring(qs, HeptagonSize)
}

// Octagon runs the 8-cycle ring pattern.
func (g *Generator[C]) Octagon(qs []*gate.Qubit[C]) error {
	return g.ring(qs, OctagonSize)
}

// Ring13 runs the 13-cycle ring pattern.
func (g *Generator[C]) Ring13(qs []*gate.Qubit[C]) error {
	return g.ring(qs, Ring13Size)
}

// Ring19 runs the 19-cycle ring pattern, the largest named pattern.
func (g *Generator[C]) Ring19(qs []*gate.Qubit[C]) error {
	return g.ring(qs, Ring19Size)
}

// Star applies Hadamard to every element and CNOTs the first element, the
// center, with each other element in array order.
func (g *Generator[C]) Star(qs []*gate.Qubit[C]) error {
	if err := validate(qs, StarMin); err != nil {
		return err
	}
	for _, q := range qs {
		if err := g.eng.Hadamard(q); err != nil {
			return err
		}
	}
	center := qs[0]
	for _, q := range qs[1:] {
		if err := g.eng.CNOT(center, q); err != nil {
			return err
		}
	}
	return nil
}

// Run dispatches a pattern by name, for callers configured with symbolic
// pattern identifiers.
func (g *Generator[C]) Run(pattern string, qs []*gate.Qubit[C]) error {
	switch pattern {
	case "triangle":
		return g.Triangle(qs)
	case "hexagon":
		return g.Hexagon(qs)
	case "heptagon":
		return g.Heptagon(qs)
	case "octagon":
		return g.Octagon(qs)
	case "ring13":
		return g.Ring13(qs)
	case "ring19":
		return g.Ring19(qs)
	case "star":
		return g.Star(qs)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
	}
}

// Patterns lists the names accepted by Run with their minimum sizes.
func Patterns() map[string]int {
	return map[string]int{
		"triangle": TriangleSize,
		"hexagon":  HexagonSize,
		"heptagon": HeptagonSize,
		"octagon":  OctagonSize,
		"ring13":   Ring13Size,
		"ring19":   Ring19Size,
		"star":     StarMin,
	}
}
