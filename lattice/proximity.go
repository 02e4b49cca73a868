package lattice

import (
	"errors"
	"fmt"

	"github.com/qsymlib/qsym/gate"
)

var (
	// ErrBadDimension is returned for coordinate dimensions other than
	// 3, 4 or 5.
	ErrBadDimension = errors.New("lattice: unsupported coordinate dimension")

	// ErrDimensionMismatch is returned when an element's coordinates do
	// not match the pattern dimension.
	ErrDimensionMismatch = errors.New("lattice: coordinate dimension mismatch")
)

// Pattern epsilons: two positioned amplitudes are adjacent when their
// Euclidean distance is at most the epsilon of the dimension. Comparisons
// use squared distance, never a square root.
const (
	Epsilon3 = 1.0
	Epsilon4 = 1.25
	Epsilon5 = 1.5
)

// Positioned is a qubit with spatial coordinates, used only to decide
// proximity adjacency.
type Positioned[C any] struct {
	*gate.Qubit[C]
	Pos []float64
}

// NewPositioned attaches coordinates to a fresh qubit.
func NewPositioned[C any](id uint64, tag string, amp C, pos ...float64) *Positioned[C] {
	return &Positioned[C]{Qubit: gate.NewQubit(id, tag, amp), Pos: pos}
}

// distSq is the squared Euclidean distance between two coordinate sets of
// equal dimension.
func distSq(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Proximity applies Hadamard to every element, then CNOTs every pair
// (i < j, array order) whose squared distance is within the dimension's
// epsilon. dim must be 3, 4 or 5 and every element must carry exactly dim
// coordinates; violations are reported before any mutation.
func (g *Generator[C]) Proximity(ps []*Positioned[C], dim int) error {
	var eps float64
	switch dim {
	case 3:
		eps = Epsilon3
	case 4:
		eps = Epsilon4
	case 5:
		eps = Epsilon5
	default:
		return fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}

	if len(ps) < 2 {
		return fmt.Errorf("%w: have %d, need 2", ErrTooFewQubits, len(ps))
	}
	for _, p := range ps {
		if p == nil || p.Qubit == nil {
			return ErrNilElement
		}
		if len(p.Pos) != dim {
			return fmt.Errorf("%w: qubit %d has %d coordinates, want %d",
				ErrDimensionMismatch, p.ID, len(p.Pos), dim)
		}
	}

	for _, p := range ps {
		if err := g.eng.Hadamard(p.Qubit); err != nil {
			return err
		}
	}
	limit := eps * eps
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if distSq(ps[i].Pos, ps[j].Pos) > limit {
				continue
			}
			if err := g.eng.CNOT(ps[i].Qubit, ps[j].Qubit); err != nil {
				return err
			}
		}
	}
	return nil
}
