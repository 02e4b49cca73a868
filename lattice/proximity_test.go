package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsymlib/qsym/gate"
	"github.com/qsymlib/qsym/lattice"
)

func TestProximity3D(t *testing.T) {
	rec := &recorder{}
	eng := gate.New(floatBE, rec)
	gen := lattice.NewGenerator(eng)

	ps := []*lattice.Positioned[complex128]{
		lattice.NewPositioned(1, "p1", complex(1, 0), 0, 0, 0),
		lattice.NewPositioned(2, "p2", complex(1, 0), 0, 0, 0.5),
		lattice.NewPositioned(3, "p3", complex(1, 0), 10, 10, 10),
	}
	require.NoError(t, gen.Proximity(ps, 3))

	// Three Hadamards, then one CNOT: only the (p1, p2) pair is within
	// the 3D epsilon.
	require.Len(t, rec.events, 4)
	assert.Equal(t, "cnot", rec.events[3].gate)
	assert.Equal(t, uint64(2), rec.events[3].id)

	assert.InDelta(t, -1/math.Sqrt2, real(ps[1].Amp), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, real(ps[0].Amp), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, real(ps[2].Amp), 1e-12)
}

func TestProximityBoundaryInclusive(t *testing.T) {
	// Distance exactly epsilon counts as adjacent.
	rec := &recorder{}
	eng := gate.New(floatBE, rec)
	gen := lattice.NewGenerator(eng)

	ps := []*lattice.Positioned[complex128]{
		lattice.NewPositioned(1, "p1", complex(1, 0), 0, 0, 0),
		lattice.NewPositioned(2, "p2", complex(1, 0), lattice.Epsilon3, 0, 0),
	}
	require.NoError(t, gen.Proximity(ps, 3))
	require.Len(t, rec.events, 3)
	assert.Equal(t, "cnot", rec.events[2].gate)
}

func TestProximityDimensions(t *testing.T) {
	eng := gate.New(floatBE, nil)
	gen := lattice.NewGenerator(eng)

	ps4 := []*lattice.Positioned[complex128]{
		lattice.NewPositioned(1, "p1", complex(1, 0), 0, 0, 0, 0),
		lattice.NewPositioned(2, "p2", complex(1, 0), 1, 0, 0, 0),
	}
	assert.NoError(t, gen.Proximity(ps4, 4))

	ps5 := []*lattice.Positioned[complex128]{
		lattice.NewPositioned(1, "p1", complex(1, 0), 0, 0, 0, 0, 0),
		lattice.NewPositioned(2, "p2", complex(1, 0), 1, 0, 0, 0, 0),
	}
	assert.NoError(t, gen.Proximity(ps5, 5))

	assert.ErrorIs(t, gen.Proximity(ps4, 2), lattice.ErrBadDimension)
	assert.ErrorIs(t, gen.Proximity(ps4, 6), lattice.ErrBadDimension)
}

func TestProximityDimensionMismatch(t *testing.T) {
	eng := gate.New(floatBE, nil)
	gen := lattice.NewGenerator(eng)

	ps := []*lattice.Positioned[complex128]{
		lattice.NewPositioned(1, "p1", complex(1, 0), 0, 0, 0),
		lattice.NewPositioned(2, "p2", complex(1, 0), 1, 0), // 2 coords in a 3D pattern
	}
	err := gen.Proximity(ps, 3)
	assert.ErrorIs(t, err, lattice.ErrDimensionMismatch)
	assert.Equal(t, complex(1, 0), ps[0].Amp, "no mutation before validation passes")
}

func TestProximityTooSmall(t *testing.T) {
	eng := gate.New(floatBE, nil)
	gen := lattice.NewGenerator(eng)

	ps := []*lattice.Positioned[complex128]{
		lattice.NewPositioned(1, "p1", complex(1, 0), 0, 0, 0),
	}
	assert.ErrorIs(t, gen.Proximity(ps, 3), lattice.ErrTooFewQubits)
}
