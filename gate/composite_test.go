package gate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qsymlib/qsym/gate"
)

func TestBarencoSequence(t *testing.T) {
	rec := &recorder{}
	eng := gate.New(floatBE, rec)
	a := gate.NewQubit(1, "a", complex(1, 0))
	b := gate.NewQubit(2, "b", complex(1, 0))
	c := gate.NewQubit(3, "c", complex(1, 0))

	require.NoError(t, eng.Barenco(a, b, c))
	assert.Equal(t,
		[]string{"hadamard", "cnot", "phase-s", "cnot", "hadamard", "barenco"},
		rec.gates())
}

func TestMagicSequence(t *testing.T) {
	rec := &recorder{}
	eng := gate.New(floatBE, rec)
	a := gate.NewQubit(1, "a", complex(1, 0))
	b := gate.NewQubit(2, "b", complex(1, 0))

	require.NoError(t, eng.Magic(a, b))
	assert.Equal(t,
		[]string{"hadamard", "phase-s", "cnot", "hadamard", "magic"},
		rec.gates())
}

func TestPeresSequence(t *testing.T) {
	rec := &recorder{}
	eng := gate.New(floatBE, rec)
	a := gate.NewQubit(1, "a", complex(1, 0))
	b := gate.NewQubit(2, "b", complex(1, 0))
	c := gate.NewQubit(3, "c", complex(1, 0))

	require.NoError(t, eng.Peres(a, b, c))
	assert.Equal(t, []string{"cnot", "margolis", "peres"}, rec.gates())
	// Both sub-gates fired: two sign flips cancel.
	assert.Equal(t, complex(1, 0), c.Amp)
}

func TestCZSwap(t *testing.T) {
	eng := gate.New(floatBE, nil)
	a := gate.NewQubit(1, "a", complex(1, 0))
	b := gate.NewQubit(2, "b", complex(0, 1))

	require.NoError(t, eng.CZSwap(a, b))
	// CZ (control a, on) negates b, then the swap exchanges them.
	assert.Equal(t, complex(0, -1), a.Amp)
	assert.Equal(t, complex(1, 0), b.Amp)
}

func TestSycamoreSequence(t *testing.T) {
	rec := &recorder{}
	eng := gate.New(floatBE, rec)
	a := gate.NewQubit(1, "a", complex(1, 0))
	b := gate.NewQubit(2, "b", complex(0, 1))

	require.NoError(t, eng.Sycamore(a, b))
	assert.Equal(t, []string{"sqrt-iswap", "controlled-phase", "sycamore"}, rec.gates())
}

func TestFermionSim(t *testing.T) {
	eng := gate.New(floatBE, nil)
	a := gate.NewQubit(1, "a", complex(1, 0))
	b := gate.NewQubit(2, "b", complex(0, 1))

	require.NoError(t, eng.FermionSim(a, b))
	// Swap puts b's amplitude on a, then the sign flip lands on a.
	assert.Equal(t, complex(0, -1), a.Amp)
	assert.Equal(t, complex(1, 0), b.Amp)
}

func TestDeutschAppliesOracle(t *testing.T) {
	eng := gate.New(floatBE, nil)
	q1 := gate.NewQubit(1, "q1", complex(1, 0))
	q2 := gate.NewQubit(2, "q2", complex(1, 0))

	require.NoError(t, eng.Deutsch(q1, q2, func(q *gate.Qubit[complex128]) error {
		return eng.PauliZ(q)
	}))
	// Two Hadamard scalings halve q1; the oracle negated q2.
	assert.InDelta(t, 0.5, real(q1.Amp), 1e-12)
	assert.Equal(t, complex(-1, 0), q2.Amp)
}

func TestDeutschNilOracle(t *testing.T) {
	eng := gate.New(floatBE, nil)
	q1 := gate.NewQubit(1, "q1", complex(1, 0))
	q2 := gate.NewQubit(2, "q2", complex(1, 0))

	err := eng.Deutsch(q1, q2, nil)
	assert.ErrorIs(t, err, gate.ErrNilOracle)
	assert.Equal(t, complex(1, 0), q1.Amp, "nothing mutated on a rejected call")
}

func TestCompositeFailFastNoRollback(t *testing.T) {
	rec := &recorder{}
	eng := gate.New(floatBE, rec)
	q1 := gate.NewQubit(1, "q1", complex(1, 0))
	q2 := gate.NewQubit(2, "q2", complex(1, 0))

	boom := errors.New("oracle failure")
	err := eng.Deutsch(q1, q2, func(*gate.Qubit[complex128]) error {
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The first Hadamard already ran and is not rolled back; the second
	// never runs and the composite emits no event of its own.
	assert.InDelta(t, 1/math.Sqrt2, real(q1.Amp), 1e-12)
	assert.Equal(t, []string{"hadamard"}, rec.gates())
}
