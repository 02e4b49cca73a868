package batch_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/qsymlib/qsym/batch"
	"github.com/qsymlib/qsym/gate"
	"github.com/qsymlib/qsym/qmath"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var floatBE qmath.Backend[complex128] = qmath.F64{}

func newQubits(n int) []*gate.Qubit[complex128] {
	qs := make([]*gate.Qubit[complex128], n)
	for i := range qs {
		qs[i] = gate.NewQubit(uint64(i+1), "q", complex(1, 0))
	}
	return qs
}

func TestRunAppliesProgramToAll(t *testing.T) {
	eng := gate.New(floatBE, nil)
	r := batch.NewRunner(eng, 4)
	qs := newQubits(100)

	stats, err := r.Run(context.Background(), qs, func(e *gate.Engine[complex128], q *gate.Qubit[complex128]) error {
		if err := e.Hadamard(q); err != nil {
			return err
		}
		return e.PauliZ(q)
	})
	require.NoError(t, err)

	assert.NotEmpty(t, stats.RunID)
	assert.Equal(t, 100, stats.Size)
	assert.Equal(t, uint64(100), stats.Completed)
	assert.Equal(t, uint64(0), stats.Failed)
	assert.Len(t, stats.Shards, 4)

	var total uint64
	for _, s := range stats.Shards {
		total += s.Count
	}
	assert.Equal(t, uint64(100), total)

	for _, q := range qs {
		assert.InDelta(t, -1/math.Sqrt2, real(q.Amp), 1e-12)
	}
}

func TestRunCountsFailures(t *testing.T) {
	eng := gate.New(floatBE, nil)
	r := batch.NewRunner(eng, 3)
	qs := newQubits(10)

	boom := errors.New("bad qubit")
	stats, err := r.Run(context.Background(), qs, func(_ *gate.Engine[complex128], q *gate.Qubit[complex128]) error {
		if q.ID%2 == 0 {
			return boom
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), stats.Completed)
	assert.Equal(t, uint64(5), stats.Failed)
}

func TestRunEmptyBatch(t *testing.T) {
	eng := gate.New(floatBE, nil)
	r := batch.NewRunner(eng, 2)

	_, err := r.Run(context.Background(), nil, func(*gate.Engine[complex128], *gate.Qubit[complex128]) error {
		return nil
	})
	assert.ErrorIs(t, err, batch.ErrEmptyBatch)
}

func TestRunNilProgram(t *testing.T) {
	eng := gate.New(floatBE, nil)
	r := batch.NewRunner(eng, 2)

	_, err := r.Run(context.Background(), newQubits(3), nil)
	assert.ErrorIs(t, err, batch.ErrNilProgram)
}

func TestRunCancelledContext(t *testing.T) {
	eng := gate.New(floatBE, nil)
	r := batch.NewRunner(eng, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := r.Run(ctx, newQubits(8), func(*gate.Engine[complex128], *gate.Qubit[complex128]) error {
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, stats)
	assert.Equal(t, uint64(0), stats.Completed)
}

func TestFewerQubitsThanShards(t *testing.T) {
	eng := gate.New(floatBE, nil)
	r := batch.NewRunner(eng, 32)
	qs := newQubits(3)

	stats, err := r.Run(context.Background(), qs, func(e *gate.Engine[complex128], q *gate.Qubit[complex128]) error {
		return e.Identity(q)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(3), stats.Completed)
	assert.Len(t, stats.Shards, 3)
}

func TestDefaultShardCount(t *testing.T) {
	eng := gate.New(floatBE, nil)
	r := batch.NewRunner(eng, 0)

	stats, err := r.Run(context.Background(), newQubits(64), func(e *gate.Engine[complex128], q *gate.Qubit[complex128]) error {
		return e.Identity(q)
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(64), stats.Completed)
}
