// Package batch applies a gate program across many independent qubits in
// parallel. Amplitudes are disjoint, one per qubit, so the engine's
// exclusive-access rule holds per element and the workers never contend on
// amplitude state. The input is sharded into contiguous slices and each
// shard runs under a weighted semaphore bound.
package batch

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/qsymlib/qsym/gate"
)

const (
	// MaxShardCount caps parallelism regardless of the configured shard
	// count.
	MaxShardCount = 128

	// DefaultShardCount is used when the caller passes a non-positive
	// shard count, bounded by the logical core count.
	DefaultShardCount = 32
)

var (
	// ErrEmptyBatch is returned for a batch with no qubits.
	ErrEmptyBatch = errors.New("batch: empty qubit set")

	// ErrNilProgram is returned when no gate program is supplied.
	ErrNilProgram = errors.New("batch: nil program")
)

// Program is the per-qubit gate sequence a run applies. It follows the
// gate contract: mutate the amplitude in place, return a plain error.
type Program[C any] func(eng *gate.Engine[C], q *gate.Qubit[C]) error

// ShardStats records the outcome of one shard.
type ShardStats struct {
	ShardID   int
	Count     uint64
	Completed uint64
	Failed    uint64
	Elapsed   time.Duration
}

// Stats records the outcome of one run. Failures are counted, not
// propagated: a qubit whose program errors keeps whatever mutations the
// already-applied sub-gates made, matching the engine's no-rollback rule.
type Stats struct {
	RunID     string
	Size      int
	Completed uint64
	Failed    uint64
	Elapsed   time.Duration
	Shards    []ShardStats
}

// Runner shards qubit sets and runs programs over them in parallel.
type Runner[C any] struct {
	eng    *gate.Engine[C]
	shards int
	sem    *semaphore.Weighted
}

// NewRunner builds a runner over the engine. A non-positive shard count
// selects one shard per logical core, capped at DefaultShardCount.
func NewRunner[C any](eng *gate.Engine[C], shards int) *Runner[C] {
	if shards <= 0 {
		shards = runtime.NumCPU()
		if shards > DefaultShardCount {
			shards = DefaultShardCount
		}
	}
	if shards > MaxShardCount {
		shards = MaxShardCount
	}
	return &Runner[C]{
		eng:    eng,
		shards: shards,
		sem:    semaphore.NewWeighted(int64(shards)),
	}
}

// split cuts the qubit set into at most r.shards contiguous slices of
// near-equal length.
func (r *Runner[C]) split(qs []*gate.Qubit[C]) [][]*gate.Qubit[C] {
	n := r.shards
	if len(qs) < n {
		n = len(qs)
	}
	shards := make([][]*gate.Qubit[C], n)
	per, rem := len(qs)/n, len(qs)%n
	idx := 0
	for i := 0; i < n; i++ {
		count := per
		if i < rem {
			count++
		}
		shards[i] = qs[idx : idx+count]
		idx += count
	}
	return shards
}

// Run applies the program to every qubit, sharded across workers. The
// context bounds admission of new shards; shards already admitted run to
// completion. Per-qubit failures are tallied in Stats rather than aborting
// the run.
func (r *Runner[C]) Run(ctx context.Context, qs []*gate.Qubit[C], prog Program[C]) (*Stats, error) {
	if len(qs) == 0 {
		return nil, ErrEmptyBatch
	}
	if prog == nil {
		return nil, ErrNilProgram
	}

	shards := r.split(qs)
	stats := &Stats{
		RunID:  uuid.NewString(),
		Size:   len(qs),
		Shards: make([]ShardStats, len(shards)),
	}

	var completed, failed atomic.Uint64
	var wg sync.WaitGroup
	start := time.Now()

	var admitErr error
	for i, shard := range shards {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			admitErr = err
			break
		}
		wg.Add(1)
		go func(id int, shard []*gate.Qubit[C]) {
			defer wg.Done()
			defer r.sem.Release(1)

			shardStart := time.Now()
			var done, bad uint64
			for _, q := range shard {
				if err := prog(r.eng, q); err != nil {
					bad++
					continue
				}
				done++
			}
			completed.Add(done)
			failed.Add(bad)
			stats.Shards[id] = ShardStats{
				ShardID:   id,
				Count:     uint64(len(shard)),
				Completed: done,
				Failed:    bad,
				Elapsed:   time.Since(shardStart),
			}
		}(i, shard)
	}
	wg.Wait()

	stats.Completed = completed.Load()
	stats.Failed = failed.Load()
	stats.Elapsed = time.Since(start)
	if admitErr != nil {
		return stats, admitErr
	}
	return stats, nil
}
