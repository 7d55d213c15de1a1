// Package fabric is the process substrate the collector spawns workers
// on. It models dynamic worker creation as a capability interface so the
// collector's logic stays decoupled from how worker units actually run
// (goroutines here; OS processes or a cluster scheduler would satisfy the
// same contract).
package fabric

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Task is one worker unit. Each unit receives its ordinal index and the
// pool size at spawn time and runs to completion. A task must return
// promptly once ctx is cancelled.
type Task func(ctx context.Context, index, total int) error

// Spawner launches a fixed-size pool of worker units and waits for all of
// them to finish.
type Spawner interface {
	// Spawn runs count instances of task concurrently and blocks until
	// every unit has returned. If any unit fails, the remaining units are
	// cancelled and the first failure is returned.
	Spawn(ctx context.Context, count int, task Task) error
}

// Pool runs worker units as goroutines. The zero value is ready to use.
//
// Thread safety: Pool is stateless; Spawn is safe for concurrent use.
type Pool struct{}

// Spawn implements Spawner.
func (Pool) Spawn(ctx context.Context, count int, task Task) error {
	if count < 1 {
		return fmt.Errorf("fabric: spawn count must be at least 1, got %d", count)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make([]error, count)
	var wg sync.WaitGroup
	wg.Add(count)
	for i := range count {
		go func() {
			defer wg.Done()
			if err := task(ctx, i, count); err != nil {
				errs[i] = err
				// First failure aborts the rest of the pool.
				cancel()
			}
		}()
	}
	wg.Wait()

	return firstFailure(errs)
}

// firstFailure picks the error to report for an aborted pool. Units that
// were merely cancelled in reaction to another unit's failure are not
// interesting; the lowest-indexed real failure wins. If every error is a
// cancellation, the first one is returned so the caller still sees the
// abort.
func firstFailure(errs []error) error {
	var cancelled error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) {
			if cancelled == nil {
				cancelled = err
			}
			continue
		}
		return err
	}
	return cancelled
}

// Ensure Pool implements Spawner.
var _ Spawner = Pool{}
