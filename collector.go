package pxblit

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/blitforge/pxblit/internal/fabric"
	"github.com/blitforge/pxblit/sink"
)

// State is the collector's lifecycle phase. Transitions only move
// forward: Idle → Spawning → Collecting → Complete, with Collecting (or
// Spawning) → Failed on any error.
type State uint32

const (
	// StateIdle means Run has not been called yet.
	StateIdle State = iota

	// StateSpawning means the worker pool is being launched.
	StateSpawning

	// StateCollecting means records are being received.
	StateCollecting

	// StateComplete means the full frame was received and presented.
	StateComplete

	// StateFailed means the run was aborted by an error.
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpawning:
		return "spawning"
	case StateCollecting:
		return "collecting"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", uint32(s))
	}
}

// recordBuffer is the capacity of the many-to-one record channel. It only
// smooths bursts; correctness does not depend on it.
const recordBuffer = 1024

// Collector drives a full render: it partitions the source, spawns the
// worker pool, receives exactly FramePixels records from any worker in
// any order, and writes each into the sink.
//
// The collector never needs sender identity. Each Point self-describes
// its destination, so the final image is identical under any interleaving
// of the producers, including all of one worker's records arriving before
// any of another's.
//
// A Collector is single-use: create a new one for each run.
type Collector struct {
	// Workers is the pool size. Must be at least 1.
	Workers int

	// Filters is applied by every worker to every record it emits.
	Filters FilterChain

	// Spawner launches the pool. Nil means fabric.Pool (goroutines).
	Spawner fabric.Spawner

	state atomic.Uint32
}

// State reports the collector's current phase. Safe for concurrent use.
func (c *Collector) State() State {
	return State(c.state.Load())
}

func (c *Collector) setState(s State) {
	c.state.Store(uint32(s))
}

// Run renders one frame from src into target. It blocks until the frame
// is complete and presented, or until the first error.
//
// Configuration errors (bad worker count, wrong source size) are detected
// before any worker starts. After that, any worker read failure or fabric
// failure aborts the entire run: remaining workers are cancelled, the
// error is returned, and the sink is left unpresented. There is no retry
// and no partial-success mode.
func (c *Collector) Run(ctx context.Context, src Source, target sink.Sink) error {
	log := Logger().With("role", "collector")

	fail := func(err error) error {
		c.setState(StateFailed)
		log.Debug("run aborted", "err", err)
		return err
	}

	if err := ValidateFrame(src); err != nil {
		return fail(err)
	}
	parts, err := SplitFrame(src.Size(), c.Workers)
	if err != nil {
		return fail(err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.setState(StateSpawning)
	log.Info("spawning workers", "workers", c.Workers)

	records := make(chan Point, recordBuffer)
	spawned := make(chan error, 1)
	go func() {
		defer close(records)
		spawned <- c.spawner().Spawn(ctx, c.Workers, func(ctx context.Context, index, total int) error {
			w := Worker{
				Context:   WorkerContext{Index: index, Total: total},
				Partition: parts[index],
				Filters:   c.Filters,
			}
			return w.Run(ctx, src, records)
		})
	}()

	c.setState(StateCollecting)

	// The sole termination condition is the record count. This is why the
	// partitions summing to exactly FrameBytes is a hard precondition:
	// there is no per-worker completion handshake to fall back on.
	received := 0
	for p := range records {
		target.Put(int(p.X), int(p.Y), p.R, p.G, p.B)
		received++
		if received == FramePixels {
			break
		}
	}

	// The pool has either finished cleanly or aborted; either way Spawn
	// has returned (or is about to, once the channel drains).
	if err := <-spawned; err != nil {
		return fail(fmt.Errorf("pxblit: render aborted after %d of %d records: %w",
			received, FramePixels, err))
	}
	if received < FramePixels {
		return fail(fmt.Errorf("pxblit: workers finished %d records short of %d",
			FramePixels-received, FramePixels))
	}

	if err := target.Flush(); err != nil {
		return fail(fmt.Errorf("pxblit: present: %w", err))
	}
	c.setState(StateComplete)
	log.Info("frame complete", "records", received)
	return nil
}

func (c *Collector) spawner() fabric.Spawner {
	if c.Spawner != nil {
		return c.Spawner
	}
	return fabric.Pool{}
}
