package pxblit

import (
	"context"
	"fmt"
	"io"
)

// WorkerContext identifies one worker within its pool. It is handed to
// the worker at spawn time; workers never read identity from ambient
// state.
type WorkerContext struct {
	// Index is the worker's ordinal, in [0, Total).
	Index int

	// Total is the pool size.
	Total int
}

// Worker owns one partition of the source. It reads its byte range,
// decodes each triplet into a Point, applies the filter chain, and
// streams the results to the collector. Workers never communicate with
// each other.
type Worker struct {
	Context   WorkerContext
	Partition Partition
	Filters   FilterChain
}

// Run reads the worker's partition from src and emits one filtered Point
// per triplet on out. Points are produced in ascending offset order, but
// consumers must not rely on this: records from concurrent workers
// interleave arbitrarily.
//
// Any read error is returned as-is and is fatal to the whole run; a
// worker cannot partially render. Run returns ctx.Err() if the context is
// cancelled while emitting.
func (w Worker) Run(ctx context.Context, src io.ReaderAt, out chan<- Point) error {
	log := Logger().With("role", "worker", "worker", w.Context.Index)

	buf := make([]byte, w.Partition.Length)
	if _, err := src.ReadAt(buf, w.Partition.Start); err != nil {
		return fmt.Errorf("pxblit: worker %d: read [%d, %d): %w",
			w.Context.Index, w.Partition.Start, w.Partition.End(), err)
	}
	log.Debug("partition read",
		"bytes", w.Partition.Length,
		"start", w.Partition.Start,
		"end", w.Partition.End()-1)

	// The partition's starting pixel index anchors the local offsets in
	// frame coordinates.
	base := w.Partition.Start / BytesPerPixel
	for off := int64(0); off < w.Partition.Pixels(); off++ {
		p := DecodePoint(base+off, buf[off*BytesPerPixel:])
		w.Filters.Apply(&p)

		select {
		case out <- p:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	log.Debug("partition emitted", "records", w.Partition.Pixels())
	return nil
}
