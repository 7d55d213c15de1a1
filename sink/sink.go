// Package sink defines where completed pixels go. The collector pushes
// every received record into a Sink and calls Flush once the frame is
// complete; the original program's X11 window is one possible
// implementation, the in-memory ImageSink here is another.
package sink

// Sink is the pixel consumer contract.
//
// A Sink must tolerate exactly width*height Put calls, in arbitrary
// order, before Flush. Sinks are NOT required to be safe for concurrent
// use: the collector is the sole writer.
type Sink interface {
	// Width returns the sink width in pixels.
	Width() int

	// Height returns the sink height in pixels.
	Height() int

	// Put writes one completed pixel. Coordinates outside the sink bounds
	// are discarded.
	Put(x, y int, r, g, b uint8)

	// Flush signals that the frame is complete and presents it. For
	// in-memory sinks this is typically a no-op.
	Flush() error

	// Close releases all resources associated with the sink. After Close,
	// the sink must not be used. Close is idempotent.
	Close() error
}
