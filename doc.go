// Package pxblit renders a raw RGB frame by partitioning it across a pool
// of concurrent workers and reassembling the result from an unordered
// stream of pixel records.
//
// # Overview
//
// The input is a header-less byte stream of exactly Width*Height pixels,
// 3 bytes per pixel, row-major. A Collector splits the stream into one
// Partition per worker, spawns the pool, and receives decoded Points over
// a single many-to-one channel. Each Point carries its own destination
// coordinates, so the collector accepts records from any worker in any
// order and still produces an identical image.
//
// # Quick Start
//
//	src, err := pxblit.Open("frame.rgb")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer src.Close()
//
//	target := sink.NewImageSink(pxblit.Width, pxblit.Height)
//	c := &pxblit.Collector{Workers: 4, Filters: pxblit.ParseFilters("gi")}
//	if err := c.Run(context.Background(), src, target); err != nil {
//		log.Fatal(err)
//	}
//	img := target.Snapshot()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Point, Partition, FilterChain, Worker, Collector, Source
//   - sink: the pixel-sink abstraction the collector presents into
//   - internal/fabric: the worker-spawning substrate
//
// # Failure Model
//
// This is a batch pipeline, not a service: every error is fatal to the
// whole run. A worker that cannot read its partition aborts the pool and
// the collector; there is no retry and no partial result.
package pxblit

// Frame geometry. The input format is fixed at compile time; a source
// whose length does not match FrameBytes is rejected before any work
// starts.
const (
	// Width is the frame width in pixels.
	Width = 400

	// Height is the frame height in pixels.
	Height = 400

	// BytesPerPixel is the size of one encoded pixel (R, G, B).
	BytesPerPixel = 3

	// RowStride is the number of bytes per frame row.
	RowStride = Width * BytesPerPixel

	// FramePixels is the total number of pixels in a frame, and the exact
	// number of records a Collector must receive before presenting.
	FramePixels = Width * Height

	// FrameBytes is the required source length in bytes.
	FrameBytes = FramePixels * BytesPerPixel
)
