package sink

import (
	"image"
	"image/color"
)

// ImageSink is a CPU-backed sink that assembles pixels into an
// *image.RGBA. It is the default sink for headless rendering and for
// tests.
type ImageSink struct {
	img *image.RGBA
}

// NewImageSink creates an image sink with the given dimensions. All
// pixels start fully transparent black.
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Width returns the sink width in pixels.
func (s *ImageSink) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the sink height in pixels.
func (s *ImageSink) Height() int {
	return s.img.Bounds().Dy()
}

// Put writes one pixel at full opacity. Out-of-bounds coordinates are
// discarded (image.RGBA.SetRGBA already guards this).
func (s *ImageSink) Put(x, y int, r, g, b uint8) {
	s.img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
}

// Flush is a no-op for an in-memory sink.
func (s *ImageSink) Flush() error {
	return nil
}

// Close is a no-op for an in-memory sink.
func (s *ImageSink) Close() error {
	return nil
}

// Snapshot returns the current contents as an RGBA image. The returned
// image is a copy; modifications to it do not affect the sink.
func (s *ImageSink) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Image returns the underlying *image.RGBA. The returned image shares
// memory with the sink.
func (s *ImageSink) Image() *image.RGBA {
	return s.img
}

// Ensure ImageSink implements Sink.
var _ Sink = (*ImageSink)(nil)
