package pxblit

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Source is the byte-addressable input a frame is read from. Workers read
// disjoint ranges concurrently, so ReadAt must be safe for concurrent use
// (os.File and bytes.Reader both are).
type Source interface {
	io.ReaderAt

	// Size returns the total length in bytes.
	Size() int64

	// Close releases the source. Close is idempotent.
	Close() error
}

// ValidateFrame checks the global size invariant: the source must hold
// exactly one frame. Any other length is a configuration error detected
// before partitioning.
func ValidateFrame(src Source) error {
	if n := src.Size(); n != FrameBytes {
		return fmt.Errorf("%w: got %d bytes, want %d (%dx%dx%d)",
			ErrFrameSize, n, FrameBytes, Width, Height, BytesPerPixel)
	}
	return nil
}

// BufferSource is an in-memory source.
type BufferSource struct {
	r *bytes.Reader
}

// NewBufferSource wraps data as a source. The slice is used directly
// without copying.
func NewBufferSource(data []byte) *BufferSource {
	return &BufferSource{r: bytes.NewReader(data)}
}

// ReadAt implements io.ReaderAt.
func (s *BufferSource) ReadAt(p []byte, off int64) (int, error) {
	return s.r.ReadAt(p, off)
}

// Size returns the buffer length.
func (s *BufferSource) Size() int64 {
	return s.r.Size()
}

// Close is a no-op.
func (s *BufferSource) Close() error {
	return nil
}

// FileSource reads directly from a file on disk.
type FileSource struct {
	f    *os.File
	size int64
}

// ReadAt implements io.ReaderAt.
func (s *FileSource) ReadAt(p []byte, off int64) (int, error) {
	return s.f.ReadAt(p, off)
}

// Size returns the file length at open time.
func (s *FileSource) Size() int64 {
	return s.size
}

// Close closes the underlying file.
func (s *FileSource) Close() error {
	return s.f.Close()
}

// Open opens a raw frame file as a Source. Files with a ".zst" extension
// are decompressed into memory first; everything else is read in place.
// The caller still owns the size check (see ValidateFrame); Open only
// deals with access.
func Open(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pxblit: open input: %w", err)
	}

	if strings.HasSuffix(path, ".zst") {
		defer f.Close()
		return openZstd(f)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("pxblit: stat input: %w", err)
	}
	return &FileSource{f: f, size: fi.Size()}, nil
}

// openZstd inflates a zstd-compressed frame into a buffer source.
func openZstd(r io.Reader) (*BufferSource, error) {
	dec, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(FrameBytes*4),
	)
	if err != nil {
		return nil, fmt.Errorf("pxblit: zstd reader: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("pxblit: zstd decode: %w", err)
	}
	return NewBufferSource(data), nil
}
