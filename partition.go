package pxblit

import (
	"errors"
	"fmt"
)

// Configuration errors detected before any work starts.
var (
	// ErrWorkerCount reports a worker count below 1.
	ErrWorkerCount = errors.New("pxblit: worker count must be at least 1")

	// ErrTooManyWorkers reports a pool so large that some worker would be
	// left with an empty partition.
	ErrTooManyWorkers = errors.New("pxblit: too many workers for input size")

	// ErrFrameSize reports a source whose length does not match the frame
	// geometry.
	ErrFrameSize = errors.New("pxblit: input size does not match frame geometry")
)

// Partition is a contiguous byte range of the source assigned to one
// worker. Partitions are non-overlapping and together tile the source
// exactly; every partition's length is a multiple of BytesPerPixel, so
// triplets never straddle a partition boundary.
type Partition struct {
	Start  int64
	Length int64
}

// End returns the first byte offset past the partition.
func (p Partition) End() int64 {
	return p.Start + p.Length
}

// Pixels returns the number of complete triplets in the partition.
func (p Partition) Pixels() int64 {
	return p.Length / BytesPerPixel
}

// PartitionFor computes the byte range owned by worker index out of count
// for a source of total bytes.
//
// Every worker but the last receives the same chunk length: total/count
// floored to a multiple of BytesPerPixel, which keeps every partition
// triplet-aligned. The last worker absorbs the remainder. A count that
// would leave any worker with an empty partition is rejected rather than
// silently treated as success.
func PartitionFor(total int64, count, index int) (Partition, error) {
	if count < 1 {
		return Partition{}, fmt.Errorf("%w: got %d", ErrWorkerCount, count)
	}
	if index < 0 || index >= count {
		return Partition{}, fmt.Errorf("pxblit: worker index %d out of range [0, %d)", index, count)
	}
	if total <= 0 || total%BytesPerPixel != 0 {
		return Partition{}, fmt.Errorf("%w: %d bytes is not a positive multiple of %d", ErrFrameSize, total, BytesPerPixel)
	}

	chunk := total / int64(count)
	chunk -= chunk % BytesPerPixel
	if chunk == 0 {
		return Partition{}, fmt.Errorf("%w: %d workers for %d bytes", ErrTooManyWorkers, count, total)
	}

	start := chunk * int64(index)
	length := chunk
	if index == count-1 {
		// The remainder of an uneven division goes to the last worker.
		length = total - start
	}
	return Partition{Start: start, Length: length}, nil
}

// SplitFrame computes the full set of partitions for count workers. The
// result is contiguous, non-overlapping, and tiles [0, total) exactly.
func SplitFrame(total int64, count int) ([]Partition, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrWorkerCount, count)
	}
	parts := make([]Partition, count)
	for i := range parts {
		p, err := PartitionFor(total, count, i)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}
	return parts, nil
}
