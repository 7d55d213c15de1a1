package pxblit

import (
	"encoding/binary"
	"fmt"
)

// Point is one decoded destination pixel: its frame coordinates and its
// color after filtering. Coordinates are derived from the pixel's linear
// offset in the source buffer, never chosen by a worker, so a Point is
// self-describing and may arrive at the collector in any order.
type Point struct {
	X, Y    uint16
	R, G, B uint8
}

// PointSize is the encoded size of a Point in bytes: two u16 coordinates
// followed by three color bytes.
const PointSize = 7

// PointAt maps a linear pixel offset to its frame coordinates. It is the
// single source of truth for the offset mapping: a worker's local offset
// plus its partition's starting pixel index resolves to the same
// coordinates as if one process decoded the whole buffer sequentially.
func PointAt(offset int64) (x, y uint16) {
	return uint16(offset % Width), uint16(offset / Width)
}

// DecodePoint decodes one source triplet at the given linear pixel offset.
// The triplet is copied byte for byte; no color-space conversion happens.
func DecodePoint(offset int64, triplet []byte) Point {
	x, y := PointAt(offset)
	return Point{X: x, Y: y, R: triplet[0], G: triplet[1], B: triplet[2]}
}

// MarshalBinary encodes the point into its fixed wire layout:
// x:u16, y:u16, r:u8, g:u8, b:u8, integers little-endian, no padding.
func (p Point) MarshalBinary() ([]byte, error) {
	buf := make([]byte, PointSize)
	binary.LittleEndian.PutUint16(buf[0:2], p.X)
	binary.LittleEndian.PutUint16(buf[2:4], p.Y)
	buf[4] = p.R
	buf[5] = p.G
	buf[6] = p.B
	return buf, nil
}

// UnmarshalBinary decodes a point from its fixed wire layout.
func (p *Point) UnmarshalBinary(data []byte) error {
	if len(data) != PointSize {
		return fmt.Errorf("pxblit: point encoding is %d bytes, want %d", len(data), PointSize)
	}
	p.X = binary.LittleEndian.Uint16(data[0:2])
	p.Y = binary.LittleEndian.Uint16(data[2:4])
	p.R = data[4]
	p.G = data[5]
	p.B = data[6]
	return nil
}
