// Package araster edits the bit-packed 2-D pixel grids inside a slot:
// the revealed-map, pencil and destroyed-tile layers plus the bunny
// mural. A layer is addressed by coarse room coordinates first and
// in-room pixel coordinates second; the editing primitives all work on
// byte-aligned runs per row, so the minimum editable unit is a full
// byte, never a single pixel.
package araster

import (
	"fmt"

	"github.com/pkg/errors"

	"animal-savior/awsave/abuf"
	"animal-savior/awsave/afield"
)

type Geometry struct {
	// Room dimensions in pixels.
	RoomWidth  int
	RoomHeight int

	// Map dimensions in rooms, including padding rooms.
	RoomsX int
	RoomsY int

	// Playable inset, in rooms.
	PlayableX     int
	PlayableY     int
	PlayableRoomsX int
	PlayableRoomsY int

	BitsPerPixel int
}

// RoomRowBytes is the byte width of one pixel row of one room.
func (g Geometry) RoomRowBytes() int {
	return g.RoomWidth * g.BitsPerPixel / 8
}

// Stride is the byte width of one pixel row across the whole map.
func (g Geometry) Stride() int {
	return g.RoomRowBytes() * g.RoomsX
}

func (g Geometry) PixelWidth() int {
	return g.RoomWidth * g.RoomsX
}

func (g Geometry) PixelHeight() int {
	return g.RoomHeight * g.RoomsY
}

// TotalBytes is the full byte length of the layer; Stride times pixel
// height by construction.
func (g Geometry) TotalBytes() int {
	return g.Stride() * g.PixelHeight()
}

func (g Geometry) pixelsPerByte() int {
	return 8 / g.BitsPerPixel
}

type Layer struct {
	buf    *abuf.Buffer
	offset int
	geo    Geometry
}

func NewLayer(buf *abuf.Buffer, offset int, geo Geometry) *Layer {
	if offset < 0 || offset+geo.TotalBytes() > buf.Len() {
		panic(fmt.Sprintf("schema bug: raster layer [0x%X, 0x%X) outside buffer", offset, offset+geo.TotalBytes()))
	}
	return &Layer{
		buf:    buf,
		offset: offset,
		geo:    geo,
	}
}

func (l *Layer) Geometry() Geometry {
	return l.geo
}

// roomOffset is the absolute offset of the upper-left byte of a room.
func (l *Layer) roomOffset(roomX, roomY int) int {
	return l.offset + roomY*l.geo.Stride()*l.geo.RoomHeight + roomX*l.geo.RoomRowBytes()
}

// fillRows writes rowBytes copies of fill into each of numRows rows
// starting at the absolute offset start, skipping to the next row with
// the layer's fixed stride.
func (l *Layer) fillRows(start, rowBytes, numRows int, fill byte) {
	for row := 0; row < numRows; row++ {
		if err := l.buf.FillAt(start+row*l.geo.Stride(), rowBytes, fill); err != nil {
			panic(err)
		}
	}
}

// FillRegion floods a rectangle of whole rooms with fill. This is the
// one primitive; the room and map variants are degenerate cases of it.
func (l *Layer) FillRegion(roomX, roomY, roomsW, roomsH int, fill byte) error {
	if roomX < 0 || roomY < 0 || roomsW < 0 || roomsH < 0 ||
		roomX+roomsW > l.geo.RoomsX || roomY+roomsH > l.geo.RoomsY {
		return errors.Wrapf(afield.ErrRange,
			"Layer.FillRegion error: region (%d,%d)+%dx%d outside %dx%d rooms",
			roomX, roomY, roomsW, roomsH, l.geo.RoomsX, l.geo.RoomsY)
	}
	l.fillRows(
		l.roomOffset(roomX, roomY),
		l.geo.RoomRowBytes()*roomsW,
		l.geo.RoomHeight*roomsH,
		fill,
	)
	return nil
}

func (l *Layer) FillRoom(roomX, roomY int) error {
	return l.FillRegion(roomX, roomY, 1, 1, 0xFF)
}

func (l *Layer) ClearRoom(roomX, roomY int) error {
	return l.FillRegion(roomX, roomY, 1, 1, 0x00)
}

// Fill floods the playable inset, or the whole map including padding
// rooms when playableOnly is false.
func (l *Layer) Fill(playableOnly bool) error {
	return l.fillArea(playableOnly, 0xFF)
}

// Clear zeroes the playable inset, or the whole map when playableOnly
// is false.
func (l *Layer) Clear(playableOnly bool) error {
	return l.fillArea(playableOnly, 0x00)
}

func (l *Layer) fillArea(playableOnly bool, fill byte) error {
	if playableOnly {
		return l.FillRegion(l.geo.PlayableX, l.geo.PlayableY, l.geo.PlayableRoomsX, l.geo.PlayableRoomsY, fill)
	}
	return l.FillRegion(0, 0, l.geo.RoomsX, l.geo.RoomsY, fill)
}

// Pixels unpacks the whole layer into one value per pixel, row-major.
// Within a byte the lowest bits hold the leftmost pixel.
func (l *Layer) Pixels() []uint8 {
	raw, err := l.buf.ReadAt(l.offset, l.geo.TotalBytes())
	if err != nil {
		panic(err)
	}
	ppb := l.geo.pixelsPerByte()
	mask := byte(1<<uint(l.geo.BitsPerPixel)) - 1
	out := make([]uint8, 0, len(raw)*ppb)
	for _, b := range raw {
		for i := 0; i < ppb; i++ {
			out = append(out, b&mask)
			b >>= uint(l.geo.BitsPerPixel)
		}
	}
	return out
}

// SetRaw overwrites the layer's backing bytes verbatim.
func (l *Layer) SetRaw(data []byte) error {
	if len(data) != l.geo.TotalBytes() {
		return errors.Wrapf(afield.ErrRange,
			"Layer.SetRaw error: need exactly %d bytes, got %d", l.geo.TotalBytes(), len(data))
	}
	return l.buf.WriteAt(l.offset, data)
}

// Raw copies the layer's backing bytes out.
func (l *Layer) Raw() []byte {
	raw, err := l.buf.ReadAt(l.offset, l.geo.TotalBytes())
	if err != nil {
		panic(err)
	}
	return raw
}
