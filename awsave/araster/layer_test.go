package araster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-savior/awsave/abuf"
	"animal-savior/awsave/afield"
)

// tinyGeometry is a 3x2 room grid of 8x2 pixel rooms at one bit per
// pixel, with a one-room-wide playable column inset at (1, 0).
var tinyGeometry = Geometry{
	RoomWidth:      8,
	RoomHeight:     2,
	RoomsX:         3,
	RoomsY:         2,
	PlayableX:      1,
	PlayableY:      0,
	PlayableRoomsX: 1,
	PlayableRoomsY: 2,
	BitsPerPixel:   1,
}

func newTinyLayer() (*Layer, *abuf.Buffer) {
	buf := abuf.New(make([]byte, tinyGeometry.TotalBytes()))
	return NewLayer(buf, 0, tinyGeometry), buf
}

func TestGeometry_Math(t *testing.T) {
	assert.Equal(t, 1, tinyGeometry.RoomRowBytes())
	assert.Equal(t, 3, tinyGeometry.Stride())
	assert.Equal(t, 24, tinyGeometry.PixelWidth())
	assert.Equal(t, 4, tinyGeometry.PixelHeight())
	assert.Equal(t, 12, tinyGeometry.TotalBytes())

	minimap := Geometry{
		RoomWidth: 40, RoomHeight: 22,
		RoomsX: 20, RoomsY: 24,
		BitsPerPixel: 1,
	}
	assert.Equal(t, 5, minimap.RoomRowBytes())
	assert.Equal(t, 100, minimap.Stride())
	assert.Equal(t, 52_800, minimap.TotalBytes())

	mural := Geometry{
		RoomWidth: 40, RoomHeight: 20,
		RoomsX: 1, RoomsY: 1,
		BitsPerPixel: 2,
	}
	assert.Equal(t, 200, mural.TotalBytes())
}

func TestLayer_FillRoom(t *testing.T) {
	l, buf := newTinyLayer()

	require.NoError(t, l.FillRoom(1, 0))
	assert.Equal(t, []byte{
		0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00,
		0x00, 0x00, 0x00,
		0x00, 0x00, 0x00,
	}, buf.Bytes())

	require.NoError(t, l.ClearRoom(1, 0))
	assert.Equal(t, make([]byte, 12), buf.Bytes())
}

func TestLayer_FillPlayableOnly(t *testing.T) {
	l, buf := newTinyLayer()

	require.NoError(t, l.Fill(true))
	assert.Equal(t, []byte{
		0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00,
	}, buf.Bytes())

	require.NoError(t, l.Fill(false))
	for i, b := range buf.Bytes() {
		assert.Equal(t, byte(0xFF), b, "byte %d", i)
	}

	// Clearing the playable inset leaves the padding rooms revealed.
	require.NoError(t, l.Clear(true))
	assert.Equal(t, []byte{
		0xFF, 0x00, 0xFF,
		0xFF, 0x00, 0xFF,
		0xFF, 0x00, 0xFF,
		0xFF, 0x00, 0xFF,
	}, buf.Bytes())
}

func TestLayer_FillRegionBounds(t *testing.T) {
	l, _ := newTinyLayer()
	assert.ErrorIs(t, l.FillRegion(2, 0, 2, 1, 0xFF), afield.ErrRange)
	assert.ErrorIs(t, l.FillRegion(-1, 0, 1, 1, 0xFF), afield.ErrRange)
	assert.ErrorIs(t, l.FillRegion(0, 1, 1, 2, 0xFF), afield.ErrRange)
}

func TestLayer_PixelsLowBitsFirst(t *testing.T) {
	l, buf := newTinyLayer()
	buf.Bytes()[0] = 0b0000_0101

	px := l.Pixels()
	require.Len(t, px, 96)
	assert.Equal(t, []uint8{1, 0, 1, 0, 0, 0, 0, 0}, px[:8])
}

func TestLayer_PixelsTwoBit(t *testing.T) {
	geo := Geometry{
		RoomWidth: 4, RoomHeight: 1,
		RoomsX: 1, RoomsY: 1,
		PlayableRoomsX: 1, PlayableRoomsY: 1,
		BitsPerPixel: 2,
	}
	buf := abuf.New([]byte{0b11_10_01_00})
	l := NewLayer(buf, 0, geo)

	assert.Equal(t, []uint8{0, 1, 2, 3}, l.Pixels())
}

func TestLayer_RawRoundTrip(t *testing.T) {
	l, _ := newTinyLayer()

	assert.ErrorIs(t, l.SetRaw(make([]byte, 11)), afield.ErrRange)

	data := make([]byte, 12)
	for i := range data {
		data[i] = byte(i)
	}
	require.NoError(t, l.SetRaw(data))
	assert.Equal(t, data, l.Raw())
}

func TestLayer_ExportImportMono(t *testing.T) {
	l, buf := newTinyLayer()
	require.NoError(t, l.FillRoom(1, 1))

	img := l.ExportImage(nil)
	paletted, ok := img.(*image.Paletted)
	require.True(t, ok)
	assert.Equal(t, 24, paletted.Bounds().Dx())
	assert.Equal(t, 4, paletted.Bounds().Dy())
	// Room (1,1) spans pixels x 8..15, y 2..3.
	assert.Equal(t, uint8(1), paletted.Pix[2*24+8])
	assert.Equal(t, uint8(0), paletted.Pix[0])

	// Re-importing the exported image reproduces the layer bytes.
	before := append([]byte(nil), buf.Bytes()...)
	require.NoError(t, l.Clear(false))
	require.NoError(t, l.ImportImage(img, ImportOptions{}))
	assert.Equal(t, before, buf.Bytes())
}

func TestLayer_ImportPlayableOnly(t *testing.T) {
	l, buf := newTinyLayer()

	// A solid white source image fills only the playable column.
	white := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range white.Pix {
		white.Pix[i] = 0xFF
	}
	require.NoError(t, l.ImportImage(white, ImportOptions{PlayableOnly: true}))
	assert.Equal(t, []byte{
		0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00,
		0x00, 0xFF, 0x00,
	}, buf.Bytes())

	// Invert flips the polarity.
	require.NoError(t, l.ImportImage(white, ImportOptions{PlayableOnly: true, Invert: true}))
	assert.Equal(t, make([]byte, 12), buf.Bytes())
}

func TestLayer_ImportIndexedNeedsFullPalette(t *testing.T) {
	geo := Geometry{
		RoomWidth: 4, RoomHeight: 1,
		RoomsX: 1, RoomsY: 1,
		PlayableRoomsX: 1, PlayableRoomsY: 1,
		BitsPerPixel: 2,
	}
	l := NewLayer(abuf.New(make([]byte, 1)), 0, geo)

	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	err := l.ImportImage(img, ImportOptions{Palette: color.Palette{color.Black, color.White}})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLayer_ImportIndexedNearestColor(t *testing.T) {
	geo := Geometry{
		RoomWidth: 4, RoomHeight: 1,
		RoomsX: 1, RoomsY: 1,
		PlayableRoomsX: 1, PlayableRoomsY: 1,
		BitsPerPixel: 2,
	}
	buf := abuf.New(make([]byte, 1))
	l := NewLayer(buf, 0, geo)

	palette := color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xFF},
		color.RGBA{0xFF, 0x00, 0x00, 0xFF},
		color.RGBA{0x00, 0xFF, 0x00, 0xFF},
		color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.SetRGBA(0, 0, color.RGBA{0x10, 0x10, 0x10, 0xFF}) // near black
	img.SetRGBA(1, 0, color.RGBA{0xE0, 0x20, 0x20, 0xFF}) // near red
	img.SetRGBA(2, 0, color.RGBA{0x20, 0xE0, 0x20, 0xFF}) // near green
	img.SetRGBA(3, 0, color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}) // near white

	require.NoError(t, l.ImportImage(img, ImportOptions{Palette: palette}))
	assert.Equal(t, []uint8{0, 1, 2, 3}, l.Pixels())
}

func TestEncodeFile_UnknownExtension(t *testing.T) {
	err := EncodeFile("out.tiff", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, ErrUnsupported)
}
