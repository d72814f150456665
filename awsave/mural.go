package awsave

import (
	"image"
	"image/color"
	"os"

	"github.com/pkg/errors"

	"animal-savior/awsave/afield"
	"animal-savior/awsave/araster"
)

// The bunny mural: a 40x20 grid of 2-bit pixels the player repaints
// one pixel at a time in-game. The editor works on it wholesale.
const (
	MuralWidth  = 40
	MuralHeight = 20
	MuralBytes  = MuralWidth * MuralHeight / 4
)

// muralGeometry treats the mural as a single-room layer so the raster
// primitives apply unchanged.
var muralGeometry = araster.Geometry{
	RoomWidth:      MuralWidth,
	RoomHeight:     MuralHeight,
	RoomsX:         1,
	RoomsY:         1,
	PlayableRoomsX: 1,
	PlayableRoomsY: 1,
	BitsPerPixel:   2,
}

// MuralPalette maps the four pixel values to the game's display
// colors, in stored-value order.
var MuralPalette = color.Palette{
	color.RGBA{R: 0x0A, G: 0x14, B: 0x32, A: 0xFF}, // black
	color.RGBA{R: 0x64, G: 0xC8, B: 0xFF, A: 0xFF}, // blue
	color.RGBA{R: 0xFA, G: 0x64, B: 0x64, A: 0xFF}, // red
	color.RGBA{R: 0xFF, G: 0xE6, B: 0xC8, A: 0xFF}, // white
}

// muralDefault is the mural as a fresh save has it.
var muralDefault = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0a, 0x28, 0x00, 0x00,
	0x00, 0x02, 0x00, 0x00, 0x00, 0x80, 0x25, 0x96, 0x00, 0x00,
	0x80, 0x08, 0x00, 0x00, 0x00, 0x80, 0x24, 0x86, 0x00, 0x00,
	0x00, 0x02, 0x00, 0x02, 0x00, 0x80, 0x24, 0x86, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x94, 0x85, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x55, 0x25, 0x00, 0x08,
	0x00, 0x00, 0x00, 0x00, 0x80, 0x6a, 0x55, 0x95, 0x00, 0x22,
	0x00, 0x00, 0x00, 0xa0, 0x6a, 0x55, 0x55, 0x95, 0x00, 0x08,
	0xc0, 0x00, 0x8a, 0x5a, 0x55, 0x55, 0x54, 0x91, 0x00, 0x00,
	0x30, 0x80, 0x65, 0x55, 0x55, 0x55, 0x54, 0x91, 0x00, 0x00,
	0x0c, 0x80, 0x65, 0x55, 0x55, 0x55, 0x55, 0x95, 0x00, 0x00,
	0x03, 0x00, 0x5a, 0x55, 0x55, 0x55, 0x45, 0x25, 0x00, 0x00,
	0xc0, 0x00, 0x56, 0x55, 0x55, 0x55, 0x11, 0x25, 0x00, 0x20,
	0x30, 0x00, 0x56, 0x55, 0x55, 0x55, 0x55, 0x95, 0x0a, 0x00,
	0x0c, 0x80, 0x55, 0x55, 0x55, 0x55, 0x55, 0x55, 0x25, 0x00,
	0x03, 0x83, 0x55, 0x55, 0xa5, 0x5a, 0x55, 0x29, 0x00, 0x00,
	0xc0, 0x80, 0x55, 0x95, 0x0a, 0xa0, 0x5a, 0x95, 0x02, 0x00,
	0x30, 0xa0, 0x55, 0x25, 0x00, 0x00, 0xa0, 0x55, 0x09, 0x00,
	0x0c, 0x60, 0x55, 0x02, 0x00, 0x00, 0x00, 0xaa, 0x02, 0x00,
	0x00, 0x58, 0xa5, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// muralSolved is the completed bunny-quest picture.
var muralSolved = []byte{
	0x37, 0x00, 0x00, 0x00, 0x40, 0x01, 0x05, 0x00, 0x00, 0x00,
	0x0c, 0x00, 0x40, 0x00, 0x40, 0x46, 0x05, 0x0c, 0x18, 0x09,
	0x08, 0x01, 0x90, 0x31, 0x40, 0x46, 0x05, 0x37, 0xf4, 0x07,
	0x48, 0x04, 0x40, 0x0e, 0x40, 0x19, 0x01, 0x0c, 0xf0, 0x03,
	0x32, 0x09, 0x00, 0x02, 0x00, 0x59, 0x00, 0x18, 0xf4, 0x07,
	0x02, 0x48, 0x00, 0x02, 0x00, 0x54, 0x05, 0x44, 0x98, 0x09,
	0x02, 0x98, 0x01, 0x08, 0x00, 0x55, 0x14, 0x10, 0x80, 0x00,
	0x0e, 0x42, 0x00, 0x58, 0x05, 0x15, 0x52, 0x20, 0x8c, 0x00,
	0x32, 0x82, 0x00, 0x55, 0x55, 0x55, 0x50, 0x82, 0x8c, 0x08,
	0x82, 0x80, 0x40, 0x55, 0x55, 0x55, 0x55, 0x81, 0x88, 0x32,
	0x88, 0x80, 0x50, 0x55, 0x55, 0x55, 0x55, 0x81, 0x88, 0xc0,
	0x88, 0x80, 0x54, 0x55, 0x55, 0x55, 0x55, 0x20, 0x20, 0x88,
	0x88, 0x20, 0x54, 0x55, 0x55, 0x55, 0x15, 0x20, 0x20, 0x20,
	0x8c, 0x23, 0x54, 0x55, 0x55, 0x55, 0xe5, 0xef, 0x23, 0x2c,
	0xef, 0xfe, 0x56, 0x55, 0x55, 0x55, 0xe5, 0xff, 0xef, 0xef,
	0xbe, 0xfd, 0x56, 0x55, 0x55, 0x55, 0xe5, 0xff, 0xff, 0xbb,
	0x7b, 0xf6, 0x54, 0x55, 0x55, 0x55, 0x01, 0xfc, 0xe7, 0xee,
	0xef, 0xf9, 0x50, 0x55, 0x55, 0x55, 0x00, 0xf0, 0x99, 0xbb,
	0xbe, 0xef, 0x43, 0x55, 0x55, 0x15, 0x00, 0xff, 0xe6, 0xee,
	0xfb, 0xbe, 0x0f, 0x00, 0x00, 0x00, 0xfc, 0xbf, 0xbb, 0xbb,
}

// Mural wraps the mural layer with its fixed palette and the two
// well-known pixel states.
type Mural struct {
	*araster.Layer
}

func (m *Mural) ToDefault() error {
	return errors.Wrap(m.SetRaw(muralDefault), "Mural.ToDefault error")
}

func (m *Mural) ToSolved() error {
	return errors.Wrap(m.SetRaw(muralSolved), "Mural.ToSolved error")
}

// Wipe repaints every pixel with the background color.
func (m *Mural) Wipe() error {
	return errors.Wrap(m.Clear(false), "Mural.Wipe error")
}

// ImportRaw loads packed pixel bytes verbatim from a file; the length
// must match exactly.
func (m *Mural) ImportRaw(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "Mural.ImportRaw error")
	}
	if len(data) != MuralBytes {
		return errors.Wrapf(afield.ErrRange,
			"Mural.ImportRaw error: need exactly %d bytes, got %d", MuralBytes, len(data))
	}
	return errors.Wrap(m.SetRaw(data), "Mural.ImportRaw error")
}

// ExportRaw dumps the packed pixel bytes to a file.
func (m *Mural) ExportRaw(path string) error {
	return errors.Wrap(os.WriteFile(path, m.Raw(), 0o644), "Mural.ExportRaw error")
}

// ImportImage loads any decodable image, rescaling to 40x20 and
// snapping colors to the mural palette.
func (m *Mural) ImportImage(img image.Image) error {
	return errors.Wrap(
		m.Layer.ImportImage(img, araster.ImportOptions{Palette: MuralPalette}),
		"Mural.ImportImage error",
	)
}

// ExportImage renders the mural as an indexed image in the game's
// colors.
func (m *Mural) ExportImage() image.Image {
	return m.Layer.ExportImage(MuralPalette)
}
