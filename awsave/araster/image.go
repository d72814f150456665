package araster

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// ErrUnsupported marks an image import/export that cannot be served:
// an output extension with no known encoder, or input in a format no
// registered codec understands. Only the one operation degrades; the
// rest of the editor keeps working.
var ErrUnsupported = errors.New("image codec unavailable")

type ImportOptions struct {
	// PlayableOnly restricts the import to the playable inset instead of
	// the full padded map.
	PlayableOnly bool

	// Invert flips pixel polarity (1-bit layers only).
	Invert bool

	// Palette is the layer's color table for multi-level layers; for
	// 1-bit layers it defaults to black/white.
	Palette color.Palette
}

var monoPalette = color.Palette{
	color.Black,
	color.White,
}

// ImportImage rescales img to the layer's exact pixel dimensions
// (aspect ratio is disregarded), reduces it to the layer's bit depth
// (Floyd-Steinberg error diffusion for 1-bit layers, nearest palette
// color by redmean distance for indexed layers) and packs the pixels
// into the layer, lowest bits holding the leftmost pixel of each byte.
func (l *Layer) ImportImage(img image.Image, opts ImportOptions) error {
	var dimX, dimY int
	if opts.PlayableOnly {
		dimX = l.geo.RoomWidth * l.geo.PlayableRoomsX
		dimY = l.geo.RoomHeight * l.geo.PlayableRoomsY
	} else {
		dimX = l.geo.PixelWidth()
		dimY = l.geo.PixelHeight()
	}

	img = resizeTo(img, dimX, dimY)

	var indices []uint8
	switch l.geo.BitsPerPixel {
	case 1:
		indices = ditherMono(img, opts.Invert)
	default:
		palette := opts.Palette
		if len(palette) != 1<<uint(l.geo.BitsPerPixel) {
			return errors.Wrapf(ErrUnsupported,
				"Layer.ImportImage error: %d-bit layer needs a %d-color palette",
				l.geo.BitsPerPixel, 1<<uint(l.geo.BitsPerPixel))
		}
		indices = quantizeNearest(img, palette)
	}

	l.writePixels(indices, dimX, dimY, opts.PlayableOnly)
	return nil
}

// ExportImage unpacks the full layer (padding rooms included) into an
// indexed image using the given palette, or black/white for 1-bit
// layers when palette is nil.
func (l *Layer) ExportImage(palette color.Palette) image.Image {
	if palette == nil {
		palette = monoPalette
	}
	out := image.NewPaletted(image.Rect(0, 0, l.geo.PixelWidth(), l.geo.PixelHeight()), palette)
	copy(out.Pix, l.Pixels())
	return out
}

func resizeTo(img image.Image, dimX, dimY int) image.Image {
	b := img.Bounds()
	if b.Dx() == dimX && b.Dy() == dimY {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, dimX, dimY))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func ditherMono(img image.Image, invert bool) []uint8 {
	b := img.Bounds()
	dst := image.NewPaletted(b, monoPalette)
	draw.FloydSteinberg.Draw(dst, b, img, b.Min)
	if invert {
		for i, p := range dst.Pix {
			dst.Pix[i] = 1 - p
		}
	}
	return dst.Pix
}

func quantizeNearest(img image.Image, palette color.Palette) []uint8 {
	b := img.Bounds()
	out := make([]uint8, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, nearestIndex(img.At(x, y), palette))
		}
	}
	return out
}

// nearestIndex picks the closest palette entry by the "redmean"
// luminance-weighted channel difference rather than plain Euclidean
// distance, so substituted colors surprise a viewer as little as
// possible.
func nearestIndex(c color.Color, palette color.Palette) uint8 {
	r, g, b, _ := c.RGBA()
	cr, cg, cb := float64(r>>8), float64(g>>8), float64(b>>8)

	best := 0
	bestDiff := 0.0
	for i, pc := range palette {
		pr16, pg16, pb16, _ := pc.RGBA()
		pr, pg, pb := float64(pr16>>8), float64(pg16>>8), float64(pb16>>8)
		rbar := (cr + pr) * 0.5
		diff := (2+rbar/256)*(cr-pr)*(cr-pr) +
			4*(cg-pg)*(cg-pg) +
			(2+(255-rbar)/256)*(cb-pb)*(cb-pb)
		if i == 0 || diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return uint8(best)
}

// writePixels packs one value per pixel into the layer, starting at the
// playable inset origin when playableOnly is set.
func (l *Layer) writePixels(indices []uint8, dimX, dimY int, playableOnly bool) {
	start := l.offset
	rowBytes := l.geo.Stride()
	if playableOnly {
		start = l.roomOffset(l.geo.PlayableX, l.geo.PlayableY)
		rowBytes = l.geo.RoomRowBytes() * l.geo.PlayableRoomsX
	}

	bpp := uint(l.geo.BitsPerPixel)
	ppb := l.geo.pixelsPerByte()
	row := make([]byte, rowBytes)
	for y := 0; y < dimY; y++ {
		for i := range row {
			var packed byte
			for p := ppb - 1; p >= 0; p-- {
				packed <<= bpp
				packed |= indices[y*dimX+i*ppb+p]
			}
			row[i] = packed
		}
		if err := l.buf.WriteAt(start+y*l.geo.Stride(), row); err != nil {
			panic(err)
		}
	}
}

// DecodeFile reads an image in any registered format (PNG, GIF, BMP).
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeFile error")
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, errors.Wrapf(ErrUnsupported, "DecodeFile error: %q", path)
		}
		return nil, errors.Wrap(err, "DecodeFile error")
	}
	return img, nil
}

// EncodeFile writes img in the format implied by the filename
// extension; unknown extensions degrade to ErrUnsupported.
func EncodeFile(path string, img image.Image) error {
	var encode func(*os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".gif":
		encode = func(f *os.File) error { return gif.Encode(f, img, nil) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	default:
		return errors.Wrapf(ErrUnsupported, "EncodeFile error: no encoder for %q", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "EncodeFile error")
	}
	defer f.Close()
	return errors.Wrap(encode(f), "EncodeFile error")
}
