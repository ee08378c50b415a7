package image

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
)

type encoder struct {
	indexed     bool
	compression png.CompressionLevel
}

// Option configures Encode
type Option func(*encoder)

// Indexed writes a paletted PNG instead of a straight RGBA one
func Indexed() Option {
	return func(e *encoder) {
		e.indexed = true
	}
}

// CompressionLevel sets the zlib compression level used for the PNG
func CompressionLevel(level png.CompressionLevel) Option {
	return func(e *encoder) {
		e.compression = level
	}
}

// Unique colors in the order they first appear scanning rows top to bottom
func uniqueColors(m image.Image) color.Palette {
	b := m.Bounds()
	seen := make(map[color.NRGBA]struct{})
	var p color.Palette
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}
	return p
}

// Convert the image to a paletted image, the palette is exact if there are
// few enough colors otherwise it's reduced with a median cut
func toPaletted(m image.Image) *image.Paletted {
	b := m.Bounds()

	if p := uniqueColors(m); len(p) <= maxPaletteColors {
		pm := image.NewPaletted(b, p)
		index := make(map[color.NRGBA]uint8, len(p))
		for i, c := range p {
			index[c.(color.NRGBA)] = uint8(i)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				pm.SetColorIndex(x, y, index[c])
			}
		}
		return pm
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxPaletteColors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)

	return pm
}

// Encode writes the Image m to w in PNG format.
func Encode(w io.Writer, m image.Image, opts ...Option) error {
	if m.Bounds().Empty() {
		return errors.New("image: image is empty")
	}

	e := encoder{compression: png.DefaultCompression}
	for _, o := range opts {
		o(&e)
	}

	if e.indexed {
		if _, ok := m.(*image.Paletted); !ok {
			m = toPaletted(m)
		}
	}

	return imaging.Encode(w, m, imaging.PNG, imaging.PNGCompressionLevel(e.compression))
}
