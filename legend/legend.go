/*
Package legend resolves the symbol legend of a sprite grid into colors.

Each legend entry pairs an optional hex color with an opacity. An entry with
no color, or with an opacity of zero or less, always resolves to the fully
transparent pixel. Colors are kept as straight (non-premultiplied) alpha so
the hex triplet survives unchanged into the PNG output.
*/
package legend

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrBadColor is returned for a color that is not six hex digits
	ErrBadColor = errors.New("legend: unsupported color value")
	// ErrBadOpacity is returned for an opacity that is not a number
	ErrBadOpacity = errors.New("legend: unsupported opacity value")
	// ErrBadSymbol is returned for a legend key that is not a single character
	ErrBadSymbol = errors.New("legend: symbol must be a single character")
)

// Transparent is the resolved value of every transparent legend entry
var Transparent = color.NRGBA{}

// Entry is a single legend entry
type Entry struct {
	Color   *string `yaml:"color"`
	Opacity float64 `yaml:"opacity"`
}

// Legend maps each grid symbol to its entry
type Legend map[string]Entry

// Palette is a resolved legend
type Palette map[rune]color.NRGBA

func hexToRGB(hex string) (uint8, uint8, uint8, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadColor, hex)
		}
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	r, g, b := c.RGB255()
	return r, g, b, nil
}

// Resolve returns the pixel for the given color and opacity
func Resolve(hex *string, opacity float64) (color.NRGBA, error) {
	if math.IsNaN(opacity) {
		return Transparent, fmt.Errorf("%w: %v", ErrBadOpacity, opacity)
	}
	if hex == nil || opacity <= 0 {
		return Transparent, nil
	}

	r, g, b, err := hexToRGB(*hex)
	if err != nil {
		return Transparent, err
	}

	a := math.Floor(opacity*255 + 0.5)
	if a > 255 {
		a = 255
	}

	return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}, nil
}

// Palette resolves every entry in the legend in sorted symbol order
func (l Legend) Palette() (Palette, error) {
	symbols := make([]string, 0, len(l))
	for symbol := range l {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	p := make(Palette, len(l))
	for _, symbol := range symbols {
		e := l[symbol]
		if utf8.RuneCountInString(symbol) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadSymbol, symbol)
		}
		c, err := Resolve(e.Color, e.Opacity)
		if err != nil {
			return nil, fmt.Errorf("symbol %q: %w", symbol, err)
		}
		r, _ := utf8.DecodeRuneInString(symbol)
		p[r] = c
	}
	return p, nil
}

// Symbols returns the known symbols in sorted order
func (p Palette) Symbols() []string {
	s := make([]string, 0, len(p))
	for r := range p {
		s = append(s, string(r))
	}
	sort.Strings(s)
	return s
}
