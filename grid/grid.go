/*
Package grid rasterizes ASCII-art sprite grids.

A grid is a list of rows where every character is a symbol looked up in a
resolved legend. The grid is painted onto a square transparent canvas whose
side is the larger of the row count and the longest row. The grid is centered
vertically as a block, but every row is centered horizontally on its own, so
rows of different lengths are each centered individually.
*/
package grid

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"unicode/utf8"

	"github.com/bodgit/pixelgrid/legend"
)

// ErrEmptyGrid is returned when a grid has no rows
var ErrEmptyGrid = errors.New("grid: no rows")

// UnknownSymbolError records a grid symbol missing from the legend
type UnknownSymbolError struct {
	Symbol rune
	Name   string
	Known  []string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("grid: symbol %q in %s is not defined. Known symbols: %s", e.Symbol, e.Name, strings.Join(e.Known, ", "))
}

// Side returns the side of the square canvas needed to hold rows
func Side(rows []string) int {
	side := len(rows)
	for _, row := range rows {
		if n := utf8.RuneCountInString(row); n > side {
			side = n
		}
	}
	return side
}

// Rasterize paints rows onto a new square canvas using the palette p. The
// name identifies the grid in any error.
func Rasterize(name string, rows []string, p legend.Palette) (*image.NRGBA, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyGrid, name)
	}

	side := Side(rows)
	m := image.NewNRGBA(image.Rect(0, 0, side, side))

	dy := (side - len(rows)) / 2
	for y, row := range rows {
		dx := (side - utf8.RuneCountInString(row)) / 2
		x := 0
		for _, symbol := range row {
			c, ok := p[symbol]
			if !ok {
				return nil, &UnknownSymbolError{
					Symbol: symbol,
					Name:   name,
					Known:  p.Symbols(),
				}
			}
			if c != legend.Transparent {
				m.SetNRGBA(dx+x, dy+y, c)
			}
			x++
		}
	}

	return m, nil
}
