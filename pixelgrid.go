/*
Package pixelgrid renders sprites defined as ASCII-art grids into PNG files.

Each asset pairs a grid of symbol rows with a legend mapping every symbol to a
color and opacity. An asset is rasterized onto a square transparent canvas and
then written at each requested size using nearest-neighbour scaling.
*/
package pixelgrid

import (
	"io"
	"log"
)

// Renderer renders assets to disk, reporting each file to its output
type Renderer struct {
	out    io.Writer
	logger *log.Logger
}

// New returns a Renderer that reports written files to out and logs
// progress to logger
func New(out io.Writer, logger *log.Logger) *Renderer {
	return &Renderer{
		out:    out,
		logger: logger,
	}
}
