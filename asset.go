package pixelgrid

import (
	"fmt"
	"image"

	"github.com/bodgit/pixelgrid/grid"
	"github.com/bodgit/pixelgrid/legend"
)

// Asset is a single sprite definition
type Asset struct {
	Slug   string        `yaml:"slug"`
	Grid   []string      `yaml:"grid"`
	Legend legend.Legend `yaml:"legend"`
}

// Render rasterizes the asset onto its unscaled base canvas
func (a *Asset) Render() (*image.NRGBA, error) {
	p, err := a.Legend.Palette()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Slug, err)
	}
	return grid.Rasterize(a.Slug, a.Grid, p)
}
