package image

import (
	"image"

	"github.com/disintegration/imaging"
)

// Scale resamples m to a size by size square using nearest-neighbour
// sampling. The source pixel for each output pixel is the one under its
// center.
func Scale(m image.Image, size int) *image.NRGBA {
	return imaging.Resize(m, size, size, imaging.NearestNeighbor)
}
