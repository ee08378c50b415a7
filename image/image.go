/*
Package image implements scaling and PNG encoding of rasterized sprites.

Sprites are scaled with nearest-neighbour point sampling so every output pixel
is a copy of exactly one source pixel; hard pixel edges are preserved and no
new colors are introduced. Encoding is always PNG, either as straight RGBA or,
optionally, as a paletted image.

Scale spreads rows across goroutines inside imaging.Resize and returns once
the whole image is done. Callers see a synchronous call and the result does
not depend on scheduling.
*/
package image

const (
	maxPaletteColors = 256
)
