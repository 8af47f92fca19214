// Package placeholder synthesizes blank tiles: fully transparent rasters
// of the standard tile dimensions, used to fill numbering gaps on disk or
// to leave a grid cell empty in the composed sheet.
package placeholder

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/vorshim/tilesheet/internal/encode"
)

// New returns a fully transparent tile of exactly width × height pixels.
func New(width, height int) *image.NRGBA {
	return imaging.New(width, height, color.NRGBA{})
}

// WriteFile materializes a transparent width × height tile at path, in the
// format implied by the path's extension, with dpi resolution metadata.
// Write failures are propagated; nothing is retried.
func WriteFile(path string, width, height, dpi int) error {
	return encode.Save(New(width, height), path, dpi)
}
