package sheet

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"

	"github.com/vorshim/tilesheet/internal/placeholder"
)

// Slot is one grid cell in the composition order: either a source image
// file to paste, or a transparent gap.
type Slot struct {
	Path        string // Absolute path of the source tile; empty for gaps.
	Placeholder bool
}

// Compose lays out slots onto a transparent canvas sized by l and returns
// it. Each source file is opened, resized to the cell dimensions when its
// native size differs (stretched, aspect ratio not preserved), blitted,
// and released before the next file is touched, so peak memory stays at
// roughly one source image plus the canvas. Placeholder slots are skipped;
// the canvas is already transparent there.
func Compose(slots []Slot, l Layout) (*image.NRGBA, error) {
	canvas := placeholder.New(l.Width(), l.Height())

	for i, slot := range slots {
		if slot.Placeholder {
			continue
		}
		tile, err := imaging.Open(slot.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", slot.Path)
		}
		b := tile.Bounds()
		if b.Dx() != l.TileWidth || b.Dy() != l.TileHeight {
			tile = imaging.Resize(tile, l.TileWidth, l.TileHeight, imaging.Lanczos)
		}

		origin := l.Origin(i)
		dst := image.Rect(origin.X, origin.Y, origin.X+l.TileWidth, origin.Y+l.TileHeight)
		xdraw.Draw(canvas, dst, tile, tile.Bounds().Min, xdraw.Src)
	}
	return canvas, nil
}
