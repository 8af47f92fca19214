// Package sheet composes tiles into a single grid raster. Layout owns the
// grid geometry; Compose fills a canvas from an ordered slot sequence.
package sheet

import "image"

// Layout describes the grid geometry for a fixed number of equally sized
// cells: columns = min(n, maxColumns), rows = ceil(n / columns).
type Layout struct {
	Columns    int
	Rows       int
	TileWidth  int
	TileHeight int
}

// NewLayout computes the grid for n items. n and maxColumns must be
// positive; callers reject empty inputs before building a layout.
func NewLayout(n, maxColumns, tileWidth, tileHeight int) Layout {
	columns := maxColumns
	if n < columns {
		columns = n
	}
	rows := (n + columns - 1) / columns
	return Layout{
		Columns:    columns,
		Rows:       rows,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}
}

// Width returns the canvas width in pixels.
func (l Layout) Width() int { return l.Columns * l.TileWidth }

// Height returns the canvas height in pixels.
func (l Layout) Height() int { return l.Rows * l.TileHeight }

// Cell returns the destination cell for item i: row = i div columns,
// col = i mod columns.
func (l Layout) Cell(i int) (row, col int) {
	return i / l.Columns, i % l.Columns
}

// Origin returns the pixel origin of item i's cell on the canvas.
func (l Layout) Origin(i int) image.Point {
	row, col := l.Cell(i)
	return image.Pt(col*l.TileWidth, row*l.TileHeight)
}
