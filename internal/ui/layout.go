package ui

import (
	"github.com/samdwyer/hexwars/internal/hex"
	"github.com/samdwyer/hexwars/internal/world"
)

// cellWidth is the number of terminal columns a tile occupies.
const cellWidth = 3

type point struct {
	x, y int
}

// Layout maps axial tile coordinates onto terminal cells. Each hex is
// four columns from its east neighbor and a row is offset two columns to
// the right of the row above.
type Layout struct {
	positions map[string]point
	hits      map[point]string
	width     int
	height    int
}

// NewLayout places tiles with the board's top-left corner at (originX, originY).
func NewLayout(tiles []world.Tile, originX, originY int) *Layout {
	l := &Layout{
		positions: make(map[string]point, len(tiles)),
		hits:      make(map[point]string, len(tiles)*cellWidth),
	}
	if len(tiles) == 0 {
		return l
	}

	minX, minY := rawPosition(tiles[0].Axial)
	for _, t := range tiles {
		x, y := rawPosition(t.Axial)
		minX = min(minX, x)
		minY = min(minY, y)
	}

	for _, t := range tiles {
		x, y := rawPosition(t.Axial)
		p := point{x: x - minX + originX, y: y - minY + originY}
		l.positions[t.ID] = p
		for dx := 0; dx < cellWidth; dx++ {
			l.hits[point{x: p.x + dx, y: p.y}] = t.ID
		}
		l.width = max(l.width, p.x-originX+cellWidth)
		l.height = max(l.height, p.y-originY+1)
	}
	return l
}

func rawPosition(a hex.Axial) (x, y int) {
	return 4*a.Q + 2*a.R, a.R
}

// Position returns the terminal cell where a tile is drawn.
func (l *Layout) Position(id string) (x, y int, ok bool) {
	p, ok := l.positions[id]
	return p.x, p.y, ok
}

// TileAt returns the tile drawn at a terminal cell.
func (l *Layout) TileAt(x, y int) (string, bool) {
	id, ok := l.hits[point{x: x, y: y}]
	return id, ok
}

// Width returns the number of columns the board spans.
func (l *Layout) Width() int {
	return l.width
}

// Height returns the number of rows the board spans.
func (l *Layout) Height() int {
	return l.height
}
