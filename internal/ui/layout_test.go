package ui

import (
	"testing"

	"github.com/samdwyer/hexwars/internal/hex"
	"github.com/samdwyer/hexwars/internal/world"
)

func TestLayoutPositions(t *testing.T) {
	tiles := []world.Tile{
		world.NewTile(hex.Axial{Q: 0, R: 0}, world.Plains),
		world.NewTile(hex.Axial{Q: 1, R: 0}, world.Plains),
		world.NewTile(hex.Axial{Q: 0, R: 1}, world.Plains),
		world.NewTile(hex.Axial{Q: 1, R: 1}, world.Plains),
	}

	l := NewLayout(tiles, 1, 1)

	tests := []struct {
		id   string
		x, y int
	}{
		{"0,0", 1, 1},
		{"1,0", 5, 1},
		{"0,1", 3, 2},
		{"1,1", 7, 2},
	}

	for _, tt := range tests {
		x, y, ok := l.Position(tt.id)
		if !ok || x != tt.x || y != tt.y {
			t.Errorf("Position(%s) = (%d,%d,%v), want (%d,%d)", tt.id, x, y, ok, tt.x, tt.y)
		}
	}

	if l.Width() != 9 || l.Height() != 2 {
		t.Errorf("Size = %dx%d, want 9x2", l.Width(), l.Height())
	}
}

func TestLayoutTileAt(t *testing.T) {
	tiles := []world.Tile{
		world.NewTile(hex.Axial{Q: -1, R: 0}, world.Plains),
		world.NewTile(hex.Axial{Q: 0, R: 0}, world.Plains),
	}

	l := NewLayout(tiles, 0, 0)

	tests := []struct {
		x, y int
		id   string
		ok   bool
	}{
		{0, 0, "-1,0", true},
		{2, 0, "-1,0", true},
		{3, 0, "", false},
		{4, 0, "0,0", true},
		{6, 0, "0,0", true},
		{4, 1, "", false},
	}

	for _, tt := range tests {
		id, ok := l.TileAt(tt.x, tt.y)
		if id != tt.id || ok != tt.ok {
			t.Errorf("TileAt(%d,%d) = %q/%v, want %q/%v", tt.x, tt.y, id, ok, tt.id, tt.ok)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	l := NewLayout(nil, 1, 1)
	if l.Width() != 0 || l.Height() != 0 {
		t.Errorf("Empty layout size = %dx%d", l.Width(), l.Height())
	}
	if _, ok := l.TileAt(1, 1); ok {
		t.Error("Empty layout should not hit any tile")
	}
}
