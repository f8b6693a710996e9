// Package world provides the hex board data model and map generation.
package world

import (
	"fmt"

	"github.com/samdwyer/hexwars/internal/hex"
)

// PlayerID identifies a player. Neutral marks an unowned tile.
type PlayerID int

const (
	// Neutral is the owner of tiles nobody controls.
	Neutral PlayerID = 0
	// MaxPlayers is the largest number of players a board supports.
	MaxPlayers = 4
)

// Valid returns true for ids 1..MaxPlayers.
func (p PlayerID) Valid() bool {
	return p >= 1 && p <= MaxPlayers
}

// Terrain is the ground type of a tile.
type Terrain int

const (
	// Plains grow fastest and offer no defensive bonus.
	Plains Terrain = iota
	// Mountain doubles defender resistance.
	Mountain
	// Desert triples defender resistance and grows slowest.
	Desert
)

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case Plains:
		return "plains"
	case Mountain:
		return "mountain"
	case Desert:
		return "desert"
	default:
		return "unknown"
	}
}

// ParseTerrain converts a terrain name back to a Terrain.
func ParseTerrain(s string) (Terrain, error) {
	switch s {
	case "plains", "PLAINS":
		return Plains, nil
	case "mountain", "MOUNTAIN":
		return Mountain, nil
	case "desert", "DESERT":
		return Desert, nil
	default:
		return Plains, fmt.Errorf("unknown terrain %q", s)
	}
}

// Building is a one-time economic upgrade on a tile.
type Building int

const (
	// NoBuilding means the tile has not been built on.
	NoBuilding Building = iota
	Airport
	Hotel
	// Wall doubles the tile's resistance.
	Wall
)

// String returns the building name.
func (b Building) String() string {
	switch b {
	case NoBuilding:
		return "none"
	case Airport:
		return "airport"
	case Hotel:
		return "hotel"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// ParseBuilding converts a building name back to a Building.
func ParseBuilding(s string) (Building, error) {
	switch s {
	case "none", "":
		return NoBuilding, nil
	case "airport":
		return Airport, nil
	case "hotel":
		return Hotel, nil
	case "wall":
		return Wall, nil
	default:
		return NoBuilding, fmt.Errorf("unknown building %q", s)
	}
}

// Tile is a single cell of the board.
type Tile struct {
	ID            string    `json:"id"`
	Axial         hex.Axial `json:"axial"`
	Terrain       Terrain   `json:"terrain"`
	Owner         PlayerID  `json:"owner"`
	Power         int       `json:"power"`
	Population    int       `json:"population"`
	Building      Building  `json:"building"`
	HasActed      bool      `json:"hasActed"`
	GrowthCounter int       `json:"growthCounter"`
}

// TileID derives the stable tile identifier from its coordinate.
func TileID(a hex.Axial) string {
	return a.String()
}

// NewTile creates a neutral, empty tile at the given coordinate.
func NewTile(a hex.Axial, terrain Terrain) Tile {
	return Tile{
		ID:      TileID(a),
		Axial:   a,
		Terrain: terrain,
	}
}

// IsNeutral returns true if no player owns the tile.
func (t Tile) IsNeutral() bool {
	return t.Owner == Neutral
}

// HasBuilding returns true if anything has been built on the tile.
func (t Tile) HasBuilding() bool {
	return t.Building != NoBuilding
}
