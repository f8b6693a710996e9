package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/hexwars/internal/world"
)

// BuildingDef defines a purchasable building loaded from JSON.
type BuildingDef struct {
	ID          string `json:"id"`          // Matches world.Building names (e.g., "wall")
	Name        string `json:"name"`        // Display name (e.g., "Wall")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "W")
	Price       int    `json:"price"`       // Gold cost
	Description string `json:"description"` // Shown in the tile detail panel
}

// Kind returns the world.Building this definition describes.
func (b *BuildingDef) Kind() (world.Building, error) {
	return world.ParseBuilding(b.ID)
}

// GlyphRune returns the glyph as a rune for rendering.
func (b *BuildingDef) GlyphRune() rune {
	if len(b.Glyph) == 0 {
		return '?'
	}
	return rune(b.Glyph[0])
}

// BuildingsFile represents the structure of buildings.json.
type BuildingsFile struct {
	Buildings []BuildingDef `json:"buildings"`
}

// LoadBuildings loads building definitions from the embedded buildings.json file.
func LoadBuildings() ([]BuildingDef, error) {
	file, err := Load[BuildingsFile]("buildings.json")
	if err != nil {
		return nil, err
	}
	return file.Buildings, nil
}

// BuildingRegistry holds loaded building definitions keyed by kind.
type BuildingRegistry struct {
	byKind map[world.Building]*BuildingDef
	all    []BuildingDef
}

// NewBuildingRegistry creates a registry from loaded building definitions.
// Definitions with unknown ids, the "none" id or a negative price are rejected.
func NewBuildingRegistry(buildings []BuildingDef) (*BuildingRegistry, error) {
	registry := &BuildingRegistry{
		byKind: make(map[world.Building]*BuildingDef),
		all:    buildings,
	}
	for i := range buildings {
		kind, err := buildings[i].Kind()
		if err != nil {
			return nil, fmt.Errorf("building %d: %w", i, err)
		}
		if kind == world.NoBuilding {
			return nil, fmt.Errorf("building %d: %q is not purchasable", i, buildings[i].ID)
		}
		if buildings[i].Price < 0 {
			return nil, fmt.Errorf("building %s: negative price %d", buildings[i].ID, buildings[i].Price)
		}
		registry.byKind[kind] = &buildings[i]
	}
	return registry, nil
}

// LoadBuildingRegistry loads and creates a registry from the embedded buildings.json.
func LoadBuildingRegistry() (*BuildingRegistry, error) {
	buildings, err := LoadBuildings()
	if err != nil {
		return nil, err
	}
	if len(buildings) == 0 {
		return nil, errors.New("no buildings loaded from buildings.json")
	}
	return NewBuildingRegistry(buildings)
}

// MustLoadBuildingRegistry loads a registry, panicking on error.
func MustLoadBuildingRegistry() *BuildingRegistry {
	registry, err := LoadBuildingRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the definition for a building kind, or nil if unknown.
func (r *BuildingRegistry) Get(kind world.Building) *BuildingDef {
	return r.byKind[kind]
}

// Price returns the gold cost of a building kind.
func (r *BuildingRegistry) Price(kind world.Building) (int, bool) {
	def := r.byKind[kind]
	if def == nil {
		return 0, false
	}
	return def.Price, true
}

// All returns all building definitions in file order.
func (r *BuildingRegistry) All() []BuildingDef {
	return r.all
}

// Count returns the number of building kinds in the registry.
func (r *BuildingRegistry) Count() int {
	return len(r.all)
}
