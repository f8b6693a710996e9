package gamedata

import (
	"github.com/samdwyer/hexwars/internal/world"
)

// DefaultPresetID is the map size used when none is configured.
const DefaultPresetID = "small"

// MapPreset defines a named board size loaded from JSON.
type MapPreset struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Cols   int      `json:"cols"`
	Rows   int      `json:"rows"`
	Shapes []string `json:"shapes"` // Silhouettes the generator may pick from
}

// ShapeChoices returns the preset's shapes. Unknown names are skipped.
func (p *MapPreset) ShapeChoices() []world.Shape {
	var shapes []world.Shape
	for _, name := range p.Shapes {
		s, err := world.ParseShape(name)
		if err != nil || s == world.ShapeRandom {
			continue
		}
		shapes = append(shapes, s)
	}
	return shapes
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets        []MapPreset          `json:"presets"`
	TerrainWeights world.TerrainWeights `json:"terrainWeights"`
}

// PresetRegistry holds map presets and the default terrain mix.
type PresetRegistry struct {
	presets []MapPreset
	weights world.TerrainWeights
}

// LoadPresetRegistry loads presets from the embedded presets.json.
func LoadPresetRegistry() (*PresetRegistry, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	weights := file.TerrainWeights
	if weights.Total() <= 0 {
		weights = world.DefaultTerrainWeights()
	}
	return &PresetRegistry{presets: file.Presets, weights: weights}, nil
}

// MustLoadPresetRegistry loads presets, panicking on error.
func MustLoadPresetRegistry() *PresetRegistry {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset with the given id, or nil if not found.
func (r *PresetRegistry) GetByID(id string) *MapPreset {
	for i := range r.presets {
		if r.presets[i].ID == id {
			return &r.presets[i]
		}
	}
	return nil
}

// GetOrDefault returns the preset with the given id, falling back to the default preset.
func (r *PresetRegistry) GetOrDefault(id string) *MapPreset {
	if p := r.GetByID(id); p != nil {
		return p
	}
	return r.GetByID(DefaultPresetID)
}

// TerrainWeights returns the default terrain mix.
func (r *PresetRegistry) TerrainWeights() world.TerrainWeights {
	return r.weights
}

// All returns every preset.
func (r *PresetRegistry) All() []MapPreset {
	return r.presets
}
