package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexwars/internal/world"
)

func TestLoadBuildings(t *testing.T) {
	buildings, err := LoadBuildings()
	if err != nil {
		t.Fatalf("Failed to load buildings: %v", err)
	}

	if len(buildings) != 3 {
		t.Errorf("Expected 3 buildings, got %d", len(buildings))
	}
}

func TestBuildingRegistryPrices(t *testing.T) {
	registry, err := LoadBuildingRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	tests := []struct {
		kind  world.Building
		price int
	}{
		{world.Airport, 50},
		{world.Hotel, 50},
		{world.Wall, 25},
	}

	for _, tt := range tests {
		price, ok := registry.Price(tt.kind)
		if !ok {
			t.Errorf("Price(%v) not found", tt.kind)
			continue
		}
		if price != tt.price {
			t.Errorf("Price(%v) = %d, want %d", tt.kind, price, tt.price)
		}
	}

	if _, ok := registry.Price(world.NoBuilding); ok {
		t.Error("NoBuilding should not have a price")
	}
	if def := registry.Get(world.Wall); def == nil || def.GlyphRune() != 'W' {
		t.Errorf("Wall definition = %+v, want glyph W", def)
	}
}

func TestNewBuildingRegistryRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		defs []BuildingDef
	}{
		{"unknown id", []BuildingDef{{ID: "castle", Price: 10}}},
		{"none id", []BuildingDef{{ID: "none", Price: 10}}},
		{"negative price", []BuildingDef{{ID: "wall", Price: -1}}},
	}

	for _, tt := range tests {
		if _, err := NewBuildingRegistry(tt.defs); err == nil {
			t.Errorf("NewBuildingRegistry(%s) expected error", tt.name)
		}
	}
}

func TestPresetRegistry(t *testing.T) {
	registry := MustLoadPresetRegistry()

	tests := []struct {
		id     string
		cols   int
		rows   int
		shapes []world.Shape
	}{
		{"small", 11, 9, []world.Shape{world.ShapeCircle}},
		{"medium", 15, 13, []world.Shape{world.ShapeCircle, world.ShapeSemicircle}},
		{"large", 19, 17, []world.Shape{world.ShapeCircle, world.ShapeThin}},
	}

	for _, tt := range tests {
		p := registry.GetByID(tt.id)
		if p == nil {
			t.Errorf("Preset %q not found", tt.id)
			continue
		}
		if p.Cols != tt.cols || p.Rows != tt.rows {
			t.Errorf("Preset %q size = %dx%d, want %dx%d", tt.id, p.Cols, p.Rows, tt.cols, tt.rows)
		}
		shapes := p.ShapeChoices()
		if len(shapes) != len(tt.shapes) {
			t.Errorf("Preset %q shapes = %v, want %v", tt.id, shapes, tt.shapes)
			continue
		}
		for i := range shapes {
			if shapes[i] != tt.shapes[i] {
				t.Errorf("Preset %q shape %d = %v, want %v", tt.id, i, shapes[i], tt.shapes[i])
			}
		}
	}

	if p := registry.GetOrDefault("huge"); p == nil || p.ID != DefaultPresetID {
		t.Errorf("GetOrDefault(huge) = %+v, want the default preset", p)
	}
	if w := registry.TerrainWeights(); w != world.DefaultTerrainWeights() {
		t.Errorf("TerrainWeights() = %+v, want defaults", w)
	}
}

func TestPalette(t *testing.T) {
	palette := MustLoadPalette()

	if got := palette.Color(1); got != MustParseHexColor("#4AA8FF") {
		t.Errorf("Color(1) = %v, want #4AA8FF", got)
	}
	if palette.Color(world.Neutral) != palette.Color(9) {
		t.Error("Unknown players should use the neutral color")
	}
	if got := palette.Name(2); got != "Red" {
		t.Errorf("Name(2) = %q, want Red", got)
	}
	if got := palette.Name(world.Neutral); got != "Neutral" {
		t.Errorf("Name(neutral) = %q, want Neutral", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#abc", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"#FF00", false},
		{"#GGGGGG", false},
		{"", false},
		{"#FF00000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) expected error", tt.input)
		}
	}

	if got := MustParseHexColor("#F00"); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("MustParseHexColor(#F00) = %v, want red", got)
	}
}
