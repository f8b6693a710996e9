package gamedata

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexwars/internal/world"
)

// PlayerColor defines a player's display colors loaded from JSON.
type PlayerColor struct {
	ID    world.PlayerID `json:"id"`
	Name  string         `json:"name"`
	Color string         `json:"color"` // Hex color for owned tiles
	Light string         `json:"light"` // Hex color for highlights
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Neutral string        `json:"neutral"`
	Players []PlayerColor `json:"players"`
}

// Palette resolves player ids to terminal colors.
type Palette struct {
	neutral tcell.Color
	players map[world.PlayerID]PlayerColor
}

// LoadPalette loads the player palette from the embedded palette.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("palette.json")
	if err != nil {
		return nil, err
	}
	neutral, err := ParseHexColor(file.Neutral)
	if err != nil {
		return nil, err
	}
	p := &Palette{
		neutral: neutral,
		players: make(map[world.PlayerID]PlayerColor, len(file.Players)),
	}
	for _, pc := range file.Players {
		if _, err := ParseHexColor(pc.Color); err != nil {
			return nil, err
		}
		p.players[pc.ID] = pc
	}
	return p, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Color returns the owner color for a player; neutral or unknown ids get the neutral color.
func (p *Palette) Color(id world.PlayerID) tcell.Color {
	pc, ok := p.players[id]
	if !ok {
		return p.neutral
	}
	return MustParseHexColor(pc.Color)
}

// Light returns the highlight color for a player.
func (p *Palette) Light(id world.PlayerID) tcell.Color {
	pc, ok := p.players[id]
	if !ok || pc.Light == "" {
		return p.Color(id)
	}
	color, err := ParseHexColor(pc.Light)
	if err != nil {
		return p.Color(id)
	}
	return color
}

// Name returns the player's color name, or "Neutral".
func (p *Palette) Name(id world.PlayerID) string {
	pc, ok := p.players[id]
	if !ok {
		return "Neutral"
	}
	return pc.Name
}
