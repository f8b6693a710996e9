package ui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexwars/internal/entity"
	"github.com/samdwyer/hexwars/internal/game"
	"github.com/samdwyer/hexwars/internal/gamedata"
	"github.com/samdwyer/hexwars/internal/world"
)

// canvas is the part of Screen the renderer draws on.
type canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

// View is everything the renderer needs for one frame. The renderer only
// reads it.
type View struct {
	State     *game.State
	Layout    *Layout
	Cursor    string
	Remaining time.Duration
	Message   string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen    canvas
	palette   *gamedata.Palette
	buildings *gamedata.BuildingRegistry
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette, buildings *gamedata.BuildingRegistry) *Renderer {
	return &Renderer{screen: screen, palette: palette, buildings: buildings}
}

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// terrainBackground returns the background color for a terrain.
func terrainBackground(t world.Terrain) tcell.Color {
	switch t {
	case world.Mountain:
		return tcell.NewRGBColor(70, 70, 70)
	case world.Desert:
		return tcell.NewRGBColor(110, 90, 40)
	default:
		return tcell.NewRGBColor(30, 60, 30)
	}
}

// terrainMark is drawn in the glyph slot of a tile without a building.
func terrainMark(t world.Terrain) rune {
	switch t {
	case world.Mountain:
		return '^'
	case world.Desert:
		return '~'
	default:
		return ' '
	}
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	if v.State == nil || v.Layout == nil {
		r.drawText(1, 1, "HexWars", titleStyle)
		r.drawText(1, 3, "Press r to start a new game, q to quit.", textStyle)
		r.screen.Show()
		return
	}

	for _, t := range v.State.Tiles {
		r.drawTile(v, t)
	}

	panelX := v.Layout.Width() + 4
	y := r.drawHUD(v, panelX, 1)
	y = r.drawDetail(v, panelX, y+1)

	bottom := max(v.Layout.Height()+2, y+1)
	if v.Message != "" {
		r.drawText(1, bottom, v.Message, titleStyle)
	}
	r.drawText(1, bottom+1, "arrows/hyubn move  space act  e end turn  a/o/w build  r new  q quit", dimStyle)

	r.screen.Show()
}

func (r *Renderer) drawTile(v View, t world.Tile) {
	x, y, ok := v.Layout.Position(t.ID)
	if !ok {
		return
	}

	style := tcell.StyleDefault.
		Background(terrainBackground(t.Terrain)).
		Foreground(r.palette.Color(t.Owner))
	if t.Owner != world.Neutral {
		style = style.Bold(true)
	}
	if t.HasActed {
		style = style.Dim(true)
	}
	if t.ID == v.State.Selected {
		style = style.Reverse(true)
	}
	if t.ID == v.Cursor {
		style = style.Underline(true).Foreground(r.palette.Light(t.Owner))
	}

	glyph := terrainMark(t.Terrain)
	if def := r.buildings.Get(t.Building); def != nil {
		glyph = def.GlyphRune()
	}
	r.screen.SetContent(x, y, glyph, style)

	power := "++"
	if t.Power < 100 {
		power = fmt.Sprintf("%2d", t.Power)
	}
	r.drawText(x+1, y, power, style)
}

// drawHUD draws the turn summary and returns the next free row.
func (r *Renderer) drawHUD(v View, x, y int) int {
	s := v.State

	r.drawText(x, y, fmt.Sprintf("HexWars  turn %d", s.Turn), titleStyle)
	y += 2

	if s.Finished() {
		winStyle := tcell.StyleDefault.Foreground(r.palette.Color(s.Winner)).Bold(true)
		r.drawText(x, y, fmt.Sprintf("%s wins!", r.palette.Name(s.Winner)), winStyle)
		r.drawText(x, y+1, "Press r for a new game.", textStyle)
		y += 3
	} else {
		current := tcell.StyleDefault.Foreground(r.palette.Color(s.Current)).Bold(true)
		r.drawText(x, y, fmt.Sprintf("%s to move", r.palette.Name(s.Current)), current)
		strikes := 0
		if p := s.Player(s.Current); p != nil {
			strikes = p.Strikes
		}
		r.drawText(x, y+1, fmt.Sprintf("Time %s  strikes %d/%d", formatCountdown(v.Remaining), strikes, entity.ForfeitStrikes), textStyle)
		y += 3
	}

	for _, pid := range s.Order {
		p := s.Player(pid)
		if p == nil {
			continue
		}
		h := holdings(s.Tiles, pid)
		style := tcell.StyleDefault.Foreground(r.palette.Color(pid))
		line := fmt.Sprintf("%-7s %6s gold  %4s troops  %3d tiles  %3d%%",
			r.palette.Name(pid), humanize.Comma(int64(p.Gold)), humanize.Comma(int64(h.troops)), h.tiles, h.share)
		r.drawText(x, y, line, style)
		r.drawText(x+8, y+1, fmt.Sprintf("airports %d  hotels %d  walls %d", h.airports, h.hotels, h.walls), dimStyle)
		y += 2
	}
	return y
}

// drawDetail draws the panel for the tile under the cursor.
func (r *Renderer) drawDetail(v View, x, y int) int {
	t, ok := v.State.Tile(v.Cursor)
	if !ok {
		return y
	}

	building, about := t.Building.String(), ""
	if def := r.buildings.Get(t.Building); def != nil {
		building = fmt.Sprintf("%s (%s)", def.Name, humanize.Comma(int64(def.Price)))
		about = def.Description
	}
	acted := "no"
	if t.HasActed {
		acted = "yes"
	}

	lines := []string{
		fmt.Sprintf("Tile %s", t.ID),
		fmt.Sprintf("  Terrain   %s", t.Terrain),
		fmt.Sprintf("  Owner     %s", r.palette.Name(t.Owner)),
		fmt.Sprintf("  Power     %s", humanize.Comma(int64(t.Power))),
		fmt.Sprintf("  Building  %s", building),
		fmt.Sprintf("  Acted     %s", acted),
	}
	if about != "" {
		lines = append(lines, "  "+about)
	}
	for i, line := range lines {
		style := textStyle
		if i == 0 {
			style = titleStyle
		}
		r.drawText(x, y+i, line, style)
	}
	return y + len(lines)
}

// drawText writes s starting at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

// holding summarizes what one player owns.
type holding struct {
	tiles    int
	troops   int
	airports int
	hotels   int
	walls    int
	share    int // Percent of the board, rounded
}

func holdings(tiles []world.Tile, pid world.PlayerID) holding {
	var h holding
	for _, t := range tiles {
		if t.Owner != pid {
			continue
		}
		h.tiles++
		h.troops += t.Power
		switch t.Building {
		case world.Airport:
			h.airports++
		case world.Hotel:
			h.hotels++
		case world.Wall:
			h.walls++
		}
	}
	if n := len(tiles); n > 0 {
		h.share = (h.tiles*200 + n) / (2 * n)
	}
	return h
}

func formatCountdown(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
