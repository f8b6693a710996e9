package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexwars/internal/game"
	"github.com/samdwyer/hexwars/internal/gamedata"
	"github.com/samdwyer/hexwars/internal/hex"
	"github.com/samdwyer/hexwars/internal/telemetry"
	"github.com/samdwyer/hexwars/internal/world"
)

// Client drives a game from terminal input. Every change to the game,
// timer expiry included, happens on the goroutine running Run.
type Client struct {
	screen   *Screen
	renderer *Renderer
	game     *game.Game
	timer    *TurnTimer
	setup    game.Setup
	logger   *slog.Logger

	layout    *Layout
	cursor    hex.Axial
	message   string
	mouseDown bool
	running   bool
}

// NewClient creates a client that starts games with setup.
func NewClient(screen *Screen, g *game.Game, setup game.Setup, palette *gamedata.Palette, logger *slog.Logger) *Client {
	return &Client{
		screen:   screen,
		renderer: NewRenderer(screen, palette, g.Buildings()),
		game:     g,
		timer:    NewTurnTimer(screen.PostEvent),
		setup:    setup,
		logger:   logger,
		running:  true,
	}
}

// Run executes the main loop until the player quits.
func (c *Client) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.tick(ctx)

	c.newGame(ctx)

	for c.running {
		c.syncTimer()
		c.render()

		ev := c.screen.PollEvent()
		if ev == nil {
			break
		}
		c.handleEvent(ctx, ev)
	}

	c.timer.Stop()
	c.screen.Close()
	return nil
}

// tick posts a redraw every second so the countdown stays current.
func (c *Client) tick(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = c.screen.PostEvent(tcell.NewEventInterrupt(redraw{}))
		}
	}
}

func (c *Client) newGame(ctx context.Context) {
	tracer := telemetry.Tracer("ui")
	ctx, span := tracer.Start(ctx, "ui.new_game")
	defer span.End()

	c.game.Start(ctx, c.setup)
	s := c.game.State()
	c.layout = NewLayout(s.Tiles, 1, 1)
	c.message = ""
	c.mouseDown = false

	// Start on the current player's spawn.
	c.cursor = hex.Axial{}
	if len(s.Tiles) > 0 {
		c.cursor = s.Tiles[0].Axial
	}
	for _, t := range s.Tiles {
		if t.Owner == s.Current {
			c.cursor = t.Axial
			break
		}
	}

	span.SetAttributes(
		attribute.String("game.id", s.ID.String()),
		attribute.Int("ui.board_width", c.layout.Width()),
		attribute.Int("ui.board_height", c.layout.Height()),
	)
}

// syncTimer keeps the countdown aligned with the game's current turn.
func (c *Client) syncTimer() {
	switch c.game.Phase() {
	case game.PhaseSelecting, game.PhaseArmed:
		c.timer.Sync(c.game.Stamp(), c.game.CurrentStrikes())
	default:
		c.timer.Stop()
	}
}

func (c *Client) render() {
	c.renderer.Render(View{
		State:     c.game.State(),
		Layout:    c.layout,
		Cursor:    world.TileID(c.cursor),
		Remaining: c.timer.Remaining(),
		Message:   c.message,
	})
}

// handleEvent processes a single event.
func (c *Client) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		c.handleMouseEvent(ctx, ev)
	case *tcell.EventResize:
		if c.screen != nil {
			c.screen.Sync()
		}
	case *tcell.EventInterrupt:
		c.handleInterrupt(ctx, ev)
	}
}

func (c *Client) handleInterrupt(ctx context.Context, ev *tcell.EventInterrupt) {
	expired, ok := ev.Data().(turnExpired)
	if !ok {
		return
	}
	player := expired.stamp.Player
	if c.game.ExpireTurn(ctx, expired.stamp) {
		c.message = fmt.Sprintf("Player %d ran out of time", player)
		c.logger.Info("turn expired", "player", int(player), "seq", expired.stamp.Seq)
		c.afterAction()
	}
}

// handleKeyEvent processes keyboard input.
func (c *Client) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.running = false

	case tcell.KeyUp:
		c.moveCursor(hex.Axial{Q: 0, R: -1})
	case tcell.KeyDown:
		c.moveCursor(hex.Axial{Q: 0, R: 1})
	case tcell.KeyLeft:
		c.moveCursor(hex.Axial{Q: -1, R: 0})
	case tcell.KeyRight:
		c.moveCursor(hex.Axial{Q: 1, R: 0})

	case tcell.KeyEnter:
		c.act(ctx)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			c.running = false
		case 'h':
			c.moveCursor(hex.Axial{Q: -1, R: 0})
		case 'l':
			c.moveCursor(hex.Axial{Q: 1, R: 0})
		case 'y':
			c.moveCursor(hex.Axial{Q: 0, R: -1})
		case 'u':
			c.moveCursor(hex.Axial{Q: 1, R: -1})
		case 'b':
			c.moveCursor(hex.Axial{Q: -1, R: 1})
		case 'n':
			c.moveCursor(hex.Axial{Q: 0, R: 1})
		case ' ':
			c.act(ctx)
		case 'e', 'E':
			c.endTurn(ctx)
		case 'a':
			c.build(ctx, world.Airport)
		case 'o':
			c.build(ctx, world.Hotel)
		case 'w':
			c.build(ctx, world.Wall)
		case 'r', 'R':
			c.newGame(ctx)
		}
	}
}

// handleMouseEvent acts on the clicked tile when the left button goes down.
func (c *Client) handleMouseEvent(ctx context.Context, ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	defer func() { c.mouseDown = pressed }()
	if !pressed || c.mouseDown || c.layout == nil {
		return
	}

	x, y := ev.Position()
	id, ok := c.layout.TileAt(x, y)
	if !ok {
		return
	}
	if t, ok := c.game.Tile(id); ok {
		c.cursor = t.Axial
		c.act(ctx)
	}
}

// moveCursor steps the cursor in dir, skipping over gaps in the board.
func (c *Client) moveCursor(dir hex.Axial) {
	s := c.game.State()
	if s == nil {
		return
	}
	limit := s.Cols + s.Rows
	next := c.cursor
	for i := 0; i < limit; i++ {
		next = next.Add(dir)
		if _, ok := s.Tile(world.TileID(next)); ok {
			c.cursor = next
			return
		}
	}
}

func (c *Client) act(ctx context.Context) {
	c.message = ""
	c.game.Act(ctx, world.TileID(c.cursor))
	c.afterAction()
}

func (c *Client) endTurn(ctx context.Context) {
	c.message = ""
	if c.game.EndTurn(ctx, false) {
		c.afterAction()
	}
}

func (c *Client) build(ctx context.Context, kind world.Building) {
	id := world.TileID(c.cursor)
	if c.game.Build(ctx, id, kind) {
		c.message = fmt.Sprintf("Built %s on %s", kind, id)
		return
	}

	price, _ := c.game.Buildings().Price(kind)
	t, ok := c.game.Tile(id)
	switch {
	case !ok || t.Owner != c.game.Current():
		c.message = "You can only build on your own tiles"
	case t.HasBuilding():
		c.message = fmt.Sprintf("%s already has a %s", id, t.Building)
	case c.game.Gold(c.game.Current()) < price:
		c.message = fmt.Sprintf("A %s costs %s gold", kind, humanize.Comma(int64(price)))
	default:
		c.message = "Cannot build right now"
	}
}

// afterAction reports a finished game.
func (c *Client) afterAction() {
	if winner, ok := c.game.Winner(); ok {
		c.message = fmt.Sprintf("Player %d wins! Press r for a new game", winner)
		c.logger.Info("game over", "winner", int(winner))
	}
}
