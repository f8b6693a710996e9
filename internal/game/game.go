package game

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexwars/internal/gamedata"
	"github.com/samdwyer/hexwars/internal/rules"
	"github.com/samdwyer/hexwars/internal/telemetry"
	"github.com/samdwyer/hexwars/internal/world"
)

// Game owns the authoritative snapshot and applies actions to it.
// It is not safe for concurrent use; a single event loop drives it.
type Game struct {
	rng       world.Rand
	logger    *slog.Logger
	buildings *gamedata.BuildingRegistry
	state     *State
}

// New creates a controller with no game in progress.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.buildings == nil {
		g.buildings = gamedata.MustLoadBuildingRegistry()
	}
	return g
}

// Start generates a new board and begins turn 1, replacing any game in progress.
func (g *Game) Start(ctx context.Context, setup Setup) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.start")
	defer span.End()

	setup = setup.normalize()
	board := world.Generate(ctx, world.GenConfig{
		Cols:           setup.Cols,
		Rows:           setup.Rows,
		TerrainWeights: setup.TerrainWeights,
		Players:        setup.Players,
		Shape:          setup.Shape,
		Choices:        setup.Choices,
	}, g.rng)

	g.state = newState(board, setup.Players)

	span.SetAttributes(
		attribute.String("game.id", g.state.ID.String()),
		attribute.Int("game.players", len(setup.Players)),
		attribute.Int("game.tiles", len(board.Tiles)),
		attribute.String("game.shape", board.Shape.String()),
	)
	g.logger.Info("game started",
		"game_id", g.state.ID,
		"cols", board.Cols,
		"rows", board.Rows,
		"shape", board.Shape.String(),
		"tiles", len(board.Tiles),
		"players", len(setup.Players),
		"spawns", len(board.Spawns),
	)
}

// Reset abandons the current game and returns to the idle phase.
func (g *Game) Reset() {
	if g.state != nil {
		g.logger.Info("game reset", "game_id", g.state.ID)
	}
	g.state = nil
}

// apply runs fn against a copy of the snapshot and commits the copy only
// when fn reports a change.
func (g *Game) apply(fn func(s *State) bool) bool {
	if g.state == nil {
		return false
	}
	next := g.state.Clone()
	if !fn(next) {
		return false
	}
	g.state = next
	return true
}

// Select marks one of the current player's tiles as the acting tile.
func (g *Game) Select(ctx context.Context, id string) bool {
	return g.apply(func(s *State) bool {
		if s.Finished() {
			return false
		}
		return selectTile(s, id)
	})
}

func selectTile(s *State, id string) bool {
	t, ok := s.Tile(id)
	if !ok || !rules.CanSelect(t, s.Current) || s.Selected == id {
		return false
	}
	s.Selected = id
	return true
}

func deselect(s *State) bool {
	if s.Selected == "" {
		return false
	}
	s.Selected = ""
	return true
}

// Act applies the selected tile to a target: deselect, reinforce, attack,
// or switch selection. With nothing selected it behaves like Select.
func (g *Game) Act(ctx context.Context, id string) bool {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.act")
	defer span.End()

	outcome := rules.OutcomeNone
	changed := g.apply(func(s *State) bool {
		if s.Finished() {
			return false
		}
		target, ok := s.Tile(id)
		if !ok {
			return false
		}
		if s.Selected == "" {
			return selectTile(s, id)
		}
		from, ok := s.Tile(s.Selected)
		if !ok {
			return deselect(s)
		}

		switch {
		case target.ID == from.ID:
			return deselect(s)

		case target.Owner == s.Current && !from.HasActed:
			res := rules.ResolveAttack(from, target)
			if res.Outcome == rules.OutcomeNone {
				return deselect(s)
			}
			res.From.HasActed = true
			s.put(res.From)
			s.put(res.To)
			outcome = res.Outcome
			deselect(s)
			return true

		case rules.CanAttack(from, target) && !from.HasActed:
			res, ok := rules.Overwhelm(from, target)
			if !ok {
				res = rules.ResolveAttack(from, target)
				res.From.HasActed = true
				if res.Outcome.Captured() {
					res.To.HasActed = true
				}
			}
			s.put(res.From)
			s.put(res.To)
			outcome = res.Outcome
			deselect(s)
			g.logAttack(s, res, target.Owner)
			g.checkWinner(s)
			return true

		default:
			if rules.CanSelect(target, s.Current) {
				return selectTile(s, id)
			}
			return deselect(s)
		}
	})

	if g.state != nil {
		span.SetAttributes(attribute.String("game.id", g.state.ID.String()))
	}
	span.SetAttributes(
		attribute.String("act.tile", id),
		attribute.String("act.outcome", outcome.String()),
		attribute.Bool("act.changed", changed),
	)
	return changed
}

func (g *Game) logAttack(s *State, res rules.Result, defender world.PlayerID) {
	if !res.Outcome.Captured() {
		g.logger.Debug("attack",
			"game_id", s.ID,
			"player", int(s.Current),
			"from", res.From.ID,
			"to", res.To.ID,
			"outcome", res.Outcome.String(),
		)
		return
	}
	g.logger.Info("tile captured",
		"game_id", s.ID,
		"player", int(s.Current),
		"defender", int(defender),
		"from", res.From.ID,
		"to", res.To.ID,
		"outcome", res.Outcome.String(),
		"power", res.To.Power,
	)
}

func (g *Game) checkWinner(s *State) {
	winner, ok := rules.CheckWinner(s.Tiles)
	if !ok {
		return
	}
	s.Winner = winner
	s.Selected = ""
	g.logger.Info("winner declared", "game_id", s.ID, "winner", int(winner), "turn", s.Turn)
}

// EndTurn finishes the current player's turn. A forced end adds a strike,
// and the third consecutive strike forfeits the game to the first other
// player in turn order who still owns a tile. A voluntary end clears the
// strikes. Otherwise tiles grow, everyone earns income and play passes on.
//
// EndTurn does not check which turn it is ending. Turn timers must call
// ExpireTurn with their stamp instead of EndTurn(ctx, true), so a late or
// repeated expiry cannot strike or skip a later turn.
func (g *Game) EndTurn(ctx context.Context, forced bool) bool {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.end_turn")
	defer span.End()

	changed := g.apply(func(s *State) bool {
		if s.Finished() {
			return false
		}
		span.SetAttributes(
			attribute.String("game.id", s.ID.String()),
			attribute.Int("turn.player", int(s.Current)),
			attribute.Bool("turn.forced", forced),
		)

		p := s.Player(s.Current)
		if forced {
			strikes := p.Strike()
			g.logger.Info("turn timed out", "game_id", s.ID, "player", int(s.Current), "strikes", strikes)
			if p.Forfeited() {
				if winner := s.opponentOf(s.Current); winner != world.Neutral {
					s.Winner = winner
					s.Selected = ""
					g.logger.Info("player forfeited",
						"game_id", s.ID,
						"player", int(s.Current),
						"winner", int(winner),
					)
					return true
				}
			}
		} else {
			p.ClearStrikes()
		}

		for i := range s.Tiles {
			s.Tiles[i].HasActed = false
		}
		s.Tiles = rules.EndTurnGrowth(s.Tiles)
		for _, pid := range s.Order {
			s.Players[pid].Credit(rules.Income(s.Tiles, pid))
		}

		s.Current = s.next(s.Current)
		if s.Current == s.Order[0] {
			s.Turn++
		}
		s.Selected = ""
		s.Seq++

		g.logger.Debug("turn started", "game_id", s.ID, "player", int(s.Current), "turn", s.Turn)
		return true
	})

	span.SetAttributes(attribute.Bool("turn.changed", changed))
	return changed
}

// ExpireTurn ends the turn as forced, but only if stamp still identifies the
// current turn of the current game. Late or repeated expiries, and expiries
// from a game that has since been restarted, are ignored.
func (g *Game) ExpireTurn(ctx context.Context, stamp TurnStamp) bool {
	if g.state == nil || g.state.Stamp() != stamp {
		return false
	}
	return g.EndTurn(ctx, true)
}

// Build buys a building for one of the current player's tiles.
func (g *Game) Build(ctx context.Context, id string, kind world.Building) bool {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.build")
	defer span.End()

	price, priced := g.buildings.Price(kind)
	changed := g.apply(func(s *State) bool {
		if s.Finished() || !priced {
			return false
		}
		t, ok := s.Tile(id)
		if !ok || t.Owner != s.Current || t.HasBuilding() {
			return false
		}
		if !s.Player(s.Current).Debit(price) {
			return false
		}
		t.Building = kind
		s.put(t)
		g.logger.Info("building bought",
			"game_id", s.ID,
			"player", int(s.Current),
			"tile", id,
			"building", kind.String(),
			"price", price,
		)
		return true
	})

	if g.state != nil {
		span.SetAttributes(attribute.String("game.id", g.state.ID.String()))
	}
	span.SetAttributes(
		attribute.String("build.tile", id),
		attribute.String("build.kind", kind.String()),
		attribute.Bool("build.changed", changed),
	)
	return changed
}

// State returns a copy of the current snapshot, or nil when idle.
func (g *Game) State() *State {
	if g.state == nil {
		return nil
	}
	return g.state.Clone()
}

// Phase returns the state-machine position.
func (g *Game) Phase() Phase {
	if g.state == nil {
		return PhaseIdle
	}
	return g.state.Phase()
}

// Tile returns a tile by id.
func (g *Game) Tile(id string) (world.Tile, bool) {
	if g.state == nil {
		return world.Tile{}, false
	}
	return g.state.Tile(id)
}

// Current returns the player whose turn it is.
func (g *Game) Current() world.PlayerID {
	if g.state == nil {
		return world.Neutral
	}
	return g.state.Current
}

// Selected returns the selected tile id, or "".
func (g *Game) Selected() string {
	if g.state == nil {
		return ""
	}
	return g.state.Selected
}

// CurrentStrikes returns the current player's consecutive timeout count.
func (g *Game) CurrentStrikes() int {
	if g.state == nil {
		return 0
	}
	return g.state.Player(g.state.Current).Strikes
}

// Gold returns a player's treasury.
func (g *Game) Gold(p world.PlayerID) int {
	if g.state == nil {
		return 0
	}
	if pl := g.state.Player(p); pl != nil {
		return pl.Gold
	}
	return 0
}

// Winner returns the winner once the game is finished.
func (g *Game) Winner() (world.PlayerID, bool) {
	if g.state == nil || !g.state.Finished() {
		return world.Neutral, false
	}
	return g.state.Winner, true
}

// Stamp identifies the current turn for the turn timer.
func (g *Game) Stamp() TurnStamp {
	if g.state == nil {
		return TurnStamp{}
	}
	return g.state.Stamp()
}

// Buildings returns the building catalog in use.
func (g *Game) Buildings() *gamedata.BuildingRegistry {
	return g.buildings
}
