package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/samdwyer/hexwars/internal/gamedata"
	"github.com/samdwyer/hexwars/internal/world"
)

// MaxDimension bounds the board's columns and rows.
const MaxDimension = 64

// Setup is the only configuration a new game accepts. Out-of-range values
// are clamped, never rejected.
type Setup struct {
	Cols           int
	Rows           int
	TerrainWeights world.TerrainWeights
	Players        []world.PlayerID
	Shape          world.Shape
	// Choices limits what world.ShapeRandom may pick.
	Choices []world.Shape
}

// normalize clamps the setup to playable values.
// Players keep ids 1..4 only, deduplicated, at most four; none means [1, 2].
func (s Setup) normalize() Setup {
	s.Cols = min(max(s.Cols, 1), MaxDimension)
	s.Rows = min(max(s.Rows, 1), MaxDimension)

	if s.TerrainWeights.Total() <= 0 {
		s.TerrainWeights = world.DefaultTerrainWeights()
	}

	seen := make(map[world.PlayerID]bool)
	players := make([]world.PlayerID, 0, world.MaxPlayers)
	for _, p := range s.Players {
		if !p.Valid() || seen[p] {
			continue
		}
		seen[p] = true
		players = append(players, p)
		if len(players) == world.MaxPlayers {
			break
		}
	}
	if len(players) == 0 {
		players = []world.PlayerID{1, 2}
	}
	s.Players = players

	return s
}

// SeatPlayers returns player ids 1..n, clamped to 1..MaxPlayers.
func SeatPlayers(n int) []world.PlayerID {
	n = min(max(n, 1), world.MaxPlayers)
	players := make([]world.PlayerID, n)
	for i := range players {
		players[i] = world.PlayerID(i + 1)
	}
	return players
}

// SetupFromPreset builds a Setup from a map preset. A shape other than
// world.ShapeRandom overrides the preset's own choices.
func SetupFromPreset(p *gamedata.MapPreset, weights world.TerrainWeights, players []world.PlayerID, shape world.Shape) Setup {
	s := Setup{
		Cols:           p.Cols,
		Rows:           p.Rows,
		TerrainWeights: weights,
		Players:        players,
		Shape:          shape,
	}
	if shape == world.ShapeRandom {
		s.Choices = p.ShapeChoices()
	}
	return s
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the randomness source used for map generation.
func WithRand(rng world.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed seeds the randomness source. A seed of 0 uses the current time.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithBuildings sets the building catalog used for prices.
func WithBuildings(registry *gamedata.BuildingRegistry) Option {
	return func(g *Game) {
		g.buildings = registry
	}
}
