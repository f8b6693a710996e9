package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hexwars/internal/hex"
	"github.com/samdwyer/hexwars/internal/telemetry"
)

const (
	// SpawnPower is the troop strength a player starts with on their spawn tile.
	SpawnPower = 8

	// sparseChance is the probability of keeping a cell in the discarded
	// half of a semicircle board.
	sparseChance = 0.15
)

// Rand is the source of randomness for map generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// TerrainWeights are relative sampling weights per terrain.
// They need not sum to 1.
type TerrainWeights struct {
	Plains   float64 `json:"PLAINS"`
	Mountain float64 `json:"MOUNTAIN"`
	Desert   float64 `json:"DESERT"`
}

// DefaultTerrainWeights returns the standard 60/20/20 mix.
func DefaultTerrainWeights() TerrainWeights {
	return TerrainWeights{Plains: 0.6, Mountain: 0.2, Desert: 0.2}
}

// Total returns the sum of the positive weights.
func (w TerrainWeights) Total() float64 {
	return max(w.Plains, 0) + max(w.Mountain, 0) + max(w.Desert, 0)
}

// GenConfig holds map generation parameters.
type GenConfig struct {
	Cols           int
	Rows           int
	TerrainWeights TerrainWeights
	Players        []PlayerID
	Shape          Shape
	// Choices restricts what ShapeRandom may pick. Empty means any shape.
	Choices []Shape
}

// Board is the result of map generation.
type Board struct {
	Cols     int
	Rows     int
	Shape    Shape
	Rotation int
	Tiles    []Tile
	// Spawns maps each placed player to its spawn tile id.
	Spawns map[PlayerID]string
}

// Generate builds a board silhouette, assigns terrain and places spawns.
// All randomness is drawn from rng, so a seeded source reproduces the layout.
func Generate(ctx context.Context, cfg GenConfig, rng Rand) *Board {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()

	// Fixed draw order: rotation, semicircle half, shape pick.
	rotation := rng.Intn(6)
	half := Half(rng.Intn(4))
	shape := cfg.Shape
	if shape == ShapeRandom {
		choices := cfg.Choices
		if len(choices) == 0 {
			choices = []Shape{ShapeCircle, ShapeSemicircle, ShapeThin}
		}
		shape = choices[rng.Intn(len(choices))]
	}

	s := silhouette{
		shape:    shape,
		half:     half,
		rotation: rotation,
		center:   hex.Axial{Q: cfg.Cols / 2, R: cfg.Rows / 2},
		radius:   float64(min(cfg.Cols, cfg.Rows))/2 - 1,
	}

	board := &Board{
		Cols:     cfg.Cols,
		Rows:     cfg.Rows,
		Shape:    shape,
		Rotation: rotation,
		Tiles:    make([]Tile, 0, cfg.Cols*cfg.Rows),
	}

	for r := 0; r < cfg.Rows; r++ {
		for q := 0; q < cfg.Cols; q++ {
			a := hex.Axial{Q: q, R: r}
			if !s.contains(a, rng) {
				continue
			}
			board.Tiles = append(board.Tiles, NewTile(a, PickTerrain(cfg.TerrainWeights, rng)))
		}
	}

	board.Spawns = PlaceSpawns(board.Tiles, cfg.Players, s.center)

	span.SetAttributes(
		attribute.String("map.shape", shape.String()),
		attribute.Int("map.rotation", rotation*60),
		attribute.Int("map.cols", cfg.Cols),
		attribute.Int("map.rows", cfg.Rows),
		attribute.Int("map.tile_count", len(board.Tiles)),
		attribute.Int("map.spawn_count", len(board.Spawns)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return board
}

// PickTerrain samples a terrain proportionally to the weights.
// A non-positive total, or any residual, resolves to Plains.
func PickTerrain(w TerrainWeights, rng Rand) Terrain {
	total := w.Total()
	if total <= 0 {
		return Plains
	}

	roll := rng.Float64() * total
	cumulative := 0.0
	for _, entry := range []struct {
		terrain Terrain
		weight  float64
	}{
		{Plains, w.Plains},
		{Mountain, w.Mountain},
		{Desert, w.Desert},
	} {
		if entry.weight <= 0 {
			continue
		}
		cumulative += entry.weight
		if roll < cumulative {
			return entry.terrain
		}
	}

	return Plains
}

// PlaceSpawns assigns one spawn tile per player (at most MaxPlayers) using a
// greedy farthest-point heuristic and returns the chosen tile ids.
//
// The first spawn is the tile farthest from center; each later spawn maximizes
// its minimum Manhattan distance to the spawns already placed. Ties go to the
// earlier tile. When tiles run out, the remaining players get no spawn.
func PlaceSpawns(tiles []Tile, players []PlayerID, center hex.Axial) map[PlayerID]string {
	spawns := make(map[PlayerID]string)
	if len(players) > MaxPlayers {
		players = players[:MaxPlayers]
	}

	taken := make(map[int]bool, len(players))
	var spots []hex.Axial

	for _, pid := range players {
		best := -1
		bestScore := -1
		for i := range tiles {
			if taken[i] {
				continue
			}
			score := spreadScore(tiles[i].Axial, spots, center)
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		if best < 0 {
			break // Undersized board
		}

		taken[best] = true
		spots = append(spots, tiles[best].Axial)

		tiles[best].Owner = pid
		tiles[best].Power = SpawnPower
		tiles[best].Terrain = Plains
		tiles[best].Building = NoBuilding
		spawns[pid] = tiles[best].ID
	}

	return spawns
}

// spreadScore is the minimum Manhattan distance from a to any placed spot,
// or the distance to center when nothing has been placed yet.
func spreadScore(a hex.Axial, spots []hex.Axial, center hex.Axial) int {
	if len(spots) == 0 {
		return hex.Manhattan(a, center)
	}
	score := -1
	for _, s := range spots {
		d := hex.Manhattan(a, s)
		if score < 0 || d < score {
			score = d
		}
	}
	return score
}
