package world

import (
	"context"
	"math/rand"
	"testing"

	"github.com/samdwyer/hexwars/internal/hex"
)

// fixedRand replays fixed sequences, cycling when exhausted.
type fixedRand struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *fixedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)] % n
	r.i++
	return v
}

func (r *fixedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

func twoPlayers() []PlayerID {
	return []PlayerID{1, 2}
}

func TestGenerateReproducibility(t *testing.T) {
	seed := int64(12345)
	cfg := GenConfig{
		Cols:           15,
		Rows:           13,
		TerrainWeights: DefaultTerrainWeights(),
		Players:        []PlayerID{1, 2, 3},
		Shape:          ShapeRandom,
	}

	ctx := context.Background()
	b1 := Generate(ctx, cfg, rand.New(rand.NewSource(seed)))
	b2 := Generate(ctx, cfg, rand.New(rand.NewSource(seed)))

	if b1.Shape != b2.Shape || b1.Rotation != b2.Rotation {
		t.Fatalf("Shape mismatch: %v/%d != %v/%d", b1.Shape, b1.Rotation, b2.Shape, b2.Rotation)
	}
	if len(b1.Tiles) != len(b2.Tiles) {
		t.Fatalf("Tile count mismatch: %d != %d", len(b1.Tiles), len(b2.Tiles))
	}
	for i := range b1.Tiles {
		if b1.Tiles[i] != b2.Tiles[i] {
			t.Errorf("Tile %d mismatch: %+v != %+v", i, b1.Tiles[i], b2.Tiles[i])
		}
	}
	for pid, id := range b1.Spawns {
		if b2.Spawns[pid] != id {
			t.Errorf("Spawn for player %d mismatch: %s != %s", pid, id, b2.Spawns[pid])
		}
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	cfg := GenConfig{
		Cols:           19,
		Rows:           17,
		TerrainWeights: DefaultTerrainWeights(),
		Players:        twoPlayers(),
		Shape:          ShapeCircle,
	}

	ctx := context.Background()
	b1 := Generate(ctx, cfg, rand.New(rand.NewSource(12345)))
	b2 := Generate(ctx, cfg, rand.New(rand.NewSource(54321)))

	identical := len(b1.Tiles) == len(b2.Tiles)
	if identical {
		for i := range b1.Tiles {
			if b1.Tiles[i] != b2.Tiles[i] {
				identical = false
				break
			}
		}
	}

	if identical {
		t.Error("Boards with different seeds should not be identical")
	}
}

func TestGenerateCircleExact(t *testing.T) {
	cfg := GenConfig{
		Cols:           5,
		Rows:           5,
		TerrainWeights: DefaultTerrainWeights(),
		Players:        twoPlayers(),
		Shape:          ShapeCircle,
	}

	b := Generate(context.Background(), cfg, &fixedRand{})

	// Center (2,2), radius 1.5: the 3x3 block around the center.
	if len(b.Tiles) != 9 {
		t.Fatalf("Expected 9 tiles, got %d", len(b.Tiles))
	}
	if b.Tiles[0].ID != "1,1" || b.Tiles[8].ID != "3,3" {
		t.Errorf("Unexpected tile order: first %s, last %s", b.Tiles[0].ID, b.Tiles[8].ID)
	}
	for _, tile := range b.Tiles {
		if tile.Terrain != Plains {
			t.Errorf("Tile %s terrain = %v, want plains", tile.ID, tile.Terrain)
		}
		if tile.ID != TileID(tile.Axial) {
			t.Errorf("Tile id %s does not match axial %v", tile.ID, tile.Axial)
		}
	}

	if b.Spawns[1] != "1,1" {
		t.Errorf("Player 1 spawn = %s, want 1,1", b.Spawns[1])
	}
	if b.Spawns[2] != "3,3" {
		t.Errorf("Player 2 spawn = %s, want 3,3", b.Spawns[2])
	}
}

func TestGenerateSemicircleDropsSparseHalf(t *testing.T) {
	cfg := GenConfig{
		Cols:           5,
		Rows:           5,
		TerrainWeights: DefaultTerrainWeights(),
		Shape:          ShapeSemicircle,
	}

	// Rotation 0, top half kept; the sparse roll never passes.
	b := Generate(context.Background(), cfg, &fixedRand{floats: []float64{0.99}})

	if len(b.Tiles) != 6 {
		t.Fatalf("Expected 6 tiles, got %d", len(b.Tiles))
	}
	for _, tile := range b.Tiles {
		if tile.Axial.R > 2 {
			t.Errorf("Tile %s is in the discarded half", tile.ID)
		}
	}

	// With a roll that always passes the sparse half is fully kept.
	full := Generate(context.Background(), cfg, &fixedRand{floats: []float64{0.01}})
	if len(full.Tiles) != 9 {
		t.Errorf("Expected 9 tiles with sparse rolls passing, got %d", len(full.Tiles))
	}
}

func TestGenerateThinBand(t *testing.T) {
	cfg := GenConfig{
		Cols:           7,
		Rows:           7,
		TerrainWeights: DefaultTerrainWeights(),
		Shape:          ShapeThin,
	}

	b := Generate(context.Background(), cfg, &fixedRand{})

	// Width 2 band, radius 2.5: three columns by five rows.
	if len(b.Tiles) != 15 {
		t.Fatalf("Expected 15 tiles, got %d", len(b.Tiles))
	}
}

func TestGenerateRandomShapeHonorsChoices(t *testing.T) {
	cfg := GenConfig{
		Cols:           11,
		Rows:           9,
		TerrainWeights: DefaultTerrainWeights(),
		Shape:          ShapeRandom,
		Choices:        []Shape{ShapeThin},
	}

	b := Generate(context.Background(), cfg, rand.New(rand.NewSource(7)))
	if b.Shape != ShapeThin {
		t.Errorf("Shape = %v, want thin", b.Shape)
	}
}

func TestPickTerrain(t *testing.T) {
	weights := DefaultTerrainWeights()

	tests := []struct {
		name    string
		weights TerrainWeights
		roll    float64
		want    Terrain
	}{
		{"low roll plains", weights, 0.5, Plains},
		{"middle roll mountain", weights, 0.7, Mountain},
		{"high roll desert", weights, 0.9, Desert},
		{"zero weights", TerrainWeights{}, 0.5, Plains},
		{"negative weights", TerrainWeights{Plains: -1, Mountain: -1, Desert: -1}, 0.5, Plains},
		{"desert only", TerrainWeights{Desert: 2}, 0.0, Desert},
		{"unnormalized", TerrainWeights{Plains: 6, Mountain: 2, Desert: 2}, 0.65, Mountain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickTerrain(tt.weights, &fixedRand{floats: []float64{tt.roll}})
			if got != tt.want {
				t.Errorf("PickTerrain() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickTerrainDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	counts := make(map[Terrain]int)
	for i := 0; i < 10000; i++ {
		counts[PickTerrain(DefaultTerrainWeights(), rng)]++
	}

	// 60/20/20 with generous tolerance.
	if counts[Plains] < 5500 || counts[Plains] > 6500 {
		t.Errorf("Plains count %d outside expected range", counts[Plains])
	}
	if counts[Mountain] < 1500 || counts[Mountain] > 2500 {
		t.Errorf("Mountain count %d outside expected range", counts[Mountain])
	}
}

func TestPlaceSpawnsForcesPlains(t *testing.T) {
	tiles := []Tile{
		NewTile(hex.Axial{Q: 0, R: 0}, Desert),
		NewTile(hex.Axial{Q: 4, R: 0}, Mountain),
	}
	tiles[0].Building = Wall

	spawns := PlaceSpawns(tiles, twoPlayers(), hex.Axial{Q: 2, R: 0})

	if len(spawns) != 2 {
		t.Fatalf("Expected 2 spawns, got %d", len(spawns))
	}
	for _, tile := range tiles {
		if tile.Owner == Neutral {
			t.Errorf("Tile %s should be a spawn", tile.ID)
		}
		if tile.Terrain != Plains {
			t.Errorf("Spawn %s terrain = %v, want plains", tile.ID, tile.Terrain)
		}
		if tile.Power != SpawnPower {
			t.Errorf("Spawn %s power = %d, want %d", tile.ID, tile.Power, SpawnPower)
		}
		if tile.HasBuilding() {
			t.Errorf("Spawn %s should have no building", tile.ID)
		}
	}
}

func TestPlaceSpawnsUndersizedBoard(t *testing.T) {
	tiles := []Tile{NewTile(hex.Axial{Q: 0, R: 0}, Plains)}

	spawns := PlaceSpawns(tiles, []PlayerID{1, 2, 3}, hex.Axial{})

	if len(spawns) != 1 {
		t.Fatalf("Expected 1 spawn, got %d", len(spawns))
	}
	if tiles[0].Owner != 1 {
		t.Errorf("Only tile owner = %d, want 1", tiles[0].Owner)
	}

	if got := PlaceSpawns(nil, twoPlayers(), hex.Axial{}); len(got) != 0 {
		t.Errorf("Expected no spawns on an empty board, got %d", len(got))
	}
}

func TestPlaceSpawnsTruncatesToMaxPlayers(t *testing.T) {
	b := Generate(context.Background(), GenConfig{
		Cols:           19,
		Rows:           17,
		TerrainWeights: DefaultTerrainWeights(),
		Players:        []PlayerID{1, 2, 3, 4, 5, 6},
		Shape:          ShapeCircle,
	}, rand.New(rand.NewSource(3)))

	if len(b.Spawns) != MaxPlayers {
		t.Fatalf("Expected %d spawns, got %d", MaxPlayers, len(b.Spawns))
	}

	seen := make(map[string]bool)
	for pid, id := range b.Spawns {
		if seen[id] {
			t.Errorf("Spawn %s assigned twice", id)
		}
		seen[id] = true
		if !pid.Valid() {
			t.Errorf("Invalid player %d received a spawn", pid)
		}
	}
}

func TestParseShape(t *testing.T) {
	for _, s := range []Shape{ShapeCircle, ShapeSemicircle, ShapeThin, ShapeRandom} {
		got, err := ParseShape(s.String())
		if err != nil || got != s {
			t.Errorf("ParseShape(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseShape("split"); err == nil {
		t.Error("Expected error for unknown shape")
	}
}

func TestParseBuilding(t *testing.T) {
	for _, b := range []Building{NoBuilding, Airport, Hotel, Wall} {
		got, err := ParseBuilding(b.String())
		if err != nil || got != b {
			t.Errorf("ParseBuilding(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseBuilding("castle"); err == nil {
		t.Error("Expected error for unknown building")
	}
}
