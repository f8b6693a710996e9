// Package rules provides the combat, growth and economy rules for HexWars.
//
// Every function here is pure: tiles are passed and returned by value and
// inputs are never modified.
package rules

import (
	"github.com/samdwyer/hexwars/internal/hex"
	"github.com/samdwyer/hexwars/internal/world"
)

// PowerCap is the troop limit on a tile without a building.
const PowerCap = 10

// Outcome describes what an attack or move did.
type Outcome int

const (
	// OutcomeNone means nothing changed.
	OutcomeNone Outcome = iota
	// OutcomeReinforce moved troops between two tiles of the same owner.
	OutcomeReinforce
	// OutcomeCapture took the defender's tile.
	OutcomeCapture
	// OutcomeWeaken damaged the defender without taking the tile.
	OutcomeWeaken
	// OutcomeOverwhelm took a much weaker tile with half the attacking troops.
	OutcomeOverwhelm
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeReinforce:
		return "reinforce"
	case OutcomeCapture:
		return "capture"
	case OutcomeWeaken:
		return "weaken"
	case OutcomeOverwhelm:
		return "overwhelm"
	default:
		return "unknown"
	}
}

// Captured returns true if the target changed owner.
func (o Outcome) Captured() bool {
	return o == OutcomeCapture || o == OutcomeOverwhelm
}

// Result holds the updated source and target tiles of an action.
type Result struct {
	From    world.Tile
	To      world.Tile
	Outcome Outcome
}

// CanSelect returns true if the player may pick this tile to act with.
func CanSelect(t world.Tile, player world.PlayerID) bool {
	return t.Owner == player && t.Owner != world.Neutral && t.Power > 0 && !t.HasActed
}

// CanAttack returns true if from may attack to.
func CanAttack(from, to world.Tile) bool {
	return from.Owner != world.Neutral &&
		to.Owner != from.Owner &&
		hex.IsNeighbor(from.Axial, to.Axial) &&
		from.Power > 0
}

// Resistance is the defender's multiplier against attacking troops.
func Resistance(t world.Tile) int {
	resistance := 1
	switch t.Terrain {
	case world.Mountain:
		resistance = 2
	case world.Desert:
		resistance = 3
	}
	if t.Building == world.Wall {
		resistance *= 2
	}
	return resistance
}

// CapPower clamps power to PowerCap unless the tile has a building.
func CapPower(t world.Tile, power int) int {
	if t.HasBuilding() {
		return power
	}
	return min(power, PowerCap)
}

// ResolveAttack computes the result of from acting on to.
//
// Same owner: half of from's troops (rounded down) reinforce to.
// Otherwise the attack captures when attacker power exceeds defender power
// times resistance, and only weakens the defender when it does not.
func ResolveAttack(from, to world.Tile) Result {
	if from.Owner != world.Neutral && to.Owner == from.Owner {
		return reinforce(from, to)
	}

	atk := from.Power
	def := to.Power
	resistance := Resistance(to)

	if atk > def*resistance {
		from.Power = 0
		to.Owner = from.Owner
		to.Power = max(1, atk-def*resistance)
		return Result{From: from, To: to, Outcome: OutcomeCapture}
	}

	// At least one troop always counts.
	effective := max(1, (atk-1)/resistance+1)
	from.Power = 1
	to.Power = max(1, def-effective)
	return Result{From: from, To: to, Outcome: OutcomeWeaken}
}

func reinforce(from, to world.Tile) Result {
	move := from.Power / 2
	if move == 0 {
		return Result{From: from, To: to, Outcome: OutcomeNone}
	}
	from.Power -= move
	to.Power = CapPower(to, to.Power+move)
	return Result{From: from, To: to, Outcome: OutcomeReinforce}
}

// Overwhelm applies the shortcut capture against an enemy or neutral tile
// holding fewer than half the attacker's troops. Half the attacker's troops
// (rounded down) move onto the captured tile and the rest stay behind; both
// tiles are marked as having acted. The bool is false when the rule does not apply.
func Overwhelm(from, to world.Tile) (Result, bool) {
	if from.Owner == world.Neutral || to.Owner == from.Owner {
		return Result{From: from, To: to}, false
	}
	half := from.Power / 2
	if to.Power >= half {
		return Result{From: from, To: to}, false
	}

	from.Power -= half
	from.HasActed = true
	to.Owner = from.Owner
	to.Power = half
	to.HasActed = true
	return Result{From: from, To: to, Outcome: OutcomeOverwhelm}, true
}

// Owners returns the distinct owners among owned tiles, in board order.
func Owners(tiles []world.Tile) []world.PlayerID {
	seen := make(map[world.PlayerID]bool)
	var owners []world.PlayerID
	for _, t := range tiles {
		if t.Owner == world.Neutral || seen[t.Owner] {
			continue
		}
		seen[t.Owner] = true
		owners = append(owners, t.Owner)
	}
	return owners
}

// CheckWinner returns the sole remaining owner, if exactly one is left.
func CheckWinner(tiles []world.Tile) (world.PlayerID, bool) {
	owners := Owners(tiles)
	if len(owners) != 1 {
		return world.Neutral, false
	}
	return owners[0], true
}

// GrowthInterval is how many turns a tile on the terrain needs per troop.
func GrowthInterval(t world.Terrain) int {
	switch t {
	case world.Mountain:
		return 3
	case world.Desert:
		return 5
	default:
		return 2
	}
}

// EndTurnGrowth advances every tile's growth counter and adds a troop on
// tiles whose counter reaches their terrain interval. Neutral tiles grow too.
func EndTurnGrowth(tiles []world.Tile) []world.Tile {
	grown := make([]world.Tile, len(tiles))
	for i, t := range tiles {
		t.GrowthCounter++
		if t.GrowthCounter%GrowthInterval(t.Terrain) == 0 {
			t.Power = max(t.Power, CapPower(t, t.Power+1))
		}
		grown[i] = t
	}
	return grown
}

// Income is the gold a player earns at the end of a turn: one per owned tile
// plus one more per owned tile with a building.
func Income(tiles []world.Tile, player world.PlayerID) int {
	gold := 0
	for _, t := range tiles {
		if t.Owner != player || player == world.Neutral {
			continue
		}
		gold++
		if t.HasBuilding() {
			gold++
		}
	}
	return gold
}
