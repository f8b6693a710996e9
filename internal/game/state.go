// Package game provides the HexWars state machine and its action API.
package game

import (
	"github.com/google/uuid"

	"github.com/samdwyer/hexwars/internal/entity"
	"github.com/samdwyer/hexwars/internal/rules"
	"github.com/samdwyer/hexwars/internal/world"
)

// Phase is the state-machine position of a game.
type Phase int

const (
	// PhaseIdle means no game has been started (or it was reset).
	PhaseIdle Phase = iota
	// PhaseSelecting is the current player's turn with no tile selected.
	PhaseSelecting
	// PhaseArmed is the current player's turn with a tile selected, awaiting a target.
	PhaseArmed
	// PhaseFinished means a winner has been declared. Only Reset changes anything.
	PhaseFinished
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelecting:
		return "selecting"
	case PhaseArmed:
		return "armed"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// TurnStamp identifies one turn of one game. The turn timer keeps the stamp
// it started with so a late expiry for an already-advanced turn, or for a
// game that has since been replaced, can be recognized.
type TurnStamp struct {
	Game   uuid.UUID
	Seq    uint64
	Player world.PlayerID
}

// State is a snapshot of a game in progress.
type State struct {
	ID       uuid.UUID
	Cols     int
	Rows     int
	Shape    world.Shape
	Tiles    []world.Tile
	Order    []world.PlayerID // Turn order, fixed at start
	Current  world.PlayerID
	Selected string // Selected tile id, "" when nothing is selected
	Turn     int    // Full rounds, starting at 1
	Players  map[world.PlayerID]*entity.Player
	Winner   world.PlayerID // world.Neutral until someone wins
	Seq      uint64         // Number of turn advances so far

	index map[string]int // Tile id -> position in Tiles; never changes after creation
}

// newState builds the initial snapshot for a generated board.
func newState(board *world.Board, order []world.PlayerID) *State {
	s := &State{
		ID:      uuid.New(),
		Cols:    board.Cols,
		Rows:    board.Rows,
		Shape:   board.Shape,
		Tiles:   board.Tiles,
		Order:   order,
		Current: order[0],
		Turn:    1,
		Players: make(map[world.PlayerID]*entity.Player, len(order)),
		index:   make(map[string]int, len(board.Tiles)),
	}
	for _, pid := range order {
		s.Players[pid] = entity.NewPlayer(pid)
	}
	for i, t := range s.Tiles {
		s.index[t.ID] = i
	}
	return s
}

// Clone returns a deep copy of the snapshot.
func (s *State) Clone() *State {
	c := *s
	c.Tiles = append([]world.Tile(nil), s.Tiles...)
	c.Order = append([]world.PlayerID(nil), s.Order...)
	c.Players = make(map[world.PlayerID]*entity.Player, len(s.Players))
	for id, p := range s.Players {
		c.Players[id] = p.Clone()
	}
	return &c
}

// Phase returns the snapshot's state-machine position.
func (s *State) Phase() Phase {
	switch {
	case s.Winner != world.Neutral:
		return PhaseFinished
	case s.Selected != "":
		return PhaseArmed
	default:
		return PhaseSelecting
	}
}

// Finished returns true once a winner has been declared.
func (s *State) Finished() bool {
	return s.Winner != world.Neutral
}

// Tile returns the tile with the given id.
func (s *State) Tile(id string) (world.Tile, bool) {
	i, ok := s.index[id]
	if !ok {
		return world.Tile{}, false
	}
	return s.Tiles[i], true
}

// Player returns the player record for an id, or nil.
func (s *State) Player(id world.PlayerID) *entity.Player {
	return s.Players[id]
}

// Stamp returns the current turn's stamp.
func (s *State) Stamp() TurnStamp {
	return TurnStamp{Game: s.ID, Seq: s.Seq, Player: s.Current}
}

// put writes a tile back into the snapshot by id.
func (s *State) put(t world.Tile) {
	if i, ok := s.index[t.ID]; ok {
		s.Tiles[i] = t
	}
}

// next returns the player after p in turn order, wrapping around.
func (s *State) next(p world.PlayerID) world.PlayerID {
	for i, id := range s.Order {
		if id == p {
			return s.Order[(i+1)%len(s.Order)]
		}
	}
	return s.Order[0]
}

// opponentOf returns the first player in turn order other than p who still
// owns a tile. When nobody else does, it falls back to the first other seat.
func (s *State) opponentOf(p world.PlayerID) world.PlayerID {
	remaining := make(map[world.PlayerID]bool)
	for _, id := range rules.Owners(s.Tiles) {
		remaining[id] = true
	}

	fallback := world.Neutral
	for _, id := range s.Order {
		if id == p {
			continue
		}
		if remaining[id] {
			return id
		}
		if fallback == world.Neutral {
			fallback = id
		}
	}
	return fallback
}
