// Package entity provides the player record tracked by the game.
package entity

import "github.com/samdwyer/hexwars/internal/world"

// ForfeitStrikes is the number of consecutive forced turn ends that forfeits a game.
const ForfeitStrikes = 3

// Player holds a participant's economy and AFK state.
type Player struct {
	ID      world.PlayerID // 1..4
	Gold    int            // Never negative
	Strikes int            // Consecutive forced turn ends
}

// NewPlayer creates a player with no gold and no strikes.
func NewPlayer(id world.PlayerID) *Player {
	return &Player{ID: id}
}

// Credit adds gold. Non-positive amounts are ignored.
func (p *Player) Credit(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}

// Debit spends gold. Returns false and leaves the balance unchanged if
// the player cannot afford it.
func (p *Player) Debit(amount int) bool {
	if amount < 0 || p.Gold < amount {
		return false
	}
	p.Gold -= amount
	return true
}

// Strike records a forced turn end and returns the new strike count.
func (p *Player) Strike() int {
	p.Strikes++
	return p.Strikes
}

// ClearStrikes resets the strike count after a voluntary turn end.
func (p *Player) ClearStrikes() {
	p.Strikes = 0
}

// Forfeited returns true once the player has struck out.
func (p *Player) Forfeited() bool {
	return p.Strikes >= ForfeitStrikes
}

// Clone returns a copy of the player.
func (p *Player) Clone() *Player {
	c := *p
	return &c
}
