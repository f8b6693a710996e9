package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hexwars/internal/game"
)

// TurnDuration is the time allowed for a turn given the player's
// consecutive timeouts.
func TurnDuration(strikes int) time.Duration {
	switch {
	case strikes <= 0:
		return 60 * time.Second
	case strikes == 1:
		return 30 * time.Second
	default:
		return 15 * time.Second
	}
}

// turnExpired is the interrupt payload posted when a countdown runs out.
type turnExpired struct {
	stamp game.TurnStamp
}

// redraw is the interrupt payload that refreshes the countdown display.
type redraw struct{}

// TurnTimer counts down the current turn. Expiry is never applied directly;
// it is posted to the event loop carrying the stamp of the turn it timed.
type TurnTimer struct {
	post     func(tcell.Event) error
	duration func(strikes int) time.Duration
	now      func() time.Time

	running  bool
	stamp    game.TurnStamp
	deadline time.Time
	timer    *time.Timer
}

// NewTurnTimer creates a stopped timer that posts expiries through post.
func NewTurnTimer(post func(tcell.Event) error) *TurnTimer {
	return &TurnTimer{
		post:     post,
		duration: TurnDuration,
		now:      time.Now,
	}
}

// Sync restarts the countdown when stamp names a different turn than the
// one being timed. Calling it again for the same turn is a no-op.
func (t *TurnTimer) Sync(stamp game.TurnStamp, strikes int) {
	if t.running && t.stamp == stamp {
		return
	}
	t.Stop()

	d := t.duration(strikes)
	t.running = true
	t.stamp = stamp
	t.deadline = t.now().Add(d)
	t.timer = time.AfterFunc(d, func() {
		_ = t.post(tcell.NewEventInterrupt(turnExpired{stamp: stamp}))
	})
}

// Stop cancels any running countdown.
func (t *TurnTimer) Stop() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.running = false
}

// Running returns true while a countdown is active.
func (t *TurnTimer) Running() bool {
	return t.running
}

// Remaining returns the time left in the current countdown.
func (t *TurnTimer) Remaining() time.Duration {
	if !t.running {
		return 0
	}
	return max(t.deadline.Sub(t.now()), 0)
}
