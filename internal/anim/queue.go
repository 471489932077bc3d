// Package anim paces the reveal of dealt cards for the presentation layer.
//
// The round engine deals synchronously; Queue replays its CardDealtEvents
// one at a time, each taking a fixed duration on an injected clock. Nothing
// here feeds back into the engine.
package anim

import (
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/cards"
)

// DefaultDuration is how long one card takes to travel from the deck
const DefaultDuration = 500 * time.Millisecond

// Move is one card travelling from the deck to a hand
type Move struct {
	Participant blackjack.Role
	Card        cards.Card
	Index       int
	Hidden      bool
	From        blackjack.Anchor
	To          blackjack.Anchor
}

// Queue plays moves sequentially. It implements blackjack.EventSubscriber
// and is driven from the UI goroutine.
type Queue struct {
	clock    quartz.Clock
	duration time.Duration

	pending  []Move
	started  time.Time // when pending[0] left the deck
	pausedAt time.Time
	paused   bool
	landed   map[blackjack.Role]int
}

// NewQueue creates a queue where each move takes duration on clock
func NewQueue(clock quartz.Clock, duration time.Duration) *Queue {
	return &Queue{
		clock:    clock,
		duration: duration,
		landed:   make(map[blackjack.Role]int),
	}
}

// OnEvent consumes round events
func (q *Queue) OnEvent(event blackjack.GameEvent) {
	switch ev := event.(type) {
	case blackjack.RoundStartEvent, blackjack.RoundAbandonEvent:
		q.Reset()
	case blackjack.CardDealtEvent:
		q.enqueue(Move{
			Participant: ev.Participant,
			Card:        ev.Card,
			Index:       ev.Index,
			Hidden:      ev.Hidden,
			From:        ev.From,
			To:          ev.To,
		})
	}
}

func (q *Queue) enqueue(m Move) {
	if q.duration <= 0 {
		q.landed[m.Participant]++
		return
	}
	if len(q.pending) == 0 {
		q.started = q.now()
	}
	q.pending = append(q.pending, m)
}

// now is the clock time, frozen while paused
func (q *Queue) now() time.Time {
	if q.paused {
		return q.pausedAt
	}
	return q.clock.Now()
}

// Advance lands every move whose travel time has elapsed
func (q *Queue) Advance() {
	now := q.now()
	for len(q.pending) > 0 && now.Sub(q.started) >= q.duration {
		q.land()
		q.started = q.started.Add(q.duration)
	}
}

func (q *Queue) land() {
	m := q.pending[0]
	q.pending = q.pending[1:]
	q.landed[m.Participant]++
}

// Busy reports whether any card is still travelling
func (q *Queue) Busy() bool {
	q.Advance()
	return len(q.pending) > 0
}

// Pending returns the number of moves not yet landed
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Landed returns how many of a participant's cards have arrived
func (q *Queue) Landed(role blackjack.Role) int {
	return q.landed[role]
}

// InFlight returns the travelling move and its progress in [0,1]
func (q *Queue) InFlight() (Move, float64, bool) {
	q.Advance()
	if len(q.pending) == 0 {
		return Move{}, 0, false
	}
	progress := float64(q.now().Sub(q.started)) / float64(q.duration)
	return q.pending[0], min(max(progress, 0), 1), true
}

// Position interpolates the travelling card's current display position
func (q *Queue) Position() (blackjack.Anchor, bool) {
	m, p, ok := q.InFlight()
	if !ok {
		return blackjack.Anchor{}, false
	}
	return blackjack.Anchor{
		X: m.From.X + int(float64(m.To.X-m.From.X)*p),
		Y: m.From.Y + int(float64(m.To.Y-m.From.Y)*p),
	}, true
}

// Pause freezes travel until Resume
func (q *Queue) Pause() {
	if q.paused {
		return
	}
	q.pausedAt = q.clock.Now()
	q.paused = true
}

// Resume continues travel, discounting the time spent paused
func (q *Queue) Resume() {
	if !q.paused {
		return
	}
	q.paused = false
	q.started = q.started.Add(q.clock.Since(q.pausedAt))
}

// Flush lands every pending move at once
func (q *Queue) Flush() {
	for len(q.pending) > 0 {
		q.land()
	}
}

// Reset forgets all moves, landed or not
func (q *Queue) Reset() {
	q.pending = nil
	clear(q.landed)
}
