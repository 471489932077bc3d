package anim

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advance(t *testing.T, clock *quartz.Mock, d time.Duration) {
	t.Helper()
	clock.Advance(d).MustWait(context.Background())
}

func dealtEvent(role blackjack.Role, index int, to blackjack.Anchor) blackjack.CardDealtEvent {
	return blackjack.NewCardDealtEvent("r1", role, cards.NewCard(cards.Ace, cards.Spades), index, false,
		blackjack.Anchor{X: 0, Y: 0}, to)
}

func TestQueuePlaysSequentially(t *testing.T) {
	clock := quartz.NewMock(t)
	q := NewQueue(clock, 500*time.Millisecond)

	q.OnEvent(dealtEvent(blackjack.PlayerRole, 0, blackjack.PlayerAnchor))
	q.OnEvent(dealtEvent(blackjack.DealerRole, 0, blackjack.DealerAnchor))

	assert.True(t, q.Busy())
	assert.Equal(t, 0, q.Landed(blackjack.PlayerRole))

	advance(t, clock, 499*time.Millisecond)
	assert.Equal(t, 0, q.Landed(blackjack.PlayerRole))

	advance(t, clock, time.Millisecond)
	assert.Equal(t, 1, q.Landed(blackjack.PlayerRole))
	assert.Equal(t, 0, q.Landed(blackjack.DealerRole))
	assert.True(t, q.Busy())

	advance(t, clock, 500*time.Millisecond)
	assert.False(t, q.Busy())
	assert.Equal(t, 1, q.Landed(blackjack.DealerRole))
}

func TestQueueCatchesUpAfterLongFrame(t *testing.T) {
	clock := quartz.NewMock(t)
	q := NewQueue(clock, 100*time.Millisecond)
	for i := range 4 {
		q.OnEvent(dealtEvent(blackjack.PlayerRole, i, blackjack.PlayerAnchor))
	}

	advance(t, clock, 250*time.Millisecond)
	q.Advance()
	assert.Equal(t, 2, q.Landed(blackjack.PlayerRole))
	assert.Equal(t, 2, q.Pending())

	_, progress, ok := q.InFlight()
	require.True(t, ok)
	assert.InDelta(t, 0.5, progress, 1e-9)
}

func TestQueuePosition(t *testing.T) {
	clock := quartz.NewMock(t)
	q := NewQueue(clock, 100*time.Millisecond)
	q.OnEvent(dealtEvent(blackjack.PlayerRole, 0, blackjack.Anchor{X: 200, Y: 100}))

	pos, ok := q.Position()
	require.True(t, ok)
	assert.Equal(t, blackjack.Anchor{X: 0, Y: 0}, pos)

	advance(t, clock, 25*time.Millisecond)
	pos, ok = q.Position()
	require.True(t, ok)
	assert.Equal(t, blackjack.Anchor{X: 50, Y: 25}, pos)

	advance(t, clock, 75*time.Millisecond)
	_, ok = q.Position()
	assert.False(t, ok)
}

func TestQueuePauseFreezesTravel(t *testing.T) {
	clock := quartz.NewMock(t)
	q := NewQueue(clock, 100*time.Millisecond)
	q.OnEvent(dealtEvent(blackjack.PlayerRole, 0, blackjack.PlayerAnchor))

	advance(t, clock, 50*time.Millisecond)
	q.Pause()
	advance(t, clock, time.Second)
	assert.True(t, q.Busy())

	q.Resume()
	advance(t, clock, 49*time.Millisecond)
	assert.True(t, q.Busy())
	advance(t, clock, time.Millisecond)
	assert.False(t, q.Busy())
}

func TestQueueFlushAndReset(t *testing.T) {
	clock := quartz.NewMock(t)
	q := NewQueue(clock, time.Second)
	q.OnEvent(dealtEvent(blackjack.PlayerRole, 0, blackjack.PlayerAnchor))
	q.OnEvent(dealtEvent(blackjack.DealerRole, 0, blackjack.DealerAnchor))

	q.Flush()
	assert.False(t, q.Busy())
	assert.Equal(t, 1, q.Landed(blackjack.PlayerRole))
	assert.Equal(t, 1, q.Landed(blackjack.DealerRole))

	q.OnEvent(blackjack.NewRoundStartEvent("r2"))
	assert.Equal(t, 0, q.Landed(blackjack.PlayerRole))
	assert.Equal(t, 0, q.Landed(blackjack.DealerRole))
}

func TestQueueZeroDurationLandsImmediately(t *testing.T) {
	q := NewQueue(quartz.NewMock(t), 0)
	q.OnEvent(dealtEvent(blackjack.PlayerRole, 0, blackjack.PlayerAnchor))
	assert.False(t, q.Busy())
	assert.Equal(t, 1, q.Landed(blackjack.PlayerRole))
}

func TestQueueFollowsEngine(t *testing.T) {
	clock := quartz.NewMock(t)
	q := NewQueue(clock, DefaultDuration)

	bus := blackjack.NewEventBus()
	bus.Subscribe(q)
	deck := cards.NewStackedDeck(cards.MustParseCards("TH TC 8D 6S KH")...)
	e := blackjack.NewEngine(randutil.New(3), log.New(io.Discard),
		blackjack.WithEventBus(bus),
		blackjack.WithDeckSource(blackjack.FixedDecks(deck)))

	view, err := e.NewRound()
	require.NoError(t, err)
	assert.Equal(t, 4, q.Pending())

	view, err = e.Stand()
	require.NoError(t, err)
	require.Equal(t, blackjack.Resolved, view.Phase)
	assert.Equal(t, 5, q.Pending(), "engine resolves at once; the reveal is still queued")

	advance(t, clock, 5*DefaultDuration)
	assert.False(t, q.Busy())
	assert.Equal(t, 2, q.Landed(blackjack.PlayerRole))
	assert.Equal(t, 3, q.Landed(blackjack.DealerRole))
}
