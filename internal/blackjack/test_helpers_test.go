package blackjack

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/randutil"
)

// eventRecorder captures all events published on a bus
type eventRecorder struct {
	events []GameEvent
}

func (r *eventRecorder) OnEvent(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) ofType(et EventType) []GameEvent {
	var out []GameEvent
	for _, e := range r.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}

// newStackedEngine returns an engine whose rounds deal the given card
// sequences in order, one sequence per round.
func newStackedEngine(t *testing.T, rounds ...string) (*Engine, *eventRecorder) {
	t.Helper()

	decks := make([]*cards.Deck, len(rounds))
	for i, r := range rounds {
		decks[i] = cards.NewStackedDeck(cards.MustParseCards(r)...)
	}

	rec := &eventRecorder{}
	bus := NewEventBus()
	bus.Subscribe(rec)

	e := NewEngine(randutil.New(42), log.New(io.Discard),
		WithEventBus(bus),
		WithDeckSource(FixedDecks(decks...)))
	return e, rec
}
