package blackjack

import (
	rand "math/rand/v2"

	"github.com/lox/blackjack/internal/cards"
)

// DeckSource produces the deck for each new round
type DeckSource func(rng *rand.Rand) *cards.Deck

// ShuffledDecks is the default DeckSource: a fresh shuffled 52-card deck per round
func ShuffledDecks(rng *rand.Rand) *cards.Deck {
	return cards.NewShuffledDeck(rng)
}

// FixedDecks returns a DeckSource that hands out decks in order, then
// falls back to shuffled decks once they run out.
func FixedDecks(decks ...*cards.Deck) DeckSource {
	next := 0
	return func(rng *rand.Rand) *cards.Deck {
		if next < len(decks) {
			d := decks[next]
			next++
			return d
		}
		return ShuffledDecks(rng)
	}
}

// EngineOption configures an Engine during creation.
type EngineOption func(*engineConfig)

type engineConfig struct {
	bus        EventBus
	decks      DeckSource
	deckAnchor Anchor
	standOn    int
}

// WithEventBus publishes round events on bus instead of a private bus.
func WithEventBus(bus EventBus) EngineOption {
	return func(c *engineConfig) {
		c.bus = bus
	}
}

// WithDeckSource sets how each round's deck is produced.
// This overrides the RNG for deck creation.
func WithDeckSource(src DeckSource) EngineOption {
	return func(c *engineConfig) {
		c.decks = src
	}
}

// WithDeckAnchor sets the display anchor cards are dealt from.
func WithDeckAnchor(a Anchor) EngineOption {
	return func(c *engineConfig) {
		c.deckAnchor = a
	}
}

// WithDealerStandsOn sets the total at which the dealer stops drawing.
// Values below 1 keep DealerStandsOn.
func WithDealerStandsOn(total int) EngineOption {
	return func(c *engineConfig) {
		if total > 0 {
			c.standOn = total
		}
	}
}
