package cards

import (
	"errors"
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// ErrEmptyDeck is returned when dealing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// Deck represents a single standard 52-card deck. The top of the deck is
// the end of the slice so Deal is O(1).
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates an unshuffled deck in suit-major, rank-minor order.
// The rng is used by Shuffle; a nil rng falls back to the global source.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// NewShuffledDeck creates a new deck and shuffles it
func NewShuffledDeck(rng *rand.Rand) *Deck {
	d := NewDeck(rng)
	d.Shuffle()
	return d
}

// NewStackedDeck creates a deck that deals the given cards in order:
// the first card passed is the first card dealt. Intended for tests and replays.
func NewStackedDeck(order ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(order))}
	for i, c := range order {
		d.cards[len(order)-1-i] = c
	}
	return d
}

// Shuffle shuffles the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrEmptyDeck
	}
	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
