package blackjack

import (
	"github.com/lox/blackjack/internal/cards"
)

// BlackjackTotal is the best possible hand total
const BlackjackTotal = 21

// HandValue is the derived value of a hand: its running total and whether
// an Ace is currently being counted as 11.
type HandValue struct {
	Total int
	Soft  bool
}

// Bust reports whether the total exceeds 21 with no soft Ace left to re-count.
func (v HandValue) Bust() bool {
	return v.Total > BlackjackTotal && !v.Soft
}

// Evaluate returns the value of a hand after c is appended to a hand worth v.
//
// Aces always add 11. An Ace marks the hand soft only when it fits without
// passing 21. A soft hand that passes 21 drops 10 once and turns hard; a
// hard hand over 21 is bust. Only one flag is kept, so a hand holding
// several Aces can bust where full Ace tracking would not.
func Evaluate(v HandValue, c cards.Card) HandValue {
	if c.IsAce() && v.Total+c.Value() <= BlackjackTotal {
		v.Soft = true
	}

	v.Total += c.Value()
	if v.Total > BlackjackTotal && v.Soft {
		v.Total -= 10
		v.Soft = false
	}
	return v
}

// Hand is an ordered sequence of dealt cards with its derived value.
// Only the round engine appends to a hand.
type Hand struct {
	cards []cards.Card
	value HandValue
}

// add appends c and recomputes the hand value
func (h *Hand) add(c cards.Card) HandValue {
	h.cards = append(h.cards, c)
	h.value = Evaluate(h.value, c)
	return h.value
}

// Cards returns a copy of the cards in deal order
func (h *Hand) Cards() []cards.Card {
	out := make([]cards.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value returns the current hand value
func (h *Hand) Value() HandValue {
	return h.value
}

// Total returns the current hand total
func (h *Hand) Total() int {
	return h.value.Total
}

// Soft reports whether an Ace is currently counted as 11
func (h *Hand) Soft() bool {
	return h.value.Soft
}

// IsBust reports whether the hand is bust
func (h *Hand) IsBust() bool {
	return h.value.Bust()
}

// IsNatural reports whether the hand is a two-card 21
func (h *Hand) IsNatural() bool {
	return len(h.cards) == 2 && h.value.Total == BlackjackTotal
}

// VisibleTotal is the face value of every card but the first, Aces as 11.
// It is what the table shows for a dealer whose first card is face down.
func (h *Hand) VisibleTotal() int {
	total := 0
	for i, c := range h.cards {
		if i == 0 {
			continue
		}
		total += c.Value()
	}
	return total
}

// HandFromCards builds a hand by dealing cs in order
func HandFromCards(cs ...cards.Card) *Hand {
	h := &Hand{}
	for _, c := range cs {
		h.add(c)
	}
	return h
}
