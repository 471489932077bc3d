package cards

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

// Suits lists every suit in deck-generation order
var Suits = [...]Suit{Hearts, Clubs, Diamonds, Spades}

// String returns the symbol for a suit
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Code returns the single-letter code for a suit (H, C, D, S)
func (s Suit) Code() byte {
	switch s {
	case Hearts:
		return 'H'
	case Clubs:
		return 'C'
	case Diamonds:
		return 'D'
	case Spades:
		return 'S'
	default:
		return '?'
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in deck-generation order
var Ranks = [...]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

const rankCodes = "A23456789TJQK"

// String returns the single-character representation of a rank
func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankCodes[r-1 : r]
}

// Value returns the blackjack value of the rank. Aces count 11; the hand
// evaluator decides when one is re-counted as 1.
func (r Rank) Value() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten:
		return 10
	default:
		return int(r)
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the display form of a card (e.g., "A♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Code returns the two-letter card code (e.g., "AH", "TC")
func (c Card) Code() string {
	return c.Rank.String() + string(c.Suit.Code())
}

// Value returns the blackjack value of the card
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses a two-letter card code such as "AH" or "tc".
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code %q: want 2 characters", code)
	}
	upper := strings.ToUpper(code)

	idx := strings.IndexByte(rankCodes, upper[0])
	if idx < 0 {
		return Card{}, fmt.Errorf("invalid rank in card code %q", code)
	}

	var suit Suit
	switch upper[1] {
	case 'H':
		suit = Hearts
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card code %q", code)
	}

	return NewCard(Rank(idx+1), suit), nil
}

// ParseCards parses a whitespace-separated list of card codes ("AH KS 9D").
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	result := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	result, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return result
}
