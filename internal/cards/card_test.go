package cards

import "testing"

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "blackjack",
			input: "AH KS",
			expected: []Card{
				{Rank: Ace, Suit: Hearts},
				{Rank: King, Suit: Spades},
			},
		},
		{
			name:  "ten and low cards",
			input: "TC 2D 9S",
			expected: []Card{
				{Rank: Ten, Suit: Clubs},
				{Rank: Two, Suit: Diamonds},
				{Rank: Nine, Suit: Spades},
			},
		},
		{
			name:  "case insensitive",
			input: "ah qd",
			expected: []Card{
				{Rank: Ace, Suit: Hearts},
				{Rank: Queen, Suit: Diamonds},
			},
		},
		{
			name:    "invalid rank",
			input:   "XS",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AX",
			wantErr: true,
		},
		{
			name:    "ten written as 10",
			input:   "10H",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCards() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !cardsEqual(got, tt.expected) {
				t.Errorf("ParseCards() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCardCodeRoundTrip(t *testing.T) {
	for _, suit := range Suits {
		for _, rank := range Ranks {
			c := NewCard(rank, suit)
			parsed, err := ParseCard(c.Code())
			if err != nil {
				t.Fatalf("ParseCard(%q) failed: %v", c.Code(), err)
			}
			if parsed != c {
				t.Errorf("ParseCard(%q) = %v, want %v", c.Code(), parsed, c)
			}
		}
	}
}

func TestCardValue(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"AH", 11},
		{"2C", 2},
		{"9D", 9},
		{"TS", 10},
		{"JH", 10},
		{"QC", 10},
		{"KD", 10},
	}
	for _, tt := range tests {
		c, err := ParseCard(tt.code)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", tt.code, err)
		}
		if got := c.Value(); got != tt.want {
			t.Errorf("%s.Value() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestMustParseCards(t *testing.T) {
	cards := MustParseCards("AS KS")
	expected := []Card{
		{Rank: Ace, Suit: Spades},
		{Rank: King, Suit: Spades},
	}
	if !cardsEqual(cards, expected) {
		t.Errorf("MustParseCards() = %v, want %v", cards, expected)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseCards() should panic on invalid input")
		}
	}()
	MustParseCards("invalid")
}

func cardsEqual(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
