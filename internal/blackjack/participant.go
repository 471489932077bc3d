package blackjack

// Role identifies which side of the table a participant plays
type Role int

const (
	PlayerRole Role = iota
	DealerRole
)

// String returns the participant label for a role
func (r Role) String() string {
	switch r {
	case PlayerRole:
		return "Player"
	case DealerRole:
		return "Dealer"
	default:
		return "Unknown"
	}
}

// Anchor is a display position handed to the presentation layer
type Anchor struct {
	X, Y int
}

// CardSpacing is the horizontal offset between consecutive cards in a hand
const CardSpacing = 30

// Default display anchors
var (
	PlayerAnchor = Anchor{X: 350, Y: 350}
	DealerAnchor = Anchor{X: 350, Y: 50}
	DeckAnchor   = Anchor{X: 50, Y: 225}
)

// Participant is one side of a round. Each owns exactly one hand.
type Participant struct {
	Role   Role
	Anchor Anchor
	Hand   Hand
}

// Name returns the participant label ("Player" or "Dealer")
func (p *Participant) Name() string {
	return p.Role.String()
}

// CardAnchor returns where the card at index i of the hand is displayed
func (p *Participant) CardAnchor(i int) Anchor {
	return Anchor{X: p.Anchor.X + i*CardSpacing, Y: p.Anchor.Y}
}

func newParticipant(role Role) *Participant {
	anchor := PlayerAnchor
	if role == DealerRole {
		anchor = DealerAnchor
	}
	return &Participant{Role: role, Anchor: anchor}
}
