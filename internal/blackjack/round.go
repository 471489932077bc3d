package blackjack

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/cards"
)

// DealerStandsOn is the default total at which the dealer stops drawing, soft or hard
const DealerStandsOn = 17

// Phase is the round engine state
type Phase int

const (
	Dealing Phase = iota
	PlayerTurn
	DealerTurn
	Resolved
	Aborted
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case Dealing:
		return "dealing"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Resolved:
		return "resolved"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Status is the coarse round status exposed to the presentation layer
type Status int

const (
	Active Status = iota
	Over
)

// String returns the string representation of a status
func (s Status) String() string {
	if s == Over {
		return "over"
	}
	return "active"
}

// Status collapses a phase to Active or Over
func (p Phase) Status() Status {
	if p == Resolved || p == Aborted {
		return Over
	}
	return Active
}

// Winner is the outcome of a resolved round. NoWinner is a push.
type Winner int

const (
	NoWinner Winner = iota
	PlayerWins
	DealerWins
)

// String returns the string representation of a winner
func (w Winner) String() string {
	switch w {
	case PlayerWins:
		return "player"
	case DealerWins:
		return "dealer"
	default:
		return "none"
	}
}

// Reason records why a round resolved the way it did
type Reason int

const (
	ReasonNone Reason = iota
	PlayerBlackjack
	DealerBlackjack
	PlayerBust
	DealerBust
	HigherTotal
	Push
)

// String returns the string representation of a reason
func (r Reason) String() string {
	switch r {
	case PlayerBlackjack:
		return "player_blackjack"
	case DealerBlackjack:
		return "dealer_blackjack"
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	case HigherTotal:
		return "higher_total"
	case Push:
		return "push"
	default:
		return "none"
	}
}

// Round is a single hand of play. It is created fresh per hand and never
// reused.
type Round struct {
	ID     string
	Player *Participant
	Dealer *Participant
	Phase  Phase
	Winner Winner
	Reason Reason

	deck       *cards.Deck
	deckAnchor Anchor
	standOn    int
	bus        EventBus
	logger     *log.Logger
	counted    bool
}

func newRound(id string, deck *cards.Deck, deckAnchor Anchor, standOn int, bus EventBus, logger *log.Logger) *Round {
	return &Round{
		ID:         id,
		Player:     newParticipant(PlayerRole),
		Dealer:     newParticipant(DealerRole),
		Phase:      Dealing,
		deck:       deck,
		deckAnchor: deckAnchor,
		standOn:    standOn,
		bus:        bus,
		logger:     logger,
	}
}

// dealInitial deals Player, Dealer, Player, Dealer and applies the natural
// blackjack shortcut. A two-way 21 goes to the Player; there is no push check.
func (r *Round) dealInitial() error {
	order := [...]*Participant{r.Player, r.Dealer, r.Player, r.Dealer}
	for _, p := range order {
		if err := r.dealTo(p); err != nil {
			return err
		}
	}

	switch {
	case r.Player.Hand.Total() == BlackjackTotal:
		r.resolve(PlayerWins, PlayerBlackjack)
	case r.Dealer.Hand.Total() == BlackjackTotal:
		r.resolve(DealerWins, DealerBlackjack)
	default:
		r.Phase = PlayerTurn
	}
	return nil
}

// hit deals one card to the player
func (r *Round) hit() error {
	if r.Phase != PlayerTurn {
		return fmt.Errorf("%w: cannot hit during %s", ErrInvalidAction, r.Phase)
	}
	if err := r.dealTo(r.Player); err != nil {
		return err
	}
	if r.Player.Hand.IsBust() {
		r.resolve(DealerWins, PlayerBust)
	}
	return nil
}

// stand ends the player's turn, plays out the dealer and resolves the round
func (r *Round) stand() error {
	if r.Phase != PlayerTurn {
		return fmt.Errorf("%w: cannot stand during %s", ErrInvalidAction, r.Phase)
	}
	r.Phase = DealerTurn

	for r.Dealer.Hand.Total() < r.standOn {
		if err := r.dealTo(r.Dealer); err != nil {
			return err
		}
		if r.Dealer.Hand.IsBust() {
			r.resolve(PlayerWins, DealerBust)
			return nil
		}
	}

	player, dealer := r.Player.Hand.Total(), r.Dealer.Hand.Total()
	switch {
	case r.Player.Hand.IsNatural():
		r.resolve(PlayerWins, PlayerBlackjack)
	case dealer > player:
		r.resolve(DealerWins, HigherTotal)
	case dealer < player:
		r.resolve(PlayerWins, HigherTotal)
	default:
		r.resolve(NoWinner, Push)
	}
	return nil
}

// dealTo deals the top card to p and publishes it for animation
func (r *Round) dealTo(p *Participant) error {
	card, err := r.deck.Deal()
	if err != nil {
		r.Phase = Aborted
		r.logger.Error("Deal failed, aborting round", "round", r.ID, "participant", p.Name(), "error", err)
		return fmt.Errorf("%w: dealing to %s in round %s: %w", ErrInternal, p.Name(), r.ID, err)
	}

	index := p.Hand.Len()
	value := p.Hand.add(card)
	hidden := p.Role == DealerRole && index == 0

	r.logger.Debug("Dealt card",
		"round", r.ID,
		"participant", p.Name(),
		"card", card.Code(),
		"total", value.Total,
		"soft", value.Soft)

	r.bus.Publish(NewCardDealtEvent(r.ID, p.Role, card, index, hidden, r.deckAnchor, p.CardAnchor(index)))
	return nil
}

func (r *Round) resolve(w Winner, reason Reason) {
	r.Phase = Resolved
	r.Winner = w
	r.Reason = reason

	r.logger.Info("Round resolved",
		"round", r.ID,
		"winner", w,
		"reason", reason,
		"player_total", r.Player.Hand.Total(),
		"dealer_total", r.Dealer.Hand.Total())

	r.bus.Publish(NewRoundEndEvent(r.ID, w, reason, r.Player.Hand.Total(), r.Dealer.Hand.Total()))
}
