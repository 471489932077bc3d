package blackjack

import "github.com/lox/blackjack/internal/cards"

// RoundView is a read-only snapshot of a round for the presentation layer
type RoundView struct {
	RoundID     string
	Phase       Phase
	Status      Status
	PlayerCards []cards.Card
	DealerCards []cards.Card
	// DealerHidden is true while the dealer's first card is face down
	DealerHidden bool
	PlayerTotal  int
	PlayerSoft   bool
	// DealerVisibleTotal excludes the face-down card while the round is active
	DealerVisibleTotal int
	Winner             Winner
	Reason             Reason
	CardsRemaining     int
}

func (r *Round) view() RoundView {
	status := r.Phase.Status()
	v := RoundView{
		RoundID:        r.ID,
		Phase:          r.Phase,
		Status:         status,
		PlayerCards:    r.Player.Hand.Cards(),
		DealerCards:    r.Dealer.Hand.Cards(),
		DealerHidden:   status == Active,
		PlayerTotal:    r.Player.Hand.Total(),
		PlayerSoft:     r.Player.Hand.Soft(),
		Winner:         r.Winner,
		Reason:         r.Reason,
		CardsRemaining: r.deck.Remaining(),
	}
	if status == Active {
		v.DealerVisibleTotal = r.Dealer.Hand.VisibleTotal()
	} else {
		v.DealerVisibleTotal = r.Dealer.Hand.Total()
	}
	return v
}

// CanAct reports whether hit and stand are accepted
func (v RoundView) CanAct() bool {
	return v.Phase == PlayerTurn
}

// Message returns the banner text for a resolved round
func (v RoundView) Message() string {
	if v.Phase != Resolved {
		return ""
	}
	switch v.Winner {
	case PlayerWins:
		return "You win!"
	case DealerWins:
		return "Dealer wins!"
	default:
		return "It's a tie!"
	}
}
