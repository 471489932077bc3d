// Package blackjack implements the single-table blackjack round engine.
//
// The main type is Engine, which owns at most one Round at a time. A Round
// holds one freshly shuffled deck and exactly two participants, the Player
// and the Dealer, and moves through a fixed set of phases:
//
//	Dealing -> PlayerTurn -> DealerTurn -> Resolved
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	e := blackjack.NewEngine(rng, logger)
//	view, err := e.NewRound()
//	if view.Phase == blackjack.PlayerTurn {
//	    view, err = e.Hit()
//	    view, err = e.Stand()
//	}
//	fmt.Println(view.Message())
//
// # Deterministic Testing
//
// Supply a deck source that returns stacked decks to script a round card by
// card:
//
//	deck := cards.NewStackedDeck(cards.MustParseCards("9H TC 9D 8S")...)
//	e := blackjack.NewEngine(rng, logger, blackjack.WithDeckSource(blackjack.FixedDecks(deck)))
//
// # Presentation
//
// The engine never renders. Every dealt card is published on the EventBus as
// a CardDealtEvent carrying the card, its hand index and its source and
// destination anchors, and RoundView is the read-only snapshot the
// presentation layer draws each frame.
package blackjack
