package blackjack

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/roundid"
)

// Stats counts the outcomes of resolved rounds
type Stats struct {
	Rounds     int
	PlayerWins int
	DealerWins int
	Pushes     int
}

// Engine is the boundary between the presentation layer and the round
// engine. It owns at most one round and is driven from a single goroutine.
type Engine struct {
	rng        *rand.Rand
	logger     *log.Logger
	bus        EventBus
	decks      DeckSource
	deckAnchor Anchor
	standOn    int
	ids        *roundid.Generator

	round *Round
	stats Stats
}

// NewEngine creates an engine. The RNG is required so that deck order is
// always explicit and reproducible from a seed.
func NewEngine(rng *rand.Rand, logger *log.Logger, opts ...EngineOption) *Engine {
	if rng == nil {
		panic("rng is required for engine creation")
	}

	cfg := &engineConfig{
		decks:      ShuffledDecks,
		deckAnchor: DeckAnchor,
		standOn:    DealerStandsOn,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}

	return &Engine{
		rng:        rng,
		logger:     logger.WithPrefix("engine"),
		bus:        cfg.bus,
		decks:      cfg.decks,
		deckAnchor: cfg.deckAnchor,
		standOn:    cfg.standOn,
		ids:        roundid.NewGenerator(rng),
	}
}

// EventBus returns the bus round events are published on
func (e *Engine) EventBus() EventBus {
	return e.bus
}

// NewRound discards any current round, deals a fresh one and returns its state.
func (e *Engine) NewRound() (RoundView, error) {
	if e.round != nil && e.round.Phase.Status() == Active {
		e.abandon()
	}

	r := newRound(e.ids.Next(), e.decks(e.rng), e.deckAnchor, e.standOn, e.bus, e.logger)
	e.round = r

	e.logger.Info("Starting round", "round", r.ID)
	e.bus.Publish(NewRoundStartEvent(r.ID))

	if err := r.dealInitial(); err != nil {
		return e.fail(err)
	}
	e.record()
	return r.view(), nil
}

// Hit deals one more card to the player. Valid only during PlayerTurn.
func (e *Engine) Hit() (RoundView, error) {
	if e.round == nil {
		return RoundView{}, fmt.Errorf("%w: no round in progress", ErrInvalidAction)
	}
	if err := e.round.hit(); err != nil {
		return e.fail(err)
	}
	e.record()
	return e.round.view(), nil
}

// Stand ends the player's turn. The dealer plays out and the round resolves
// before Stand returns.
func (e *Engine) Stand() (RoundView, error) {
	if e.round == nil {
		return RoundView{}, fmt.Errorf("%w: no round in progress", ErrInvalidAction)
	}
	if err := e.round.stand(); err != nil {
		return e.fail(err)
	}
	e.record()
	return e.round.view(), nil
}

// ReturnToMenu discards the current round, resolved or not.
func (e *Engine) ReturnToMenu() {
	if e.round == nil {
		return
	}
	if e.round.Phase.Status() == Active {
		e.abandon()
	}
	e.round = nil
}

// View returns the current round snapshot, if there is a round
func (e *Engine) View() (RoundView, bool) {
	if e.round == nil {
		return RoundView{}, false
	}
	return e.round.view(), true
}

// Stats returns the outcome counters for resolved rounds
func (e *Engine) Stats() Stats {
	return e.stats
}

// fail handles an error from the round. Invalid actions leave the round
// untouched; anything else aborts and discards it.
func (e *Engine) fail(err error) (RoundView, error) {
	r := e.round
	if errors.Is(err, ErrInvalidAction) {
		return r.view(), err
	}

	r.Phase = Aborted
	view := r.view()
	e.bus.Publish(NewRoundAbandonEvent(r.ID, r.Phase))
	e.round = nil
	return view, err
}

func (e *Engine) abandon() {
	e.logger.Info("Abandoning round", "round", e.round.ID, "phase", e.round.Phase)
	e.bus.Publish(NewRoundAbandonEvent(e.round.ID, e.round.Phase))
}

// record counts the round once, when it first reaches Resolved
func (e *Engine) record() {
	r := e.round
	if r.Phase != Resolved || r.counted {
		return
	}
	r.counted = true
	e.stats.Rounds++
	switch r.Winner {
	case PlayerWins:
		e.stats.PlayerWins++
	case DealerWins:
		e.stats.DealerWins++
	default:
		e.stats.Pushes++
	}
}
