// Package session sequences the game between the menu, a round in play,
// the pause overlay and the end-of-round screen.
package session

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/blackjack"
)

// ErrInvalidTransition is returned for an input the current state does not accept
var ErrInvalidTransition = errors.New("invalid session transition")

// State is a session state
type State int

const (
	Menu State = iota
	InRound
	Paused
	RoundOver
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case InRound:
		return "in_round"
	case Paused:
		return "paused"
	case RoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// Engine is the part of the round engine a session drives
type Engine interface {
	NewRound() (blackjack.RoundView, error)
	Hit() (blackjack.RoundView, error)
	Stand() (blackjack.RoundView, error)
	ReturnToMenu()
}

// Session owns the current state explicitly; pausing remembers the state
// it interrupted and never touches the round.
type Session struct {
	engine   Engine
	logger   *log.Logger
	state    State
	previous State
	view     blackjack.RoundView
	hasView  bool
}

// New creates a session in the Menu state
func New(engine Engine, logger *log.Logger) *Session {
	return &Session{
		engine: engine,
		logger: logger.WithPrefix("session"),
		state:  Menu,
	}
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Underlying returns the state being displayed: the interrupted state while
// paused, the current state otherwise.
func (s *Session) Underlying() State {
	if s.state == Paused {
		return s.previous
	}
	return s.state
}

// View returns the latest round snapshot while a round is on the table
func (s *Session) View() (blackjack.RoundView, bool) {
	return s.view, s.hasView
}

// Start leaves the menu and deals the first round
func (s *Session) Start() error {
	if s.state != Menu {
		return s.reject("start")
	}
	return s.deal()
}

// PlayAgain deals a brand-new round after one has finished
func (s *Session) PlayAgain() error {
	if s.state != RoundOver {
		return s.reject("play again")
	}
	return s.deal()
}

// Hit forwards a hit to the engine
func (s *Session) Hit() error {
	return s.act("hit", s.engine.Hit)
}

// Stand forwards a stand to the engine
func (s *Session) Stand() error {
	return s.act("stand", s.engine.Stand)
}

// TogglePause enters the pause overlay, or leaves it for the state it interrupted
func (s *Session) TogglePause() error {
	switch s.state {
	case Paused:
		s.transition(s.previous)
	case Menu, InRound, RoundOver:
		s.previous = s.state
		s.transition(Paused)
	default:
		return s.reject("pause")
	}
	return nil
}

// ReturnToMenu abandons any round and goes back to the menu
func (s *Session) ReturnToMenu() error {
	if s.state == Menu {
		return s.reject("return to menu")
	}
	s.engine.ReturnToMenu()
	s.view, s.hasView = blackjack.RoundView{}, false
	s.previous = Menu
	s.transition(Menu)
	return nil
}

func (s *Session) deal() error {
	view, err := s.engine.NewRound()
	if err != nil {
		s.abort(err)
		return fmt.Errorf("dealing new round: %w", err)
	}
	s.settle(view)
	return nil
}

func (s *Session) act(name string, fn func() (blackjack.RoundView, error)) error {
	if s.state != InRound {
		return s.reject(name)
	}
	view, err := fn()
	if err != nil {
		if errors.Is(err, blackjack.ErrInvalidAction) {
			return err
		}
		s.abort(err)
		return fmt.Errorf("%s: %w", name, err)
	}
	s.settle(view)
	return nil
}

// settle records a snapshot and moves to RoundOver once the round is over
func (s *Session) settle(view blackjack.RoundView) {
	s.view, s.hasView = view, true
	if view.Status == blackjack.Over {
		s.transition(RoundOver)
	} else {
		s.transition(InRound)
	}
}

// abort handles an engine failure: the round is gone, so go back to the menu
func (s *Session) abort(err error) {
	s.logger.Error("Round aborted", "error", err)
	s.view, s.hasView = blackjack.RoundView{}, false
	s.transition(Menu)
}

func (s *Session) transition(to State) {
	if s.state != to {
		s.logger.Debug("Session transition", "from", s.state, "to", to)
	}
	s.state = to
}

func (s *Session) reject(input string) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, input, s.state)
}
