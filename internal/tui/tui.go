// Package tui is the terminal presentation layer: a Bubble Tea model over a
// game session, pacing dealt cards through an animation queue.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/anim"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/music"
	"github.com/lox/blackjack/internal/session"
)

// DefaultFrameInterval is the redraw rate while the model runs
const DefaultFrameInterval = time.Second / 30

const volumeStep = 0.1

// frameMsg is the per-frame tick
type frameMsg time.Time

// Option configures a Model during creation
type Option func(*modelConfig)

type modelConfig struct {
	playlist     *music.Playlist
	dealDuration time.Duration
	frame        time.Duration
}

// WithPlaylist enables the background-music controls
func WithPlaylist(p *music.Playlist) Option {
	return func(c *modelConfig) {
		c.playlist = p
	}
}

// WithDealDuration sets how long each dealt card takes to arrive
func WithDealDuration(d time.Duration) Option {
	return func(c *modelConfig) {
		c.dealDuration = d
	}
}

// WithFrameInterval sets the redraw rate
func WithFrameInterval(d time.Duration) Option {
	return func(c *modelConfig) {
		c.frame = d
	}
}

// Model is the Bubble Tea model for the game
type Model struct {
	engine   *blackjack.Engine
	session  *session.Session
	queue    *anim.Queue
	playlist *music.Playlist
	logger   *log.Logger

	keys   keyMap
	help   help.Model
	volume progress.Model
	frame  time.Duration

	notice   string
	width    int
	height   int
	quitting bool
}

// NewModel creates the model and subscribes its animation queue to the engine
func NewModel(engine *blackjack.Engine, clock quartz.Clock, logger *log.Logger, opts ...Option) *Model {
	cfg := &modelConfig{
		dealDuration: anim.DefaultDuration,
		frame:        DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	queue := anim.NewQueue(clock, cfg.dealDuration)
	engine.EventBus().Subscribe(queue)

	m := &Model{
		engine:   engine,
		session:  session.New(engine, logger),
		queue:    queue,
		playlist: cfg.playlist,
		logger:   logger.WithPrefix("tui"),
		keys:     defaultKeyMap(),
		help:     help.New(),
		volume:   progress.New(progress.WithWidth(20), progress.WithoutPercentage(), progress.WithSolidFill("#04B575")),
		frame:    cfg.frame,
	}
	m.updateKeys()
	return m
}

// Init starts the frame ticker and the music
func (m *Model) Init() tea.Cmd {
	if m.playlist != nil {
		if err := m.playlist.Play(); err != nil {
			m.logger.Warn("Music unavailable", "error", err)
		}
	}
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.queue.Advance()
		m.updateKeys()
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.logger.Debug("Updating dimensions", "width", msg.Width, "height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		m.updateKeys()
		cmd := m.handleKey(msg)
		m.updateKeys()
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.togglePause()
		return nil
	case key.Matches(msg, m.keys.NextTrack):
		m.music((*music.Playlist).Next)
		return nil
	case key.Matches(msg, m.keys.PrevTrack):
		m.music((*music.Playlist).Previous)
		return nil
	case key.Matches(msg, m.keys.MusicPause):
		m.music(func(p *music.Playlist) error { p.TogglePause(); return nil })
		return nil
	case key.Matches(msg, m.keys.Mute):
		m.music(func(p *music.Playlist) error { p.ToggleMute(); return nil })
		return nil
	case key.Matches(msg, m.keys.VolumeUp):
		m.music(func(p *music.Playlist) error { p.SetVolume(p.Volume() + volumeStep); return nil })
		return nil
	case key.Matches(msg, m.keys.VolumeDown):
		m.music(func(p *music.Playlist) error { p.SetVolume(p.Volume() - volumeStep); return nil })
		return nil
	}

	switch m.session.State() {
	case session.Menu:
		if key.Matches(msg, m.keys.Play) {
			m.apply(m.session.Start)
		}

	case session.InRound, session.RoundOver:
		if key.Matches(msg, m.keys.Menu) {
			m.apply(m.session.ReturnToMenu)
			return nil
		}
		// Cards still travelling: only skipping is accepted
		if m.queue.Busy() {
			if key.Matches(msg, m.keys.Skip) {
				m.queue.Flush()
			}
			return nil
		}
		switch {
		case key.Matches(msg, m.keys.Hit):
			m.apply(m.session.Hit)
		case key.Matches(msg, m.keys.Stand):
			m.apply(m.session.Stand)
		case key.Matches(msg, m.keys.Play):
			m.apply(m.session.PlayAgain)
		}

	case session.Paused:
		if key.Matches(msg, m.keys.Menu) {
			m.queue.Resume()
			m.apply(m.session.ReturnToMenu)
		}
	}
	return nil
}

func (m *Model) togglePause() {
	if err := m.session.TogglePause(); err != nil {
		m.logger.Debug("Pause ignored", "error", err)
		return
	}
	if m.session.State() == session.Paused {
		m.queue.Pause()
	} else {
		m.queue.Resume()
	}
}

// apply runs a session input. Inputs that are not valid right now are ignored;
// anything else means the round was lost.
func (m *Model) apply(input func() error) {
	err := input()
	switch {
	case err == nil:
		m.notice = ""
	case errors.Is(err, session.ErrInvalidTransition), errors.Is(err, blackjack.ErrInvalidAction):
		m.logger.Debug("Input ignored", "error", err)
	default:
		m.logger.Error("Round aborted", "error", err)
		m.notice = "Round aborted: " + err.Error()
	}
}

func (m *Model) music(fn func(*music.Playlist) error) {
	if m.playlist == nil {
		return
	}
	if err := fn(m.playlist); err != nil {
		m.logger.Warn("Music control failed", "error", err)
	}
}

// updateKeys enables the bindings that mean something in the current state
func (m *Model) updateKeys() {
	state := m.session.State()
	busy := m.queue.Busy()
	acting := state == session.InRound && !busy

	m.keys.Play.SetEnabled(state == session.Menu || (state == session.RoundOver && !busy))
	m.keys.Hit.SetEnabled(acting)
	m.keys.Stand.SetEnabled(acting)
	m.keys.Skip.SetEnabled(busy && (state == session.InRound || state == session.RoundOver))
	m.keys.Menu.SetEnabled(state != session.Menu)

	musicOn := m.playlist != nil
	m.keys.NextTrack.SetEnabled(musicOn)
	m.keys.PrevTrack.SetEnabled(musicOn)
	m.keys.MusicPause.SetEnabled(musicOn)
	m.keys.Mute.SetEnabled(musicOn)
	m.keys.VolumeUp.SetEnabled(musicOn)
	m.keys.VolumeDown.SetEnabled(musicOn)

	if state == session.RoundOver {
		m.keys.Play.SetHelp("enter", "play again")
	} else {
		m.keys.Play.SetHelp("enter", "deal")
	}
	if state == session.Paused {
		m.keys.Pause.SetHelp("p", "resume")
	} else {
		m.keys.Pause.SetHelp("p", "pause")
	}
}

// State returns the session state
func (m *Model) State() session.State {
	return m.session.State()
}

// Queue returns the animation queue
func (m *Model) Queue() *anim.Queue {
	return m.queue
}
