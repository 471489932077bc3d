package tui

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/music"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	ConfigureColor(false)
	os.Exit(m.Run())
}

// Player gets TH 7S (17), dealer 6C 9D (15) and draws 5H on stand
const standDeck = "TH 6C 7S 9D 5H 2C"

func newTestModel(t *testing.T, deal time.Duration, rounds []string, opts ...Option) (*Model, *quartz.Mock) {
	t.Helper()

	decks := make([]*cards.Deck, len(rounds))
	for i, r := range rounds {
		decks[i] = cards.NewStackedDeck(cards.MustParseCards(r)...)
	}
	logger := log.New(io.Discard)
	engine := blackjack.NewEngine(randutil.New(1), logger,
		blackjack.WithDeckSource(blackjack.FixedDecks(decks...)))

	clock := quartz.NewMock(t)
	opts = append([]Option{WithDealDuration(deal)}, opts...)
	return NewModel(engine, clock, logger, opts...), clock
}

func press(t *testing.T, m *Model, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func advance(t *testing.T, clock *quartz.Mock, d time.Duration) {
	t.Helper()
	clock.Advance(d).MustWait(context.Background())
}

func playerCards(t *testing.T, m *Model) int {
	t.Helper()
	view, ok := m.session.View()
	require.True(t, ok)
	return len(view.PlayerCards)
}

func TestMenuStartsRound(t *testing.T) {
	m, _ := newTestModel(t, 0, []string{standDeck})

	assert.Contains(t, m.View(), "B L A C K J A C K")
	assert.Equal(t, session.Menu, m.State())

	press(t, m, "enter")
	require.Equal(t, session.InRound, m.State())

	out := m.View()
	assert.Contains(t, out, "T♥")
	assert.Contains(t, out, "7♠")
	assert.Contains(t, out, "9♦")
	assert.Contains(t, out, "░░", "hole card is face down")
	assert.NotContains(t, out, "6♣")
	assert.Contains(t, out, "Dealer  9")
	assert.Contains(t, out, "You     17")
	assert.Contains(t, out, "Hit or stand?")
}

func TestStandRevealsDealer(t *testing.T) {
	m, _ := newTestModel(t, 0, []string{standDeck})

	press(t, m, "enter", "s")
	require.Equal(t, session.RoundOver, m.State())

	out := m.View()
	assert.Contains(t, out, "6♣")
	assert.Contains(t, out, "5♥")
	assert.Contains(t, out, "Dealer  20")
	assert.Contains(t, out, "Dealer wins!")
	assert.Contains(t, out, "Higher total")
}

func TestHitToBust(t *testing.T) {
	m, _ := newTestModel(t, 0, []string{standDeck})

	press(t, m, "enter", "h")
	require.Equal(t, session.RoundOver, m.State())

	out := m.View()
	assert.Contains(t, out, "22 (bust)")
	assert.Contains(t, out, "You bust")
}

func TestPlayAgainDealsFreshRound(t *testing.T) {
	m, _ := newTestModel(t, 0, []string{standDeck, "9H 8C 9S 8D"})

	press(t, m, "enter", "s")
	require.Equal(t, session.RoundOver, m.State())

	press(t, m, "enter")
	require.Equal(t, session.InRound, m.State())
	assert.Contains(t, m.View(), "You     18")
	assert.Equal(t, 1, m.engine.Stats().Rounds)
}

func TestInputGatedWhileDealing(t *testing.T) {
	m, clock := newTestModel(t, 100*time.Millisecond, []string{standDeck})

	press(t, m, "enter")
	assert.Equal(t, 4, m.Queue().Pending())

	press(t, m, "h")
	assert.Equal(t, 2, playerCards(t, m), "hit ignored while cards travel")
	assert.Contains(t, m.View(), "deck")

	advance(t, clock, 400*time.Millisecond)
	press(t, m, "h")
	assert.Equal(t, 3, playerCards(t, m))
}

func TestSkipLandsCards(t *testing.T) {
	m, _ := newTestModel(t, 100*time.Millisecond, []string{standDeck})

	press(t, m, "enter", "tab")
	assert.Zero(t, m.Queue().Pending())

	press(t, m, "s")
	assert.Equal(t, session.RoundOver, m.State())
}

func TestBannerWaitsForCards(t *testing.T) {
	// Player AH KD natural, dealer 9C 7S
	m, clock := newTestModel(t, 100*time.Millisecond, []string{"AH 9C KD 7S"})

	press(t, m, "enter")
	require.Equal(t, session.RoundOver, m.State())
	assert.NotContains(t, m.View(), "You win!")

	advance(t, clock, 400*time.Millisecond)
	out := m.View()
	assert.Contains(t, out, "You win!")
	assert.Contains(t, out, "Blackjack!")
	assert.Contains(t, out, "21 (blackjack)")
}

func TestFrameAdvancesQueue(t *testing.T) {
	m, clock := newTestModel(t, 100*time.Millisecond, []string{standDeck})

	press(t, m, "enter")
	advance(t, clock, 250*time.Millisecond)

	_, cmd := m.Update(frameMsg(clock.Now()))
	assert.NotNil(t, cmd, "frames keep ticking")
	assert.Equal(t, 2, m.Queue().Pending())
}

func TestPauseOverlay(t *testing.T) {
	m, _ := newTestModel(t, 0, []string{standDeck})

	press(t, m, "enter", "p")
	require.Equal(t, session.Paused, m.State())

	out := m.View()
	assert.Contains(t, out, "PAUSED")
	assert.Contains(t, out, "No music")

	press(t, m, "h")
	assert.Equal(t, 2, playerCards(t, m), "no play while paused")

	press(t, m, "p")
	assert.Equal(t, session.InRound, m.State())
}

func TestPauseFreezesDealing(t *testing.T) {
	m, clock := newTestModel(t, 100*time.Millisecond, []string{standDeck})

	press(t, m, "enter", "p")
	advance(t, clock, time.Second)
	press(t, m, "p")

	assert.Equal(t, 4, m.Queue().Pending())
	assert.True(t, m.Queue().Busy())
}

func TestReturnToMenu(t *testing.T) {
	m, _ := newTestModel(t, 100*time.Millisecond, []string{standDeck, standDeck})

	press(t, m, "enter", "esc")
	require.Equal(t, session.Menu, m.State())
	assert.Zero(t, m.Queue().Pending())
	assert.Zero(t, m.engine.Stats().Rounds, "abandoned rounds are not counted")

	press(t, m, "enter", "p", "esc")
	require.Equal(t, session.Menu, m.State())
	assert.Contains(t, m.View(), "B L A C K J A C K")
}

func TestRoundAbortedNotice(t *testing.T) {
	m, _ := newTestModel(t, 0, []string{"TH 6C 7S"})

	press(t, m, "enter")
	assert.Equal(t, session.Menu, m.State())
	assert.Contains(t, m.View(), "Round aborted")
}

func TestHelpFollowsState(t *testing.T) {
	m, clock := newTestModel(t, 100*time.Millisecond, []string{standDeck})

	out := m.View()
	assert.Contains(t, out, "enter deal")
	assert.NotContains(t, out, "h hit")

	press(t, m, "enter")
	out = m.View()
	assert.Contains(t, out, "tab skip dealing")
	assert.NotContains(t, out, "h hit")

	advance(t, clock, 400*time.Millisecond)
	m.Update(frameMsg(clock.Now()))
	out = m.View()
	assert.Contains(t, out, "h hit")
	assert.Contains(t, out, "s stand")
}

func TestMusicControls(t *testing.T) {
	logger := log.New(io.Discard)
	playlist := music.NewPlaylist([]string{"music/one.ogg", "music/two.ogg"},
		music.NewLogOutput(logger), nil, logger, music.Options{Volume: music.DefaultVolume})
	m, _ := newTestModel(t, 0, []string{standDeck}, WithPlaylist(playlist))

	m.Init()
	assert.Equal(t, "one", playlist.Title())

	press(t, m, "n")
	assert.Equal(t, "two", playlist.Title())
	press(t, m, "b")
	assert.Equal(t, "one", playlist.Title())

	press(t, m, "m")
	assert.True(t, playlist.Muted())
	press(t, m, "+")
	assert.False(t, playlist.Muted())
	assert.InDelta(t, 0.1, playlist.Volume(), 1e-9)

	press(t, m, "o")
	assert.True(t, playlist.Paused())

	press(t, m, "p")
	out := m.View()
	assert.Contains(t, out, "♪ one [paused]")
	assert.Contains(t, out, "Volume")
	assert.Contains(t, out, "10%")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, 0, nil)

	cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
