package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/session"
)

const laneWidth = 24

var reasonText = map[blackjack.Reason]string{
	blackjack.PlayerBlackjack: "Blackjack!",
	blackjack.DealerBlackjack: "Dealer has blackjack",
	blackjack.PlayerBust:      "You bust",
	blackjack.DealerBust:      "Dealer busts",
	blackjack.HigherTotal:     "Higher total",
	blackjack.Push:            "Equal totals",
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.session.State() == session.Paused:
		body = m.renderPause()
	case m.session.Underlying() == session.Menu:
		body = m.renderMenu()
	default:
		body = m.renderTable()
	}

	sections := []string{HeaderStyle.Render("♠ Blackjack"), "", body}
	if m.notice != "" {
		sections = append(sections, "", ErrorStyle.Render(m.notice))
	}
	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderMenu() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("♠ ♥  B L A C K J A C K  ♦ ♣"))
	b.WriteString("\n\n")
	b.WriteString("Press enter to deal a hand.\n")
	b.WriteString(InfoStyle.Render("Dealer stands on 17. Blackjack wins outright."))

	stats := m.engine.Stats()
	if stats.Rounds > 0 {
		b.WriteString("\n\n")
		b.WriteString(HandInfoStyle.Render(fmt.Sprintf("Rounds: %d  Won: %d  Lost: %d  Tied: %d",
			stats.Rounds, stats.PlayerWins, stats.DealerWins, stats.Pushes)))
	}
	return b.String()
}

func (m *Model) renderTable() string {
	view, ok := m.session.View()
	if !ok {
		return InfoStyle.Render("Shuffling...")
	}

	dealerCards := view.DealerCards[:min(m.queue.Landed(blackjack.DealerRole), len(view.DealerCards))]
	playerCards := view.PlayerCards[:min(m.queue.Landed(blackjack.PlayerRole), len(view.PlayerCards))]

	dealerHand := blackjack.HandFromCards(dealerCards...)
	dealerTotal := dealerHand.Total()
	if view.DealerHidden {
		dealerTotal = dealerHand.VisibleTotal()
	}
	playerHand := blackjack.HandFromCards(playerCards...)

	rows := []string{
		HandInfoStyle.Render(fmt.Sprintf("Dealer  %d", dealerTotal)),
		renderHand(dealerCards, view.DealerHidden),
		"",
		HandInfoStyle.Render("You     " + describeTotal(playerHand)),
		renderHand(playerCards, false),
		"",
	}

	busy := m.queue.Busy()
	switch {
	case busy:
		rows = append(rows, m.renderLane())
	case view.Status == blackjack.Over:
		rows = append(rows, renderBanner(view))
	default:
		rows = append(rows, WarningStyle.Render("Hit or stand?"))
	}
	rows = append(rows, InfoStyle.Render(fmt.Sprintf("Round %s · %d cards left", shortID(view.RoundID), view.CardsRemaining)))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func describeTotal(h *blackjack.Hand) string {
	switch {
	case h.Len() == 0:
		return ""
	case h.IsNatural():
		return "21 (blackjack)"
	case h.IsBust():
		return fmt.Sprintf("%d (bust)", h.Total())
	case h.Soft():
		return fmt.Sprintf("%d (soft)", h.Total())
	default:
		return fmt.Sprintf("%d", h.Total())
	}
}

// renderHand draws cards side by side; the first is face down when hideFirst is set
func renderHand(cs []cards.Card, hideFirst bool) string {
	if len(cs) == 0 {
		return InfoStyle.Render("(no cards)")
	}
	faces := make([]string, len(cs))
	for i, c := range cs {
		if i == 0 && hideFirst {
			faces[i] = CardFrameStyle.Render(HiddenCardStyle.Render("░░"))
			continue
		}
		faces[i] = CardFrameStyle.Render(formatCard(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, faces...)
}

func formatCard(c cards.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// renderLane shows the travelling card between the deck and its hand
func (m *Model) renderLane() string {
	move, progress, ok := m.queue.InFlight()
	if !ok {
		return ""
	}
	face := "▒▒"
	if !move.Hidden {
		face = formatCard(move.Card)
	}
	pos := int(progress * float64(laneWidth-1))
	lane := strings.Repeat("·", pos) + "▸" + strings.Repeat("·", laneWidth-1-pos)
	return fmt.Sprintf("%s deck %s %s", face, lane, move.Participant)
}

func renderBanner(view blackjack.RoundView) string {
	style := BannerStyle
	switch view.Winner {
	case blackjack.PlayerWins:
		style = style.Foreground(SuccessStyle.GetForeground())
	case blackjack.DealerWins:
		style = style.Foreground(ErrorStyle.GetForeground())
	}
	text := view.Message()
	if reason := reasonText[view.Reason]; reason != "" {
		text += "  " + reason
	}
	return style.Render(text)
}

func (m *Model) renderPause() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("PAUSED"))
	b.WriteString("\n\n")

	if m.playlist == nil || m.playlist.Len() == 0 {
		b.WriteString(InfoStyle.Render("No music"))
		return PanelStyle.Render(b.String())
	}

	status := ""
	switch {
	case m.playlist.Muted():
		status = " [muted]"
	case m.playlist.Paused():
		status = " [paused]"
	}
	b.WriteString(fmt.Sprintf("♪ %s%s\n", m.playlist.Title(), status))
	b.WriteString(fmt.Sprintf("Volume %s %3.0f%%", m.volume.ViewAs(m.playlist.Volume()), m.playlist.Volume()*100))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()[1:]))
	return PanelStyle.Render(b.String())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
