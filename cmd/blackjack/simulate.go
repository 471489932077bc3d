package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/internal/tui"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#1B5E20")).
	Padding(0, 1).
	Bold(true)

type SimulateCmd struct {
	Rounds  int    `short:"n" default:"10000" help:"Number of rounds to simulate"`
	Workers int    `short:"w" default:"0" help:"Parallel workers (0 uses every CPU)"`
	StandOn int    `default:"17" help:"Player hits below this total and stands at or above it"`
	Report  string `type:"path" help:"Also write the results as JSON to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	tui.ConfigureColor(cfg.UI.Color)

	logger, err := newLogger(os.Stderr, cfg.UI.LogLevel, "simulate")
	if err != nil {
		return err
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	seed := randutil.Resolve(cfg.Game.Seed)
	start := time.Now()

	sim := simulator.New(simulator.Config{
		Rounds:  c.Rounds,
		Workers: c.Workers,
		Seed:    seed,
		StandOn: c.StandOn,
		Logger:  logger,
	})
	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	printReport(stats, seed, c.StandOn, time.Since(start))

	if c.Report != "" {
		if err := stats.Report(seed, c.StandOn, sim.Workers()).WriteFile(c.Report); err != nil {
			return err
		}
		logger.Info("Report written", "path", c.Report)
	}
	return nil
}

func printReport(s *statistics.Statistics, seed int64, standOn int, elapsed time.Duration) {
	fmt.Println(titleStyle.Render(" ♠ ♥ Blackjack simulation ♦ ♣ "))
	fmt.Println()
	fmt.Printf("Seed: %d  Stand on: %d  Time: %s\n\n", seed, standOn, elapsed.Round(time.Millisecond))
	fmt.Printf("Rounds:            %d\n", s.Rounds)
	fmt.Printf("Player wins:       %d\n", s.PlayerWins)
	fmt.Printf("Dealer wins:       %d\n", s.DealerWins)
	fmt.Printf("Pushes:            %d\n", s.Pushes)
	fmt.Printf("Player blackjacks: %d\n", s.PlayerBlackjacks)
	fmt.Printf("Dealer blackjacks: %d\n", s.DealerBlackjacks)
	fmt.Printf("Player busts:      %d\n", s.PlayerBusts)
	fmt.Printf("Dealer busts:      %d\n", s.DealerBusts)
	fmt.Printf("Win rate:          %.2f%%\n", s.WinRate()*100)

	low, high := s.ConfidenceInterval95()
	fmt.Printf("Net per round:     %+.4f ± %.4f SE\n", s.Mean(), s.StdError())
	fmt.Printf("95%% CI:            [%+.4f, %+.4f]\n", low, high)
}
