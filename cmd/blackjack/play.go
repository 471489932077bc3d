package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/music"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/tui"
)

type PlayCmd struct {
	MusicDir string `help:"Directory of background music (.ogg, .mp3, .wav)" type:"path"`
	NoMusic  bool   `help:"Disable background music"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.MusicDir != "" {
		cfg.Music.Dir = c.MusicDir
	}
	if c.NoMusic {
		cfg.Music.Enabled = false
	}

	logFile, logger, err := openLogFile(cfg.UI.LogFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			logger.Error("Failed to close log file", "error", err)
		}
	}()

	tui.ConfigureColor(cfg.UI.Color)

	seed := randutil.Resolve(cfg.Game.Seed)
	seeds := randutil.Split(seed, 2)
	logger.Info("Starting blackjack", "seed", seed, "dealMs", cfg.Game.DealAnimationMS)

	engine := blackjack.NewEngine(randutil.New(seeds[0]), logger,
		blackjack.WithDealerStandsOn(cfg.Game.DealerStandsOn))
	opts := []tui.Option{tui.WithDealDuration(cfg.DealDuration())}

	if cfg.Music.Enabled {
		tracks, err := music.Scan(cfg.Music.Dir)
		if err != nil {
			logger.Warn("Music disabled", "error", err)
		} else {
			logger.Info("Music loaded", "dir", cfg.Music.Dir, "tracks", len(tracks))
			playlist := music.NewPlaylist(tracks, music.NewLogOutput(logger), randutil.New(seeds[1]), logger,
				music.Options{Shuffle: cfg.Music.Shuffle, Volume: cfg.Music.Volume})
			opts = append(opts, tui.WithPlaylist(playlist))
		}
	}

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	model := tui.NewModel(engine, quartz.NewReal(), logger, opts...)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running TUI: %w", err)
	}

	stats := engine.Stats()
	logger.Info("Session finished",
		"rounds", stats.Rounds,
		"wins", stats.PlayerWins,
		"losses", stats.DealerWins,
		"pushes", stats.Pushes)
	return nil
}
