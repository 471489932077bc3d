package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// DefaultStandOn is the player's stand threshold when none is configured
const DefaultStandOn = 17

// Config holds configuration for running simulations
type Config struct {
	Rounds  int
	Workers int
	Seed    int64
	// StandOn is the total at which the simulated player stops hitting
	StandOn int
	Logger  *log.Logger
}

// Simulator plays many headless rounds with a fixed hitting strategy
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Workers > config.Rounds && config.Rounds > 0 {
		config.Workers = config.Rounds
	}
	if config.StandOn <= 0 {
		config.StandOn = DefaultStandOn
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Workers returns the number of workers Run will use
func (s *Simulator) Workers() int {
	return s.config.Workers
}

// Run plays the configured rounds across workers and returns merged statistics.
// Results depend only on the seed, rounds and worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", s.config.Rounds)
	}

	workers := s.config.Workers
	perWorker := s.config.Rounds / workers
	remainder := s.config.Rounds % workers
	seeds := randutil.Split(s.config.Seed, workers)
	results := make([]*statistics.Statistics, workers)

	s.config.Logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"workers", workers,
		"seed", s.config.Seed,
		"standOn", s.config.StandOn)

	g, ctx := errgroup.WithContext(ctx)
	for w := range workers {
		rounds := perWorker
		if w < remainder {
			rounds++
		}
		g.Go(func() error {
			stats, err := s.runWorker(ctx, w, seeds[w], rounds)
			if err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = stats
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := &statistics.Statistics{}
	for _, r := range results {
		total.Merge(r)
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return total, nil
}

func (s *Simulator) runWorker(ctx context.Context, id int, seed int64, rounds int) (*statistics.Statistics, error) {
	logger := s.config.Logger.With("worker", id)
	// Per-round engine logs are only kept at debug level
	if logger.GetLevel() > log.DebugLevel {
		logger.SetLevel(log.WarnLevel)
	}
	engine := blackjack.NewEngine(randutil.New(seed), logger)
	stats := &statistics.Statistics{}

	for i := range rounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		view, err := s.playRound(engine)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		stats.Add(statistics.RoundResult{
			Winner:      view.Winner,
			Reason:      view.Reason,
			PlayerTotal: view.PlayerTotal,
			DealerTotal: view.DealerVisibleTotal,
			PlayerCards: len(view.PlayerCards),
		})
	}
	return stats, nil
}

// playRound deals a round and plays it out: hit below the threshold, then stand
func (s *Simulator) playRound(engine *blackjack.Engine) (blackjack.RoundView, error) {
	view, err := engine.NewRound()
	if err != nil {
		return view, err
	}
	for view.CanAct() && view.PlayerTotal < s.config.StandOn {
		if view, err = engine.Hit(); err != nil {
			return view, err
		}
	}
	if view.CanAct() {
		if view, err = engine.Stand(); err != nil {
			return view, err
		}
	}
	if view.Phase != blackjack.Resolved {
		return view, fmt.Errorf("round %s ended in phase %s", view.RoundID, view.Phase)
	}
	return view, nil
}

// RunSimulation is a convenience wrapper around New and Run
func RunSimulation(ctx context.Context, rounds, workers int, seed int64, standOn int, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Rounds:  rounds,
		Workers: workers,
		Seed:    seed,
		StandOn: standOn,
		Logger:  logger,
	}).Run(ctx)
}
