package simulator

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNewDefaults(t *testing.T) {
	sim := New(Config{Rounds: 3, Workers: 8, Seed: 1, Logger: quietLogger()})

	assert.Equal(t, 3, sim.config.Workers, "workers capped at rounds")
	assert.Equal(t, DefaultStandOn, sim.config.StandOn)

	sim = New(Config{Rounds: 100})
	assert.Positive(t, sim.config.Workers)
	assert.NotNil(t, sim.config.Logger)
}

func TestRunCountsEveryRound(t *testing.T) {
	stats, err := RunSimulation(context.Background(), 500, 4, 12345, 17, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 500, stats.Rounds)
	assert.Equal(t, stats.Rounds, stats.PlayerWins+stats.DealerWins+stats.Pushes)
	assert.Positive(t, stats.PlayerWins)
	assert.Positive(t, stats.DealerWins)
	assert.GreaterOrEqual(t, stats.PlayerBusts, 0)
	assert.InDelta(t, float64(stats.PlayerWins)/500, stats.WinRate(), 1e-9)
}

func TestRunIsDeterministic(t *testing.T) {
	first, err := RunSimulation(context.Background(), 200, 3, 99, 17, quietLogger())
	require.NoError(t, err)
	second, err := RunSimulation(context.Background(), 200, 3, 99, 17, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStandOnLowNeverBusts(t *testing.T) {
	// Standing on anything means the player never hits and so never busts
	stats, err := RunSimulation(context.Background(), 300, 2, 7, 1, quietLogger())
	require.NoError(t, err)
	assert.Zero(t, stats.PlayerBusts)
}

func TestAggressiveStrategyBustsMore(t *testing.T) {
	cautious, err := RunSimulation(context.Background(), 1000, 4, 3, 12, quietLogger())
	require.NoError(t, err)
	reckless, err := RunSimulation(context.Background(), 1000, 4, 3, 21, quietLogger())
	require.NoError(t, err)

	assert.Greater(t, reckless.PlayerBusts, cautious.PlayerBusts)
}

func TestRunRejectsNoRounds(t *testing.T) {
	_, err := New(Config{Rounds: 0, Logger: quietLogger()}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunSimulation(ctx, 100, 2, 1, 17, quietLogger())
	assert.ErrorIs(t, err, context.Canceled)
}
