package statistics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWriteFile(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{Winner: blackjack.PlayerWins, Reason: blackjack.DealerBust})
	stats.Add(RoundResult{Winner: blackjack.DealerWins, Reason: blackjack.PlayerBust})

	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	report := stats.Report(42, 17, 2)
	require.NoError(t, report.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, report, got)
	assert.Equal(t, map[string]int{"dealer_bust": 1, "player_bust": 1}, got.ByReason)
	assert.Equal(t, 0.5, got.WinRate)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestReportWriteFileMissingDir(t *testing.T) {
	report := (&Statistics{}).Report(1, 17, 1)
	err := report.WriteFile(filepath.Join(t.TempDir(), "nope", "report.json"))
	assert.Error(t, err)
}
