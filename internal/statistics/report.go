package statistics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Report is the JSON form of a simulation run
type Report struct {
	Seed    int64   `json:"seed"`
	StandOn int     `json:"stand_on"`
	Workers int     `json:"workers"`
	Rounds  int     `json:"rounds"`
	Mean    float64 `json:"mean"`
	StdErr  float64 `json:"std_err"`
	WinRate float64 `json:"win_rate"`

	PlayerWins       int `json:"player_wins"`
	DealerWins       int `json:"dealer_wins"`
	Pushes           int `json:"pushes"`
	PlayerBlackjacks int `json:"player_blackjacks"`
	DealerBlackjacks int `json:"dealer_blackjacks"`
	PlayerBusts      int `json:"player_busts"`
	DealerBusts      int `json:"dealer_busts"`

	ByReason map[string]int `json:"by_reason"`
}

// Report summarises the statistics for a run
func (s *Statistics) Report(seed int64, standOn, workers int) Report {
	byReason := make(map[string]int, len(s.ByReason))
	for reason, n := range s.ByReason {
		byReason[reason.String()] = n
	}
	return Report{
		Seed:             seed,
		StandOn:          standOn,
		Workers:          workers,
		Rounds:           s.Rounds,
		Mean:             s.Mean(),
		StdErr:           s.StdError(),
		WinRate:          s.WinRate(),
		PlayerWins:       s.PlayerWins,
		DealerWins:       s.DealerWins,
		Pushes:           s.Pushes,
		PlayerBlackjacks: s.PlayerBlackjacks,
		DealerBlackjacks: s.DealerBlackjacks,
		PlayerBusts:      s.PlayerBusts,
		DealerBusts:      s.DealerBusts,
		ByReason:         byReason,
	}
}

// WriteFile writes the report as JSON. Readers see either the previous
// file or the complete new one, never a partial write.
func (r Report) WriteFile(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	// Same directory so the rename stays on one filesystem
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
