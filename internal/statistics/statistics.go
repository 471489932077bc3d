package statistics

import (
	"fmt"
	"math"

	"github.com/lox/blackjack/internal/blackjack"
)

// RoundResult is the outcome of a single simulated round
type RoundResult struct {
	Winner      blackjack.Winner
	Reason      blackjack.Reason
	PlayerTotal int
	DealerTotal int
	PlayerCards int // cards in the player's final hand
}

// Net scores the round from the player's side: 1 for a win, -1 for a loss, 0 for a push
func (r RoundResult) Net() float64 {
	switch r.Winner {
	case blackjack.PlayerWins:
		return 1
	case blackjack.DealerWins:
		return -1
	default:
		return 0
	}
}

// Statistics accumulates simulated round outcomes
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64 // Sum of squares for variance calculation

	PlayerWins int
	DealerWins int
	Pushes     int

	PlayerBlackjacks int
	DealerBlackjacks int
	PlayerBusts      int
	DealerBusts      int

	// ByReason counts resolutions per reason
	ByReason map[blackjack.Reason]int
}

// Add incorporates a round result
func (s *Statistics) Add(result RoundResult) {
	net := result.Net()
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net

	switch result.Winner {
	case blackjack.PlayerWins:
		s.PlayerWins++
	case blackjack.DealerWins:
		s.DealerWins++
	default:
		s.Pushes++
	}

	switch result.Reason {
	case blackjack.PlayerBlackjack:
		s.PlayerBlackjacks++
	case blackjack.DealerBlackjack:
		s.DealerBlackjacks++
	case blackjack.PlayerBust:
		s.PlayerBusts++
	case blackjack.DealerBust:
		s.DealerBusts++
	}

	if s.ByReason == nil {
		s.ByReason = make(map[blackjack.Reason]int)
	}
	s.ByReason[result.Reason]++
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.PlayerWins += other.PlayerWins
	s.DealerWins += other.DealerWins
	s.Pushes += other.Pushes
	s.PlayerBlackjacks += other.PlayerBlackjacks
	s.DealerBlackjacks += other.DealerBlackjacks
	s.PlayerBusts += other.PlayerBusts
	s.DealerBusts += other.DealerBusts

	if len(other.ByReason) > 0 && s.ByReason == nil {
		s.ByReason = make(map[blackjack.Reason]int)
	}
	for reason, n := range other.ByReason {
		s.ByReason[reason] += n
	}
}

// WinRate returns the fraction of rounds the player won
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.PlayerWins) / float64(s.Rounds)
}

// Mean returns the average net score per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of the net score
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Validate checks that the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if outcomes := s.PlayerWins + s.DealerWins + s.Pushes; outcomes != s.Rounds {
		return fmt.Errorf("outcomes (%d) do not match rounds (%d)", outcomes, s.Rounds)
	}

	reasons := 0
	for _, n := range s.ByReason {
		reasons += n
	}
	if reasons != s.Rounds {
		return fmt.Errorf("reason counts (%d) do not match rounds (%d)", reasons, s.Rounds)
	}

	if net := float64(s.PlayerWins - s.DealerWins); math.Abs(net-s.SumNet) > 1e-6 {
		return fmt.Errorf("ledger mismatch: wins-losses=%.0f, net=%.6f", net, s.SumNet)
	}

	return nil
}
