package usecase

import "time"

const defaultStatsWindow = 100

// Stats summarises recent AI move calculations.
type Stats struct {
	Last     time.Duration `json:"last"`
	Longest  time.Duration `json:"longest"`
	Shortest time.Duration `json:"shortest"`
	Samples  int           `json:"samples"`
}

// CalcStats keeps the durations of the most recent calculations.
type CalcStats struct {
	window  int
	samples []time.Duration
}

func NewCalcStats(window int) *CalcStats {
	if window <= 0 {
		window = defaultStatsWindow
	}

	return &CalcStats{
		window:  window,
		samples: make([]time.Duration, 0, window),
	}
}

// Add records a calculation, dropping the oldest one once the window is full.
func (that *CalcStats) Add(d time.Duration) {
	if len(that.samples) == that.window {
		that.samples = append(that.samples[:0], that.samples[1:]...)
	}

	that.samples = append(that.samples, d)
}

func (that *CalcStats) Snapshot() Stats {
	if len(that.samples) == 0 {
		return Stats{}
	}

	stats := Stats{
		Last:     that.samples[len(that.samples)-1],
		Longest:  that.samples[0],
		Shortest: that.samples[0],
		Samples:  len(that.samples),
	}

	for _, d := range that.samples[1:] {
		stats.Longest = max(stats.Longest, d)
		stats.Shortest = min(stats.Shortest, d)
	}

	return stats
}
