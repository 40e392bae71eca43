package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalcStats(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, Stats{}, NewCalcStats(3).Snapshot())
	})

	t.Run("Tracks last, longest and shortest", func(t *testing.T) {
		stats := NewCalcStats(3)

		stats.Add(20 * time.Millisecond)
		stats.Add(5 * time.Millisecond)
		stats.Add(10 * time.Millisecond)

		assert.Equal(t, Stats{
			Last:     10 * time.Millisecond,
			Longest:  20 * time.Millisecond,
			Shortest: 5 * time.Millisecond,
			Samples:  3,
		}, stats.Snapshot())
	})

	t.Run("Drops the oldest sample once full", func(t *testing.T) {
		stats := NewCalcStats(2)

		stats.Add(50 * time.Millisecond)
		stats.Add(5 * time.Millisecond)
		stats.Add(7 * time.Millisecond)

		snapshot := stats.Snapshot()
		assert.Equal(t, 2, snapshot.Samples)
		assert.Equal(t, 7*time.Millisecond, snapshot.Longest)
		assert.Equal(t, 5*time.Millisecond, snapshot.Shortest)
	})

	t.Run("Non-positive window falls back to the default", func(t *testing.T) {
		stats := NewCalcStats(0)

		for range defaultStatsWindow + 10 {
			stats.Add(time.Millisecond)
		}

		assert.Equal(t, defaultStatsWindow, stats.Snapshot().Samples)
	})
}
