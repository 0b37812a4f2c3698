package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 0.001)
	assert.InDelta(t, 100.0, s.AveragePopulation, 0.001)

	s.Update(2, 200, 0)
	assert.Equal(t, 2, s.TotalGenerations)
	// zero duration leaves the rate alone
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 0.001)
	assert.InDelta(t, 110.0, s.AveragePopulation, 0.001)

	assert.GreaterOrEqual(t, s.Runtime(), time.Duration(0))
}

func TestStatsRestartsAndInjections(t *testing.T) {
	s := NewStats()
	assert.Zero(t, s.Restarts)

	s.RecordRestart("extinction")
	s.RecordRestart("periodic refresh")
	assert.Equal(t, 2, s.Restarts)
	assert.Equal(t, "periodic refresh", s.RestartReason)

	s.RecordInjection(3)
	s.RecordInjection(3)
	assert.Equal(t, 6, s.InjectedCells)
}
