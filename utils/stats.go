package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time

	Restarts      int
	RestartReason string // most recent
	InjectedCells int    // random cells added to break stagnation
}

// NewStats starts the runtime clock
func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one frame. duration is the time since the previous frame.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// RecordRestart counts a board reseed
func (s *Stats) RecordRestart(reason string) {
	s.Restarts++
	s.RestartReason = reason
}

// RecordInjection counts random cells added to a stagnant board
func (s *Stats) RecordInjection(count int) {
	s.InjectedCells += count
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
