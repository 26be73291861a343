package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedSequencer(seed int64, now time.Time) *Sequencer {
	s := NewSequencer(NewRand(seed))
	s.now = func() time.Time { return now }
	return s
}

func TestAfterStaysWithinWindow(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := fixedSequencer(42, now)
	base := now.AddDate(0, 0, -60)

	for i := 0; i < 200; i++ {
		got := s.After(base, 1, 30, 24*time.Hour)
		assert.False(t, got.Before(base.Add(24*time.Hour)))
		assert.False(t, got.After(base.Add(30*24*time.Hour)))
	}
}

func TestAfterClampsFutureResults(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := fixedSequencer(42, now)
	base := now.Add(-36 * time.Hour)

	for i := 0; i < 200; i++ {
		got := s.After(base, 1, 30, 24*time.Hour)
		assert.False(t, got.After(now))
		assert.False(t, got.Before(base))
	}
}

func TestAfterVeryRecentBaseSnapsToBase(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := fixedSequencer(42, now)
	base := now.Add(-30 * time.Minute)

	for i := 0; i < 200; i++ {
		got := s.After(base, 1, 30, 24*time.Hour)
		assert.False(t, got.Before(base))
		assert.False(t, got.After(now))
	}
}

func TestBeforeWalksBackward(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := fixedSequencer(42, now)

	prev := now
	for i := 0; i < 50; i++ {
		got := s.Before(prev, 5, 60, time.Minute)
		assert.True(t, got.Before(prev))
		assert.False(t, got.Before(prev.Add(-time.Hour)))
		prev = got
	}
}

func TestWithinPastDaysBounds(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s := fixedSequencer(42, now)

	for i := 0; i < 200; i++ {
		got := s.WithinPastDays(90)
		assert.False(t, got.After(now))
		assert.False(t, got.Before(now.AddDate(0, 0, -91)))
	}
}
