package seeder

import "time"

// Sequencer derives each timestamp from a causally prior one, clamped so
// that no generated timestamp lands in the future.
type Sequencer struct {
	rng *Rand
	now func() time.Time
}

func NewSequencer(rng *Rand) *Sequencer {
	return &Sequencer{rng: rng, now: time.Now}
}

// After returns base plus a uniform offset in [minOff, maxOff] units. A
// result past "now" becomes now minus 1-24 hours, which keeps timestamps
// out of the future; when even that lands before a very recent base, the
// result snaps to base so causal order holds.
func (s *Sequencer) After(base time.Time, minOff, maxOff int, unit time.Duration) time.Time {
	t := s.clamp(base.Add(time.Duration(s.rng.Between(minOff, maxOff)) * unit))
	if t.Before(base) {
		return base
	}
	return t
}

// Before returns base minus a uniform offset, used to walk a message chain
// backward from the chat's last message. No clamping: walking backward
// from a valid timestamp cannot reach the future.
func (s *Sequencer) Before(base time.Time, minOff, maxOff int, unit time.Duration) time.Time {
	return base.Add(-time.Duration(s.rng.Between(minOff, maxOff)) * unit)
}

// WithinPastDays returns a timestamp up to days back from now, with an
// extra 0-23 hour skew.
func (s *Sequencer) WithinPastDays(days int) time.Time {
	return s.DaysAgo(s.rng.Between(0, days))
}

// DaysAgo returns now minus the given whole days and a 0-23 hour skew.
func (s *Sequencer) DaysAgo(days int) time.Time {
	d := time.Duration(days)*24*time.Hour + time.Duration(s.rng.Between(0, 23))*time.Hour
	return s.now().Add(-d)
}

func (s *Sequencer) clamp(t time.Time) time.Time {
	now := s.now()
	if t.After(now) {
		return now.Add(-time.Duration(s.rng.Between(1, 24)) * time.Hour)
	}
	return t
}
