// Package streak implements the daily streak state machine. Streaks are
// evaluated on calendar-day granularity, not rolling 24h windows, so two
// sessions late at night and early the next morning still count as two days.
package streak

import "time"

// State holds the persisted streak counters.
type State struct {
	Current int
	Longest int
}

// Apply evaluates one XP-award event. lastActive is the previously stamped
// activity time, or nil when the learner has no history. The returned bool
// reports whether the transition consumed the day, i.e. whether the caller
// should stamp lastActive to now. A repeat award on the same calendar day is
// idempotent: counters are unchanged and the day is not re-stamped.
func Apply(s State, lastActive *time.Time, now time.Time) (State, bool) {
	switch {
	case lastActive == nil:
		s.Current = 1
	case sameCalendarDay(*lastActive, now):
		return clampLongest(s), false
	case calendarDaysBetween(*lastActive, now) == 1:
		s.Current++
	default:
		// Gap of two or more days, or a clock that went backwards.
		s.Current = 1
	}
	return clampLongest(s), true
}

func clampLongest(s State) State {
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	return s
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// calendarDaysBetween returns the whole calendar days from a to b, using
// midnight boundaries in b's location.
func calendarDaysBetween(a, b time.Time) int {
	loc := b.Location()
	am := midnight(a.In(loc))
	bm := midnight(b)
	days := bm.Sub(am).Hours() / 24
	// Round to absorb DST shifts around midnight.
	if days >= 0 {
		return int(days + 0.5)
	}
	return int(days - 0.5)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
