package streak_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vocabree/vocabree-server/internal/streak"
)

var noon = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestApply_NoHistory(t *testing.T) {
	next, advanced := streak.Apply(streak.State{}, nil, noon)

	assert.True(t, advanced)
	assert.Equal(t, 1, next.Current)
	assert.Equal(t, 1, next.Longest)
}

func TestApply_SameDayIdempotent(t *testing.T) {
	earlier := noon.Add(-3 * time.Hour)
	s := streak.State{Current: 4, Longest: 9}

	next, advanced := streak.Apply(s, &earlier, noon)

	assert.False(t, advanced, "a second award on the same day must not re-stamp")
	assert.Equal(t, 4, next.Current)
	assert.Equal(t, 9, next.Longest)
}

func TestApply_YesterdayContinues(t *testing.T) {
	yesterday := noon.AddDate(0, 0, -1)
	s := streak.State{Current: 4, Longest: 4}

	next, advanced := streak.Apply(s, &yesterday, noon)

	assert.True(t, advanced)
	assert.Equal(t, 5, next.Current)
	assert.Equal(t, 5, next.Longest, "longest follows current to a new record")
}

func TestApply_YesterdayLateNight(t *testing.T) {
	// 23:50 yesterday to 00:10 today is 20 minutes apart but still
	// consecutive calendar days.
	lateNight := time.Date(2024, 3, 14, 23, 50, 0, 0, time.UTC)
	justPastMidnight := time.Date(2024, 3, 15, 0, 10, 0, 0, time.UTC)

	next, advanced := streak.Apply(streak.State{Current: 2, Longest: 6}, &lateNight, justPastMidnight)

	assert.True(t, advanced)
	assert.Equal(t, 3, next.Current)
}

func TestApply_GapResets(t *testing.T) {
	threeDaysAgo := noon.AddDate(0, 0, -3)
	s := streak.State{Current: 12, Longest: 12}

	next, advanced := streak.Apply(s, &threeDaysAgo, noon)

	assert.True(t, advanced)
	assert.Equal(t, 1, next.Current)
	assert.Equal(t, 12, next.Longest, "longest streak never decreases")
}

func TestApply_TwoDayGapResets(t *testing.T) {
	twoDaysAgo := noon.AddDate(0, 0, -2)

	next, _ := streak.Apply(streak.State{Current: 5, Longest: 8}, &twoDaysAgo, noon)

	assert.Equal(t, 1, next.Current)
	assert.Equal(t, 8, next.Longest)
}

func TestApply_LongestNeverDecreases(t *testing.T) {
	last := noon
	s := streak.State{}
	now := noon

	// Build a 5-day streak, lapse, then rebuild. Longest sticks at 5.
	for i := 0; i < 5; i++ {
		var prev *time.Time
		if i > 0 {
			prev = &last
		}
		var advanced bool
		s, advanced = streak.Apply(s, prev, now)
		if advanced {
			last = now
		}
		now = now.AddDate(0, 0, 1)
	}
	assert.Equal(t, 5, s.Current)
	assert.Equal(t, 5, s.Longest)

	now = now.AddDate(0, 0, 4)
	s, _ = streak.Apply(s, &last, now)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 5, s.Longest)
}
