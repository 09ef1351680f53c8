package models

import "time"

// Settings holds the per-user feature toggles the mobile client syncs.
type Settings struct {
	SoundEnabled         bool   `json:"sound_enabled"`
	SpeechEnabled        bool   `json:"speech_enabled"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	NotificationTime     string `json:"notification_time"`
}

// DefaultSettings returns the settings a profile starts with at signup.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:         true,
		SpeechEnabled:        true,
		NotificationsEnabled: true,
		NotificationTime:     "20:00",
	}
}

// UserProfile is the account-level record. TotalXP is a cached aggregate of
// the per-language progress records and is reconciled after every XP award.
// LongestStreak is never below CurrentStreak.
type UserProfile struct {
	ID            string    `json:"id"`
	DisplayName   string    `json:"display_name"`
	TotalXP       int       `json:"total_xp"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	DailyXPGoal   int       `json:"daily_xp_goal"`
	Achievements  []string  `json:"achievements"`
	Settings      Settings  `json:"settings"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DailyXPGoals are the goal values the client offers.
var DailyXPGoals = []int{10, 20, 50, 100}

// ValidDailyXPGoal reports whether goal is one of the allowed values.
func ValidDailyXPGoal(goal int) bool {
	for _, g := range DailyXPGoals {
		if g == goal {
			return true
		}
	}
	return false
}
