package models

import "time"

// SkillProgress tracks mastery of a single skill. Level only ever increases.
// Accuracy is an optional signal recorded by the lesson completion flow; it
// may be absent for progress written by older clients.
type SkillProgress struct {
	Level            int        `json:"level"`
	CompletedLessons []string   `json:"completed_lessons"`
	LastPracticed    *time.Time `json:"last_practiced"`
	Accuracy         *float64   `json:"accuracy,omitempty"`
}

// Progress is the per-user, per-language learning record. TotalXP never
// decreases and Level is derived from it. A record is created lazily with
// Level 1 and zero XP the first time a language is touched.
type Progress struct {
	UserID         string                   `json:"user_id"`
	LanguageID     string                   `json:"language_id"`
	Level          int                      `json:"level"`
	TotalXP        int                      `json:"total_xp"`
	CurrentStreak  int                      `json:"current_streak"`
	LongestStreak  int                      `json:"longest_streak"`
	LastActiveDate *time.Time               `json:"last_active_date"`
	Skills         map[string]SkillProgress `json:"skills"`
	Vocabulary     []string                 `json:"vocabulary"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// NewProgress returns the initial record for a (user, language) pair.
func NewProgress(userID, languageID string) Progress {
	now := time.Now()
	return Progress{
		UserID:     userID,
		LanguageID: languageID,
		Level:      1,
		Skills:     map[string]SkillProgress{},
		Vocabulary: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// ProgressFilter selects progress records in list queries.
type ProgressFilter struct {
	UserID     string
	LanguageID string
	OrderBy    string
	OrderDir   string
	Limit      int
	Offset     int
}
