package models

// ExerciseKind discriminates the exercise variants the client can render.
type ExerciseKind string

const (
	KindMultipleChoice ExerciseKind = "multipleChoice"
	KindTranslation    ExerciseKind = "translation"
	KindListening      ExerciseKind = "listening"
	KindMatching       ExerciseKind = "matching"
	KindFillInBlank    ExerciseKind = "fillInBlank"
)

// ExerciseKinds lists every kind a full lesson must cover.
var ExerciseKinds = []ExerciseKind{
	KindMultipleChoice,
	KindTranslation,
	KindListening,
	KindMatching,
	KindFillInBlank,
}

// MatchPair is one row of a matching exercise.
type MatchPair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Exercise is immutable lesson content. Which fields are populated depends
// on Kind: options for choice-style exercises, a word bank for translations,
// pairs for matching. AudioText carries the text the client speaks aloud.
type Exercise struct {
	ID            string       `json:"id"`
	Kind          ExerciseKind `json:"kind"`
	Prompt        string       `json:"prompt"`
	PromptText    string       `json:"prompt_text,omitempty"`
	Options       []string     `json:"options,omitempty"`
	WordBank      []string     `json:"word_bank,omitempty"`
	Pairs         []MatchPair  `json:"pairs,omitempty"`
	CorrectAnswer string       `json:"correct_answer,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
	AudioText     string       `json:"audio_text,omitempty"`
}

// Lesson is an ordered exercise sequence generated on demand. Lessons are
// not persisted; only their outcome feeds Progress.
type Lesson struct {
	ID         string     `json:"id"`
	LanguageID string     `json:"language_id"`
	SkillID    string     `json:"skill_id"`
	Level      int        `json:"level"`
	XPReward   int        `json:"xp_reward"`
	IsPractice bool       `json:"is_practice"`
	Exercises  []Exercise `json:"exercises"`
}

// ExerciseResult is one completed attempt. It is ephemeral: consumed by the
// progress aggregator and optionally echoed back as a missed exercise when
// building practice lessons.
type ExerciseResult struct {
	ExerciseID string `json:"exercise_id"`
	Correct    bool   `json:"correct"`
	Answer     string `json:"answer"`
}
