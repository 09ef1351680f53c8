// Package lesson builds lessons from the content catalog: a fixed
// ten-exercise sequence per skill level, and shorter randomized practice
// sessions weighted toward previous mistakes.
package lesson

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/vocabree/vocabree-server/internal/content"
	"github.com/vocabree/vocabree-server/internal/models"
)

// XP values awarded on lesson completion. Practice pays less to reflect the
// reduced effort; perfect runs earn a bonus on top.
const (
	FullLessonXP         = 10
	PracticeLessonXP     = 5
	PerfectLessonBonus   = 5
	PerfectPracticeBonus = 2
)

// Practice sessions carry at most this many previously missed exercises.
const maxMissedInPractice = 3

// Generator assembles lessons. Full lessons are deterministic for a
// (language, skill, level) triple and memoized for the process lifetime;
// practice lessons are randomized and never cached.
type Generator struct {
	content content.Provider

	mu    sync.Mutex
	cache map[string]*models.Lesson
}

// NewGenerator creates a Generator backed by the given content provider.
func NewGenerator(p content.Provider) *Generator {
	return &Generator{
		content: p,
		cache:   make(map[string]*models.Lesson),
	}
}

// BuildLesson returns the full ten-exercise lesson for a skill level. The
// exercise order is fixed and all five kinds are represented. Unknown
// language or skill IDs fall back to default content rather than failing,
// so the client always receives a renderable lesson.
func (g *Generator) BuildLesson(languageID, skillID string, level int) *models.Lesson {
	languageID = g.content.Resolve(languageID)
	if level < 1 {
		level = 1
	}
	key := fmt.Sprintf("%s_%s_%d", languageID, skillID, level)

	g.mu.Lock()
	defer g.mu.Unlock()
	if cached, ok := g.cache[key]; ok {
		return cached
	}

	built := g.assemble(languageID, skillID, level)
	g.cache[key] = built
	return built
}

func (g *Generator) assemble(languageID, skillID string, level int) *models.Lesson {
	vocab := g.content.Vocabulary(languageID, skillID, level)
	english := g.content.EnglishVocabulary(skillID, level)
	langName := g.content.LanguageName(languageID)

	explain := func(word, meaning string) string {
		return fmt.Sprintf("%q means %q in %s.", word, meaning, langName)
	}

	exercises := []models.Exercise{
		{
			ID:            "ex1",
			Kind:          models.KindMultipleChoice,
			Prompt:        fmt.Sprintf("How do you say %q in %s?", english.Word1, langName),
			Options:       []string{vocab.Word1, vocab.Word2, vocab.Word3, vocab.Word4},
			CorrectAnswer: vocab.Word1,
			Explanation:   explain(vocab.Word1, english.Word1),
			AudioText:     vocab.Word1,
		},
		{
			ID:            "ex2",
			Kind:          models.KindTranslation,
			Prompt:        "Translate this word",
			PromptText:    vocab.Word2,
			WordBank:      []string{english.Word1, english.Word2, english.Word3, english.Word4, english.Word5},
			CorrectAnswer: english.Word2,
			Explanation:   explain(vocab.Word2, english.Word2),
			AudioText:     vocab.Word2,
		},
		{
			ID:            "ex3",
			Kind:          models.KindMultipleChoice,
			Prompt:        fmt.Sprintf("What does %q mean?", vocab.Word3),
			Options:       []string{english.Word1, english.Word2, english.Word3, english.Word4},
			CorrectAnswer: english.Word3,
			Explanation:   explain(vocab.Word3, english.Word3),
			AudioText:     vocab.Word3,
		},
		{
			ID:            "ex4",
			Kind:          models.KindListening,
			Prompt:        "Listen and select what you hear",
			Options:       []string{english.Word1, english.Word2, english.Word4, english.Word5},
			CorrectAnswer: english.Word4,
			Explanation:   fmt.Sprintf("You heard %q which means %q in %s.", vocab.Word4, english.Word4, langName),
			AudioText:     vocab.Word4,
		},
		{
			ID:     "ex5",
			Kind:   models.KindMatching,
			Prompt: fmt.Sprintf("Match the %s words with their English translations", langName),
			Pairs: []models.MatchPair{
				{Left: vocab.Word1, Right: english.Word1},
				{Left: vocab.Word2, Right: english.Word2},
				{Left: vocab.Word3, Right: english.Word3},
				{Left: vocab.Word4, Right: english.Word4},
			},
			Explanation: "Match each word with its correct translation.",
		},
		{
			ID:            "ex6",
			Kind:          models.KindFillInBlank,
			Prompt:        fmt.Sprintf("%q means ___ in English.", vocab.Word5),
			Options:       []string{english.Word1, english.Word2, english.Word3, english.Word5},
			CorrectAnswer: english.Word5,
			Explanation:   explain(vocab.Word5, english.Word5),
		},
		{
			ID:            "ex7",
			Kind:          models.KindMultipleChoice,
			Prompt:        fmt.Sprintf("How do you say %q in %s?", english.Word2, langName),
			Options:       []string{vocab.Word1, vocab.Word2, vocab.Word4, vocab.Word5},
			CorrectAnswer: vocab.Word2,
			Explanation:   explain(vocab.Word2, english.Word2),
			AudioText:     vocab.Word2,
		},
		{
			ID:            "ex8",
			Kind:          models.KindTranslation,
			Prompt:        "Translate this word",
			PromptText:    vocab.Word1,
			WordBank:      []string{english.Word1, english.Word3, english.Word4, english.Word5},
			CorrectAnswer: english.Word1,
			Explanation:   explain(vocab.Word1, english.Word1),
			AudioText:     vocab.Word1,
		},
		{
			ID:            "ex9",
			Kind:          models.KindListening,
			Prompt:        "Listen and select the correct translation",
			Options:       []string{english.Word2, english.Word3, english.Word4, english.Word5},
			CorrectAnswer: english.Word5,
			Explanation:   fmt.Sprintf("You heard %q which means %q in %s.", vocab.Word5, english.Word5, langName),
			AudioText:     vocab.Word5,
		},
		{
			ID:            "ex10",
			Kind:          models.KindMultipleChoice,
			Prompt:        fmt.Sprintf("What is the %s word for %q?", langName, english.Word4),
			Options:       []string{vocab.Word1, vocab.Word3, vocab.Word4, vocab.Word5},
			CorrectAnswer: vocab.Word4,
			Explanation:   explain(vocab.Word4, english.Word4),
			AudioText:     vocab.Word4,
		},
	}

	return &models.Lesson{
		ID:         fmt.Sprintf("%s_%s_l%d", languageID, skillID, level),
		LanguageID: languageID,
		SkillID:    skillID,
		Level:      level,
		XPReward:   FullLessonXP,
		Exercises:  exercises,
	}
}

// BuildPracticeLesson assembles a short practice session for a skill level.
// Up to three of the supplied missed exercises (most recently missed first)
// are included, then remaining slots are filled diversity-first over a
// randomized candidate order so under-practiced kinds surface. The final
// order is shuffled. The rng is supplied by the caller so tests can seed it.
func (g *Generator) BuildPracticeLesson(languageID, skillID string, level int, missed []models.Exercise, rng *rand.Rand) *models.Lesson {
	full := g.BuildLesson(languageID, skillID, level)

	target := len(full.Exercises) * 6 / 10
	if target < 5 {
		target = 5
	}
	if target > 7 {
		target = 7
	}

	selected := make([]models.Exercise, 0, target)
	taken := make(map[string]bool)
	for _, ex := range missed {
		if len(selected) >= maxMissedInPractice || len(selected) >= target {
			break
		}
		if taken[ex.ID] {
			continue
		}
		selected = append(selected, ex)
		taken[ex.ID] = true
	}

	var candidates []models.Exercise
	for _, ex := range full.Exercises {
		if !taken[ex.ID] {
			candidates = append(candidates, ex)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	kinds := make(map[models.ExerciseKind]bool)
	for _, ex := range selected {
		kinds[ex.Kind] = true
	}

	// First pass prefers kinds not yet represented; the second takes
	// whatever remains. Content scarcity means the final count may come in
	// under target.
	for _, ex := range candidates {
		if len(selected) >= target {
			break
		}
		if !kinds[ex.Kind] {
			selected = append(selected, ex)
			taken[ex.ID] = true
			kinds[ex.Kind] = true
		}
	}
	for _, ex := range candidates {
		if len(selected) >= target {
			break
		}
		if !taken[ex.ID] {
			selected = append(selected, ex)
			taken[ex.ID] = true
		}
	}

	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	return &models.Lesson{
		ID:         fmt.Sprintf("%s_%s_practice_%s", full.LanguageID, skillID, uuid.NewString()),
		LanguageID: full.LanguageID,
		SkillID:    skillID,
		Level:      full.Level,
		XPReward:   PracticeLessonXP,
		IsPractice: true,
		Exercises:  selected,
	}
}
