package services

import (
	"context"
	"math/rand"
	"sync"

	"github.com/vocabree/vocabree-server/internal/content"
	"github.com/vocabree/vocabree-server/internal/errors"
	"github.com/vocabree/vocabree-server/internal/lesson"
	"github.com/vocabree/vocabree-server/internal/logger"
	"github.com/vocabree/vocabree-server/internal/models"
)

// CompleteLessonRequest carries the submitted results for one finished
// lesson.
type CompleteLessonRequest struct {
	LessonID   string                  `json:"lesson_id"`
	SkillID    string                  `json:"skill_id"`
	Level      int                     `json:"level"`
	IsPractice bool                    `json:"is_practice"`
	Results    []models.ExerciseResult `json:"results"`
}

// CompleteLessonResult reports the completion outcome: accuracy, the XP
// breakdown, and the resulting award.
type CompleteLessonResult struct {
	Accuracy float64        `json:"accuracy"`
	Perfect  bool           `json:"perfect"`
	BaseXP   int            `json:"base_xp"`
	BonusXP  int            `json:"bonus_xp"`
	Award    *AwardXPResult `json:"award"`
}

// LessonService handles lesson generation and the completion flow
type LessonService interface {
	GetLesson(ctx context.Context, languageID, skillID string, level int) (*models.Lesson, error)
	GetNextLesson(ctx context.Context, userID, languageID, skillID string) (*models.Lesson, error)
	GetPracticeLesson(ctx context.Context, userID, languageID, skillID string, level int, missedExerciseIDs []string) (*models.Lesson, error)
	CompleteLesson(ctx context.Context, userID, languageID string, req CompleteLessonRequest) (*CompleteLessonResult, error)
	Languages(ctx context.Context) []models.Language
}

type lessonService struct {
	generator *lesson.Generator
	progress  ProgressService
	content   content.Provider

	// rng guards practice lesson randomness; rand.Rand is not safe for
	// concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLessonService creates a new LessonService. The rng seeds practice
// lesson selection; tests pass a fixed seed for reproducibility.
func NewLessonService(generator *lesson.Generator, progress ProgressService, provider content.Provider, rng *rand.Rand) LessonService {
	return &lessonService{
		generator: generator,
		progress:  progress,
		content:   provider,
		rng:       rng,
	}
}

func (s *lessonService) GetLesson(ctx context.Context, languageID, skillID string, level int) (*models.Lesson, error) {
	log := logger.FromContext(ctx)
	log.Debug("building lesson: language_id=%s, skill_id=%s, level=%d", languageID, skillID, level)

	if err := s.checkSkill(languageID, skillID); err != nil {
		return nil, err
	}
	return s.generator.BuildLesson(languageID, skillID, level), nil
}

func (s *lessonService) GetNextLesson(ctx context.Context, userID, languageID, skillID string) (*models.Lesson, error) {
	log := logger.FromContext(ctx)

	if err := s.checkSkill(languageID, skillID); err != nil {
		return nil, err
	}

	summary, err := s.progress.GetProgress(ctx, userID, languageID)
	if err != nil {
		return nil, err
	}

	current := summary.Skills[skillID].Level
	if current >= content.SkillLevels {
		log.Debug("skill mastered, no next lesson: user_id=%s, skill_id=%s", userID, skillID)
		return nil, nil
	}
	return s.generator.BuildLesson(languageID, skillID, current+1), nil
}

func (s *lessonService) GetPracticeLesson(ctx context.Context, userID, languageID, skillID string, level int, missedExerciseIDs []string) (*models.Lesson, error) {
	log := logger.FromContext(ctx)
	log.Debug("building practice lesson: user_id=%s, language_id=%s, skill_id=%s, level=%d, missed=%d",
		userID, languageID, skillID, level, len(missedExerciseIDs))

	if err := s.checkSkill(languageID, skillID); err != nil {
		return nil, err
	}

	unlocked, err := s.progress.IsSkillUnlocked(ctx, userID, languageID, skillID)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, errors.NewBadRequestError("skill is locked")
	}

	full := s.generator.BuildLesson(languageID, skillID, level)
	byID := make(map[string]models.Exercise, len(full.Exercises))
	for _, ex := range full.Exercises {
		byID[ex.ID] = ex
	}
	var missed []models.Exercise
	for _, id := range missedExerciseIDs {
		if ex, ok := byID[id]; ok {
			missed = append(missed, ex)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generator.BuildPracticeLesson(languageID, skillID, level, missed, s.rng), nil
}

func (s *lessonService) CompleteLesson(ctx context.Context, userID, languageID string, req CompleteLessonRequest) (*CompleteLessonResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("completing lesson: user_id=%s, language_id=%s, lesson_id=%s", userID, languageID, req.LessonID)

	if len(req.Results) == 0 {
		return nil, errors.NewValidationError("results", "cannot be empty")
	}
	if err := s.checkSkill(languageID, req.SkillID); err != nil {
		return nil, err
	}

	correct := 0
	for _, r := range req.Results {
		if r.Correct {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(req.Results)) * 100
	perfect := correct == len(req.Results)

	baseXP := lesson.FullLessonXP
	bonusXP := 0
	if req.IsPractice {
		baseXP = lesson.PracticeLessonXP
		if perfect {
			bonusXP = lesson.PerfectPracticeBonus
		}
	} else if perfect {
		bonusXP = lesson.PerfectLessonBonus
	}

	award, err := s.progress.AwardXP(ctx, userID, languageID, baseXP, bonusXP, true)
	if err != nil {
		return nil, err
	}

	// Award first, then the skill update, so a failed skill write never
	// loses the XP.
	update := SkillUpdate{SkillID: req.SkillID, Accuracy: &accuracy}
	if !req.IsPractice {
		update.Level = req.Level
		update.LessonID = req.LessonID
		update.Vocabulary = s.content.Vocabulary(s.content.Resolve(languageID), req.SkillID, req.Level).Words()
	}
	if _, err := s.progress.UpdateSkillProgress(ctx, userID, languageID, update); err != nil {
		return nil, err
	}

	log.Info("lesson completed: user_id=%s, lesson_id=%s, accuracy=%.0f%%, xp=%d+%d",
		userID, req.LessonID, accuracy, baseXP, bonusXP)

	return &CompleteLessonResult{
		Accuracy: accuracy,
		Perfect:  perfect,
		BaseXP:   baseXP,
		BonusXP:  bonusXP,
		Award:    award,
	}, nil
}

func (s *lessonService) Languages(ctx context.Context) []models.Language {
	return s.content.Languages()
}

func (s *lessonService) checkSkill(languageID, skillID string) error {
	resolved := s.content.Resolve(languageID)
	for _, sk := range s.content.Skills(resolved) {
		if sk.ID == skillID {
			return nil
		}
	}
	return errors.NewNotFoundError("skill", skillID)
}
