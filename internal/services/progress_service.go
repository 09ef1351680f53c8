package services

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/vocabree/vocabree-server/internal/achievement"
	"github.com/vocabree/vocabree-server/internal/content"
	"github.com/vocabree/vocabree-server/internal/errors"
	"github.com/vocabree/vocabree-server/internal/leveling"
	"github.com/vocabree/vocabree-server/internal/logger"
	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/practice"
	"github.com/vocabree/vocabree-server/internal/repository"
	"github.com/vocabree/vocabree-server/internal/skill"
	"github.com/vocabree/vocabree-server/internal/streak"
)

// AwardXPResult reports the outcome of one XP award.
type AwardXPResult struct {
	TotalXP         int      `json:"total_xp"`
	NewLevel        int      `json:"new_level"`
	LeveledUp       bool     `json:"leveled_up"`
	XPToNextLevel   int      `json:"xp_to_next_level"`
	LevelProgress   float64  `json:"level_progress"`
	CurrentStreak   int      `json:"current_streak"`
	LongestStreak   int      `json:"longest_streak"`
	NewAchievements []string `json:"new_achievements"`
}

// SkillUpdate carries one skill mutation. Accuracy and Vocabulary are
// optional; they are set by the lesson completion flow.
type SkillUpdate struct {
	SkillID    string
	Level      int
	LessonID   string
	Accuracy   *float64
	Vocabulary []string
}

// ProgressSummary is a progress record annotated with derived leveling state.
type ProgressSummary struct {
	models.Progress
	XPToNextLevel int     `json:"xp_to_next_level"`
	LevelProgress float64 `json:"level_progress"`
}

// ProgressService owns the per-user, per-language progress record
type ProgressService interface {
	GetProgress(ctx context.Context, userID, languageID string) (*ProgressSummary, error)
	ListProgress(ctx context.Context, userID string) ([]ProgressSummary, error)
	AwardXP(ctx context.Context, userID, languageID string, baseXP, bonusXP int, lessonCompleted bool) (*AwardXPResult, error)
	UpdateSkillProgress(ctx context.Context, userID, languageID string, update SkillUpdate) (*models.Progress, error)
	IsSkillUnlocked(ctx context.Context, userID, languageID, skillID string) (bool, error)
	PracticeQueue(ctx context.Context, userID, languageID string) ([]practice.Ranked, error)
	SkillTree(ctx context.Context, userID, languageID string) ([]SkillStatus, error)
}

// SkillStatus is a catalog skill annotated with the user's state.
type SkillStatus struct {
	models.Skill
	Unlocked bool                  `json:"unlocked"`
	Progress *models.SkillProgress `json:"progress,omitempty"`
}

type progressService struct {
	profiles repository.ProfileRepository
	progress repository.ProgressRepository
	content  content.Provider
	now      func() time.Time
}

// NewProgressService creates a new ProgressService
func NewProgressService(profiles repository.ProfileRepository, progress repository.ProgressRepository, provider content.Provider) ProgressService {
	return &progressService{
		profiles: profiles,
		progress: progress,
		content:  provider,
		now:      time.Now,
	}
}

func (s *progressService) GetProgress(ctx context.Context, userID, languageID string) (*ProgressSummary, error) {
	log := logger.FromContext(ctx)
	languageID = s.content.Resolve(languageID)
	log.Debug("getting progress: user_id=%s, language_id=%s", userID, languageID)

	record, err := s.loadOrInit(ctx, userID, languageID)
	if err != nil {
		return nil, err
	}
	return summarize(*record), nil
}

func (s *progressService) ListProgress(ctx context.Context, userID string) ([]ProgressSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing progress: user_id=%s", userID)

	records, err := s.progress.ListForUser(ctx, models.ProgressFilter{
		UserID:   userID,
		OrderBy:  "total_xp",
		OrderDir: "DESC",
	})
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	summaries := make([]ProgressSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, *summarize(record))
	}
	return summaries, nil
}

func (s *progressService) AwardXP(ctx context.Context, userID, languageID string, baseXP, bonusXP int, lessonCompleted bool) (*AwardXPResult, error) {
	log := logger.FromContext(ctx)
	languageID = s.content.Resolve(languageID)

	// Negative amounts contribute nothing rather than erroring.
	if baseXP < 0 {
		baseXP = 0
	}
	if bonusXP < 0 {
		bonusXP = 0
	}
	amount := baseXP + bonusXP
	log.Debug("awarding xp: user_id=%s, language_id=%s, amount=%d", userID, languageID, amount)

	record, err := s.loadOrInit(ctx, userID, languageID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	state, stamp := streak.Apply(streak.State{Current: record.CurrentStreak, Longest: record.LongestStreak}, record.LastActiveDate, now)
	record.CurrentStreak = state.Current
	record.LongestStreak = state.Longest
	if stamp {
		record.LastActiveDate = &now
	}

	priorLevel := record.Level
	record.TotalXP += amount
	record.Level = leveling.LevelForXP(record.TotalXP)

	if err := s.progress.Upsert(ctx, *record); err != nil {
		log.Error("failed to persist xp award: %v", err)
		return nil, errors.NewProgressUpdateFailed("could not save progress record", err)
	}

	if priorLevel != record.Level {
		log.Info("level up: user_id=%s, language_id=%s, level=%d->%d", userID, languageID, priorLevel, record.Level)
	}

	newAchievements := s.reconcileProfile(ctx, userID, lessonCompleted, now)

	return &AwardXPResult{
		TotalXP:         record.TotalXP,
		NewLevel:        record.Level,
		LeveledUp:       record.Level > priorLevel,
		XPToNextLevel:   leveling.XPThresholdForLevel(record.Level+1) - record.TotalXP,
		LevelProgress:   leveling.ProgressPercent(record.TotalXP, record.Level),
		CurrentStreak:   record.CurrentStreak,
		LongestStreak:   record.LongestStreak,
		NewAchievements: newAchievements,
	}, nil
}

// reconcileProfile recomputes the cross-language aggregates on the profile
// and evaluates achievements. Failures here never fail the award; the
// progress record write is the primary guarantee.
func (s *progressService) reconcileProfile(ctx context.Context, userID string, lessonCompleted bool, now time.Time) []string {
	log := logger.FromContext(ctx)

	records, err := s.progress.ListForUser(ctx, models.ProgressFilter{UserID: userID})
	if err != nil {
		log.Warn("aggregate reconciliation skipped, list failed: %v", err)
		return nil
	}

	var totalXP, currentStreak, longestStreak, languageCount int
	words := map[string]bool{}
	for _, record := range records {
		totalXP += record.TotalXP
		if record.CurrentStreak > currentStreak {
			currentStreak = record.CurrentStreak
		}
		if record.LongestStreak > longestStreak {
			longestStreak = record.LongestStreak
		}
		if record.TotalXP > 0 {
			languageCount++
		}
		for _, w := range record.Vocabulary {
			words[w] = true
		}
	}

	if err := s.profiles.UpdateTotals(ctx, userID, totalXP, currentStreak, longestStreak); err != nil {
		log.Warn("aggregate reconciliation failed, continuing: %v", err)
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil || profile == nil {
		log.Warn("achievement evaluation skipped, profile unavailable: %v", err)
		return nil
	}

	earned := achievement.Check(*profile, languageCount, len(words), lessonCompleted, now)
	if len(earned) == 0 {
		return nil
	}

	log.Info("achievements unlocked: user_id=%s, ids=%v", userID, earned)
	updated := append(append([]string{}, profile.Achievements...), earned...)
	if err := s.profiles.UpdateAchievements(ctx, userID, updated); err != nil {
		log.Warn("failed to persist achievements, continuing: %v", err)
	}
	return earned
}

func (s *progressService) UpdateSkillProgress(ctx context.Context, userID, languageID string, update SkillUpdate) (*models.Progress, error) {
	log := logger.FromContext(ctx)
	languageID = s.content.Resolve(languageID)
	log.Debug("updating skill progress: user_id=%s, language_id=%s, skill=%s, level=%d", userID, languageID, update.SkillID, update.Level)

	if update.SkillID == "" {
		return nil, errors.NewValidationError("skillId", "cannot be empty")
	}
	if s.findSkill(languageID, update.SkillID) == nil {
		return nil, errors.NewNotFoundError("skill", update.SkillID)
	}
	if update.Level < 0 {
		update.Level = 0
	}

	record, err := s.loadOrInit(ctx, userID, languageID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sp := record.Skills[update.SkillID]
	if update.Level > sp.Level {
		sp.Level = update.Level
	}
	if update.LessonID != "" && !lo.Contains(sp.CompletedLessons, update.LessonID) {
		sp.CompletedLessons = append(sp.CompletedLessons, update.LessonID)
	}
	sp.LastPracticed = &now
	if update.Accuracy != nil {
		sp.Accuracy = update.Accuracy
	}
	record.Skills[update.SkillID] = sp

	if len(update.Vocabulary) > 0 {
		record.Vocabulary = lo.Uniq(append(record.Vocabulary, update.Vocabulary...))
	}

	if err := s.progress.Upsert(ctx, *record); err != nil {
		log.Error("failed to persist skill progress: %v", err)
		return nil, errors.NewProgressUpdateFailed("could not save skill progress", err)
	}
	return record, nil
}

func (s *progressService) IsSkillUnlocked(ctx context.Context, userID, languageID, skillID string) (bool, error) {
	languageID = s.content.Resolve(languageID)

	target := s.findSkill(languageID, skillID)
	if target == nil {
		return false, errors.NewNotFoundError("skill", skillID)
	}

	record, err := s.loadOrInit(ctx, userID, languageID)
	if err != nil {
		return false, err
	}
	return skill.IsUnlocked(target.RequiredSkills, record.Skills), nil
}

func (s *progressService) PracticeQueue(ctx context.Context, userID, languageID string) ([]practice.Ranked, error) {
	log := logger.FromContext(ctx)
	languageID = s.content.Resolve(languageID)
	log.Debug("ranking practice queue: user_id=%s, language_id=%s", userID, languageID)

	record, err := s.loadOrInit(ctx, userID, languageID)
	if err != nil {
		return nil, err
	}
	return practice.Rank(s.content.Skills(languageID), record.Skills, s.now()), nil
}

func (s *progressService) SkillTree(ctx context.Context, userID, languageID string) ([]SkillStatus, error) {
	languageID = s.content.Resolve(languageID)

	record, err := s.loadOrInit(ctx, userID, languageID)
	if err != nil {
		return nil, err
	}

	catalog := s.content.Skills(languageID)
	statuses := make([]SkillStatus, 0, len(catalog))
	for _, sk := range catalog {
		status := SkillStatus{
			Skill:    sk,
			Unlocked: skill.IsUnlocked(sk.RequiredSkills, record.Skills),
		}
		if sp, ok := record.Skills[sk.ID]; ok {
			spCopy := sp
			status.Progress = &spCopy
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// loadOrInit returns the existing progress record or a fresh unsaved one.
// The user must exist; progress records are created lazily.
func (s *progressService) loadOrInit(ctx context.Context, userID, languageID string) (*models.Progress, error) {
	log := logger.FromContext(ctx)

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		log.Error("failed to load profile: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if profile == nil {
		return nil, errors.NewNotFoundError("user", userID)
	}

	record, err := s.progress.Get(ctx, userID, languageID)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if record == nil {
		log.Debug("no progress yet, starting fresh: user_id=%s, language_id=%s", userID, languageID)
		fresh := models.NewProgress(userID, languageID)
		return &fresh, nil
	}
	return record, nil
}

func (s *progressService) findSkill(languageID, skillID string) *models.Skill {
	for _, sk := range s.content.Skills(languageID) {
		if sk.ID == skillID {
			return &sk
		}
	}
	return nil
}

func summarize(record models.Progress) *ProgressSummary {
	return &ProgressSummary{
		Progress:      record,
		XPToNextLevel: leveling.XPThresholdForLevel(record.Level+1) - record.TotalXP,
		LevelProgress: leveling.ProgressPercent(record.TotalXP, record.Level),
	}
}
