package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository"
)

type progressKey struct {
	userID     string
	languageID string
}

type progressRepository struct {
	mu      sync.RWMutex
	records map[progressKey]models.Progress
}

// NewProgressRepository creates an empty in-memory ProgressRepository
func NewProgressRepository() repository.ProgressRepository {
	return &progressRepository{records: map[progressKey]models.Progress{}}
}

func (r *progressRepository) Get(ctx context.Context, userID, languageID string) (*models.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.records[progressKey{userID, languageID}]
	if !ok {
		return nil, nil
	}
	clone := cloneProgress(p)
	return &clone, nil
}

func (r *progressRepository) Upsert(ctx context.Context, progress models.Progress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	key := progressKey{progress.UserID, progress.LanguageID}
	stored := cloneProgress(progress)
	if existing, ok := r.records[key]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	r.records[key] = stored
	return nil
}

func (r *progressRepository) ListForUser(ctx context.Context, filter models.ProgressFilter) ([]models.Progress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []models.Progress
	for key, p := range r.records {
		if filter.UserID != "" && key.userID != filter.UserID {
			continue
		}
		if filter.LanguageID != "" && key.languageID != filter.LanguageID {
			continue
		}
		records = append(records, cloneProgress(p))
	}

	desc := filter.OrderDir == "DESC"
	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return progressLess(records[j], records[i], filter.OrderBy)
		}
		return progressLess(records[i], records[j], filter.OrderBy)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(records) {
			return nil, nil
		}
		records = records[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(records) {
		records = records[:filter.Limit]
	}
	return records, nil
}

func progressLess(a, b models.Progress, orderBy string) bool {
	switch orderBy {
	case "total_xp":
		return a.TotalXP < b.TotalXP
	case "updated_at":
		return a.UpdatedAt.Before(b.UpdatedAt)
	case "last_active_date":
		at, bt := time.Time{}, time.Time{}
		if a.LastActiveDate != nil {
			at = *a.LastActiveDate
		}
		if b.LastActiveDate != nil {
			bt = *b.LastActiveDate
		}
		return at.Before(bt)
	default:
		return a.LanguageID < b.LanguageID
	}
}

func cloneProgress(p models.Progress) models.Progress {
	clone := p
	if p.LastActiveDate != nil {
		t := *p.LastActiveDate
		clone.LastActiveDate = &t
	}
	clone.Skills = make(map[string]models.SkillProgress, len(p.Skills))
	for id, sp := range p.Skills {
		spClone := sp
		spClone.CompletedLessons = append([]string(nil), sp.CompletedLessons...)
		if sp.LastPracticed != nil {
			t := *sp.LastPracticed
			spClone.LastPracticed = &t
		}
		if sp.Accuracy != nil {
			a := *sp.Accuracy
			spClone.Accuracy = &a
		}
		clone.Skills[id] = spClone
	}
	clone.Vocabulary = append([]string(nil), p.Vocabulary...)
	return clone
}
