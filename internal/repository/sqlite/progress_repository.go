package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vocabree/vocabree-server/internal/logger"
	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type progressRepository struct {
	db *sql.DB
}

// NewProgressRepository creates a new ProgressRepository implementation
func NewProgressRepository(db *sql.DB) repository.ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Get(ctx context.Context, userID, languageID string) (*models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("getting progress: user_id=%s, language_id=%s", userID, languageID)

	row := r.db.QueryRowContext(ctx, `
SELECT user_id, language_id, level, total_xp, current_streak, longest_streak, last_active_date, skills, vocabulary, created_at, updated_at
FROM progress
WHERE user_id = ? AND language_id = ?
`, userID, languageID)

	p, err := scanProgress(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("progress not found: user_id=%s, language_id=%s", userID, languageID)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get progress: %v", err)
		return nil, err
	}
	return p, nil
}

func (r *progressRepository) Upsert(ctx context.Context, progress models.Progress) error {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("upserting progress: user_id=%s, language_id=%s, total_xp=%d", progress.UserID, progress.LanguageID, progress.TotalXP)

	skills, err := marshalJSON(progress.Skills)
	if err != nil {
		return err
	}
	vocabulary, err := marshalJSON(progress.Vocabulary)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO progress (user_id, language_id, level, total_xp, current_streak, longest_streak, last_active_date, skills, vocabulary)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id, language_id) DO UPDATE SET
    level = excluded.level,
    total_xp = excluded.total_xp,
    current_streak = excluded.current_streak,
    longest_streak = excluded.longest_streak,
    last_active_date = excluded.last_active_date,
    skills = excluded.skills,
    vocabulary = excluded.vocabulary,
    updated_at = CURRENT_TIMESTAMP
`, progress.UserID, progress.LanguageID, progress.Level, progress.TotalXP, progress.CurrentStreak, progress.LongestStreak, nullableTime(progress.LastActiveDate), skills, vocabulary)
	if err != nil {
		log.Error("failed to upsert progress: %v", err)
	}
	return err
}

func (r *progressRepository) ListForUser(ctx context.Context, filter models.ProgressFilter) ([]models.Progress, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("listing progress with filter: user_id=%s, language_id=%s", filter.UserID, filter.LanguageID)

	query := sqlBuilder.Select(
		"user_id", "language_id", "level", "total_xp", "current_streak",
		"longest_streak", "last_active_date", "skills", "vocabulary",
		"created_at", "updated_at",
	).From("progress")

	// Dynamic WHERE clauses
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.LanguageID != "" {
		query = query.Where(squirrel.Eq{"language_id": filter.LanguageID})
	}

	// Safe ORDER BY with validation
	orderBy := "language_id"
	switch filter.OrderBy {
	case "total_xp", "updated_at", "last_active_date", "language_id":
		orderBy = filter.OrderBy
	}
	orderDir := "ASC"
	if filter.OrderDir == "DESC" {
		orderDir = "DESC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, err
	}
	defer rows.Close()

	var records []models.Progress
	for rows.Next() {
		p, err := scanProgress(rows.Scan)
		if err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, err
		}
		records = append(records, *p)
	}

	log.Debug("found %d progress records", len(records))
	return records, rows.Err()
}

// scanProgress decodes a full progress row from either QueryRow or Rows.
func scanProgress(scan func(dest ...any) error) (*models.Progress, error) {
	var (
		p          models.Progress
		lastActive sql.NullTime
		skills     string
		vocabulary string
	)
	err := scan(&p.UserID, &p.LanguageID, &p.Level, &p.TotalXP, &p.CurrentStreak, &p.LongestStreak, &lastActive, &skills, &vocabulary, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if lastActive.Valid {
		t := lastActive.Time
		p.LastActiveDate = &t
	}
	p.Skills = map[string]models.SkillProgress{}
	if err := unmarshalJSON(skills, &p.Skills); err != nil {
		return nil, err
	}
	p.Vocabulary = []string{}
	if err := unmarshalJSON(vocabulary, &p.Vocabulary); err != nil {
		return nil, err
	}
	return &p, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
