// Package practice ranks a learner's skills by how urgently they need
// review, using recency, completion, and accuracy signals.
package practice

import (
	"sort"
	"time"

	"github.com/vocabree/vocabree-server/internal/models"
	"github.com/vocabree/vocabree-server/internal/skill"
)

// Ranked pairs a skill with its computed practice priority.
type Ranked struct {
	Skill    models.Skill `json:"skill"`
	Priority float64      `json:"priority"`
}

// Rank orders unlocked skills by priority, highest first. Locked skills are
// excluded entirely. Ties are broken by the skill's catalog position, so
// the ordering is stable across calls.
func Rank(skills []models.Skill, progress map[string]models.SkillProgress, now time.Time) []Ranked {
	ordered := make([]models.Skill, len(skills))
	copy(ordered, skills)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	entryID := entrySkillID(ordered)

	var out []Ranked
	for _, s := range ordered {
		if !skill.IsUnlocked(s.RequiredSkills, progress) {
			continue
		}
		p := priorityFor(s, progress, entryID, now)
		if p <= 0 {
			continue
		}
		out = append(out, Ranked{Skill: s, Priority: p})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// entrySkillID returns the first skill with no prerequisites: the one a new
// learner should be nudged toward.
func entrySkillID(ordered []models.Skill) string {
	for _, s := range ordered {
		if len(s.RequiredSkills) == 0 {
			return s.ID
		}
	}
	return ""
}

func priorityFor(s models.Skill, progress map[string]models.SkillProgress, entryID string, now time.Time) float64 {
	sp, started := progress[s.ID]
	if !started || sp.Level == 0 {
		if s.ID == entryID {
			return 20
		}
		return 10
	}

	var priority float64
	if sp.Level < s.Levels {
		priority += 10
	}

	if sp.LastPracticed != nil {
		daysSince := now.Sub(*sp.LastPracticed).Hours() / 24
		if daysSince > 7 {
			bonus := daysSince - 7
			if bonus > 10 {
				bonus = 10
			}
			priority += 5 + bonus
		}
	} else {
		priority += 5
	}

	// Accuracy is an optional signal; progress written before it was
	// tracked simply contributes nothing here.
	if sp.Accuracy != nil && *sp.Accuracy < 70 {
		priority += 15 - *sp.Accuracy/5
	}

	// A started but otherwise quiet skill still surfaces at the bottom.
	if priority == 0 {
		priority = 1
	}
	return priority
}
