// Package skill holds the unlock rules for the skill tree.
package skill

import "github.com/vocabree/vocabree-server/internal/models"

// IsUnlocked reports whether a skill is accessible given the learner's
// per-skill progress. A skill with no prerequisites is always unlocked.
// Otherwise every required skill must be at level 1 or higher; a missing
// progress entry counts as not satisfied. There is no partial credit.
func IsUnlocked(requiredSkills []string, progress map[string]models.SkillProgress) bool {
	if len(requiredSkills) == 0 {
		return true
	}
	for _, id := range requiredSkills {
		sp, ok := progress[id]
		if !ok || sp.Level < 1 {
			return false
		}
	}
	return true
}
