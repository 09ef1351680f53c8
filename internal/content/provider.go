// Package content supplies the static course material the engine consumes:
// language catalog, skill trees, and per-skill vocabulary tables.
package content

import "github.com/vocabree/vocabree-server/internal/models"

// DefaultLanguageID is the course every unknown language resolves to. Hindi
// is the most complete course and guarantees a renderable lesson.
const DefaultLanguageID = "hindi"

// ReferenceLanguageID is the language prompts and answers are checked
// against.
const ReferenceLanguageID = "english"

// VocabularySet is the five-item vocabulary drawn for one skill level.
type VocabularySet struct {
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
	Word3 string `json:"word3"`
	Word4 string `json:"word4"`
	Word5 string `json:"word5"`
}

// Words returns the set in declaration order.
func (v VocabularySet) Words() []string {
	return []string{v.Word1, v.Word2, v.Word3, v.Word4, v.Word5}
}

// Contains reports whether word is one of the five items.
func (v VocabularySet) Contains(word string) bool {
	for _, w := range v.Words() {
		if w == word {
			return true
		}
	}
	return false
}

// Provider is the engine's read-only view of course content. Lookups never
// fail: unknown keys resolve to documented defaults so the client always
// receives something renderable.
type Provider interface {
	// Resolve maps a requested language to the effective course language,
	// falling back to DefaultLanguageID for unknown IDs.
	Resolve(languageID string) string
	// Languages lists the offered courses.
	Languages() []models.Language
	// LanguageName returns the display name of the effective course for a
	// language ID.
	LanguageName(languageID string) string
	// Skills returns the skill tree for a language, ordered by position.
	Skills(languageID string) []models.Skill
	// Vocabulary returns the five-item set for a skill level in the target
	// language.
	Vocabulary(languageID, skillID string, level int) VocabularySet
	// EnglishVocabulary returns the same set in the reference language.
	EnglishVocabulary(skillID string, level int) VocabularySet
}
