package content

import "github.com/vocabree/vocabree-server/internal/models"

// StaticProvider serves the built-in course catalog. All data is immutable
// after construction, so the provider is safe for concurrent use.
type StaticProvider struct{}

// NewStaticProvider returns the built-in content catalog.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

var languages = []models.Language{
	{ID: "hindi", Name: "Hindi", NativeName: "हिन्दी", Flag: "🇮🇳"},
	{ID: "bengali", Name: "Bengali", NativeName: "বাংলা", Flag: "🇧🇩"},
	{ID: "telugu", Name: "Telugu", NativeName: "తెలుగు", Flag: "🇮🇳"},
	{ID: "kannada", Name: "Kannada", NativeName: "ಕನ್ನಡ", Flag: "🇮🇳"},
	{ID: "tamil", Name: "Tamil", NativeName: "தமிழ்", Flag: "🇮🇳"},
}

// SkillLevels is the crown count per skill.
const SkillLevels = 5

// The skill tree is shared across courses: two basics skills gate the rest,
// and the food skill requires both intermediate branches.
var skills = []models.Skill{
	{ID: "basics_1", Name: "Basics 1", Icon: "👋", Levels: SkillLevels, RequiredSkills: []string{}, Position: 1},
	{ID: "basics_2", Name: "Basics 2", Icon: "💬", Levels: SkillLevels, RequiredSkills: []string{"basics_1"}, Position: 2},
	{ID: "numbers", Name: "Numbers", Icon: "🔢", Levels: SkillLevels, RequiredSkills: []string{"basics_2"}, Position: 3},
	{ID: "family", Name: "Family", Icon: "👪", Levels: SkillLevels, RequiredSkills: []string{"basics_2"}, Position: 4},
	{ID: "food", Name: "Food & Drinks", Icon: "🍛", Levels: SkillLevels, RequiredSkills: []string{"numbers", "family"}, Position: 5},
}

func (p *StaticProvider) Resolve(languageID string) string {
	for _, l := range languages {
		if l.ID == languageID {
			return l.ID
		}
	}
	return DefaultLanguageID
}

func (p *StaticProvider) Languages() []models.Language {
	out := make([]models.Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageName returns the display name for a language, resolving unknown
// IDs to the default course first.
func (p *StaticProvider) LanguageName(languageID string) string {
	id := p.Resolve(languageID)
	for _, l := range languages {
		if l.ID == id {
			return l.Name
		}
	}
	return id
}

func (p *StaticProvider) Skills(languageID string) []models.Skill {
	// Every course currently shares the same tree; the language parameter
	// keeps the contract ready for per-course trees.
	out := make([]models.Skill, len(skills))
	copy(out, skills)
	return out
}

func (p *StaticProvider) Vocabulary(languageID, skillID string, level int) VocabularySet {
	sets := vocabularyFor(skillID, level)
	if s, ok := sets[p.Resolve(languageID)]; ok {
		return s
	}
	return sets[DefaultLanguageID]
}

func (p *StaticProvider) EnglishVocabulary(skillID string, level int) VocabularySet {
	sets := vocabularyFor(skillID, level)
	if s, ok := sets[ReferenceLanguageID]; ok {
		return s
	}
	return sets[DefaultLanguageID]
}

// vocabularyFor resolves the per-language sets for a skill level, falling
// back to basics_1 for unknown skills and to level 1 for unknown levels.
func vocabularyFor(skillID string, level int) map[string]VocabularySet {
	skillVocab, ok := vocabularies[skillID]
	if !ok {
		skillVocab = vocabularies["basics_1"]
	}
	levelVocab, ok := skillVocab[level]
	if !ok {
		levelVocab = skillVocab[1]
	}
	return levelVocab
}
