package models

// Skill is a static content definition. RequiredSkills lists the skill IDs
// that must each be at level 1 or higher before this skill unlocks.
type Skill struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Icon           string   `json:"icon"`
	Levels         int      `json:"levels"`
	RequiredSkills []string `json:"required_skills"`
	Position       int      `json:"position"`
}

// Language describes a course offered by the app.
type Language struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Flag       string `json:"flag"`
}
