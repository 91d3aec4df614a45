package types

import "fmt"

// CV is the résumé aggregate as returned by /cvs/{id}/. The nested
// sections are present only when the serializer expands them.
type CV struct {
	ID          int          `json:"id"`
	User        int          `json:"user"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
	Contact     *Contact     `json:"contact,omitempty"`
	Experiences []Experience `json:"experiences,omitempty"`
	Educations  []Education  `json:"educations,omitempty"`
	Skills      []Skill      `json:"skills,omitempty"`
}

// Contact is one-to-one with a CV.
type Contact struct {
	ID           int    `json:"id"`
	CV           int    `json:"cv"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`
	City         string `json:"city"`
	Country      string `json:"country,omitempty"`
	LinkedinURL  string `json:"linkedin_url,omitempty"`
	PortfolioURL string `json:"portfolio_url,omitempty"`
}

// Experience is many-to-one with a CV, ordered by the explicit Order field.
type Experience struct {
	ID          int    `json:"id"`
	CV          int    `json:"cv"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

// Education is many-to-one with a CV, ordered by the explicit Order field.
type Education struct {
	ID          int    `json:"id"`
	CV          int    `json:"cv"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

// Skill is many-to-one with a CV. Level is the numeric wire value
// (out of 10); the symbolic levels below map onto it.
type Skill struct {
	ID       int    `json:"id"`
	CV       int    `json:"cv"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    int    `json:"level,omitempty"`
}

// SkillLevel is the symbolic proficiency scale shown to the user.
type SkillLevel string

// Symbolic skill levels, ordered weakest to strongest.
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// DefaultSkillScore is sent when no symbolic level was chosen.
const DefaultSkillScore = 5

// DefaultSkillCategory is the category the backend model defaults to.
const DefaultSkillCategory = "TECH"

// skillScores maps symbolic levels to the integer score the backend stores.
var skillScores = map[SkillLevel]int{
	LevelBeginner:     3,
	LevelIntermediate: 5,
	LevelAdvanced:     8,
	LevelExpert:       10,
}

// LevelForScore maps a stored numeric score back to its symbolic level.
// Scores outside the four known values return the empty level, which
// scores as the default when sent back.
func LevelForScore(score int) SkillLevel {
	for level, s := range skillScores {
		if s == score {
			return level
		}
	}
	return ""
}

// Score returns the numeric wire value for a symbolic level, or the
// default score when the level is empty or unknown.
func (l SkillLevel) Score() int {
	if score, ok := skillScores[l]; ok {
		return score
	}
	return DefaultSkillScore
}

// Valid reports whether l is one of the four known levels or empty.
func (l SkillLevel) Valid() bool {
	if l == "" {
		return true
	}
	_, ok := skillScores[l]
	return ok
}

// ParseSkillLevel converts user input into a SkillLevel.
func ParseSkillLevel(s string) (SkillLevel, error) {
	level := SkillLevel(s)
	if !level.Valid() {
		return "", fmt.Errorf("unknown skill level %q (expected beginner, intermediate, advanced or expert)", s)
	}
	return level, nil
}
