// Package types provides type definitions for the RenderCV input model shared by the cv-bank tools.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Input represents a validated RenderCV input document
type Input struct {
	CV       CV             `yaml:"cv"`
	Design   map[string]any `yaml:"design,omitempty"`
	Locale   map[string]any `yaml:"locale,omitempty"`
	Settings map[string]any `yaml:"rendercv_settings,omitempty"`
}

// HasDesign reports whether the document carries a design block
func (in *Input) HasDesign() bool {
	return in != nil && in.Design != nil
}

// CV represents the personal header and the sections of a CV
type CV struct {
	Name           string          `yaml:"name,omitempty"`
	Location       string          `yaml:"location,omitempty"`
	Email          string          `yaml:"email,omitempty" validate:"omitempty,email"`
	Phone          string          `yaml:"phone,omitempty"`
	Website        string          `yaml:"website,omitempty" validate:"omitempty,url"`
	SocialNetworks []SocialNetwork `yaml:"social_networks,omitempty" validate:"omitempty,dive"`
	Sections       Sections        `yaml:"sections,omitempty"`
}

// SocialNetwork represents a single social profile link
type SocialNetwork struct {
	Network  string `yaml:"network" validate:"required"`
	Username string `yaml:"username" validate:"required"`
}

// Sections holds the known CV sections as explicit optional fields.
// A section is present when its slice is non-empty; any other titled
// section ends up in Other.
type Sections struct {
	Summary         []string          `yaml:"summary,omitempty"`
	Experience      []ExperienceEntry `yaml:"experience,omitempty" validate:"omitempty,dive"`
	Education       []EducationEntry  `yaml:"education,omitempty" validate:"omitempty,dive"`
	TechnicalSkills []OneLineEntry    `yaml:"technical_skills,omitempty"`
	Certifications  []BulletEntry     `yaml:"certifications,omitempty"`
	Other           map[string][]any  `yaml:",inline"`
}

// ExperienceEntry represents a single position held at a company
type ExperienceEntry struct {
	Company    string   `yaml:"company"`
	Position   string   `yaml:"position"`
	Location   string   `yaml:"location,omitempty"`
	StartDate  string   `yaml:"start_date,omitempty" validate:"omitempty,cvdate"`
	EndDate    string   `yaml:"end_date,omitempty" validate:"omitempty,cvdate|eq=present"`
	Date       string   `yaml:"date,omitempty"`
	Summary    string   `yaml:"summary,omitempty"`
	Highlights []string `yaml:"highlights,omitempty"`
}

// EducationEntry represents a single degree or course of study
type EducationEntry struct {
	Institution string   `yaml:"institution"`
	Area        string   `yaml:"area"`
	Degree      string   `yaml:"degree,omitempty"`
	Location    string   `yaml:"location,omitempty"`
	StartDate   string   `yaml:"start_date,omitempty" validate:"omitempty,cvdate"`
	EndDate     string   `yaml:"end_date,omitempty" validate:"omitempty,cvdate|eq=present"`
	Date        string   `yaml:"date,omitempty"`
	Summary     string   `yaml:"summary,omitempty"`
	Highlights  []string `yaml:"highlights,omitempty"`
}

// OneLineEntry represents a "label: details" line, used for skill categories
type OneLineEntry struct {
	Label   string `yaml:"label"`
	Details string `yaml:"details"`
}

// BulletEntry represents a single bullet line
type BulletEntry struct {
	Bullet string `yaml:"bullet"`
}
