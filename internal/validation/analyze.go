package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/cv-bank/internal/types"
)

// SectionSummary describes one populated section of a CV
type SectionSummary struct {
	Key      string
	Title    string
	Count    int
	Unit     string
	Lines    []string
	Warnings []Warning
}

// Warning flags an entry whose expected field is empty
type Warning struct {
	Section string
	Entry   int // 1-based
	Field   string
}

func (w Warning) String() string {
	label := "Experience"
	if w.Section == "education" {
		label = "Education"
	}
	if w.Field == "area" {
		return fmt.Sprintf("%s entry %d: Missing %s field", label, w.Entry, w.Field)
	}
	return fmt.Sprintf("%s entry %d: Missing %s", label, w.Entry, w.Field)
}

// Analysis is the content breakdown of a validated CV
type Analysis struct {
	Name      string
	Sections  []SectionSummary
	Other     []SectionSummary
	HasDesign bool
}

// SectionCount returns the number of populated known sections
func (a *Analysis) SectionCount() int {
	return len(a.Sections)
}

// Warnings returns every missing-field warning in section order
func (a *Analysis) Warnings() []Warning {
	var out []Warning
	for _, s := range a.Sections {
		out = append(out, s.Warnings...)
	}
	return out
}

// Analyze inspects a validated input and summarizes its sections.
// Sections with no entries are left out.
func Analyze(input *types.Input) *Analysis {
	a := &Analysis{}
	if input == nil {
		return a
	}
	a.Name = input.CV.Name
	a.HasDesign = input.HasDesign()

	s := input.CV.Sections

	if len(s.Summary) > 0 {
		a.Sections = append(a.Sections, SectionSummary{
			Key: "summary", Title: "Summary", Count: len(s.Summary), Unit: "items",
		})
	}

	if len(s.Experience) > 0 {
		sec := SectionSummary{Key: "experience", Title: "Experience", Count: len(s.Experience), Unit: "entries"}
		for i, exp := range s.Experience {
			sec.Lines = append(sec.Lines, fmt.Sprintf("%d. %s at %s", i+1, exp.Position, exp.Company))
			if isBlank(exp.Company) {
				sec.Warnings = append(sec.Warnings, Warning{Section: "experience", Entry: i + 1, Field: "company"})
			}
			if isBlank(exp.Position) {
				sec.Warnings = append(sec.Warnings, Warning{Section: "experience", Entry: i + 1, Field: "position"})
			}
		}
		a.Sections = append(a.Sections, sec)
	}

	if len(s.Education) > 0 {
		sec := SectionSummary{Key: "education", Title: "Education", Count: len(s.Education), Unit: "entries"}
		for i, edu := range s.Education {
			sec.Lines = append(sec.Lines, fmt.Sprintf("%d. %s in %s from %s", i+1, edu.Degree, edu.Area, edu.Institution))
			if isBlank(edu.Area) {
				sec.Warnings = append(sec.Warnings, Warning{Section: "education", Entry: i + 1, Field: "area"})
			}
			if isBlank(edu.Degree) {
				sec.Warnings = append(sec.Warnings, Warning{Section: "education", Entry: i + 1, Field: "degree"})
			}
			if isBlank(edu.Institution) {
				sec.Warnings = append(sec.Warnings, Warning{Section: "education", Entry: i + 1, Field: "institution"})
			}
		}
		a.Sections = append(a.Sections, sec)
	}

	if len(s.TechnicalSkills) > 0 {
		sec := SectionSummary{Key: "technical_skills", Title: "Technical Skills", Count: len(s.TechnicalSkills), Unit: "categories"}
		for _, skill := range s.TechnicalSkills {
			sec.Lines = append(sec.Lines, fmt.Sprintf("- %s: %s", skill.Label, skill.Details))
		}
		a.Sections = append(a.Sections, sec)
	}

	if len(s.Certifications) > 0 {
		sec := SectionSummary{Key: "certifications", Title: "Certifications", Count: len(s.Certifications), Unit: "items"}
		for _, cert := range s.Certifications {
			sec.Lines = append(sec.Lines, fmt.Sprintf("- %s", cert.Bullet))
		}
		a.Sections = append(a.Sections, sec)
	}

	keys := make([]string, 0, len(s.Other))
	for k, entries := range s.Other {
		if len(entries) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.Other = append(a.Other, SectionSummary{Key: k, Title: k, Count: len(s.Other[k]), Unit: "entries"})
	}

	return a
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
