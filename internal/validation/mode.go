package validation

import "fmt"

// Mode selects how much detail a validation run reports
type Mode string

const (
	// ModeQuick only reports whether the file is valid
	ModeQuick Mode = "quick"
	// ModeDetailed adds the CV name and a per-section breakdown
	ModeDetailed Mode = "detailed"
	// ModeFull adds labeled stages and missing-field warnings
	ModeFull Mode = "full"
)

// Modes lists the supported modes in increasing verbosity
var Modes = []Mode{ModeQuick, ModeDetailed, ModeFull}

// ParseMode converts a mode name into a Mode
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mode %q (choose from quick, detailed, full)", s)
}

// ResolveMode picks the effective mode from the CLI inputs.
// An explicit mode wins, then full, then detailed; quick is the default.
func ResolveMode(explicit string, full, detailed bool) (Mode, error) {
	if explicit != "" {
		return ParseMode(explicit)
	}
	if full {
		return ModeFull, nil
	}
	if detailed {
		return ModeDetailed, nil
	}
	return ModeQuick, nil
}
