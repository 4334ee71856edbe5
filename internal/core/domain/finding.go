package domain

import "fmt"

// Finding is a single validation result. Findings are always fully
// enumerated and returned as a list, never signalled as errors; their
// presence alone indicates invalidity.
type Finding struct {
	// EntityID names the segment, node, concept or asset the finding
	// refers to. May be empty for document-level findings.
	EntityID string

	// Field names the offending field, when one can be identified.
	Field string

	// Message is the human-readable description.
	Message string
}

// String renders the finding for CLI output.
func (f Finding) String() string {
	switch {
	case f.EntityID != "" && f.Field != "":
		return fmt.Sprintf("%s.%s: %s", f.EntityID, f.Field, f.Message)
	case f.EntityID != "":
		return fmt.Sprintf("%s: %s", f.EntityID, f.Message)
	default:
		return f.Message
	}
}

// ValidationMode selects how much of the cross-link surface is enforced.
type ValidationMode string

const (
	// ModeStrict reports every check, including markers without specs
	// and specs without markers.
	ModeStrict ValidationMode = "strict"

	// ModeLoose reports only duplicates, mutual-exclusion and range
	// violations; missing cross-links are tolerated.
	ModeLoose ValidationMode = "loose"
)
