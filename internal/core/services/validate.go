package services

import (
	"fmt"

	"github.com/semwerk/semspec/internal/core/domain"
)

// ValidateDoc is the pure validation pass over a parsed document.
// It never fails: findings are enumerated in full and returned as a
// list. Normalisation (boost defaults, singular-to-list coercion) has
// already happened during parsing and is not reported.
//
// Strict mode reports every check. Loose mode reports only duplicates,
// mutual-exclusion and range violations; missing cross-links between
// specs and markers are tolerated.
func ValidateDoc(doc *domain.ParsedDoc, mode domain.ValidationMode) []domain.Finding {
	if doc == nil {
		return nil
	}
	strict := mode != domain.ModeLoose

	var findings []domain.Finding

	seenSpecs := make(map[string]bool, len(doc.Frontmatter.Specs))
	for _, spec := range doc.Frontmatter.Specs {
		if spec.ID == "" {
			if strict {
				findings = append(findings, domain.Finding{
					Field:   "id",
					Message: "segment spec has an empty id",
				})
			}
		} else if seenSpecs[spec.ID] {
			findings = append(findings, domain.Finding{
				EntityID: spec.ID,
				Field:    "id",
				Message:  "duplicate segment spec id",
			})
		}
		seenSpecs[spec.ID] = true

		findings = append(findings, validateSpec(spec)...)
	}

	seenMarkers := make(map[string]bool, len(doc.Segments))
	for _, seg := range doc.Segments {
		if seg.ID == "" {
			if strict {
				findings = append(findings, domain.Finding{
					Field:   "id",
					Message: "segment marker has an empty id",
				})
			}
		} else if seenMarkers[seg.ID] {
			findings = append(findings, domain.Finding{
				EntityID: seg.ID,
				Field:    "id",
				Message:  "duplicate segment marker id",
			})
		}
		seenMarkers[seg.ID] = true

		if strict && seg.Spec == nil && seg.ID != "" {
			findings = append(findings, domain.Finding{
				EntityID: seg.ID,
				Message:  "marker has no matching segment spec",
			})
		}
	}

	if strict {
		for _, spec := range doc.Frontmatter.Specs {
			if spec.ID != "" && !seenMarkers[spec.ID] {
				findings = append(findings, domain.Finding{
					EntityID: spec.ID,
					Message:  "segment spec has no matching marker",
				})
			}
		}
	}

	return findings
}

// validateSpec checks mutual exclusion and numeric ranges for one spec.
func validateSpec(spec domain.SegmentSpec) []domain.Finding {
	var findings []domain.Finding

	switch {
	case spec.Retrieval == nil && spec.Generation == nil:
		findings = append(findings, domain.Finding{
			EntityID: spec.ID,
			Message:  "spec declares neither a return nor a generate block",
		})
	case spec.Retrieval != nil && spec.Generation != nil:
		findings = append(findings, domain.Finding{
			EntityID: spec.ID,
			Message:  "spec declares both return and generate blocks",
		})
	}

	if spec.Boost < 0 {
		findings = append(findings, domain.Finding{
			EntityID: spec.ID,
			Field:    "boost",
			Message:  fmt.Sprintf("boost must be non-negative, got %g", spec.Boost),
		})
	}

	if spec.Retrieval != nil && spec.Retrieval.MaxTokens < 0 {
		findings = append(findings, domain.Finding{
			EntityID: spec.ID,
			Field:    "return.max_tokens",
			Message:  fmt.Sprintf("token budget must be non-negative, got %d", spec.Retrieval.MaxTokens),
		})
	}

	if gen := spec.Generation; gen != nil {
		if gen.MaxTokens < 0 {
			findings = append(findings, domain.Finding{
				EntityID: spec.ID,
				Field:    "generate.max_tokens",
				Message:  fmt.Sprintf("token budget must be non-negative, got %d", gen.MaxTokens),
			})
		}
		if gen.Temperature != nil && (*gen.Temperature < 0 || *gen.Temperature > 2) {
			findings = append(findings, domain.Finding{
				EntityID: spec.ID,
				Field:    "generate.temperature",
				Message:  fmt.Sprintf("temperature must be between 0.0 and 2.0, got %g", *gen.Temperature),
			})
		}
		if gen.Iterations != nil && *gen.Iterations < 0 {
			findings = append(findings, domain.Finding{
				EntityID: spec.ID,
				Field:    "generate.iterations",
				Message:  fmt.Sprintf("iterations must be non-negative, got %d", *gen.Iterations),
			})
		}
	}

	return findings
}
