package driven

import "github.com/semwerk/semspec/internal/core/domain"

// SchemaValidator is an optional, swappable collaborator compiled from an
// externally loaded schema file. The core's own structural checks stand
// alone and never depend on a schema being present.
type SchemaValidator interface {
	// ValidateEnvelope checks a decoded graph document against the
	// schema for its kind. Findings are enumerated, never thrown.
	ValidateEnvelope(kind string, doc map[string]any) []domain.Finding
}
