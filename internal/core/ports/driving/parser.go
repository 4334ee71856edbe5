package driving

import (
	"context"

	"github.com/semwerk/semspec/internal/core/domain"
)

// ParserService parses documentation pages into segments.
type ParserService interface {
	// Parse segments a document. Structural marker-pairing failures
	// abort the parse; missing specs do not (two-phase parse/validate).
	Parse(ctx context.Context, text string) (*domain.ParsedDoc, error)

	// Validate runs the pure validation pass over a parsed document.
	Validate(doc *domain.ParsedDoc, mode domain.ValidationMode) []domain.Finding
}

// ReferenceService parses, builds and resolves reference strings.
type ReferenceService interface {
	// ParseSegmentRef parses "[@project/]document#segment" or "#segment".
	ParseSegmentRef(raw string) (domain.SegmentRef, error)

	// ParseProjectRef parses "@project" or "scope:project".
	ParseProjectRef(raw string) (domain.ProjectRef, error)

	// ParsePageRef parses "@project/page" or "page".
	ParsePageRef(raw string) (domain.PageRef, error)

	// Resolve fills a partial segment ref from the ambient context and
	// returns the canonical string.
	Resolve(ref domain.SegmentRef, rctx domain.ResolveContext) (domain.SegmentRef, error)
}
