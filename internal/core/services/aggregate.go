package services

import (
	"strings"

	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/core/ports/driven"
	"github.com/semwerk/semspec/internal/core/ports/driving"
)

// Ensure Aggregator implements the interface.
var _ driving.AggregationService = (*Aggregator)(nil)

// Aggregator folds segment-level metadata into page- and project-level
// summaries. The checksum primitive is injected; without one, combined
// checksums are left empty.
type Aggregator struct {
	checksummer driven.Checksummer
}

// NewAggregator creates an aggregator with the given checksummer.
// A nil checksummer disables combined checksums.
func NewAggregator(checksummer driven.Checksummer) *Aggregator {
	return &Aggregator{checksummer: checksummer}
}

// AggregatePage folds one document's segments: set-unions of concepts
// and audience roles, union-by-key of tag lists, summed token budgets,
// the token-weighted average boost, and the combined content checksum
// over the ordered per-segment checksums.
func (a *Aggregator) AggregatePage(doc *domain.ParsedDoc) domain.PageSummary {
	summary := domain.PageSummary{
		Tags:     make(map[string][]string),
		AvgBoost: 1.0,
	}
	if doc == nil {
		return summary
	}
	summary.PageID = doc.ID

	var weighted, denom float64
	var genTotal int
	var hasGen bool
	var digest strings.Builder

	for _, seg := range doc.Segments {
		if seg.Checksum != "" {
			digest.WriteString(seg.Checksum)
		}

		spec := seg.Spec
		if spec == nil {
			continue
		}

		summary.Concepts = unionInto(summary.Concepts, spec.Concepts)
		summary.AudienceRoles = unionInto(summary.AudienceRoles, spec.AudienceRoles)
		for family, tags := range spec.Tags {
			summary.Tags[family] = unionInto(summary.Tags[family], tags)
		}

		if spec.Retrieval != nil {
			tokens := spec.Retrieval.MaxTokens
			summary.RetrievalTokens += tokens
			weighted += spec.Boost * float64(tokens)
			denom += float64(tokens)
		}
		if spec.Generation != nil {
			genTotal += spec.Generation.MaxTokens
			hasGen = true
		}
	}

	if denom > 0 {
		summary.AvgBoost = weighted / denom
	}
	if hasGen {
		summary.GenerationTokens = &genTotal
	}
	if digest.Len() > 0 && a.checksummer != nil {
		summary.Checksum = a.checksummer.Sum([]byte(digest.String()))
	}

	return summary
}

// AggregateProject applies the same fold across page summaries. Each
// page contributes its own token-weighted average boost rather than
// re-deriving it from raw segments.
func (a *Aggregator) AggregateProject(project string, pages []domain.PageSummary) domain.ProjectSummary {
	summary := domain.ProjectSummary{
		Project:  project,
		Pages:    len(pages),
		Tags:     make(map[string][]string),
		AvgBoost: 1.0,
	}

	var weighted, denom float64
	var genTotal int
	var hasGen bool
	var digest strings.Builder

	for _, page := range pages {
		summary.Concepts = unionInto(summary.Concepts, page.Concepts)
		summary.AudienceRoles = unionInto(summary.AudienceRoles, page.AudienceRoles)
		for family, tags := range page.Tags {
			summary.Tags[family] = unionInto(summary.Tags[family], tags)
		}

		summary.RetrievalTokens += page.RetrievalTokens
		weighted += page.AvgBoost * float64(page.RetrievalTokens)
		denom += float64(page.RetrievalTokens)

		if page.GenerationTokens != nil {
			genTotal += *page.GenerationTokens
			hasGen = true
		}
		if page.Checksum != "" {
			digest.WriteString(page.Checksum)
		}
	}

	if denom > 0 {
		summary.AvgBoost = weighted / denom
	}
	if hasGen {
		summary.GenerationTokens = &genTotal
	}
	if digest.Len() > 0 && a.checksummer != nil {
		summary.Checksum = a.checksummer.Sum([]byte(digest.String()))
	}

	return summary
}

// unionInto appends the values missing from dst, preserving first-seen
// order.
func unionInto(dst, values []string) []string {
	for _, v := range values {
		if !containsString(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
