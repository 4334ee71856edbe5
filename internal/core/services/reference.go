package services

import (
	"fmt"
	"strings"

	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/core/ports/driving"
)

// Ensure Resolver implements the interface.
var _ driving.ReferenceService = (*Resolver)(nil)

// Resolver parses, builds and resolves the three reference shapes.
// All three grammars share one design: an optional scope/project prefix,
// an optional path body and an optional trailing fragment.
type Resolver struct{}

// NewResolver creates a reference resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ParseSegmentRef parses "[@project/]document#segment" or bare
// "#segment". The segment id follows the LAST "#" and must be
// non-empty; an "@"-prefixed resource path splits on the FIRST "/"
// into project and document.
func (r *Resolver) ParseSegmentRef(raw string) (domain.SegmentRef, error) {
	hash := strings.LastIndex(raw, "#")
	if hash < 0 {
		return domain.SegmentRef{}, fmt.Errorf("%w: %q has no segment fragment", domain.ErrInvalidRef, raw)
	}

	segment := raw[hash+1:]
	if segment == "" {
		return domain.SegmentRef{}, fmt.Errorf("%w: %q has an empty segment id", domain.ErrInvalidRef, raw)
	}

	ref := domain.SegmentRef{Segment: segment, Raw: raw}

	resource := raw[:hash]
	if resource == "" {
		return ref, nil
	}

	if strings.HasPrefix(resource, "@") {
		rest := resource[1:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			ref.Project = rest[:slash]
			ref.Document = rest[slash+1:]
		} else {
			ref.Project = rest
		}
		if ref.Project == "" {
			return domain.SegmentRef{}, fmt.Errorf("%w: %q has an empty project", domain.ErrInvalidRef, raw)
		}
		return ref, nil
	}

	ref.Document = resource
	return ref, nil
}

// ParseProjectRef parses "@project" or "scope:project". The FIRST ":"
// splits scope from project; both must be non-empty.
func (r *Resolver) ParseProjectRef(raw string) (domain.ProjectRef, error) {
	if strings.HasPrefix(raw, "@") {
		project := raw[1:]
		if project == "" || strings.ContainsAny(project, ":/") {
			return domain.ProjectRef{}, fmt.Errorf("%w: %q is not a project reference", domain.ErrInvalidRef, raw)
		}
		return domain.ProjectRef{Project: project, Raw: raw}, nil
	}

	colon := strings.Index(raw, ":")
	if colon < 0 {
		return domain.ProjectRef{}, fmt.Errorf("%w: %q is not a project reference", domain.ErrInvalidRef, raw)
	}
	scope, project := raw[:colon], raw[colon+1:]
	if scope == "" || project == "" {
		return domain.ProjectRef{}, fmt.Errorf("%w: %q has an empty scope or project", domain.ErrInvalidRef, raw)
	}
	return domain.ProjectRef{Scope: scope, Project: project, Raw: raw}, nil
}

// ParsePageRef parses "@project/page" or bare "page". "@project" with
// no "/" is invalid, not defaulted.
func (r *Resolver) ParsePageRef(raw string) (domain.PageRef, error) {
	if raw == "" {
		return domain.PageRef{}, fmt.Errorf("%w: empty page reference", domain.ErrInvalidRef)
	}

	if strings.HasPrefix(raw, "@") {
		rest := raw[1:]
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return domain.PageRef{}, fmt.Errorf("%w: %q names a project but no page", domain.ErrInvalidRef, raw)
		}
		project, page := rest[:slash], rest[slash+1:]
		if project == "" || page == "" {
			return domain.PageRef{}, fmt.Errorf("%w: %q has an empty project or page", domain.ErrInvalidRef, raw)
		}
		return domain.PageRef{Project: project, Page: page, Raw: raw}, nil
	}

	return domain.PageRef{Page: raw, Raw: raw}, nil
}

// Resolve fills the missing project and document from the ambient
// context. A ref whose project or document remains empty after
// substitution is unresolvable. The returned ref's Raw is the canonical
// string: two refs resolving to the same components always produce
// identical canonical strings.
func (r *Resolver) Resolve(ref domain.SegmentRef, rctx domain.ResolveContext) (domain.SegmentRef, error) {
	if ref.Segment == "" {
		return domain.SegmentRef{}, fmt.Errorf("%w: missing segment id", domain.ErrInvalidRef)
	}

	resolved := domain.SegmentRef{
		Project:  ref.Project,
		Document: ref.Document,
		Segment:  ref.Segment,
	}
	if resolved.Project == "" {
		resolved.Project = rctx.Project
	}
	if resolved.Document == "" {
		resolved.Document = rctx.Document
	}

	if resolved.Project == "" {
		return domain.SegmentRef{}, fmt.Errorf("%w: no project for %q", domain.ErrUnresolvedRef, ref.Raw)
	}
	if resolved.Document == "" {
		return domain.SegmentRef{}, fmt.Errorf("%w: no document for %q", domain.ErrUnresolvedRef, ref.Raw)
	}

	resolved.Raw = resolved.Canonical()
	return resolved, nil
}

// BuildSegmentRef constructs a segment ref from components.
// ParseSegmentRef(BuildSegmentRef(p, d, s).Canonical()) round-trips for
// all non-empty component strings.
func BuildSegmentRef(project, document, segment string) domain.SegmentRef {
	ref := domain.SegmentRef{Project: project, Document: document, Segment: segment}
	ref.Raw = ref.Canonical()
	return ref
}
