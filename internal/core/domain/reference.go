package domain

// References are immutable value types. Equality is structural over the
// resolved components, never over the original string: two syntactically
// different strings may resolve to the same canonical reference.

// SegmentRef addresses a segment within a document, optionally scoped to
// a project: "[@project/]document#segment" or bare "#segment".
type SegmentRef struct {
	// Project is the optional project scope, without the "@" prefix.
	Project string

	// Document is the document id. Empty for a bare "#segment" ref.
	Document string

	// Segment is the segment id. Always non-empty for a valid ref.
	Segment string

	// Raw is the original string the ref was parsed from.
	Raw string
}

// Canonical rebuilds the reference string from its components.
// Two refs with equal components always canonicalise identically.
func (r SegmentRef) Canonical() string {
	out := ""
	if r.Project != "" {
		out = "@" + r.Project + "/"
	}
	out += r.Document
	return out + "#" + r.Segment
}

// Equal reports structural equality, ignoring the raw string.
func (r SegmentRef) Equal(other SegmentRef) bool {
	return r.Project == other.Project &&
		r.Document == other.Document &&
		r.Segment == other.Segment
}

// ProjectRef addresses a project: "@project" or "scope:project".
type ProjectRef struct {
	// Scope is the optional registry scope.
	Scope string

	// Project is the project id. Always non-empty for a valid ref.
	Project string

	// Raw is the original string.
	Raw string
}

// Canonical rebuilds the reference string from its components.
func (r ProjectRef) Canonical() string {
	if r.Scope != "" {
		return r.Scope + ":" + r.Project
	}
	return "@" + r.Project
}

// Equal reports structural equality, ignoring the raw string.
func (r ProjectRef) Equal(other ProjectRef) bool {
	return r.Scope == other.Scope && r.Project == other.Project
}

// PageRef addresses a page: "@project/page" or bare "page".
// "@project" with no "/" is invalid, not defaulted.
type PageRef struct {
	// Project is the optional project scope.
	Project string

	// Page is the page id. Always non-empty for a valid ref.
	Page string

	// Raw is the original string.
	Raw string
}

// Canonical rebuilds the reference string from its components.
func (r PageRef) Canonical() string {
	if r.Project != "" {
		return "@" + r.Project + "/" + r.Page
	}
	return r.Page
}

// Equal reports structural equality, ignoring the raw string.
func (r PageRef) Equal(other PageRef) bool {
	return r.Project == other.Project && r.Page == other.Page
}

// ResolveContext supplies the ambient project and document used to fill
// partial references during resolution.
type ResolveContext struct {
	// Project is the current project id.
	Project string

	// Document is the current document id.
	Document string
}
