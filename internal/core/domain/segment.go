package domain

// MarkerKind distinguishes start and end markers.
type MarkerKind string

const (
	// MarkerStart opens a segment and carries the segment id.
	MarkerStart MarkerKind = "start"

	// MarkerEnd closes the most recently opened segment. End markers
	// carry no id; pairing is positional.
	MarkerEnd MarkerKind = "end"
)

// RawMarker is a single marker occurrence in document text.
// It is transient: produced by the scanner, consumed by the assembler.
type RawMarker struct {
	// Kind is start or end.
	Kind MarkerKind

	// ID is the captured segment id. Empty for end markers.
	ID string

	// Offset is the byte offset where the marker token begins.
	Offset int

	// MatchLen is the byte length of the full marker token.
	MatchLen int

	// Type is the optional inline type attribute on a start marker.
	Type string

	// Audience is the optional inline audience attribute, already split
	// on commas.
	Audience []string
}

// End returns the byte offset just past the marker token.
func (m RawMarker) End() int {
	return m.Offset + m.MatchLen
}

// MarkerRange is one validated start/end marker pair.
//
// Invariant: StartEnd <= EndBegin. Ranges of the same document never
// overlap or nest.
type MarkerRange struct {
	// ID is the segment id captured from the start marker.
	ID string

	// StartBegin and StartEnd delimit the start marker token.
	StartBegin int
	StartEnd   int

	// EndBegin and EndEnd delimit the end marker token.
	EndBegin int
	EndEnd   int
}

// RetrievalConfig describes how a segment is returned at query time.
type RetrievalConfig struct {
	// MaxTokens is the token budget for the returned content.
	MaxTokens int
}

// GenerationConfig describes how a segment's content is generated.
type GenerationConfig struct {
	// MaxTokens is the token budget for generation.
	MaxTokens int

	// Temperature is the optional sampling temperature, 0.0 to 2.0.
	Temperature *float64

	// Iterations is the optional refinement iteration count, >= 0.
	Iterations *int
}

// SegmentSpec is the declarative metadata for one segment, keyed by id.
//
// Invariant: ID is non-empty and unique within a document's spec set.
// Exactly one of Retrieval or Generation must be set.
type SegmentSpec struct {
	// ID is the segment id the spec applies to.
	ID string

	// Type is the segment type tag (e.g. "overview", "api", "example").
	Type string

	// AudienceRoles is the normalised, non-empty ordered role list.
	// A singular frontmatter value is coerced to a one-element list.
	AudienceRoles []string

	// Concepts are the concept tags attached to this segment.
	Concepts []string

	// Boost is the retrieval boost factor. Defaults to 1.0.
	Boost float64

	// Tags are free-form semantic tag lists keyed by tag family.
	Tags map[string][]string

	// Checksum is the declared content checksum, if any.
	Checksum string

	// Retrieval is set when the segment declares a return block.
	Retrieval *RetrievalConfig

	// Generation is set when the segment declares a generate block.
	Generation *GenerationConfig
}

// SegmentInstance is one materialised segment: a marker range joined with
// its spec (looked up by id) and the body text between the markers.
type SegmentInstance struct {
	// ID is the segment id from the start marker.
	ID string

	// Spec is the declared metadata, or nil when the frontmatter declares
	// no spec for this id. Absence is not a parse error; the validator
	// reports it in strict mode.
	Spec *SegmentSpec

	// Body is the exact substring between the start marker's end offset
	// and the end marker's begin offset, trimmed of surrounding whitespace.
	Body string

	// StartByte and EndByte delimit the untrimmed body in the source text.
	StartByte int
	EndByte   int

	// Checksum is the content checksum for this segment, when available.
	Checksum string
}

// Frontmatter is the merged result of parsing the leading metadata block.
type Frontmatter struct {
	// Specs preserves declaration order.
	Specs []SegmentSpec

	// SpecByID is the keyed lookup table built once per document.
	SpecByID map[string]*SegmentSpec

	// Fields holds the remaining top-level frontmatter keys.
	Fields map[string]any
}

// ParsedDoc is a fully parsed documentation page.
//
// Invariant: segment order equals marker occurrence order in the source
// text (document order, not spec order).
type ParsedDoc struct {
	// ID is assigned at parse time.
	ID string

	// Frontmatter is the merged spec set.
	Frontmatter Frontmatter

	// Segments in document order.
	Segments []SegmentInstance

	// FrontmatterEndByte is the offset just past the closing delimiter
	// line, or 0 when the document has no frontmatter.
	FrontmatterEndByte int

	// Content is the document text without the frontmatter block.
	Content string
}

// Segment returns the segment with the given id, or nil.
func (d *ParsedDoc) Segment(id string) *SegmentInstance {
	for i := range d.Segments {
		if d.Segments[i].ID == id {
			return &d.Segments[i]
		}
	}
	return nil
}
