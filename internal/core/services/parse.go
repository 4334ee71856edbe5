package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/core/ports/driven"
	"github.com/semwerk/semspec/internal/core/ports/driving"
)

// Ensure Parser implements the interface.
var _ driving.ParserService = (*Parser)(nil)

// Parser assembles documents: it splits frontmatter, merges specs,
// scans and pairs markers, and joins ranges with specs by id.
type Parser struct {
	tokens      MarkerTokens
	decoder     driven.Decoder
	checksummer driven.Checksummer
}

// ParserOption configures the parser.
type ParserOption func(*Parser)

// WithMarkerTokens overrides the marker token pair.
func WithMarkerTokens(tokens MarkerTokens) ParserOption {
	return func(p *Parser) {
		if tokens.Start != "" && tokens.End != "" {
			p.tokens = tokens
		}
	}
}

// WithChecksummer enables per-segment content checksums.
func WithChecksummer(c driven.Checksummer) ParserOption {
	return func(p *Parser) {
		p.checksummer = c
	}
}

// NewParser creates a parser. The decoder deserialises the frontmatter
// block body; deserialization itself is an external collaborator.
func NewParser(decoder driven.Decoder, opts ...ParserOption) *Parser {
	p := &Parser{
		tokens:  DefaultMarkerTokens,
		decoder: decoder,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse segments a document. Marker-pairing failures are structural and
// abort the parse; a marker with no matching spec is not an error here.
// The two-phase separation lets partial documents be inspected before
// being judged by Validate.
//
// Marker byte offsets are relative to the content without frontmatter.
func (p *Parser) Parse(_ context.Context, text string) (*domain.ParsedDoc, error) {
	block, endByte, content, err := SplitFrontmatter(text)
	if err != nil {
		return nil, err
	}

	fm := domain.Frontmatter{SpecByID: map[string]*domain.SegmentSpec{}, Fields: map[string]any{}}
	if block != "" {
		if p.decoder == nil {
			return nil, fmt.Errorf("%w: no frontmatter decoder configured", domain.ErrInvalidInput)
		}
		fields, err := p.decoder.Decode([]byte(block))
		if err != nil {
			return nil, fmt.Errorf("decode frontmatter: %w", err)
		}
		fm, err = MergeFrontmatter(fields)
		if err != nil {
			return nil, err
		}
	}

	markers, err := ScanMarkers(content, p.tokens)
	if err != nil {
		return nil, err
	}
	ranges, err := PairMarkers(markers)
	if err != nil {
		return nil, err
	}

	doc := &domain.ParsedDoc{
		ID:                 uuid.New().String(),
		Frontmatter:        fm,
		FrontmatterEndByte: endByte,
		Content:            content,
	}

	starts := startMarkers(markers)
	for i, r := range ranges {
		inst := domain.SegmentInstance{
			ID:        r.ID,
			Spec:      fm.SpecByID[r.ID],
			Body:      strings.TrimSpace(content[r.StartEnd:r.EndBegin]),
			StartByte: r.StartEnd,
			EndByte:   r.EndBegin,
		}

		if inst.Spec != nil {
			mergeInlineAttributes(inst.Spec, starts[i])
			inst.Checksum = inst.Spec.Checksum
		}
		if p.checksummer != nil {
			inst.Checksum = p.checksummer.Sum([]byte(inst.Body))
		}

		doc.Segments = append(doc.Segments, inst)
	}

	return doc, nil
}

// Validate runs the pure validation pass. See ValidateDoc.
func (p *Parser) Validate(doc *domain.ParsedDoc, mode domain.ValidationMode) []domain.Finding {
	return ValidateDoc(doc, mode)
}

// startMarkers filters the scan output down to start markers, in order.
func startMarkers(markers []domain.RawMarker) []domain.RawMarker {
	out := make([]domain.RawMarker, 0, len(markers)/2)
	for _, m := range markers {
		if m.Kind == domain.MarkerStart {
			out = append(out, m)
		}
	}
	return out
}

// mergeInlineAttributes fills empty spec fields from the inline marker
// form. The declarative frontmatter form always takes precedence.
func mergeInlineAttributes(spec *domain.SegmentSpec, marker domain.RawMarker) {
	if spec.Type == "" {
		spec.Type = marker.Type
	}
	if len(spec.AudienceRoles) == 0 {
		spec.AudienceRoles = marker.Audience
	}
}
