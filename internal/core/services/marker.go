package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/semwerk/semspec/internal/core/domain"
)

// MarkerTokens is the configurable marker token pair. One token pair
// serves both the bare and the attributed start form; there is a single
// marker implementation, not parallel dialects.
type MarkerTokens struct {
	// Start opens a start marker, e.g. "<!--segment:start".
	Start string

	// End opens an end marker, e.g. "<!--segment:end".
	End string
}

// DefaultMarkerTokens is the HTML-comment-style marker pair.
var DefaultMarkerTokens = MarkerTokens{
	Start: "<!--segment:start",
	End:   "<!--segment:end",
}

// markerClose terminates both marker forms.
const markerClose = "-->"

// attrPattern matches key="value" attributes inside a start marker.
var attrPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)\s*=\s*"([^"]*)"`)

// ScanMarkers collects all marker occurrences in text, left to right.
// Start markers carry a captured id (from the id or key attribute) and
// optional type/audience attributes; end markers carry no id.
//
// A marker token with no closing sequence is a structural failure.
func ScanMarkers(text string, tokens MarkerTokens) ([]domain.RawMarker, error) {
	var markers []domain.RawMarker

	pos := 0
	for pos < len(text) {
		startIdx := strings.Index(text[pos:], tokens.Start)
		endIdx := strings.Index(text[pos:], tokens.End)
		if startIdx < 0 && endIdx < 0 {
			break
		}

		if startIdx >= 0 && (endIdx < 0 || startIdx < endIdx) {
			m, next, err := scanStartMarker(text, pos+startIdx, tokens)
			if err != nil {
				return nil, err
			}
			markers = append(markers, m)
			pos = next
			continue
		}

		m, next, err := scanEndMarker(text, pos+endIdx, tokens)
		if err != nil {
			return nil, err
		}
		markers = append(markers, m)
		pos = next
	}

	return markers, nil
}

// scanStartMarker parses one start marker beginning at offset.
func scanStartMarker(text string, offset int, tokens MarkerTokens) (domain.RawMarker, int, error) {
	attrBegin := offset + len(tokens.Start)
	closeIdx := strings.Index(text[attrBegin:], markerClose)
	if closeIdx < 0 {
		return domain.RawMarker{}, 0, fmt.Errorf("%w: start marker at byte %d has no %q", domain.ErrMalformedMarker, offset, markerClose)
	}

	attrText := text[attrBegin : attrBegin+closeIdx]
	end := attrBegin + closeIdx + len(markerClose)

	m := domain.RawMarker{
		Kind:     domain.MarkerStart,
		Offset:   offset,
		MatchLen: end - offset,
	}

	for _, match := range attrPattern.FindAllStringSubmatch(attrText, -1) {
		key, value := match[1], match[2]
		switch key {
		case "id", "key":
			m.ID = value
		case "type":
			m.Type = value
		case "audience":
			for _, role := range strings.Split(value, ",") {
				if role = strings.TrimSpace(role); role != "" {
					m.Audience = append(m.Audience, role)
				}
			}
		}
	}

	return m, end, nil
}

// scanEndMarker parses one end marker beginning at offset.
// End markers carry no attributes; anything but whitespace between the
// token and the closing sequence is malformed.
func scanEndMarker(text string, offset int, tokens MarkerTokens) (domain.RawMarker, int, error) {
	rest := offset + len(tokens.End)
	closeIdx := strings.Index(text[rest:], markerClose)
	if closeIdx < 0 {
		return domain.RawMarker{}, 0, fmt.Errorf("%w: end marker at byte %d has no %q", domain.ErrMalformedMarker, offset, markerClose)
	}
	if strings.TrimSpace(text[rest:rest+closeIdx]) != "" {
		return domain.RawMarker{}, 0, fmt.Errorf("%w: end marker at byte %d carries attributes", domain.ErrMalformedMarker, offset)
	}

	end := rest + closeIdx + len(markerClose)
	return domain.RawMarker{
		Kind:     domain.MarkerEnd,
		Offset:   offset,
		MatchLen: end - offset,
	}, end, nil
}

// PairMarkers matches start and end markers by position into validated
// ranges. Matching is positional, not by id: end markers carry no id.
//
// Validation precedence: count mismatch, then per-pair ordering, then
// nesting. All pairing failures are structural and abort the document.
func PairMarkers(markers []domain.RawMarker) ([]domain.MarkerRange, error) {
	var starts, ends []domain.RawMarker
	for _, m := range markers {
		if m.Kind == domain.MarkerStart {
			starts = append(starts, m)
		} else {
			ends = append(ends, m)
		}
	}

	if len(starts) != len(ends) {
		return nil, countError(starts, ends)
	}

	ranges := make([]domain.MarkerRange, 0, len(starts))
	for i := range starts {
		start, end := starts[i], ends[i]

		if end.Offset < start.End() {
			return nil, fmt.Errorf("%w: end marker at byte %d begins before start marker %q ends at byte %d",
				domain.ErrMarkerOrder, end.Offset, start.ID, start.End())
		}
		if i+1 < len(starts) && starts[i+1].Offset < end.Offset {
			return nil, fmt.Errorf("%w: segment %q opens inside segment %q",
				domain.ErrMarkerNesting, starts[i+1].ID, start.ID)
		}

		ranges = append(ranges, domain.MarkerRange{
			ID:         start.ID,
			StartBegin: start.Offset,
			StartEnd:   start.End(),
			EndBegin:   end.Offset,
			EndEnd:     end.End(),
		})
	}

	return ranges, nil
}

// countError distinguishes the open-start and lone-end cases. They are
// distinct error kinds, not one generic count mismatch.
func countError(starts, ends []domain.RawMarker) error {
	if len(starts) > len(ends) {
		// The first ordinal start without a partner is the open one.
		open := starts[len(ends)]
		return fmt.Errorf("%w: segment %q has no end marker", domain.ErrUnclosedMarker, open.ID)
	}
	lone := ends[len(starts)]
	return fmt.Errorf("%w: end marker at byte %d has no open segment", domain.ErrUnmatchedEndMarker, lone.Offset)
}
