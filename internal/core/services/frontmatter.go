package services

import (
	"fmt"
	"strings"

	"github.com/semwerk/semspec/internal/core/domain"
)

// frontmatterDelimiter opens and closes the leading metadata block.
const frontmatterDelimiter = "---"

// SplitFrontmatter extracts the leading delimited block from text.
// It returns the block body (without delimiters), the byte offset just
// past the closing delimiter line, and the remaining content.
//
// A document with no opening delimiter has no frontmatter: endByte is 0
// and content is the full text. An opening delimiter with no closing
// delimiter is a structural failure.
func SplitFrontmatter(text string) (block string, endByte int, content string, err error) {
	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") && text != frontmatterDelimiter {
		return "", 0, text, nil
	}

	bodyStart := len(frontmatterDelimiter) + 1
	if bodyStart > len(text) {
		return "", 0, "", domain.ErrMalformedFrontmatter
	}

	// Closing delimiter must sit on its own line. A body line that merely
	// begins with the delimiter (a "----" rule, say) is not a close, so
	// candidates are skipped until an exact delimiter line turns up.
	rest := text[bodyStart:]
	closeIdx := -1
	if strings.HasPrefix(rest, frontmatterDelimiter+"\n") || rest == frontmatterDelimiter {
		closeIdx = 0
	} else {
		search := 0
		for {
			idx := strings.Index(rest[search:], "\n"+frontmatterDelimiter)
			if idx < 0 {
				break
			}
			lineStart := search + idx + 1
			after := rest[lineStart+len(frontmatterDelimiter):]
			if after == "" || strings.HasPrefix(after, "\n") {
				closeIdx = lineStart
				break
			}
			search = lineStart
		}
	}
	if closeIdx < 0 {
		return "", 0, "", domain.ErrMalformedFrontmatter
	}

	block = rest[:closeIdx]
	endByte = bodyStart + closeIdx + len(frontmatterDelimiter)
	if endByte < len(text) && text[endByte] == '\n' {
		endByte++
	}
	return block, endByte, text[endByte:], nil
}

// MergeFrontmatter normalises decoded frontmatter fields into the merged
// spec set: singular fields are coerced to lists, boost defaults to 1.0,
// and the spec-by-id lookup table is built once per document.
//
// Normalisation is not validation: duplicate ids, empty ids and
// mutual-exclusion violations are preserved for the validator to report.
func MergeFrontmatter(fields map[string]any) (domain.Frontmatter, error) {
	fm := domain.Frontmatter{
		SpecByID: make(map[string]*domain.SegmentSpec),
		Fields:   make(map[string]any),
	}
	if fields == nil {
		return fm, nil
	}

	for key, value := range fields {
		if key != "segments" {
			fm.Fields[key] = value
		}
	}

	rawSegments, ok := fields["segments"]
	if !ok || rawSegments == nil {
		return fm, nil
	}
	list, ok := rawSegments.([]any)
	if !ok {
		return domain.Frontmatter{}, fmt.Errorf("%w: segments must be a list", domain.ErrInvalidInput)
	}

	for i, entry := range list {
		m, ok := asStringMap(entry)
		if !ok {
			return domain.Frontmatter{}, fmt.Errorf("%w: segments[%d] must be a mapping", domain.ErrInvalidInput, i)
		}
		spec, err := mergeSegmentSpec(m)
		if err != nil {
			return domain.Frontmatter{}, fmt.Errorf("segments[%d]: %w", i, err)
		}
		fm.Specs = append(fm.Specs, spec)
	}

	// First declaration wins in the lookup table; the duplicate itself
	// is a validation finding, not a merge decision.
	for i := range fm.Specs {
		id := fm.Specs[i].ID
		if _, exists := fm.SpecByID[id]; !exists && id != "" {
			fm.SpecByID[id] = &fm.Specs[i]
		}
	}

	return fm, nil
}

// mergeSegmentSpec normalises a single decoded spec entry.
func mergeSegmentSpec(m map[string]any) (domain.SegmentSpec, error) {
	spec := domain.SegmentSpec{
		ID:       asString(m["id"]),
		Type:     asString(m["type"]),
		Checksum: asString(m["checksum"]),
		Boost:    1.0,
	}
	if spec.ID == "" {
		spec.ID = asString(m["key"])
	}

	spec.AudienceRoles = asStringList(m["audience_role"])
	if len(spec.AudienceRoles) == 0 {
		spec.AudienceRoles = asStringList(m["audience_roles"])
	}
	spec.Concepts = asStringList(m["concepts"])

	if raw, ok := m["boost"]; ok {
		boost, ok := asFloat(raw)
		if !ok {
			return domain.SegmentSpec{}, fmt.Errorf("%w: boost must be a number", domain.ErrInvalidInput)
		}
		spec.Boost = boost
	}

	if rawTags, ok := asStringMap(m["tags"]); ok {
		spec.Tags = make(map[string][]string, len(rawTags))
		for family, v := range rawTags {
			spec.Tags[family] = asStringList(v)
		}
	}

	if raw, ok := m["return"]; ok && raw != nil {
		cfg, ok := asStringMap(raw)
		if !ok {
			return domain.SegmentSpec{}, fmt.Errorf("%w: return must be a mapping", domain.ErrInvalidInput)
		}
		tokens, _ := asInt(cfg["max_tokens"])
		spec.Retrieval = &domain.RetrievalConfig{MaxTokens: tokens}
	}

	if raw, ok := m["generate"]; ok && raw != nil {
		cfg, ok := asStringMap(raw)
		if !ok {
			return domain.SegmentSpec{}, fmt.Errorf("%w: generate must be a mapping", domain.ErrInvalidInput)
		}
		gen := &domain.GenerationConfig{}
		gen.MaxTokens, _ = asInt(cfg["max_tokens"])
		if t, ok := asFloat(cfg["temperature"]); ok {
			gen.Temperature = &t
		}
		if n, ok := asInt(cfg["iterations"]); ok {
			gen.Iterations = &n
		}
		spec.Generation = gen
	}

	return spec, nil
}

// Coercion helpers for generic decoded values.

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asStringList coerces a scalar or list value to a string list.
// A singular value becomes a one-element list.
func asStringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return val
	default:
		return nil
	}
}

func asStringMap(v any) (map[string]any, bool) {
	switch val := v.(type) {
	case map[string]any:
		return val, true
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = item
		}
		return out, true
	default:
		return nil, false
	}
}

func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}

func asInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	default:
		return 0, false
	}
}
