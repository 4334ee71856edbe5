package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent structural failures. They abort the unit being
// processed (one document, one reference) and are distinct from validation
// findings, which are enumerated values.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Marker pairing errors. These are unrecoverable for the document:
	// a body whose markers cannot be paired has no well-defined segments.

	// ErrMarkerCount indicates unequal numbers of start and end markers.
	// It is the general kind; every count failure is reported as one of
	// the two specific kinds below, both of which wrap it.
	ErrMarkerCount = errors.New("marker count mismatch")

	// ErrUnclosedMarker indicates a start marker with no matching end.
	ErrUnclosedMarker = fmt.Errorf("unclosed segment marker: %w", ErrMarkerCount)

	// ErrUnmatchedEndMarker indicates an end marker with no open start.
	ErrUnmatchedEndMarker = fmt.Errorf("unmatched end marker: %w", ErrMarkerCount)

	// ErrMarkerOrder indicates an end marker beginning before (or inside)
	// its paired start marker's own syntax.
	ErrMarkerOrder = errors.New("end marker precedes start marker")

	// ErrMarkerNesting indicates a start marker opening before the previous
	// segment was closed. Nesting is never allowed, even single-level.
	ErrMarkerNesting = errors.New("nested segment markers")

	// ErrMalformedMarker indicates a marker token without a closing sequence.
	ErrMalformedMarker = errors.New("malformed segment marker")

	// ErrMalformedFrontmatter indicates an opening frontmatter delimiter
	// with no closing delimiter.
	ErrMalformedFrontmatter = errors.New("unterminated frontmatter block")

	// Reference errors.

	// ErrInvalidRef indicates reference syntax that cannot be parsed.
	ErrInvalidRef = errors.New("invalid reference")

	// ErrUnresolvedRef indicates a reference whose project or document
	// remains empty after context substitution.
	ErrUnresolvedRef = errors.New("unresolvable reference")
)
