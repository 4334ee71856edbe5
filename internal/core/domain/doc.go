// Package domain defines the core entities for semspec.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SegmentSpec / SegmentInstance: declared and materialised segments
//   - MarkerRange: a validated start/end marker pair
//   - ParsedDoc: a fully parsed documentation page
//   - SegmentRef / ProjectRef / PageRef: stable reference values
//   - Journey / ConceptGraph / Linkage: cross-document graph payloads
//   - Finding: a single validation result
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
