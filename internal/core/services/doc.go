// Package services implements the core algorithms over domain types:
// marker scanning and pairing, frontmatter merging, segment assembly,
// document validation, reference resolution, navigation transforms,
// graph validation and aggregation.
//
// Services depend only on domain and the driven ports. All operations
// are synchronous pure functions over immutable inputs; documents may
// be processed in parallel by callers since no service communicates
// through shared state.
package services
