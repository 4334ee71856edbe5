// Package driven defines the interfaces the core consumes.
//
// Driven ports are implemented by adapters in internal/adapters/driven:
// checksumming, structured-text decoding, the link registry and the
// optional schema validator. The core depends only on these interfaces,
// never on the adapters.
package driven
