// Package driving defines the interfaces exposed by the core to its
// callers (CLI, watch loop). Adapters in internal/adapters/driving
// depend on these interfaces; the services in internal/core/services
// implement them.
package driving
