package driven

// ConfigStore provides persistent key-value configuration.
// Implementations handle storage (file, memory).
type ConfigStore interface {
	// Get retrieves a value by key. Returns false if not set.
	Get(key string) (any, bool)

	// GetString retrieves a string value, empty if not set.
	GetString(key string) string

	// GetBool retrieves a boolean value, false if not set.
	GetBool(key string) bool

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Delete removes a key and persists the change.
	Delete(key string) error
}

// Well-known configuration keys.
const (
	// ConfigMarkerStartToken overrides the start marker token.
	ConfigMarkerStartToken = "markers.start_token"

	// ConfigMarkerEndToken overrides the end marker token.
	ConfigMarkerEndToken = "markers.end_token"

	// ConfigValidationMode selects strict or loose validation.
	ConfigValidationMode = "validation.mode"

	// ConfigDefaultProject is the ambient project for reference resolution.
	ConfigDefaultProject = "resolve.project"

	// ConfigDefaultDocument is the ambient document for reference resolution.
	ConfigDefaultDocument = "resolve.document"
)
