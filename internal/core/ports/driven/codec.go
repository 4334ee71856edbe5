package driven

import "github.com/semwerk/semspec/internal/core/domain"

// Decoder deserialises a structured-text block into generic key-value
// form. Deserialization itself is an external collaborator; the core
// only normalises the already-decoded shape.
type Decoder interface {
	// Decode parses data into a generic map. Returns an error for
	// malformed input.
	Decode(data []byte) (map[string]any, error)
}

// GraphDecoder deserialises a typed graph document envelope
// {version, kind, payload}.
type GraphDecoder interface {
	// DecodeGraph parses a full graph document. The returned document
	// has exactly one payload field set, matching its Kind.
	DecodeGraph(data []byte) (*domain.GraphDocument, error)
}

// NavigationDecoder deserialises a standalone navigation configuration.
type NavigationDecoder interface {
	// DecodeNavigation parses a navigation tree document.
	DecodeNavigation(data []byte) (*domain.NavigationTree, error)
}
