package domain

// Envelope kinds for graph documents. Each document is a typed envelope
// {version, kind, payload}; deserialization is an external collaborator
// and the core consumes only the payload shapes.
const (
	KindProject  = "project"
	KindVersion  = "version"
	KindJourney  = "journey"
	KindConcepts = "concepts"
	KindLinkage  = "linkage"
)

// Envelope is the common header of every graph document.
type Envelope struct {
	// Version is the envelope schema version.
	Version string

	// Kind selects the payload shape.
	Kind string
}

// GraphDocument is a decoded graph document: the envelope header plus
// exactly one non-nil payload matching Kind.
type GraphDocument struct {
	Envelope

	// Journey is set when Kind == KindJourney.
	Journey *Journey

	// Concepts is set when Kind == KindConcepts.
	Concepts *ConceptGraph

	// Linkage is set when Kind == KindLinkage.
	Linkage *Linkage
}
