package domain

// ConceptSource tags how a concept entered the graph.
type ConceptSource string

const (
	ConceptManual     ConceptSource = "manual"
	ConceptDiscovered ConceptSource = "discovered"
	ConceptImported   ConceptSource = "imported"
)

// ConceptStatus tracks a concept's lifecycle.
type ConceptStatus string

const (
	ConceptDraft      ConceptStatus = "draft"
	ConceptActive     ConceptStatus = "active"
	ConceptDeprecated ConceptStatus = "deprecated"
)

// Concept is one node of the concept graph.
//
// Invariant: Confidence is required when Source is discovered and
// forbidden when Source is manual.
type Concept struct {
	// ID is the concept id, unique within the graph.
	ID string

	// Name is the display name.
	Name string

	// Source tags the concept's provenance.
	Source ConceptSource

	// Status is the lifecycle status.
	Status ConceptStatus

	// Confidence is the extraction confidence, 0.0 to 1.0.
	Confidence *float64
}

// RelationshipKind names the edge semantics between two concepts.
// The hierarchy builder only follows "parent" edges.
type RelationshipKind string

const (
	RelParent  RelationshipKind = "parent"
	RelRelated RelationshipKind = "related"
	RelSeeAlso RelationshipKind = "see_also"
)

// ConceptRelationship is a directed edge between two concepts.
//
// Invariant: both endpoints exist and From != To.
type ConceptRelationship struct {
	// From is the source concept id. For "parent" edges the child
	// declares the edge: From is the child, To the parent.
	From string

	// To is the target concept id.
	To string

	// Kind is the edge semantics.
	Kind RelationshipKind

	// Weight is the edge weight, 0.0 to 1.0.
	Weight float64
}

// ConceptGraph is the full concept document payload.
type ConceptGraph struct {
	// Concepts keyed by id.
	Concepts map[string]Concept

	// Relationships are the directed edges.
	Relationships []ConceptRelationship
}

// ConceptTree is a hierarchy rooted at one concept, built by following
// "parent" edges from child to parent.
type ConceptTree struct {
	// Concept is this node's concept.
	Concept Concept

	// Children are the concepts that declare a parent edge to this node.
	Children []*ConceptTree
}
