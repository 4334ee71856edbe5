package driving

import "github.com/semwerk/semspec/internal/core/domain"

// GraphService validates the cross-document graph payloads.
type GraphService interface {
	// ValidateJourney reports duplicate node ids, unknown connection
	// targets and cycles over same-journey edges.
	ValidateJourney(j *domain.Journey) []domain.Finding

	// ValidateConcepts reports confidence, endpoint, self-loop and
	// weight-range violations.
	ValidateConcepts(g *domain.ConceptGraph) []domain.Finding

	// ValidateLinkage reports bidirectional-consistency violations.
	ValidateLinkage(l *domain.Linkage) []domain.Finding

	// ConceptHierarchy builds the tree rooted at rootKey. A missing
	// root yields (nil, false), not an error.
	ConceptHierarchy(g *domain.ConceptGraph, rootKey string) (*domain.ConceptTree, bool)
}

// NavigationService normalises and transforms navigation trees.
type NavigationService interface {
	// BuildTree normalises missing flags and inherited constraints.
	BuildTree(tree domain.NavigationTree) domain.NavigationTree

	// FlattenTree performs a pre-order traversal with level, path and
	// parent metadata. Sibling order is preserved.
	FlattenTree(tree domain.NavigationTree) []domain.FlatNavigationItem

	// Breadcrumbs returns the root-to-item title path for an item id.
	Breadcrumbs(tree domain.NavigationTree, itemID string) ([]domain.NavigationItem, bool)

	// FilterByVersion drops items whose version constraint excludes
	// the target version.
	FilterByVersion(tree domain.NavigationTree, version string) domain.NavigationTree
}

// AggregationService folds segment metadata into summaries.
type AggregationService interface {
	// AggregatePage folds one document's segments.
	AggregatePage(doc *domain.ParsedDoc) domain.PageSummary

	// AggregateProject folds page summaries into a project summary.
	AggregateProject(project string, pages []domain.PageSummary) domain.ProjectSummary
}
