package services

import (
	"fmt"
	"sort"

	"github.com/semwerk/semspec/internal/core/domain"
)

// ValidateConcepts reports confidence, endpoint, self-loop and
// weight-range violations. Concepts are checked in id order for
// deterministic output; relationships in declaration order.
func (g *GraphValidator) ValidateConcepts(graph *domain.ConceptGraph) []domain.Finding {
	if graph == nil {
		return nil
	}

	var findings []domain.Finding

	ids := make([]string, 0, len(graph.Concepts))
	for id := range graph.Concepts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		concept := graph.Concepts[id]

		switch concept.Source {
		case domain.ConceptDiscovered:
			if concept.Confidence == nil {
				findings = append(findings, domain.Finding{
					EntityID: id,
					Field:    "confidence",
					Message:  "discovered concept requires a confidence",
				})
			}
		case domain.ConceptManual:
			if concept.Confidence != nil {
				findings = append(findings, domain.Finding{
					EntityID: id,
					Field:    "confidence",
					Message:  "manual concept must not carry a confidence",
				})
			}
		}

		if concept.Confidence != nil && (*concept.Confidence < 0 || *concept.Confidence > 1) {
			findings = append(findings, domain.Finding{
				EntityID: id,
				Field:    "confidence",
				Message:  fmt.Sprintf("confidence must be between 0.0 and 1.0, got %g", *concept.Confidence),
			})
		}
	}

	for i, rel := range graph.Relationships {
		entity := fmt.Sprintf("relationships[%d]", i)

		if _, ok := graph.Concepts[rel.From]; !ok {
			findings = append(findings, domain.Finding{
				EntityID: entity,
				Field:    "from",
				Message:  "relationship references unknown concept " + rel.From,
			})
		}
		if _, ok := graph.Concepts[rel.To]; !ok {
			findings = append(findings, domain.Finding{
				EntityID: entity,
				Field:    "to",
				Message:  "relationship references unknown concept " + rel.To,
			})
		}
		if rel.From == rel.To {
			findings = append(findings, domain.Finding{
				EntityID: entity,
				Message:  "self-loops are forbidden",
			})
		}
		if rel.Weight < 0 || rel.Weight > 1 {
			findings = append(findings, domain.Finding{
				EntityID: entity,
				Field:    "weight",
				Message:  fmt.Sprintf("weight must be between 0.0 and 1.0, got %g", rel.Weight),
			})
		}
	}

	return findings
}

// ConceptHierarchy builds the tree rooted at rootKey by following
// "parent" relationships: children declare the edge, so a relationship
// of kind parent pointing TO the current concept maps its From id back
// to a child concept. A missing root yields (nil, false), not an error.
//
// Construction uses an explicit work-list; already-placed concepts are
// skipped so a malformed parent cycle cannot loop.
func (g *GraphValidator) ConceptHierarchy(graph *domain.ConceptGraph, rootKey string) (*domain.ConceptTree, bool) {
	if graph == nil {
		return nil, false
	}
	root, ok := graph.Concepts[rootKey]
	if !ok {
		return nil, false
	}

	tree := &domain.ConceptTree{Concept: root}
	placed := map[string]bool{rootKey: true}

	queue := []*domain.ConceptTree{tree}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for _, rel := range graph.Relationships {
			if rel.Kind != domain.RelParent || rel.To != node.Concept.ID {
				continue
			}
			child, ok := graph.Concepts[rel.From]
			if !ok || placed[rel.From] {
				continue
			}
			placed[rel.From] = true

			childNode := &domain.ConceptTree{Concept: child}
			node.Children = append(node.Children, childNode)
			queue = append(queue, childNode)
		}
	}

	return tree, true
}
