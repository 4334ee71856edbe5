package services

import (
	"strings"

	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/core/ports/driving"
)

// Ensure GraphValidator implements the interface.
var _ driving.GraphService = (*GraphValidator)(nil)

// GraphValidator implements the three structurally similar graph
// algorithms: journey cycle detection, concept hierarchy construction
// and linkage bidirectional-consistency checking.
type GraphValidator struct{}

// NewGraphValidator creates a graph validator.
func NewGraphValidator() *GraphValidator {
	return &GraphValidator{}
}

// DFS colouring for cycle detection.
const (
	nodeWhite = iota // unvisited
	nodeGray         // in progress (on the recursion path)
	nodeBlack        // done
)

// ValidateJourney reports duplicate node ids, unknown connection
// targets and cycles. Only same-journey TargetNodeID edges count
// toward acyclicity; cross-journey jumps are excluded. Traversal
// follows node declaration order for determinism, and all findings
// are enumerated, never short-circuited.
//
// Unknown targets are reported rather than silently ignored.
func (g *GraphValidator) ValidateJourney(j *domain.Journey) []domain.Finding {
	if j == nil {
		return nil
	}

	var findings []domain.Finding

	known := make(map[string]bool, len(j.Nodes))
	for _, node := range j.Nodes {
		if known[node.ID] {
			findings = append(findings, domain.Finding{
				EntityID: node.ID,
				Field:    "id",
				Message:  "duplicate node id",
			})
		}
		known[node.ID] = true
	}

	adjacency := make(map[string][]string, len(j.Nodes))
	for _, node := range j.Nodes {
		for _, conn := range node.Connections {
			if conn.TargetNodeID == "" {
				continue
			}
			if !known[conn.TargetNodeID] {
				findings = append(findings, domain.Finding{
					EntityID: node.ID,
					Field:    "target_node_id",
					Message:  "connection targets unknown node " + conn.TargetNodeID,
				})
				continue
			}
			adjacency[node.ID] = append(adjacency[node.ID], conn.TargetNodeID)
		}
	}

	findings = append(findings, detectCycles(j.Nodes, adjacency)...)
	return findings
}

// dfsFrame is one work-list entry of the iterative traversal.
type dfsFrame struct {
	id   string
	next int
}

// detectCycles runs an iterative depth-first traversal with a visited
// set and an in-progress set. A back-edge to an in-progress node
// signals a cycle; the finding names the closed path.
func detectCycles(nodes []domain.JourneyNode, adjacency map[string][]string) []domain.Finding {
	colour := make(map[string]int, len(nodes))

	var findings []domain.Finding
	for _, root := range nodes {
		if colour[root.ID] != nodeWhite {
			continue
		}

		stack := []dfsFrame{{id: root.ID}}
		colour[root.ID] = nodeGray

		for len(stack) > 0 {
			frame := &stack[len(stack)-1]
			targets := adjacency[frame.id]

			if frame.next >= len(targets) {
				colour[frame.id] = nodeBlack
				stack = stack[:len(stack)-1]
				continue
			}

			target := targets[frame.next]
			frame.next++

			switch colour[target] {
			case nodeWhite:
				colour[target] = nodeGray
				stack = append(stack, dfsFrame{id: target})
			case nodeGray:
				findings = append(findings, domain.Finding{
					EntityID: target,
					Message:  "cycle detected: " + cyclePath(stack, target),
				})
			}
		}
	}

	return findings
}

// cyclePath renders the closed path from the back-edge target through
// the in-progress stack, e.g. "a -> b -> c -> a".
func cyclePath(stack []dfsFrame, target string) string {
	start := 0
	for i, frame := range stack {
		if frame.id == target {
			start = i
			break
		}
	}

	var sb strings.Builder
	for _, frame := range stack[start:] {
		sb.WriteString(frame.id)
		sb.WriteString(" -> ")
	}
	sb.WriteString(target)
	return sb.String()
}
