package domain

// NodeType classifies journey nodes.
type NodeType string

const (
	NodeStage     NodeType = "stage"
	NodeMilestone NodeType = "milestone"
	NodeDecision  NodeType = "decision"
	NodeJumpOff   NodeType = "jump_off"
)

// NodeConnection is one outgoing edge of a journey node.
type NodeConnection struct {
	// TargetNodeID is a same-journey target. Only these edges count
	// toward acyclicity.
	TargetNodeID string

	// JumpTo is a cross-journey jump target reference. Excluded from
	// cycle detection.
	JumpTo string

	// Condition is an optional guard condition.
	Condition string

	// Label is an optional display label.
	Label string
}

// JourneyNode is one node of a journey graph.
type JourneyNode struct {
	// ID is unique within the journey.
	ID string

	// Type is the node type tag.
	Type NodeType

	// Title is the display title.
	Title string

	// Connections are the ordered outgoing edges.
	Connections []NodeConnection
}

// Journey is a user journey: a directed graph of typed nodes.
//
// Invariant: node ids are unique within the journey, and the graph
// restricted to TargetNodeID edges is acyclic.
type Journey struct {
	// ID is the journey id.
	ID string

	// Title is the display title.
	Title string

	// Nodes in declaration order. Traversal follows this order for
	// deterministic findings.
	Nodes []JourneyNode
}
