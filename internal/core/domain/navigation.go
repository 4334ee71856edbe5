package domain

// NavigationItem is one node of a navigation tree.
//
// Invariant: ID is unique within its tree.
type NavigationItem struct {
	// ID is the stable item id.
	ID string

	// Title is the display title.
	Title string

	// Ref is an optional reference string to the page or segment the
	// item points at.
	Ref string

	// Hidden marks items excluded from rendered navigation.
	Hidden bool

	// Versions is the optional version-tag constraint. When empty the
	// item inherits the tree-level constraint.
	Versions []string

	// Children are the ordered child items.
	Children []NavigationItem
}

// NavigationTree is a rooted, ordered tree of navigation items.
type NavigationTree struct {
	// Title is the tree's display title.
	Title string

	// Versions is the tree-level version allow-list. When non-empty and
	// the target version is absent, the entire tree is dropped by
	// version filtering.
	Versions []string

	// Items are the ordered root items.
	Items []NavigationItem
}

// FlatNavigationItem is one entry of a flattened navigation tree.
type FlatNavigationItem struct {
	// ID is the item id.
	ID string

	// Title is the display title.
	Title string

	// Ref is the item's reference string, if any.
	Ref string

	// Level is the depth, root items at 0.
	Level int

	// Path is the cumulative id path: ancestor ids plus self.
	Path []string

	// ParentID is the parent item id, empty for roots.
	ParentID string
}
