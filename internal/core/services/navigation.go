package services

import (
	"github.com/semwerk/semspec/internal/core/domain"
	"github.com/semwerk/semspec/internal/core/ports/driving"
)

// Ensure NavigationBuilder implements the interface.
var _ driving.NavigationService = (*NavigationBuilder)(nil)

// NavigationBuilder normalises and transforms navigation trees.
// Pure tree transforms, no parsing. Traversals use explicit work-lists
// to bound stack use on deep trees.
type NavigationBuilder struct{}

// NewNavigationBuilder creates a navigation builder.
func NewNavigationBuilder() *NavigationBuilder {
	return &NavigationBuilder{}
}

// navFrame is one work-list entry for tree traversals.
type navFrame struct {
	item     *domain.NavigationItem
	level    int
	path     []string
	parentID string
}

// BuildTree returns a normalised copy: items with no version constraint
// inherit the tree-level constraint.
func (b *NavigationBuilder) BuildTree(tree domain.NavigationTree) domain.NavigationTree {
	out := domain.NavigationTree{
		Title:    tree.Title,
		Versions: append([]string(nil), tree.Versions...),
		Items:    copyItems(tree.Items),
	}

	stack := make([]*domain.NavigationItem, 0, len(out.Items))
	for i := len(out.Items) - 1; i >= 0; i-- {
		stack = append(stack, &out.Items[i])
	}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(item.Versions) == 0 {
			item.Versions = append([]string(nil), out.Versions...)
		}
		for i := len(item.Children) - 1; i >= 0; i-- {
			stack = append(stack, &item.Children[i])
		}
	}

	return out
}

// FlattenTree performs a pre-order traversal assigning level (root = 0),
// cumulative path (ancestor ids plus self) and parent id. Sibling order
// is preserved.
func (b *NavigationBuilder) FlattenTree(tree domain.NavigationTree) []domain.FlatNavigationItem {
	var flat []domain.FlatNavigationItem

	stack := make([]navFrame, 0, len(tree.Items))
	for i := len(tree.Items) - 1; i >= 0; i-- {
		stack = append(stack, navFrame{item: &tree.Items[i]})
	}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path := make([]string, len(frame.path), len(frame.path)+1)
		copy(path, frame.path)
		path = append(path, frame.item.ID)

		flat = append(flat, domain.FlatNavigationItem{
			ID:       frame.item.ID,
			Title:    frame.item.Title,
			Ref:      frame.item.Ref,
			Level:    frame.level,
			Path:     path,
			ParentID: frame.parentID,
		})

		for i := len(frame.item.Children) - 1; i >= 0; i-- {
			stack = append(stack, navFrame{
				item:     &frame.item.Children[i],
				level:    frame.level + 1,
				path:     path,
				parentID: frame.item.ID,
			})
		}
	}

	return flat
}

// Breadcrumbs returns the root-to-item chain for the given item id.
// The second return is false when the id is absent from the tree.
func (b *NavigationBuilder) Breadcrumbs(tree domain.NavigationTree, itemID string) ([]domain.NavigationItem, bool) {
	type crumbFrame struct {
		item  *domain.NavigationItem
		trail []*domain.NavigationItem
	}

	stack := make([]crumbFrame, 0, len(tree.Items))
	for i := len(tree.Items) - 1; i >= 0; i-- {
		stack = append(stack, crumbFrame{item: &tree.Items[i]})
	}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		trail := append(append([]*domain.NavigationItem(nil), frame.trail...), frame.item)
		if frame.item.ID == itemID {
			crumbs := make([]domain.NavigationItem, len(trail))
			for i, item := range trail {
				crumbs[i] = *item
				crumbs[i].Children = nil
			}
			return crumbs, true
		}

		for i := len(frame.item.Children) - 1; i >= 0; i-- {
			stack = append(stack, crumbFrame{item: &frame.item.Children[i], trail: trail})
		}
	}

	return nil, false
}

// FilterByVersion drops items whose version constraint excludes the
// target version. When the tree declares an allow-list that does not
// include the target, every item is dropped. Children are filtered
// independently of their parent: a dropped parent's surviving children
// are promoted into its place.
func (b *NavigationBuilder) FilterByVersion(tree domain.NavigationTree, version string) domain.NavigationTree {
	out := domain.NavigationTree{
		Title:    tree.Title,
		Versions: append([]string(nil), tree.Versions...),
	}

	if len(tree.Versions) > 0 && !containsString(tree.Versions, version) {
		return out
	}

	out.Items = filterItems(tree.Items, version)
	return out
}

// filterItems keeps items whose constraint admits the version. Children
// of a dropped item are promoted to the dropped item's position.
func filterItems(items []domain.NavigationItem, version string) []domain.NavigationItem {
	var kept []domain.NavigationItem
	for _, item := range items {
		children := filterItems(item.Children, version)
		if len(item.Versions) == 0 || containsString(item.Versions, version) {
			item.Children = children
			kept = append(kept, item)
		} else {
			kept = append(kept, children...)
		}
	}
	return kept
}

// copyItems deep-copies a navigation item forest.
func copyItems(items []domain.NavigationItem) []domain.NavigationItem {
	if items == nil {
		return nil
	}
	out := make([]domain.NavigationItem, len(items))
	for i, item := range items {
		out[i] = item
		out[i].Versions = append([]string(nil), item.Versions...)
		out[i].Children = copyItems(item.Children)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
