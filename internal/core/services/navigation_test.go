package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semwerk/semspec/internal/core/domain"
)

func sampleNavTree() domain.NavigationTree {
	return domain.NavigationTree{
		Title: "Docs",
		Items: []domain.NavigationItem{
			{
				ID:    "getting-started",
				Title: "Getting Started",
				Children: []domain.NavigationItem{
					{ID: "install", Title: "Install"},
					{ID: "quickstart", Title: "Quickstart"},
				},
			},
			{
				ID:    "reference",
				Title: "Reference",
				Children: []domain.NavigationItem{
					{
						ID:    "api",
						Title: "API",
						Children: []domain.NavigationItem{
							{ID: "endpoints", Title: "Endpoints"},
						},
					},
				},
			},
		},
	}
}

func TestNavigationBuilder_BuildTree_VersionInheritance(t *testing.T) {
	b := NewNavigationBuilder()
	tree := domain.NavigationTree{
		Versions: []string{"v1", "v2"},
		Items: []domain.NavigationItem{
			{
				ID:       "a",
				Versions: []string{"v2"},
				Children: []domain.NavigationItem{{ID: "a1"}},
			},
			{ID: "b"},
		},
	}

	out := b.BuildTree(tree)

	assert.Equal(t, []string{"v2"}, out.Items[0].Versions)
	assert.Equal(t, []string{"v1", "v2"}, out.Items[0].Children[0].Versions)
	assert.Equal(t, []string{"v1", "v2"}, out.Items[1].Versions)
	// Input tree is untouched.
	assert.Empty(t, tree.Items[1].Versions)
}

func TestNavigationBuilder_FlattenTree(t *testing.T) {
	b := NewNavigationBuilder()

	flat := b.FlattenTree(sampleNavTree())

	require.Len(t, flat, 6)

	ids := make([]string, len(flat))
	for i, item := range flat {
		ids[i] = item.ID
	}
	assert.Equal(t, []string{"getting-started", "install", "quickstart", "reference", "api", "endpoints"}, ids)

	assert.Equal(t, 0, flat[0].Level)
	assert.Equal(t, 1, flat[1].Level)
	assert.Equal(t, 2, flat[5].Level)

	assert.Equal(t, []string{"getting-started"}, flat[0].Path)
	assert.Equal(t, []string{"getting-started", "install"}, flat[1].Path)
	assert.Equal(t, []string{"reference", "api", "endpoints"}, flat[5].Path)

	assert.Empty(t, flat[0].ParentID)
	assert.Equal(t, "getting-started", flat[1].ParentID)
	assert.Equal(t, "api", flat[5].ParentID)
}

func TestNavigationBuilder_Breadcrumbs(t *testing.T) {
	b := NewNavigationBuilder()
	tree := sampleNavTree()

	crumbs, ok := b.Breadcrumbs(tree, "endpoints")

	require.True(t, ok)
	require.Len(t, crumbs, 3)
	assert.Equal(t, "reference", crumbs[0].ID)
	assert.Equal(t, "api", crumbs[1].ID)
	assert.Equal(t, "endpoints", crumbs[2].ID)
	// Crumbs carry no subtrees.
	assert.Nil(t, crumbs[0].Children)
}

func TestNavigationBuilder_Breadcrumbs_Root(t *testing.T) {
	b := NewNavigationBuilder()

	crumbs, ok := b.Breadcrumbs(sampleNavTree(), "getting-started")

	require.True(t, ok)
	require.Len(t, crumbs, 1)
	assert.Equal(t, "getting-started", crumbs[0].ID)
}

func TestNavigationBuilder_Breadcrumbs_Missing(t *testing.T) {
	b := NewNavigationBuilder()

	crumbs, ok := b.Breadcrumbs(sampleNavTree(), "nope")

	assert.False(t, ok)
	assert.Nil(t, crumbs)
}

func TestNavigationBuilder_FilterByVersion(t *testing.T) {
	b := NewNavigationBuilder()
	tree := domain.NavigationTree{
		Items: []domain.NavigationItem{
			{ID: "always"},
			{ID: "v2-only", Versions: []string{"v2"}},
			{ID: "v1-only", Versions: []string{"v1"}},
		},
	}

	out := b.FilterByVersion(tree, "v1")

	require.Len(t, out.Items, 2)
	assert.Equal(t, "always", out.Items[0].ID)
	assert.Equal(t, "v1-only", out.Items[1].ID)
}

func TestNavigationBuilder_FilterByVersion_PromotesOrphanedChildren(t *testing.T) {
	b := NewNavigationBuilder()
	tree := domain.NavigationTree{
		Items: []domain.NavigationItem{
			{ID: "before"},
			{
				ID:       "dropped",
				Versions: []string{"v2"},
				Children: []domain.NavigationItem{
					{ID: "survivor"},
					{ID: "also-dropped", Versions: []string{"v2"}},
				},
			},
			{ID: "after"},
		},
	}

	out := b.FilterByVersion(tree, "v1")

	require.Len(t, out.Items, 3)
	assert.Equal(t, "before", out.Items[0].ID)
	assert.Equal(t, "survivor", out.Items[1].ID)
	assert.Equal(t, "after", out.Items[2].ID)
}

func TestNavigationBuilder_FilterByVersion_TreeAllowList(t *testing.T) {
	b := NewNavigationBuilder()
	tree := domain.NavigationTree{
		Versions: []string{"v1"},
		Items:    []domain.NavigationItem{{ID: "a"}},
	}

	out := b.FilterByVersion(tree, "v9")

	assert.Empty(t, out.Items)
}
