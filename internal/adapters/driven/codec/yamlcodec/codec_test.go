package yamlcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semwerk/semspec/internal/core/domain"
)

func TestCodec_Decode(t *testing.T) {
	c := New()

	fields, err := c.Decode([]byte(`
title: Guide
segments:
  - id: overview
    boost: 1.5
`))

	require.NoError(t, err)
	assert.Equal(t, "Guide", fields["title"])
	assert.IsType(t, []any{}, fields["segments"])
}

func TestCodec_Decode_Invalid(t *testing.T) {
	c := New()

	_, err := c.Decode([]byte("::\n  - not: [valid"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCodec_DecodeGraph_Journey(t *testing.T) {
	c := New()

	doc, err := c.DecodeGraph([]byte(`
version: "1"
kind: journey
journey:
  id: onboarding
  title: Onboarding
  nodes:
    - id: start
      type: stage
      connections:
        - target_node_id: finish
          condition: account_created
    - id: finish
      type: milestone
      connections:
        - jump_to: "@other/advanced#start"
          label: Keep going
`))

	require.NoError(t, err)
	assert.Equal(t, domain.KindJourney, doc.Kind)
	require.NotNil(t, doc.Journey)
	assert.Equal(t, "onboarding", doc.Journey.ID)
	require.Len(t, doc.Journey.Nodes, 2)

	start := doc.Journey.Nodes[0]
	assert.Equal(t, domain.NodeStage, start.Type)
	require.Len(t, start.Connections, 1)
	assert.Equal(t, "finish", start.Connections[0].TargetNodeID)
	assert.Equal(t, "account_created", start.Connections[0].Condition)

	finish := doc.Journey.Nodes[1]
	require.Len(t, finish.Connections, 1)
	assert.Equal(t, "@other/advanced#start", finish.Connections[0].JumpTo)
	assert.Empty(t, finish.Connections[0].TargetNodeID)
}

func TestCodec_DecodeGraph_Concepts(t *testing.T) {
	c := New()

	doc, err := c.DecodeGraph([]byte(`
version: "1"
kind: concepts
concepts:
  auth:
    name: Authentication
    source: manual
    status: active
  sessions:
    name: Sessions
    source: discovered
    confidence: 0.82
relationships:
  - from: sessions
    to: auth
    kind: parent
    weight: 0.9
`))

	require.NoError(t, err)
	require.NotNil(t, doc.Concepts)
	require.Len(t, doc.Concepts.Concepts, 2)

	auth := doc.Concepts.Concepts["auth"]
	assert.Equal(t, "auth", auth.ID)
	assert.Equal(t, domain.ConceptManual, auth.Source)
	assert.Nil(t, auth.Confidence)

	sessions := doc.Concepts.Concepts["sessions"]
	require.NotNil(t, sessions.Confidence)
	assert.Equal(t, 0.82, *sessions.Confidence)

	require.Len(t, doc.Concepts.Relationships, 1)
	rel := doc.Concepts.Relationships[0]
	assert.Equal(t, domain.RelParent, rel.Kind)
	assert.Equal(t, 0.9, rel.Weight)
}

func TestCodec_DecodeGraph_Linkage(t *testing.T) {
	c := New()

	doc, err := c.DecodeGraph([]byte(`
version: "1"
kind: linkage
code_to_assets:
  "pkg/auth/login.go:Login":
    - asset_path: docs/auth.md
      relevance: 0.9
      doc_type: guide
      segments: [overview]
asset_to_code:
  docs/auth.md:
    - code_path: pkg/auth/login.go
      functions: [Login]
      lines: [10, 42]
`))

	require.NoError(t, err)
	require.NotNil(t, doc.Linkage)

	assets := doc.Linkage.CodeToAssets["pkg/auth/login.go:Login"]
	require.Len(t, assets, 1)
	assert.Equal(t, "docs/auth.md", assets[0].AssetPath)
	assert.Equal(t, 0.9, assets[0].Relevance)
	assert.Equal(t, []string{"overview"}, assets[0].Segments)

	code := doc.Linkage.AssetToCode["docs/auth.md"]
	require.Len(t, code, 1)
	assert.Equal(t, []string{"Login"}, code[0].Functions)
	assert.Equal(t, []int{10, 42}, code[0].Lines)
}

func TestCodec_DecodeGraph_LinkageKeepsEmptyKeys(t *testing.T) {
	c := New()

	// Key existence must survive decoding even with an empty link list.
	doc, err := c.DecodeGraph([]byte(`
version: "1"
kind: linkage
asset_to_code:
  docs/empty.md: []
`))

	require.NoError(t, err)
	require.NotNil(t, doc.Linkage)
	_, ok := doc.Linkage.AssetToCode["docs/empty.md"]
	assert.True(t, ok)
}

func TestCodec_DecodeGraph_EnvelopeValidation(t *testing.T) {
	c := New()

	tests := []struct {
		name string
		data string
	}{
		{name: "missing kind", data: "version: \"1\"\n"},
		{name: "missing version", data: "kind: journey\n"},
		{name: "unknown kind", data: "version: \"1\"\nkind: wibble\n"},
		{name: "journey kind without payload", data: "version: \"1\"\nkind: journey\n"},
		{name: "not yaml", data: ":\n - ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.DecodeGraph([]byte(tt.data))

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCodec_DecodeNavigation(t *testing.T) {
	c := New()

	tree, err := c.DecodeNavigation([]byte(`
title: Docs
versions: [v1, v2]
items:
  - id: getting-started
    title: Getting Started
    ref: "@proj/getting-started"
    children:
      - id: install
        title: Install
        versions: [v2]
  - id: hidden-item
    hidden: true
`))

	require.NoError(t, err)
	assert.Equal(t, "Docs", tree.Title)
	assert.Equal(t, []string{"v1", "v2"}, tree.Versions)
	require.Len(t, tree.Items, 2)

	gs := tree.Items[0]
	assert.Equal(t, "@proj/getting-started", gs.Ref)
	require.Len(t, gs.Children, 1)
	assert.Equal(t, []string{"v2"}, gs.Children[0].Versions)

	assert.True(t, tree.Items[1].Hidden)
}

func TestCodec_DecodeNavigation_Invalid(t *testing.T) {
	c := New()

	_, err := c.DecodeNavigation([]byte("items: {not: a list}"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
