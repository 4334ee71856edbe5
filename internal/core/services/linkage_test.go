package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semwerk/semspec/internal/core/domain"
)

func consistentLinkage() *domain.Linkage {
	return &domain.Linkage{
		CodeToAssets: map[string][]domain.AssetLink{
			"pkg/auth/login.go:Login": {
				{AssetPath: "docs/auth.md", Relevance: 0.9, DocType: "guide"},
			},
		},
		AssetToCode: map[string][]domain.CodeLink{
			"docs/auth.md": {
				{CodePath: "pkg/auth/login.go", Functions: []string{"Login"}},
			},
		},
	}
}

func TestGraphValidator_ValidateLinkage_Consistent(t *testing.T) {
	g := NewGraphValidator()

	findings := g.ValidateLinkage(consistentLinkage())

	assert.Empty(t, findings)
}

func TestGraphValidator_ValidateLinkage_MissingReverseEntry(t *testing.T) {
	g := NewGraphValidator()
	linkage := consistentLinkage()
	delete(linkage.AssetToCode, "docs/auth.md")

	findings := g.ValidateLinkage(linkage)

	require.Len(t, findings, 1)
	assert.Equal(t, "docs/auth.md", findings[0].EntityID)
	assert.Equal(t, "asset_to_code", findings[0].Field)

	// Adding the reverse entry resolves the finding.
	linkage.AssetToCode = map[string][]domain.CodeLink{
		"docs/auth.md": {{CodePath: "pkg/auth/login.go", Functions: []string{"Login"}}},
	}
	assert.Empty(t, g.ValidateLinkage(linkage))
}

func TestGraphValidator_ValidateLinkage_MissingSymbolEntry(t *testing.T) {
	g := NewGraphValidator()
	linkage := consistentLinkage()
	linkage.AssetToCode["docs/auth.md"] = append(linkage.AssetToCode["docs/auth.md"],
		domain.CodeLink{CodePath: "pkg/auth/logout.go", Functions: []string{"Logout"}})

	findings := g.ValidateLinkage(linkage)

	require.Len(t, findings, 1)
	assert.Equal(t, "pkg/auth/logout.go:Logout", findings[0].EntityID)
	assert.Equal(t, "code_to_assets", findings[0].Field)
}

func TestGraphValidator_ValidateLinkage_BothDirectionsReported(t *testing.T) {
	g := NewGraphValidator()
	linkage := &domain.Linkage{
		CodeToAssets: map[string][]domain.AssetLink{
			"a.go:F": {{AssetPath: "missing.md"}},
		},
		AssetToCode: map[string][]domain.CodeLink{
			"other.md": {{CodePath: "b.go", Functions: []string{"G"}}},
		},
	}

	findings := g.ValidateLinkage(linkage)

	assert.Len(t, findings, 2)
}

func TestGraphValidator_ValidateLinkage_EmptyKeyedEntrySatisfies(t *testing.T) {
	g := NewGraphValidator()
	// Key existence alone satisfies the invariant; the lists may be empty.
	linkage := &domain.Linkage{
		CodeToAssets: map[string][]domain.AssetLink{
			"a.go:F": {{AssetPath: "docs/a.md"}},
		},
		AssetToCode: map[string][]domain.CodeLink{
			"docs/a.md": {},
		},
	}

	findings := g.ValidateLinkage(linkage)

	assert.Empty(t, findings)
}

func TestGraphValidator_ValidateLinkage_Nil(t *testing.T) {
	g := NewGraphValidator()

	assert.Nil(t, g.ValidateLinkage(nil))
}
