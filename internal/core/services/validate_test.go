package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semwerk/semspec/internal/core/domain"
)

func retrievalSpec(id string) domain.SegmentSpec {
	return domain.SegmentSpec{
		ID:        id,
		Boost:     1.0,
		Retrieval: &domain.RetrievalConfig{MaxTokens: 100},
	}
}

func docWith(specs []domain.SegmentSpec, segmentIDs ...string) *domain.ParsedDoc {
	doc := &domain.ParsedDoc{
		Frontmatter: domain.Frontmatter{
			Specs:    specs,
			SpecByID: make(map[string]*domain.SegmentSpec),
		},
	}
	for i := range doc.Frontmatter.Specs {
		spec := &doc.Frontmatter.Specs[i]
		if _, ok := doc.Frontmatter.SpecByID[spec.ID]; !ok {
			doc.Frontmatter.SpecByID[spec.ID] = spec
		}
	}
	for _, id := range segmentIDs {
		doc.Segments = append(doc.Segments, domain.SegmentInstance{
			ID:   id,
			Spec: doc.Frontmatter.SpecByID[id],
		})
	}
	return doc
}

func TestValidateDoc_CleanDocument(t *testing.T) {
	doc := docWith([]domain.SegmentSpec{retrievalSpec("a"), retrievalSpec("b")}, "a", "b")

	findings := ValidateDoc(doc, domain.ModeStrict)

	assert.Empty(t, findings)
}

func TestValidateDoc_DuplicateSpecID(t *testing.T) {
	doc := docWith([]domain.SegmentSpec{retrievalSpec("dup"), retrievalSpec("dup")}, "dup")

	findings := ValidateDoc(doc, domain.ModeStrict)

	require.Len(t, findings, 1)
	assert.Equal(t, "dup", findings[0].EntityID)
	assert.Contains(t, findings[0].Message, "duplicate segment spec id")
}

func TestValidateDoc_DuplicateMarkerID(t *testing.T) {
	doc := docWith([]domain.SegmentSpec{retrievalSpec("a")}, "a", "a")

	findings := ValidateDoc(doc, domain.ModeStrict)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "duplicate segment marker id")
}

func TestValidateDoc_EmptyIDsStrictOnly(t *testing.T) {
	spec := retrievalSpec("")
	doc := docWith([]domain.SegmentSpec{spec}, "")

	strict := ValidateDoc(doc, domain.ModeStrict)
	loose := ValidateDoc(doc, domain.ModeLoose)

	assert.Len(t, strict, 2)
	assert.Empty(t, loose)
}

func TestValidateDoc_CrossLinksStrictOnly(t *testing.T) {
	// One spec without marker, one marker without spec.
	doc := docWith([]domain.SegmentSpec{retrievalSpec("spec-only")}, "marker-only")

	strict := ValidateDoc(doc, domain.ModeStrict)
	loose := ValidateDoc(doc, domain.ModeLoose)

	require.Len(t, strict, 2)
	messages := []string{strict[0].Message, strict[1].Message}
	assert.Contains(t, messages, "marker has no matching segment spec")
	assert.Contains(t, messages, "segment spec has no matching marker")
	assert.Empty(t, loose)
}

func TestValidateDoc_MutualExclusion(t *testing.T) {
	tests := []struct {
		name string
		spec domain.SegmentSpec
		want string
	}{
		{
			name: "neither block",
			spec: domain.SegmentSpec{ID: "a", Boost: 1.0},
			want: "neither",
		},
		{
			name: "both blocks",
			spec: domain.SegmentSpec{
				ID:         "a",
				Boost:      1.0,
				Retrieval:  &domain.RetrievalConfig{MaxTokens: 1},
				Generation: &domain.GenerationConfig{MaxTokens: 1},
			},
			want: "both",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docWith([]domain.SegmentSpec{tt.spec}, "a")

			findings := ValidateDoc(doc, domain.ModeLoose)

			require.Len(t, findings, 1)
			assert.Contains(t, findings[0].Message, tt.want)
		})
	}
}

func TestValidateDoc_NumericRanges(t *testing.T) {
	temp := 3.5
	iters := -1
	tests := []struct {
		name  string
		spec  domain.SegmentSpec
		field string
	}{
		{
			name: "negative boost",
			spec: domain.SegmentSpec{
				ID: "a", Boost: -0.5,
				Retrieval: &domain.RetrievalConfig{MaxTokens: 1},
			},
			field: "boost",
		},
		{
			name: "negative retrieval budget",
			spec: domain.SegmentSpec{
				ID: "a", Boost: 1.0,
				Retrieval: &domain.RetrievalConfig{MaxTokens: -10},
			},
			field: "return.max_tokens",
		},
		{
			name: "negative generation budget",
			spec: domain.SegmentSpec{
				ID: "a", Boost: 1.0,
				Generation: &domain.GenerationConfig{MaxTokens: -10},
			},
			field: "generate.max_tokens",
		},
		{
			name: "temperature out of range",
			spec: domain.SegmentSpec{
				ID: "a", Boost: 1.0,
				Generation: &domain.GenerationConfig{MaxTokens: 1, Temperature: &temp},
			},
			field: "generate.temperature",
		},
		{
			name: "negative iterations",
			spec: domain.SegmentSpec{
				ID: "a", Boost: 1.0,
				Generation: &domain.GenerationConfig{MaxTokens: 1, Iterations: &iters},
			},
			field: "generate.iterations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docWith([]domain.SegmentSpec{tt.spec}, "a")

			findings := ValidateDoc(doc, domain.ModeLoose)

			require.Len(t, findings, 1)
			assert.Equal(t, tt.field, findings[0].Field)
		})
	}
}

func TestValidateDoc_FindingsAreEnumeratedNotShortCircuited(t *testing.T) {
	doc := docWith([]domain.SegmentSpec{
		{ID: "a", Boost: -1, Retrieval: &domain.RetrievalConfig{MaxTokens: -5}},
		retrievalSpec("a"),
	}, "a")

	findings := ValidateDoc(doc, domain.ModeLoose)

	// Negative boost, negative budget, duplicate id.
	assert.Len(t, findings, 3)
}

func TestValidateDoc_Nil(t *testing.T) {
	assert.Nil(t, ValidateDoc(nil, domain.ModeStrict))
}
