package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinding_String(t *testing.T) {
	tests := []struct {
		name    string
		finding Finding
		want    string
	}{
		{
			name:    "entity and field",
			finding: Finding{EntityID: "overview", Field: "boost", Message: "must be non-negative"},
			want:    "overview.boost: must be non-negative",
		},
		{
			name:    "entity only",
			finding: Finding{EntityID: "overview", Message: "duplicate segment spec id"},
			want:    "overview: duplicate segment spec id",
		},
		{
			name:    "message only",
			finding: Finding{Message: "segment spec has an empty id"},
			want:    "segment spec has an empty id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.finding.String())
		})
	}
}
