package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semwerk/semspec/internal/core/domain"
)

func TestScanMarkers_Basic(t *testing.T) {
	text := `intro
<!--segment:start id="overview"-->
body text
<!--segment:end-->
outro`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)

	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, domain.MarkerStart, markers[0].Kind)
	assert.Equal(t, "overview", markers[0].ID)
	assert.Equal(t, domain.MarkerEnd, markers[1].Kind)
	assert.Empty(t, markers[1].ID)
}

func TestScanMarkers_Offsets(t *testing.T) {
	text := `<!--segment:start id="a"-->x<!--segment:end-->`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)

	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, 0, markers[0].Offset)
	assert.Equal(t, len(`<!--segment:start id="a"-->`), markers[0].MatchLen)
	assert.Equal(t, markers[0].End()+1, markers[1].Offset)
	assert.Equal(t, text[markers[0].End():markers[1].Offset], "x")
}

func TestScanMarkers_InlineAttributes(t *testing.T) {
	text := `<!--segment:start id="api" type="reference" audience="developer, operator"-->
...
<!--segment:end-->`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)

	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, "api", markers[0].ID)
	assert.Equal(t, "reference", markers[0].Type)
	assert.Equal(t, []string{"developer", "operator"}, markers[0].Audience)
}

func TestScanMarkers_KeyAttributeAlias(t *testing.T) {
	text := `<!--segment:start key="legacy"--><!--segment:end-->`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)

	require.NoError(t, err)
	assert.Equal(t, "legacy", markers[0].ID)
}

func TestScanMarkers_CustomTokens(t *testing.T) {
	tokens := MarkerTokens{Start: "{{sect:open", End: "{{sect:close"}
	text := `{{sect:open id="a"-->body{{sect:close-->`

	markers, err := ScanMarkers(text, tokens)

	require.NoError(t, err)
	require.Len(t, markers, 2)
	assert.Equal(t, "a", markers[0].ID)
}

func TestScanMarkers_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "start marker never closed",
			text: `<!--segment:start id="a" body continues forever`,
		},
		{
			name: "end marker never closed",
			text: `<!--segment:start id="a"-->x<!--segment:end`,
		},
		{
			name: "end marker with attributes",
			text: `<!--segment:start id="a"-->x<!--segment:end id="a"-->`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScanMarkers(tt.text, DefaultMarkerTokens)

			assert.ErrorIs(t, err, domain.ErrMalformedMarker)
		})
	}
}

func TestPairMarkers_SegmentCountIsHalfMarkerCount(t *testing.T) {
	text := `<!--segment:start id="a"-->1<!--segment:end-->
<!--segment:start id="b"-->2<!--segment:end-->
<!--segment:start id="c"-->3<!--segment:end-->`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)
	require.NoError(t, err)
	require.Len(t, markers, 6)

	ranges, err := PairMarkers(markers)

	require.NoError(t, err)
	require.Len(t, ranges, 3)
	assert.Equal(t, "a", ranges[0].ID)
	assert.Equal(t, "b", ranges[1].ID)
	assert.Equal(t, "c", ranges[2].ID)
}

func TestPairMarkers_UnclosedStart(t *testing.T) {
	text := `<!--segment:start id="a"-->1<!--segment:end-->
<!--segment:start id="b"-->never closed`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)
	require.NoError(t, err)

	_, err = PairMarkers(markers)

	require.ErrorIs(t, err, domain.ErrUnclosedMarker)
	assert.Contains(t, err.Error(), `"b"`)
}

func TestPairMarkers_UnmatchedEnd(t *testing.T) {
	text := `<!--segment:start id="a"-->1<!--segment:end-->
stray <!--segment:end-->`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)
	require.NoError(t, err)

	_, err = PairMarkers(markers)

	assert.ErrorIs(t, err, domain.ErrUnmatchedEndMarker)
	assert.NotErrorIs(t, err, domain.ErrUnclosedMarker)
}

func TestPairMarkers_OrderViolation(t *testing.T) {
	// An end before the first start, with counts balanced.
	text := `<!--segment:end--><!--segment:start id="a"-->`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)
	require.NoError(t, err)

	_, err = PairMarkers(markers)

	assert.ErrorIs(t, err, domain.ErrMarkerOrder)
}

func TestPairMarkers_NestingNamesBothSegments(t *testing.T) {
	text := `<!--segment:start id="outer"-->
<!--segment:start id="inner"-->x<!--segment:end-->
<!--segment:end-->`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)
	require.NoError(t, err)

	_, err = PairMarkers(markers)

	require.ErrorIs(t, err, domain.ErrMarkerNesting)
	assert.Contains(t, err.Error(), `"outer"`)
	assert.Contains(t, err.Error(), `"inner"`)
}

func TestPairMarkers_CountCheckedBeforeOrdering(t *testing.T) {
	// Both a count mismatch and an out-of-order end: count wins.
	text := `<!--segment:end--><!--segment:start id="a"-->x<!--segment:end-->`

	markers, err := ScanMarkers(text, DefaultMarkerTokens)
	require.NoError(t, err)

	_, err = PairMarkers(markers)

	assert.ErrorIs(t, err, domain.ErrUnmatchedEndMarker)
}

func TestPairMarkers_CountErrorsShareTheGeneralKind(t *testing.T) {
	unclosed, err := ScanMarkers(`<!--segment:start id="a"-->x`, DefaultMarkerTokens)
	require.NoError(t, err)
	_, err = PairMarkers(unclosed)
	assert.ErrorIs(t, err, domain.ErrMarkerCount)

	unmatched, err := ScanMarkers(`x<!--segment:end-->`, DefaultMarkerTokens)
	require.NoError(t, err)
	_, err = PairMarkers(unmatched)
	assert.ErrorIs(t, err, domain.ErrMarkerCount)

	// Ordering and nesting failures are not count failures.
	ordered, err := ScanMarkers(`<!--segment:end--><!--segment:start id="a"-->`, DefaultMarkerTokens)
	require.NoError(t, err)
	_, err = PairMarkers(ordered)
	assert.NotErrorIs(t, err, domain.ErrMarkerCount)
}

func TestPairMarkers_Empty(t *testing.T) {
	ranges, err := PairMarkers(nil)

	require.NoError(t, err)
	assert.Empty(t, ranges)
}
