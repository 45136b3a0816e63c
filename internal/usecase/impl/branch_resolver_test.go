package impl

import (
	"testing"

	"steakz/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"42 Elm St.", "42elmst"},
		{"42 elm st", "42elmst"},
		{"  12, Main   Street ", "12mainstreet"},
		{"", ""},
		{"!?.,-", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeAddress(tc.in), "input %q", tc.in)
	}
}

func TestAddressMatchScore(t *testing.T) {
	// Identical after normalization scores the full length.
	assert.Equal(t, 7, addressMatchScore("42 Elm St.", "42 elm st"))

	// Scoring stops at the shorter normalized length.
	assert.Equal(t, 7, addressMatchScore("42 elm st", "42 Elm Street"))

	// Completely disjoint prefixes score zero.
	assert.Equal(t, 0, addressMatchScore("99 Oak Avenue", "12 Elm Street"))
}

func TestResolveBranchByAddress_PicksBestMatch(t *testing.T) {
	branches := newTestBranches()

	got := resolveBranchByAddress(branches, "88 River Road, Springfield, Apt 4")

	require.NotNil(t, got)
	assert.Equal(t, uint(2), got.ID)
}

func TestResolveBranchByAddress_TieFallsToFirstBranch(t *testing.T) {
	branches := []*entity.Branch{
		{ID: 1, Address: "aaa"},
		{ID: 2, Address: "aaa"},
	}

	got := resolveBranchByAddress(branches, "aaa")

	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID)
}

func TestResolveBranchByAddress_ZeroScoreStillResolves(t *testing.T) {
	branches := newTestBranches()

	// Nothing matches, but the first branch is still returned.
	got := resolveBranchByAddress(branches, "zzz")

	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID)
}

func TestResolveBranchByAddress_EmptyList(t *testing.T) {
	assert.Nil(t, resolveBranchByAddress(nil, "12 Main Street"))
}
