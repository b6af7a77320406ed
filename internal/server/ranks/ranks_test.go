package ranks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankFor_Boundaries(t *testing.T) {
	tests := []struct {
		xp       int64
		tier     string
		division string
		total    int
	}{
		{0, "Iron", "IV", 1},
		{999, "Iron", "IV", 1},
		{1000, "Iron", "III", 2},
		{3999, "Iron", "I", 4},
		{4000, "Bronze", "IV", 5},
		{23999, "Silver", "I", 12},
		{24000, "Gold", "IV", 13},
		{59999, "Platinum", "I", 20},
		{60000, "Diamond", "IV", 21},
		{99999, "Diamond", "I", 24},
		{100000, "Master", "", 25},
		{150000, "Grandmaster", "", 26},
		{199999, "Grandmaster", "", 26},
		{200000, "Challenger", "", 27},
		{1_000_000, "Challenger", "", 27},
		{1 << 62, "Challenger", "", 27},
	}
	for _, tt := range tests {
		r := RankFor(tt.xp)
		assert.Equal(t, tt.tier, r.Tier, "xp=%d", tt.xp)
		assert.Equal(t, tt.division, r.Division, "xp=%d", tt.xp)
		assert.Equal(t, tt.total, r.TotalRank, "xp=%d", tt.xp)
	}
}

func TestRankFor_NegativeFallsBackToLowest(t *testing.T) {
	assert.Equal(t, Lowest(), RankFor(-5))
}

func TestRankFor_EveryBoundaryBelongsToHigherEntry(t *testing.T) {
	for _, r := range All() {
		assert.Equal(t, r.TotalRank, RankFor(r.MinXP).TotalRank, r.Name())
		if r.MinXP > 0 {
			assert.Equal(t, r.TotalRank-1, RankFor(r.MinXP-1).TotalRank, r.Name())
		}
	}
}

func TestRankFor_Monotonic(t *testing.T) {
	prev := RankFor(0).TotalRank
	for xp := int64(0); xp <= 260000; xp += 7 {
		cur := RankFor(xp).TotalRank
		require.GreaterOrEqual(t, cur, prev, "xp=%d", xp)
		prev = cur
	}
}

func TestTable_ContiguousAndOrdered(t *testing.T) {
	all := All()
	require.Len(t, all, 27)
	require.Equal(t, Count, len(all))
	assert.Equal(t, int64(0), all[0].MinXP)
	assert.Equal(t, Unbounded, all[len(all)-1].MaxXP)

	for i, r := range all {
		assert.Equal(t, i+1, r.TotalRank)
		assert.LessOrEqual(t, r.MinXP, r.MaxXP)
		if i > 0 {
			assert.Equal(t, all[i-1].MaxXP+1, r.MinXP, "gap before %s", r.Name())
		}
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0].Tier = "Mutated"
	assert.Equal(t, "Iron", All()[0].Tier)
}

func TestByOrdinal(t *testing.T) {
	r, ok := ByOrdinal(25)
	require.True(t, ok)
	assert.Equal(t, "Master", r.Name())

	r, ok = ByOrdinal(14)
	require.True(t, ok)
	assert.Equal(t, "Gold III", r.Name())

	_, ok = ByOrdinal(0)
	assert.False(t, ok)
	_, ok = ByOrdinal(28)
	assert.False(t, ok)
}

func TestColors(t *testing.T) {
	assert.Equal(t, "#8B4513", RankFor(0).Color)
	assert.Equal(t, "#2D1810", RankFor(0).BgColor)
	assert.Equal(t, "#FF6347", RankFor(250000).Color)
	assert.Equal(t, "#3D2A1A", RankFor(250000).BgColor)
}
