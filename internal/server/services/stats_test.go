package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Empty(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, "u1", 0)

	st, err := NewStatsService(s).UserStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, models.UserStats{}, *st)
}

func TestStatsService_SumsSkills(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, "u1", 0)
	seedCategory(t, s, "c1", "u1")
	seedSkill(t, s, "s1", "u1", "c1", models.DifficultyTrivial)
	seedSkill(t, s, "s2", "u1", "c1", models.DifficultyMedium)
	ctx := context.Background()

	prog := newProgression(s, 5)
	for _, r := range []LogTimeRequest{
		{UserID: "u1", SkillID: "s1", Minutes: 10},
		{UserID: "u1", SkillID: "s1", Minutes: 20},
		{UserID: "u1", SkillID: "s2", Minutes: 15},
	} {
		_, err := prog.LogTime(ctx, r)
		require.NoError(t, err)
	}

	st, err := NewStatsService(s).UserStats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, st.TotalSkills)
	assert.Equal(t, int64(45), st.TotalTimeMinutes)
	assert.Equal(t, int64(60), st.TotalXP)
	assert.Equal(t, int64(2), st.CurrentStreak)
	assert.Equal(t, int64(3), st.TotalLogs)
	assert.InDelta(t, 30.0, st.AvgXPPerSkill, 1e-9)
	assert.InDelta(t, 22.5, st.AvgTimePerSkill, 1e-9)
}
