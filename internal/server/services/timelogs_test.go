package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampTimeLogLimit(t *testing.T) {
	cases := map[int]int{0: 50, -3: 1, 1: 1, 200: 200, 1000: 1000, 5000: 1000}
	for in, want := range cases {
		assert.Equal(t, want, ClampTimeLogLimit(in), "limit=%d", in)
	}
}

func TestTimeLogService_ListNewestFirst(t *testing.T) {
	s := memory.NewStore()
	seedUser(t, s, "u1", 0)
	seedCategory(t, s, "c1", "u1")
	seedSkill(t, s, "s1", "u1", "c1", models.DifficultyMedium)
	seedSkill(t, s, "s2", "u1", "c1", models.DifficultyMedium)
	ctx := context.Background()

	prog := newProgression(s, 5)
	for i, skill := range []string{"s1", "s2", "s1"} {
		at := fixedNow.Add(time.Duration(i) * time.Minute)
		prog.now = func() time.Time { return at }
		_, err := prog.LogTime(ctx, LogTimeRequest{UserID: "u1", SkillID: skill, Minutes: int64(i + 1)})
		require.NoError(t, err)
	}

	svc := NewTimeLogService(s)
	all, err := svc.List(ctx, "u1", "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(3), all[0].Minutes)
	assert.Equal(t, int64(1), all[2].Minutes)

	one, err := svc.List(ctx, "u1", "s1", 1)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, int64(3), one[0].Minutes)

	none, err := svc.List(ctx, "u2", "", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
