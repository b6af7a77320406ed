package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSkillFixture(t *testing.T) (*memory.Store, *SkillService) {
	t.Helper()
	s := memory.NewStore()
	seedUser(t, s, "u1", 0)
	seedUser(t, s, "u2", 0)
	seedCategory(t, s, "c1", "u1")
	seedCategory(t, s, "c2", "u2")
	svc := NewSkillService(s, nopLogger)
	svc.now = func() time.Time { return fixedNow }
	return s, svc
}

func TestSkillService_Create(t *testing.T) {
	_, svc := newSkillFixture(t)
	ctx := context.Background()

	sk, err := svc.Create(ctx, "u1", CreateSkillRequest{Name: "Go", CategoryID: "c1", Difficulty: models.DifficultyHard})
	require.NoError(t, err)
	assert.Equal(t, "Go", sk.Name)
	assert.Equal(t, models.DefaultSkillIcon, sk.Icon)
	assert.Zero(t, sk.TotalXP)
	assert.Zero(t, sk.Streak)
	assert.Nil(t, sk.LastLoggedAt)
	assert.Equal(t, fixedNow, sk.CreatedAt)

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSkillService_CreateValidation(t *testing.T) {
	_, svc := newSkillFixture(t)
	ctx := context.Background()

	cases := map[string]CreateSkillRequest{
		"empty name":       {Name: " ", CategoryID: "c1", Difficulty: models.DifficultyEasy},
		"long name":        {Name: strings.Repeat("n", 101), CategoryID: "c1", Difficulty: models.DifficultyEasy},
		"bad difficulty":   {Name: "Go", CategoryID: "c1", Difficulty: models.Difficulty(42)},
		"foreign category": {Name: "Go", CategoryID: "c2", Difficulty: models.DifficultyEasy},
		"missing category": {Name: "Go", CategoryID: "zzz", Difficulty: models.DifficultyEasy},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, "u1", req)
			assert.ErrorIs(t, err, common.ErrInvalidArgument)
		})
	}
}

func TestSkillService_UpdateKeepsAggregates(t *testing.T) {
	s, svc := newSkillFixture(t)
	seedSkill(t, s, "s1", "u1", "c1", models.DifficultyEasy)
	ctx := context.Background()

	_, err := newProgression(s, 5).LogTime(ctx, LogTimeRequest{UserID: "u1", SkillID: "s1", Minutes: 20})
	require.NoError(t, err)

	name, d := " Rust ", models.DifficultyLegendary
	later := fixedNow.Add(time.Hour)
	svc.now = func() time.Time { return later }
	sk, err := svc.Update(ctx, "u1", "s1", models.SkillPatch{Name: &name, Difficulty: &d})
	require.NoError(t, err)
	assert.Equal(t, "Rust", sk.Name)
	assert.Equal(t, models.DifficultyLegendary, sk.Difficulty)
	assert.Equal(t, int64(30), sk.TotalXP)
	assert.Equal(t, int64(1), sk.Streak)
	assert.Equal(t, later, sk.UpdatedAt)

	_, err = svc.Update(ctx, "u1", "s1", models.SkillPatch{})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	bad := models.Difficulty(0)
	_, err = svc.Update(ctx, "u1", "s1", models.SkillPatch{Difficulty: &bad})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = svc.Update(ctx, "u2", "s1", models.SkillPatch{Name: &name})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSkillService_DeleteRemovesLogs(t *testing.T) {
	s, svc := newSkillFixture(t)
	seedSkill(t, s, "s1", "u1", "c1", models.DifficultyEasy)
	ctx := context.Background()

	_, err := newProgression(s, 5).LogTime(ctx, LogTimeRequest{UserID: "u1", SkillID: "s1", Minutes: 20})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, "u2", "s1"), common.ErrorNotFound)
	require.NoError(t, svc.Delete(ctx, "u1", "s1"))

	n, err := s.TimeLogs(s.Conn()).CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, int64(30), mustUser(t, s, "u1").TotalXP)
}
