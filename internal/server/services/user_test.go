package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/server/catalog"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserSvc(t *testing.T) (*memory.Store, *UserService) {
	t.Helper()
	s := memory.NewStore()
	return s, NewUserService(s, testConfig(), nopLogger)
}

func register(t *testing.T, svc *UserService, username, email string) (*models.User, *TokenPair) {
	t.Helper()
	u, pair, err := svc.Register(context.Background(), RegisterRequest{Username: username, Email: email, Password: "secret1"})
	require.NoError(t, err)
	return u, pair
}

func TestRegister_CreatesAccountWithPredefinedCategories(t *testing.T) {
	s, svc := newUserSvc(t)
	ctx := context.Background()

	u, pair := register(t, svc, "  alice ", "Alice@Example.com")
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, models.DefaultAvatar, u.Avatar)
	assert.Equal(t, 1, u.CurrentRank)
	assert.Zero(t, u.TotalXP)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.Equal(t, models.DefaultSettings(), u.Settings)

	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	id, err := svc.UserIDFromToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	cats, err := s.Categories(s.Conn()).ListByUser(ctx, u.ID)
	require.NoError(t, err)
	want := catalog.PredefinedCategories()
	require.Len(t, cats, len(want))
	for i, c := range cats {
		assert.Equal(t, want[i].Name, c.Name, "categories keep catalog order")
		assert.True(t, c.IsPredefined)
		assert.Equal(t, u.ID, c.UserID)
	}
}

func TestRegister_Validation(t *testing.T) {
	_, svc := newUserSvc(t)
	cases := map[string]RegisterRequest{
		"short username": {Username: "al", Email: "a@example.com", Password: "secret1"},
		"long username":  {Username: "abcdefghijklmnopqrstu", Email: "a@example.com", Password: "secret1"},
		"bad email":      {Username: "alice", Email: "not-an-email", Password: "secret1"},
		"named email":    {Username: "alice", Email: "Alice <a@example.com>", Password: "secret1"},
		"short password": {Username: "alice", Email: "a@example.com", Password: "12345"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, common.ErrInvalidArgument)
		})
	}
}

func TestRegister_Duplicates(t *testing.T) {
	_, svc := newUserSvc(t)
	register(t, svc, "alice", "alice@example.com")

	_, _, err := svc.Register(context.Background(), RegisterRequest{Username: "other", Email: "ALICE@example.com", Password: "secret1"})
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "email")

	_, _, err = svc.Register(context.Background(), RegisterRequest{Username: "alice", Email: "other@example.com", Password: "secret1"})
	require.ErrorIs(t, err, common.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "username")
}

func TestLogin(t *testing.T) {
	s, svc := newUserSvc(t)
	u, _ := register(t, svc, "alice", "alice@example.com")
	later := fixedNow.Add(48 * time.Hour)
	svc.now = func() time.Time { return later }

	got, pair, err := svc.Login(context.Background(), " Alice@example.com ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, later, mustUser(t, s, u.ID).LastActive)

	_, _, err = svc.Login(context.Background(), "alice@example.com", "wrong-pass")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_RotatesToken(t *testing.T) {
	s, svc := newUserSvc(t)
	u, pair := register(t, svc, "alice", "alice@example.com")
	ctx := context.Background()

	next, err := svc.RefreshToken(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, next.RefreshToken)

	id, err := svc.UserIDFromToken(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, err = s.RefreshTokens(s.Conn()).Find(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorNotFound, "old token is single use")

	_, err = svc.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_Expired(t *testing.T) {
	_, svc := newUserSvc(t)
	_, pair := register(t, svc, "alice", "alice@example.com")
	svc.now = func() time.Time { return time.Now().Add(3 * time.Hour) }

	_, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestUserIDFromToken_Invalid(t *testing.T) {
	_, svc := newUserSvc(t)
	_, err := svc.UserIDFromToken("garbage")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestProfile(t *testing.T) {
	s, svc := newUserSvc(t)
	seedUser(t, s, "u1", 0)

	p, err := svc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.User.ID)
	assert.Equal(t, "Iron IV", p.Rank.Name())

	_, err = svc.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateSettings(t *testing.T) {
	s, svc := newUserSvc(t)
	seedUser(t, s, "u1", 0)
	ctx := context.Background()

	goal, theme, off := 45, "light", false
	got, err := svc.UpdateSettings(ctx, "u1", models.SettingsPatch{DailyGoal: &goal, Theme: &theme, SoundEffects: &off})
	require.NoError(t, err)
	assert.Equal(t, 45, got.DailyGoal)
	assert.Equal(t, "light", got.Theme)
	assert.False(t, got.SoundEffects)
	assert.True(t, got.Notifications)

	stored, err := svc.Settings(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, got, stored)

	same, err := svc.UpdateSettings(ctx, "u1", models.SettingsPatch{})
	require.NoError(t, err)
	assert.Equal(t, got, same)
}

func TestUpdateSettings_Validation(t *testing.T) {
	s, svc := newUserSvc(t)
	seedUser(t, s, "u1", 0)
	ctx := context.Background()

	for _, g := range []int{0, 1441} {
		goal := g
		_, err := svc.UpdateSettings(ctx, "u1", models.SettingsPatch{DailyGoal: &goal})
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	}
	blank := "  "
	_, err := svc.UpdateSettings(ctx, "u1", models.SettingsPatch{Theme: &blank})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	goal := 30
	_, err = svc.UpdateSettings(ctx, "missing", models.SettingsPatch{DailyGoal: &goal})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, models.DefaultSettings(), mustUser(t, s, "u1").Settings)
}
