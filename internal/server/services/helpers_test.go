package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/config"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/memory"
	usersrepo "github.com/dmitrijs2005/galacticquest/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		S3Region:                     "us-east-1",
		S3RootUser:                   "minioadmin",
		S3RootPassword:               "minioadmin",
		S3BaseEndpoint:               "http://127.0.0.1:9000",
		S3Bucket:                     "galacticquest",
	}
}

func seedUser(t *testing.T, s *memory.Store, id string, xp int64) {
	t.Helper()
	_, err := s.Users(s.Conn()).Create(context.Background(), &models.User{
		ID: id, Username: "user-" + id, Email: id + "@example.com", TotalXP: xp, CurrentRank: 1,
		Settings: models.DefaultSettings(), JoinedAt: fixedNow, LastActive: fixedNow,
	})
	require.NoError(t, err)
}

func seedCategory(t *testing.T, s *memory.Store, id, userID string) {
	t.Helper()
	_, err := s.Categories(s.Conn()).Create(context.Background(), &models.Category{
		ID: id, UserID: userID, Name: "cat-" + id, CreatedAt: fixedNow,
	})
	require.NoError(t, err)
}

func seedSkill(t *testing.T, s *memory.Store, id, userID, categoryID string, d models.Difficulty) {
	t.Helper()
	_, err := s.Skills(s.Conn()).Create(context.Background(), &models.Skill{
		ID: id, UserID: userID, CategoryID: categoryID, Name: "skill-" + id, Difficulty: d,
		CreatedAt: fixedNow, UpdatedAt: fixedNow,
	})
	require.NoError(t, err)
}

func mustUser(t *testing.T, s *memory.Store, id string) *models.User {
	t.Helper()
	u, err := s.Users(s.Conn()).GetByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

func mustSkill(t *testing.T, s *memory.Store, id, userID string) *models.Skill {
	t.Helper()
	sk, err := s.Skills(s.Conn()).FindOwned(context.Background(), id, userID)
	require.NoError(t, err)
	return sk
}

// conflictingRepos makes the next n user compare-and-set writes fail as if
// another writer got there first.
type conflictingRepos struct {
	*memory.Store
	mu        sync.Mutex
	conflicts int
}

func (c *conflictingRepos) take() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conflicts > 0 {
		c.conflicts--
		return true
	}
	return false
}

func (c *conflictingRepos) Users(db dbx.DBTX) usersrepo.Repository {
	return &conflictingUsers{Repository: c.Store.Users(db), parent: c}
}

type conflictingUsers struct {
	usersrepo.Repository
	parent *conflictingRepos
}

func (u *conflictingUsers) ApplyProgress(ctx context.Context, p models.ProgressUpdate) error {
	if u.parent.take() {
		return common.ErrVersionConflict
	}
	return u.Repository.ApplyProgress(ctx, p)
}

var nopLogger logging.Logger = logging.Nop{}
