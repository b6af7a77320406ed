package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/services"
)

// ---- fakes ----

type fakeUsers struct {
	user   *models.User
	tokens *services.TokenPair
	err    error

	profile   *services.Profile
	tokenUser string
	tokenErr  error

	lastRegister services.RegisterRequest
}

func (f *fakeUsers) Register(ctx context.Context, req services.RegisterRequest) (*models.User, *services.TokenPair, error) {
	f.lastRegister = req
	return f.user, f.tokens, f.err
}
func (f *fakeUsers) Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error) {
	return f.user, f.tokens, f.err
}
func (f *fakeUsers) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return f.tokens, f.err
}
func (f *fakeUsers) Profile(ctx context.Context, userID string) (*services.Profile, error) {
	return f.profile, f.err
}
func (f *fakeUsers) UserIDFromToken(token string) (string, error) {
	return f.tokenUser, f.tokenErr
}

type fakeCategories struct {
	list []models.Category
	err  error
}

func (f *fakeCategories) List(ctx context.Context, userID string) ([]models.Category, error) {
	return f.list, f.err
}

type fakeSkills struct {
	list    []models.Skill
	created *models.Skill
	err     error

	lastUser   string
	lastCreate services.CreateSkillRequest
}

func (f *fakeSkills) List(ctx context.Context, userID string) ([]models.Skill, error) {
	f.lastUser = userID
	return f.list, f.err
}
func (f *fakeSkills) Create(ctx context.Context, userID string, req services.CreateSkillRequest) (*models.Skill, error) {
	f.lastUser, f.lastCreate = userID, req
	return f.created, f.err
}

type fakeProgression struct {
	rec  *models.TimeLog
	err  error
	last services.LogTimeRequest
}

func (f *fakeProgression) LogTime(ctx context.Context, req services.LogTimeRequest) (*models.TimeLog, error) {
	f.last = req
	return f.rec, f.err
}

type fakeTimeLogs struct {
	list      []models.TimeLog
	err       error
	lastSkill string
	lastLimit int
}

func (f *fakeTimeLogs) List(ctx context.Context, userID, skillID string, limit int) ([]models.TimeLog, error) {
	f.lastSkill, f.lastLimit = skillID, limit
	return f.list, f.err
}

type fakeLeaderboard struct {
	board *models.Leaderboard
	err   error
}

func (f *fakeLeaderboard) Get(ctx context.Context, userID string, limit int) (*models.Leaderboard, error) {
	return f.board, f.err
}

type fakeExport struct {
	res *services.ExportResult
	err error
}

func (f *fakeExport) ExportTimeLogs(ctx context.Context, userID string) (*services.ExportResult, error) {
	return f.res, f.err
}

type fakes struct {
	users       *fakeUsers
	categories  *fakeCategories
	skills      *fakeSkills
	progression *fakeProgression
	timeLogs    *fakeTimeLogs
	leaderboard *fakeLeaderboard
	export      *fakeExport
}

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newFakes() *fakes {
	return &fakes{
		users:       &fakeUsers{tokenUser: "u1"},
		categories:  &fakeCategories{},
		skills:      &fakeSkills{},
		progression: &fakeProgression{},
		timeLogs:    &fakeTimeLogs{},
		leaderboard: &fakeLeaderboard{},
		export:      &fakeExport{},
	}
}

func (f *fakes) server(addr string) *GRPCServer {
	return NewGRPCServer(addr, logging.Nop{}, Deps{
		Users:       f.users,
		Categories:  f.categories,
		Skills:      f.skills,
		Progression: f.progression,
		TimeLogs:    f.timeLogs,
		Leaderboard: f.leaderboard,
		Export:      f.export,
	})
}
