package client

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/rpc"
)

// Client is the backend API used by the CLI.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, email string, password []byte) (*rpc.User, error)
	Login(ctx context.Context, email string, password []byte) (*rpc.User, error)
	Logout()
	Profile(ctx context.Context) (*rpc.User, error)
	ListCategories(ctx context.Context) ([]rpc.Category, error)
	ListSkills(ctx context.Context) ([]rpc.Skill, error)
	CreateSkill(ctx context.Context, req *rpc.CreateSkillRequest) (*rpc.Skill, error)
	LogTime(ctx context.Context, req *rpc.LogTimeRequest) (*rpc.TimeLog, error)
	ListTimeLogs(ctx context.Context, skillID string, limit int) ([]rpc.TimeLog, error)
	Leaderboard(ctx context.Context, limit int) (*rpc.LeaderboardResponse, error)
	Export(ctx context.Context) (*rpc.ExportResponse, error)
}
