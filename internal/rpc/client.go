package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// QuestClient is the client API for QuestService.
type QuestClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error)
	Profile(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*User, error)
	ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error)
	ListSkills(ctx context.Context, in *ListSkillsRequest, opts ...grpc.CallOption) (*ListSkillsResponse, error)
	CreateSkill(ctx context.Context, in *CreateSkillRequest, opts ...grpc.CallOption) (*Skill, error)
	LogTime(ctx context.Context, in *LogTimeRequest, opts ...grpc.CallOption) (*TimeLog, error)
	ListTimeLogs(ctx context.Context, in *ListTimeLogsRequest, opts ...grpc.CallOption) (*ListTimeLogsResponse, error)
	Leaderboard(ctx context.Context, in *LeaderboardRequest, opts ...grpc.CallOption) (*LeaderboardResponse, error)
	ExportTimeLogs(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*ExportResponse, error)
}

type questClient struct {
	cc grpc.ClientConnInterface
}

func NewQuestClient(cc grpc.ClientConnInterface) QuestClient {
	return &questClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *questClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingRequest, PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *questClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[RegisterRequest, AuthResponse](ctx, c.cc, MethodRegister, in, opts)
}

func (c *questClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[LoginRequest, AuthResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *questClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*TokenResponse, error) {
	return invoke[RefreshTokenRequest, TokenResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *questClient) Profile(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*User, error) {
	return invoke[ProfileRequest, User](ctx, c.cc, MethodProfile, in, opts)
}

func (c *questClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesRequest, ListCategoriesResponse](ctx, c.cc, MethodListCategories, in, opts)
}

func (c *questClient) ListSkills(ctx context.Context, in *ListSkillsRequest, opts ...grpc.CallOption) (*ListSkillsResponse, error) {
	return invoke[ListSkillsRequest, ListSkillsResponse](ctx, c.cc, MethodListSkills, in, opts)
}

func (c *questClient) CreateSkill(ctx context.Context, in *CreateSkillRequest, opts ...grpc.CallOption) (*Skill, error) {
	return invoke[CreateSkillRequest, Skill](ctx, c.cc, MethodCreateSkill, in, opts)
}

func (c *questClient) LogTime(ctx context.Context, in *LogTimeRequest, opts ...grpc.CallOption) (*TimeLog, error) {
	return invoke[LogTimeRequest, TimeLog](ctx, c.cc, MethodLogTime, in, opts)
}

func (c *questClient) ListTimeLogs(ctx context.Context, in *ListTimeLogsRequest, opts ...grpc.CallOption) (*ListTimeLogsResponse, error) {
	return invoke[ListTimeLogsRequest, ListTimeLogsResponse](ctx, c.cc, MethodListTimeLogs, in, opts)
}

func (c *questClient) Leaderboard(ctx context.Context, in *LeaderboardRequest, opts ...grpc.CallOption) (*LeaderboardResponse, error) {
	return invoke[LeaderboardRequest, LeaderboardResponse](ctx, c.cc, MethodLeaderboard, in, opts)
}

func (c *questClient) ExportTimeLogs(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke[ExportRequest, ExportResponse](ctx, c.cc, MethodExportTimeLogs, in, opts)
}
