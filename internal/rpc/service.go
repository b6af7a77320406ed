package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "galacticquest.QuestService"

const (
	MethodPing           = "Ping"
	MethodRegister       = "Register"
	MethodLogin          = "Login"
	MethodRefreshToken   = "RefreshToken"
	MethodProfile        = "Profile"
	MethodListCategories = "ListCategories"
	MethodListSkills     = "ListSkills"
	MethodCreateSkill    = "CreateSkill"
	MethodLogTime        = "LogTime"
	MethodListTimeLogs   = "ListTimeLogs"
	MethodLeaderboard    = "Leaderboard"
	MethodExportTimeLogs = "ExportTimeLogs"
)

// FullMethod returns the gRPC path of a QuestService method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// QuestServer is the server API for QuestService.
type QuestServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error)
	Profile(context.Context, *ProfileRequest) (*User, error)
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error)
	ListSkills(context.Context, *ListSkillsRequest) (*ListSkillsResponse, error)
	CreateSkill(context.Context, *CreateSkillRequest) (*Skill, error)
	LogTime(context.Context, *LogTimeRequest) (*TimeLog, error)
	ListTimeLogs(context.Context, *ListTimeLogsRequest) (*ListTimeLogsResponse, error)
	Leaderboard(context.Context, *LeaderboardRequest) (*LeaderboardResponse, error)
	ExportTimeLogs(context.Context, *ExportRequest) (*ExportResponse, error)
}

// UnimplementedQuestServer answers every method with codes.Unimplemented.
// Embed it to stay forward compatible.
type UnimplementedQuestServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedQuestServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, unimplemented(MethodPing)
}
func (UnimplementedQuestServer) Register(context.Context, *RegisterRequest) (*AuthResponse, error) {
	return nil, unimplemented(MethodRegister)
}
func (UnimplementedQuestServer) Login(context.Context, *LoginRequest) (*AuthResponse, error) {
	return nil, unimplemented(MethodLogin)
}
func (UnimplementedQuestServer) RefreshToken(context.Context, *RefreshTokenRequest) (*TokenResponse, error) {
	return nil, unimplemented(MethodRefreshToken)
}
func (UnimplementedQuestServer) Profile(context.Context, *ProfileRequest) (*User, error) {
	return nil, unimplemented(MethodProfile)
}
func (UnimplementedQuestServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesResponse, error) {
	return nil, unimplemented(MethodListCategories)
}
func (UnimplementedQuestServer) ListSkills(context.Context, *ListSkillsRequest) (*ListSkillsResponse, error) {
	return nil, unimplemented(MethodListSkills)
}
func (UnimplementedQuestServer) CreateSkill(context.Context, *CreateSkillRequest) (*Skill, error) {
	return nil, unimplemented(MethodCreateSkill)
}
func (UnimplementedQuestServer) LogTime(context.Context, *LogTimeRequest) (*TimeLog, error) {
	return nil, unimplemented(MethodLogTime)
}
func (UnimplementedQuestServer) ListTimeLogs(context.Context, *ListTimeLogsRequest) (*ListTimeLogsResponse, error) {
	return nil, unimplemented(MethodListTimeLogs)
}
func (UnimplementedQuestServer) Leaderboard(context.Context, *LeaderboardRequest) (*LeaderboardResponse, error) {
	return nil, unimplemented(MethodLeaderboard)
}
func (UnimplementedQuestServer) ExportTimeLogs(context.Context, *ExportRequest) (*ExportResponse, error) {
	return nil, unimplemented(MethodExportTimeLogs)
}

func unary[Req, Resp any](method string, call func(QuestServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(QuestServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(QuestServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ServiceDesc describes QuestService for grpc.ServiceRegistrar.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*QuestServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodPing, QuestServer.Ping),
		unary(MethodRegister, QuestServer.Register),
		unary(MethodLogin, QuestServer.Login),
		unary(MethodRefreshToken, QuestServer.RefreshToken),
		unary(MethodProfile, QuestServer.Profile),
		unary(MethodListCategories, QuestServer.ListCategories),
		unary(MethodListSkills, QuestServer.ListSkills),
		unary(MethodCreateSkill, QuestServer.CreateSkill),
		unary(MethodLogTime, QuestServer.LogTime),
		unary(MethodListTimeLogs, QuestServer.ListTimeLogs),
		unary(MethodLeaderboard, QuestServer.Leaderboard),
		unary(MethodExportTimeLogs, QuestServer.ExportTimeLogs),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "galacticquest/quest",
}

func RegisterQuestServer(s grpc.ServiceRegistrar, srv QuestServer) {
	s.RegisterService(&ServiceDesc, srv)
}
