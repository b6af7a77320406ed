package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      rpc.QuestClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()
	if access != "" {
		ctx = withAccessToken(ctx, access)
	}

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err == nil || !isTokenExpired(err) || refresh == "" || method == rpc.FullMethod(rpc.MethodRefreshToken) {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &rpc.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return err
	}
	s.setTokens(resp.AccessToken, resp.RefreshToken)

	// tokens refreshed, retrying with the new access token
	ctx = withAccessToken(ctx, resp.AccessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewQuestClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.Aborted:
		return ErrRetryLater
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &rpc.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) Register(ctx context.Context, username, email string, password []byte) (*rpc.User, error) {

	resp, err := s.client.Register(ctx, &rpc.RegisterRequest{Username: username, Email: email, Password: string(password)})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setTokens(resp.Tokens.AccessToken, resp.Tokens.RefreshToken)
	return &resp.User, nil

}

func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (*rpc.User, error) {

	resp, err := s.client.Login(ctx, &rpc.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setTokens(resp.Tokens.AccessToken, resp.Tokens.RefreshToken)
	return &resp.User, nil

}

// Logout forgets the session tokens.
func (s *GRPCClient) Logout() {
	s.setTokens("", "")
}

func (s *GRPCClient) Profile(ctx context.Context) (*rpc.User, error) {
	resp, err := s.client.Profile(ctx, &rpc.ProfileRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListCategories(ctx context.Context) ([]rpc.Category, error) {
	resp, err := s.client.ListCategories(ctx, &rpc.ListCategoriesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Categories, nil
}

func (s *GRPCClient) ListSkills(ctx context.Context) ([]rpc.Skill, error) {
	resp, err := s.client.ListSkills(ctx, &rpc.ListSkillsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Skills, nil
}

func (s *GRPCClient) CreateSkill(ctx context.Context, req *rpc.CreateSkillRequest) (*rpc.Skill, error) {
	resp, err := s.client.CreateSkill(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) LogTime(ctx context.Context, req *rpc.LogTimeRequest) (*rpc.TimeLog, error) {
	resp, err := s.client.LogTime(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ListTimeLogs(ctx context.Context, skillID string, limit int) ([]rpc.TimeLog, error) {
	resp, err := s.client.ListTimeLogs(ctx, &rpc.ListTimeLogsRequest{SkillID: skillID, Limit: limit})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.TimeLogs, nil
}

func (s *GRPCClient) Leaderboard(ctx context.Context, limit int) (*rpc.LeaderboardResponse, error) {
	resp, err := s.client.Leaderboard(ctx, &rpc.LeaderboardRequest{Limit: limit})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Export(ctx context.Context) (*rpc.ExportResponse, error) {
	resp, err := s.client.ExportTimeLogs(ctx, &rpc.ExportRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}
