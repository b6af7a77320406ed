package grpc

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/rpc"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/ranks"
	"github.com/dmitrijs2005/galacticquest/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type UserService interface {
	Register(ctx context.Context, req services.RegisterRequest) (*models.User, *services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Profile(ctx context.Context, userID string) (*services.Profile, error)
	UserIDFromToken(token string) (string, error)
}

type CategoryService interface {
	List(ctx context.Context, userID string) ([]models.Category, error)
}

type SkillService interface {
	List(ctx context.Context, userID string) ([]models.Skill, error)
	Create(ctx context.Context, userID string, req services.CreateSkillRequest) (*models.Skill, error)
}

type ProgressionService interface {
	LogTime(ctx context.Context, req services.LogTimeRequest) (*models.TimeLog, error)
}

type TimeLogService interface {
	List(ctx context.Context, userID, skillID string, limit int) ([]models.TimeLog, error)
}

type LeaderboardService interface {
	Get(ctx context.Context, userID string, limit int) (*models.Leaderboard, error)
}

type ExportService interface {
	ExportTimeLogs(ctx context.Context, userID string) (*services.ExportResult, error)
}

func toUser(u *models.User, r ranks.RankDescriptor) rpc.User {
	out := rpc.User{
		ID: u.ID, Username: u.Username, Email: u.Email, Avatar: u.Avatar,
		TotalXP: u.TotalXP, TotalTimeMinutes: u.TotalTimeMinutes,
		Rank: r.Name(), RankOrdinal: r.TotalRank,
	}
	if next, ok := ranks.ByOrdinal(r.TotalRank + 1); ok {
		out.NextRankXP = next.MinXP
	}
	return out
}

func rankFor(u *models.User) ranks.RankDescriptor {
	if r, ok := ranks.ByOrdinal(u.CurrentRank); ok {
		return r
	}
	return ranks.RankFor(u.TotalXP)
}

func toTokens(p *services.TokenPair) rpc.TokenResponse {
	return rpc.TokenResponse{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

func toSkill(s *models.Skill) rpc.Skill {
	return rpc.Skill{
		ID: s.ID, Name: s.Name, CategoryID: s.CategoryID, Difficulty: s.Difficulty.String(), Icon: s.Icon,
		TotalTimeMinutes: s.TotalTimeMinutes, TotalXP: s.TotalXP, Streak: s.Streak, LastLoggedAt: s.LastLoggedAt,
	}
}

func toTimeLog(l *models.TimeLog) rpc.TimeLog {
	return rpc.TimeLog{ID: l.ID, SkillID: l.SkillID, Minutes: l.Minutes, XPEarned: l.XPEarned, Note: l.Note, LoggedAt: l.LoggedAt}
}

func (s *GRPCServer) Ping(ctx context.Context, req *rpc.PingRequest) (*rpc.PingResponse, error) {

	return &rpc.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, tokens, err := s.users.Register(ctx, services.RegisterRequest{
		Username: req.Username, Email: req.Email, Password: req.Password, Avatar: req.Avatar,
	})
	if err != nil {
		s.logger.Error(ctx, "registration failed", "error", err)
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "username", user.Username)
	return &rpc.AuthResponse{User: toUser(user, rankFor(user)), Tokens: toTokens(tokens)}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.AuthResponse, error) {

	user, tokens, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}

	return &rpc.AuthResponse{User: toUser(user, rankFor(user)), Tokens: toTokens(tokens)}, nil

}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *rpc.RefreshTokenRequest) (*rpc.TokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := toTokens(tokens)
	return &resp, nil

}

func (s *GRPCServer) Profile(ctx context.Context, req *rpc.ProfileRequest) (*rpc.User, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.users.Profile(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := toUser(&p.User, p.Rank)
	return &resp, nil
}

func (s *GRPCServer) ListCategories(ctx context.Context, req *rpc.ListCategoriesRequest) (*rpc.ListCategoriesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &rpc.ListCategoriesResponse{Categories: make([]rpc.Category, 0, len(list))}
	for _, c := range list {
		resp.Categories = append(resp.Categories, rpc.Category{
			ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color, IsPredefined: c.IsPredefined,
		})
	}
	return resp, nil
}

func (s *GRPCServer) ListSkills(ctx context.Context, req *rpc.ListSkillsRequest) (*rpc.ListSkillsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.skills.List(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &rpc.ListSkillsResponse{Skills: make([]rpc.Skill, 0, len(list))}
	for i := range list {
		resp.Skills = append(resp.Skills, toSkill(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) CreateSkill(ctx context.Context, req *rpc.CreateSkillRequest) (*rpc.Skill, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	d, err := models.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	sk, err := s.skills.Create(ctx, userID, services.CreateSkillRequest{
		Name: req.Name, CategoryID: req.CategoryID, Difficulty: d, Icon: req.Icon, Description: req.Description,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := toSkill(sk)
	return &resp, nil
}

func (s *GRPCServer) LogTime(ctx context.Context, req *rpc.LogTimeRequest) (*rpc.TimeLog, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.progression.LogTime(ctx, services.LogTimeRequest{
		ID: req.ID, UserID: userID, SkillID: req.SkillID, Minutes: req.Minutes, Note: req.Note,
	})
	if err != nil {
		return nil, toStatus(err)
	}

	resp := toTimeLog(rec)
	return &resp, nil
}

func (s *GRPCServer) ListTimeLogs(ctx context.Context, req *rpc.ListTimeLogsRequest) (*rpc.ListTimeLogsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.timeLogs.List(ctx, userID, req.SkillID, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &rpc.ListTimeLogsResponse{TimeLogs: make([]rpc.TimeLog, 0, len(list))}
	for i := range list {
		resp.TimeLogs = append(resp.TimeLogs, toTimeLog(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) Leaderboard(ctx context.Context, req *rpc.LeaderboardRequest) (*rpc.LeaderboardResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	board, err := s.leaderboard.Get(ctx, userID, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &rpc.LeaderboardResponse{
		Entries:      make([]rpc.LeaderboardEntry, 0, len(board.Entries)),
		UserPosition: board.UserPosition,
		TotalPlayers: board.TotalPlayers,
	}
	for _, e := range board.Entries {
		r, ok := ranks.ByOrdinal(e.CurrentRank)
		if !ok {
			r = ranks.RankFor(e.TotalXP)
		}
		resp.Entries = append(resp.Entries, rpc.LeaderboardEntry{
			Position: e.Position, UserID: e.UserID, Username: e.Username, Avatar: e.Avatar,
			TotalXP: e.TotalXP, Rank: r.Name(),
		})
	}
	return resp, nil
}

func (s *GRPCServer) ExportTimeLogs(ctx context.Context, req *rpc.ExportRequest) (*rpc.ExportResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.export.ExportTimeLogs(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "export failed", "user_id", userID, "error", err)
		return nil, toStatus(err)
	}

	return &rpc.ExportResponse{Key: res.Key, URL: res.URL, Count: res.Count, ExpiresAt: res.ExpiresAt}, nil
}
