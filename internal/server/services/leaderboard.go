package services

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
)

const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 500
)

// LeaderboardCache stores the top-N page. Implementations may be lossy:
// a miss and an error are both answered from the database.
type LeaderboardCache interface {
	Get(ctx context.Context, limit int) ([]models.LeaderboardRow, bool, error)
	Set(ctx context.Context, limit int, rows []models.LeaderboardRow) error
}

type LeaderboardService struct {
	repos  repomanager.RepositoryManager
	cache  LeaderboardCache
	logger logging.Logger
}

// NewLeaderboardService accepts a nil cache.
func NewLeaderboardService(m repomanager.RepositoryManager, cache LeaderboardCache, logger logging.Logger) *LeaderboardService {
	return &LeaderboardService{repos: m, cache: cache, logger: logger.With("module", "leaderboard")}
}

func clampLeaderboardLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		return MaxLeaderboardLimit
	}
	return limit
}

func (s *LeaderboardService) top(ctx context.Context, limit int) ([]models.LeaderboardRow, error) {
	if s.cache != nil {
		rows, ok, err := s.cache.Get(ctx, limit)
		if err != nil {
			s.logger.Warn(ctx, "leaderboard cache read failed", "error", err)
		} else if ok {
			return rows, nil
		}
	}

	rows, err := s.repos.Users(s.repos.Conn()).Top(ctx, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, limit, rows); err != nil {
			s.logger.Warn(ctx, "leaderboard cache write failed", "error", err)
		}
	}
	return rows, nil
}

// Get returns the top page plus the caller's own position. A caller outside
// the page is placed after everyone with strictly more XP.
func (s *LeaderboardService) Get(ctx context.Context, userID string, limit int) (*models.Leaderboard, error) {
	limit = clampLeaderboardLimit(limit)

	rows, err := s.top(ctx, limit)
	if err != nil {
		return nil, err
	}

	board := &models.Leaderboard{Entries: make([]models.LeaderboardEntry, 0, len(rows))}
	for i, row := range rows {
		board.Entries = append(board.Entries, models.LeaderboardEntry{LeaderboardRow: row, Position: i + 1})
		if row.UserID == userID {
			board.UserPosition = int64(i + 1)
		}
	}

	usersRepo := s.repos.Users(s.repos.Conn())
	if board.UserPosition == 0 {
		me, err := usersRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		above, err := usersRepo.CountWithXPAbove(ctx, me.TotalXP)
		if err != nil {
			return nil, err
		}
		board.UserPosition = above + 1
	}

	board.TotalPlayers, err = usersRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	return board, nil
}
