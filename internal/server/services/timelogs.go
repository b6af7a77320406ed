package services

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
)

const (
	DefaultTimeLogLimit = 50
	MaxTimeLogLimit     = 1000
)

type TimeLogService struct {
	repos repomanager.RepositoryManager
}

func NewTimeLogService(m repomanager.RepositoryManager) *TimeLogService {
	return &TimeLogService{repos: m}
}

// ClampTimeLogLimit maps 0 to the default and clamps into 1..MaxTimeLogLimit.
func ClampTimeLogLimit(limit int) int {
	switch {
	case limit == 0:
		return DefaultTimeLogLimit
	case limit < 1:
		return 1
	case limit > MaxTimeLogLimit:
		return MaxTimeLogLimit
	}
	return limit
}

// List returns the newest records first, optionally for one skill.
func (s *TimeLogService) List(ctx context.Context, userID, skillID string, limit int) ([]models.TimeLog, error) {
	return s.repos.TimeLogs(s.repos.Conn()).List(ctx, userID, skillID, ClampTimeLogLimit(limit))
}
