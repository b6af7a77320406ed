package services

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/logging"
	"github.com/dmitrijs2005/galacticquest/internal/server/catalog"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
)

type AchievementService struct {
	repos  repomanager.RepositoryManager
	logger logging.Logger
}

func NewAchievementService(m repomanager.RepositoryManager, logger logging.Logger) *AchievementService {
	return &AchievementService{repos: m, logger: logger.With("module", "achievements")}
}

// Seed inserts the default catalog. Existing entries are left untouched, so
// it is safe to call on every start.
func (s *AchievementService) Seed(ctx context.Context) error {
	defaults := catalog.Achievements()
	err := s.repos.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Achievements(tx)
		for _, a := range defaults {
			if err := repo.Seed(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "achievements seeded", "count", len(defaults))
	return nil
}

// List returns every achievement marked with whether userID has earned it.
func (s *AchievementService) List(ctx context.Context, userID string) ([]models.AchievementStatus, error) {
	repo := s.repos.Achievements(s.repos.Conn())

	all, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	earned, err := repo.EarnedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.UserAchievement, len(earned))
	for _, ua := range earned {
		byID[ua.AchievementID] = ua
	}

	result := make([]models.AchievementStatus, 0, len(all))
	for _, a := range all {
		st := models.AchievementStatus{Achievement: a}
		if ua, ok := byID[a.ID]; ok {
			at := ua.EarnedAt
			st.Earned = true
			st.EarnedDate = &at
		}
		result = append(result, st)
	}
	return result, nil
}
