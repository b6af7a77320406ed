package services

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
)

type StatsService struct {
	repos repomanager.RepositoryManager
}

func NewStatsService(m repomanager.RepositoryManager) *StatsService {
	return &StatsService{repos: m}
}

// UserStats sums the user's skills. The streak is the longest skill streak.
func (s *StatsService) UserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	skills, err := s.repos.Skills(s.repos.Conn()).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	logs, err := s.repos.TimeLogs(s.repos.Conn()).CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	st := &models.UserStats{TotalSkills: len(skills), TotalLogs: logs}
	for _, sk := range skills {
		st.TotalTimeMinutes += sk.TotalTimeMinutes
		st.TotalXP += sk.TotalXP
		st.CurrentStreak = max(st.CurrentStreak, sk.Streak)
	}
	if st.TotalSkills > 0 {
		st.AvgXPPerSkill = float64(st.TotalXP) / float64(st.TotalSkills)
		st.AvgTimePerSkill = float64(st.TotalTimeMinutes) / float64(st.TotalSkills)
	}
	return st, nil
}
