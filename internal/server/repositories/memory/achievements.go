package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type achievementRepo struct {
	base
}

func (r *achievementRepo) Seed(_ context.Context, a models.Achievement) error {
	return r.read(func(st *state) error {
		if _, ok := st.achievements[a.ID]; !ok {
			st.achievements[a.ID] = a
		}
		return nil
	})
}

func (r *achievementRepo) List(_ context.Context) ([]models.Achievement, error) {
	result := make([]models.Achievement, 0)
	_ = r.read(func(st *state) error {
		for _, a := range st.achievements {
			result = append(result, a)
		}
		return nil
	})
	slices.SortFunc(result, func(a, b models.Achievement) int {
		if c := cmp.Compare(a.XPReward, b.XPReward); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *achievementRepo) EarnedByUser(_ context.Context, userID string) ([]models.UserAchievement, error) {
	result := make([]models.UserAchievement, 0)
	_ = r.read(func(st *state) error {
		for _, ua := range st.earned {
			if ua.UserID == userID {
				result = append(result, ua)
			}
		}
		return nil
	})
	return result, nil
}
