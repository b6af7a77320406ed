package memory

import (
	"cmp"
	"context"
	"slices"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type timeLogRepo struct {
	base
}

func (r *timeLogRepo) Insert(_ context.Context, l *models.TimeLog) (bool, error) {
	inserted := false
	err := r.read(func(st *state) error {
		if _, ok := st.logs[l.ID]; ok {
			return nil
		}
		st.logs[l.ID] = *l
		inserted = true
		return nil
	})
	return inserted, err
}

func (r *timeLogRepo) FindByID(_ context.Context, id string) (*models.TimeLog, error) {
	var found *models.TimeLog
	err := r.read(func(st *state) error {
		l, ok := st.logs[id]
		if !ok {
			return common.ErrorNotFound
		}
		found = &l
		return nil
	})
	return found, err
}

func (r *timeLogRepo) List(_ context.Context, userID, skillID string, limit int) ([]models.TimeLog, error) {
	result := make([]models.TimeLog, 0)
	_ = r.read(func(st *state) error {
		for _, l := range st.logs {
			if l.UserID == userID && (skillID == "" || l.SkillID == skillID) {
				result = append(result, l)
			}
		}
		return nil
	})
	slices.SortFunc(result, func(a, b models.TimeLog) int {
		if c := b.LoggedAt.Compare(a.LoggedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *timeLogRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	err := r.read(func(st *state) error {
		for _, l := range st.logs {
			if l.UserID == userID {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *timeLogRepo) DeleteBySkill(_ context.Context, skillID, userID string) error {
	return r.read(func(st *state) error {
		for id, l := range st.logs {
			if l.SkillID == skillID && l.UserID == userID {
				delete(st.logs, id)
			}
		}
		return nil
	})
}

func (r *timeLogRepo) DeleteByCategory(_ context.Context, categoryID, userID string) error {
	return r.read(func(st *state) error {
		for id, l := range st.logs {
			if l.UserID != userID {
				continue
			}
			if s, ok := st.skills[l.SkillID]; ok && s.CategoryID == categoryID && s.UserID == userID {
				delete(st.logs, id)
			}
		}
		return nil
	})
}
