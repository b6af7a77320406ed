package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type skillRepo struct {
	base
}

func byCreated[T any](created func(T) time.Time, id func(T) string) func(a, b T) int {
	return func(a, b T) int {
		if c := created(a).Compare(created(b)); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	}
}

func (r *skillRepo) Create(_ context.Context, s *models.Skill) (*models.Skill, error) {
	err := r.read(func(st *state) error {
		if _, ok := st.skills[s.ID]; ok {
			return common.ErrAlreadyExists
		}
		st.skills[s.ID] = *s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *skillRepo) FindOwned(_ context.Context, id, userID string) (*models.Skill, error) {
	var found *models.Skill
	err := r.read(func(st *state) error {
		s, ok := st.skills[id]
		if !ok || s.UserID != userID {
			return common.ErrorNotFound
		}
		found = &s
		return nil
	})
	return found, err
}

func (r *skillRepo) ListByUser(_ context.Context, userID string) ([]models.Skill, error) {
	result := make([]models.Skill, 0)
	_ = r.read(func(st *state) error {
		for _, s := range st.skills {
			if s.UserID == userID {
				result = append(result, s)
			}
		}
		return nil
	})
	slices.SortFunc(result, byCreated(
		func(s models.Skill) time.Time { return s.CreatedAt },
		func(s models.Skill) string { return s.ID }))
	return result, nil
}

func (r *skillRepo) Update(_ context.Context, id, userID string, p models.SkillPatch, at time.Time) (*models.Skill, error) {
	var updated *models.Skill
	err := r.read(func(st *state) error {
		s, ok := st.skills[id]
		if !ok || s.UserID != userID {
			return common.ErrorNotFound
		}
		if p.Name != nil {
			s.Name = *p.Name
		}
		if p.Difficulty != nil {
			s.Difficulty = *p.Difficulty
		}
		if p.Icon != nil {
			s.Icon = *p.Icon
		}
		if p.Description != nil {
			s.Description = *p.Description
		}
		s.UpdatedAt = at
		st.skills[id] = s
		updated = &s
		return nil
	})
	return updated, err
}

func (r *skillRepo) ApplyProgress(_ context.Context, p models.SkillProgress) error {
	return r.read(func(st *state) error {
		s, ok := st.skills[p.SkillID]
		if !ok || s.UserID != p.UserID {
			return common.ErrorNotFound
		}
		at := p.LastLoggedAt
		s.TotalTimeMinutes += p.AddMinutes
		s.TotalXP += p.AddXP
		s.Streak++
		s.LastLoggedAt = &at
		s.UpdatedAt = at
		st.skills[p.SkillID] = s
		return nil
	})
}

func (r *skillRepo) Delete(_ context.Context, id, userID string) error {
	return r.read(func(st *state) error {
		s, ok := st.skills[id]
		if !ok || s.UserID != userID {
			return common.ErrorNotFound
		}
		delete(st.skills, id)
		return nil
	})
}

func (r *skillRepo) DeleteByCategory(_ context.Context, categoryID, userID string) error {
	return r.read(func(st *state) error {
		for id, s := range st.skills {
			if s.CategoryID == categoryID && s.UserID == userID {
				delete(st.skills, id)
			}
		}
		return nil
	})
}
