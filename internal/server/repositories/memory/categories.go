package memory

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type categoryRepo struct {
	base
}

func (r *categoryRepo) Create(_ context.Context, c *models.Category) (*models.Category, error) {
	err := r.read(func(st *state) error {
		if _, ok := st.categories[c.ID]; ok {
			return common.ErrAlreadyExists
		}
		st.categories[c.ID] = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryRepo) FindOwned(_ context.Context, id, userID string) (*models.Category, error) {
	var found *models.Category
	err := r.read(func(st *state) error {
		c, ok := st.categories[id]
		if !ok || c.UserID != userID {
			return common.ErrorNotFound
		}
		found = &c
		return nil
	})
	return found, err
}

func (r *categoryRepo) ListByUser(_ context.Context, userID string) ([]models.Category, error) {
	result := make([]models.Category, 0)
	_ = r.read(func(st *state) error {
		for _, c := range st.categories {
			if c.UserID == userID {
				result = append(result, c)
			}
		}
		return nil
	})
	slices.SortFunc(result, byCreated(
		func(c models.Category) time.Time { return c.CreatedAt },
		func(c models.Category) string { return c.ID }))
	return result, nil
}

func (r *categoryRepo) Delete(_ context.Context, id, userID string) error {
	return r.read(func(st *state) error {
		c, ok := st.categories[id]
		if !ok || c.UserID != userID {
			return common.ErrorNotFound
		}
		delete(st.categories, id)
		return nil
	})
}
