package memory

import (
	"context"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/google/uuid"
)

type refreshTokenRepo struct {
	base
}

func (r *refreshTokenRepo) Create(_ context.Context, userID string, token string, validity time.Duration) error {
	now := time.Now().UTC()
	return r.read(func(st *state) error {
		if _, ok := st.tokens[token]; ok {
			return common.ErrAlreadyExists
		}
		st.tokens[token] = models.RefreshToken{
			ID: uuid.NewString(), UserID: userID, Token: token, Expires: now.Add(validity), CreatedAt: now,
		}
		return nil
	})
}

func (r *refreshTokenRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	var found *models.RefreshToken
	err := r.read(func(st *state) error {
		rt, ok := st.tokens[token]
		if !ok {
			return common.ErrorNotFound
		}
		found = &rt
		return nil
	})
	return found, err
}

func (r *refreshTokenRepo) Delete(_ context.Context, token string) error {
	return r.read(func(st *state) error {
		delete(st.tokens, token)
		return nil
	})
}
