// Package users declares the account repository and its PostgreSQL
// implementation.
package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type Repository interface {
	// Create inserts a user. A taken username or email yields
	// common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	TouchLastActive(ctx context.Context, id string, at time.Time) error
	UpdateSettings(ctx context.Context, id string, s models.Settings) error

	// ApplyProgress writes new aggregates only if the stored version still
	// equals u.ExpectedVersion, bumping it on success. Otherwise it returns
	// common.ErrVersionConflict and changes nothing.
	ApplyProgress(ctx context.Context, u models.ProgressUpdate) error

	// Top lists users by total XP, highest first, ties by join time.
	Top(ctx context.Context, limit int) ([]models.LeaderboardRow, error)
	CountWithXPAbove(ctx context.Context, xp int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}
