// Package achievements persists the achievement catalog and awards.
package achievements

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type Repository interface {
	// Seed inserts the entry unless an achievement with its ID exists.
	Seed(ctx context.Context, a models.Achievement) error
	List(ctx context.Context) ([]models.Achievement, error)
	EarnedByUser(ctx context.Context, userID string) ([]models.UserAchievement, error)
}
