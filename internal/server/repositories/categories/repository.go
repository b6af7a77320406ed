// Package categories persists user-owned skill categories.
package categories

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	FindOwned(ctx context.Context, id, userID string) (*models.Category, error)
	ListByUser(ctx context.Context, userID string) ([]models.Category, error)
	Delete(ctx context.Context, id, userID string) error
}
