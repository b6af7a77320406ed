// Package timelogs persists the append-only time ledger.
package timelogs

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type Repository interface {
	// Insert stores the record unless its ID is already present. The bool
	// reports whether a row was written.
	Insert(ctx context.Context, log *models.TimeLog) (bool, error)

	FindByID(ctx context.Context, id string) (*models.TimeLog, error)

	// List returns the user's records, newest first. An empty skillID means
	// every skill and a non-positive limit means no limit.
	List(ctx context.Context, userID, skillID string, limit int) ([]models.TimeLog, error)

	CountByUser(ctx context.Context, userID string) (int64, error)
	DeleteBySkill(ctx context.Context, skillID, userID string) error
	DeleteByCategory(ctx context.Context, categoryID, userID string) error
}
