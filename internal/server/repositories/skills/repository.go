// Package skills persists skills and their progression aggregates.
package skills

import (
	"context"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

// Repository is scoped by owner: every lookup and write takes the user ID and
// treats a foreign skill as absent.
type Repository interface {
	Create(ctx context.Context, skill *models.Skill) (*models.Skill, error)
	FindOwned(ctx context.Context, id, userID string) (*models.Skill, error)
	ListByUser(ctx context.Context, userID string) ([]models.Skill, error)

	// Update applies the non-nil patch fields and returns the stored skill.
	Update(ctx context.Context, id, userID string, patch models.SkillPatch, at time.Time) (*models.Skill, error)

	// ApplyProgress adds minutes and XP and bumps the streak in a single
	// statement. It returns common.ErrorNotFound when no owned row matched.
	ApplyProgress(ctx context.Context, p models.SkillProgress) error

	Delete(ctx context.Context, id, userID string) error
	DeleteByCategory(ctx context.Context, categoryID, userID string) error
}
