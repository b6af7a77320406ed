// Package refreshtokens stores the server-side half of the token pair.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

// Repository issues, looks up and revokes refresh tokens.
type Repository interface {
	// Create stores token for userID, expiring at now+validity.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound when the token is unknown.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete revokes a token. Unknown tokens are not an error.
	Delete(ctx context.Context, token string) error
}
