package achievements

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Seed(ctx context.Context, a models.Achievement) error {
	query :=
		`INSERT INTO achievements (id, name, description, icon, xp_reward, type, criteria)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Name, a.Description, a.Icon, a.XPReward, a.Type, string(a.Criteria)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Achievement, error) {
	query :=
		`SELECT id, name, description, icon, xp_reward, type, criteria
		 FROM achievements
		 ORDER BY xp_reward ASC, id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Achievement, 0)
	for rows.Next() {
		var a models.Achievement
		var criteria []byte
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.XPReward, &a.Type, &criteria); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		a.Criteria = json.RawMessage(criteria)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) EarnedByUser(ctx context.Context, userID string) ([]models.UserAchievement, error) {
	query :=
		`SELECT user_id, achievement_id, earned_at, xp_awarded
		 FROM user_achievements
		 WHERE user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.UserAchievement, 0)
	for rows.Next() {
		var ua models.UserAchievement
		if err := rows.Scan(&ua.UserID, &ua.AchievementID, &ua.EarnedAt, &ua.XPAwarded); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, ua)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
