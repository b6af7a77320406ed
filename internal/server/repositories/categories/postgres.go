package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const categoryColumns = `id, user_id, name, icon, color, description, is_predefined, created_at`

func scanCategory(row interface{ Scan(...any) error }) (*models.Category, error) {
	c := &models.Category{}
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Icon, &c.Color, &c.Description, &c.IsPredefined, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	query :=
		`INSERT INTO categories (` + categoryColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Name, c.Icon, c.Color, c.Description, c.IsPredefined, c.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) FindOwned(ctx context.Context, id, userID string) (*models.Category, error) {
	query :=
		`SELECT ` + categoryColumns + `
		 FROM categories
		 WHERE id = $1 AND user_id = $2
		 `

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Category, error) {
	query :=
		`SELECT ` + categoryColumns + `
		 FROM categories
		 WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
