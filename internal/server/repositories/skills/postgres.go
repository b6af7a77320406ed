package skills

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

const skillColumns = `id, user_id, category_id, name, icon, description, difficulty,
		 total_time_minutes, total_xp, streak, last_logged_at, created_at, updated_at`

type scanner interface{ Scan(...any) error }

func scanSkill(row scanner) (*models.Skill, error) {
	s := &models.Skill{}
	err := row.Scan(&s.ID, &s.UserID, &s.CategoryID, &s.Name, &s.Icon, &s.Description, &s.Difficulty,
		&s.TotalTimeMinutes, &s.TotalXP, &s.Streak, &s.LastLoggedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.Skill) (*models.Skill, error) {
	query :=
		`INSERT INTO skills (` + skillColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 `

	_, err := r.db.ExecContext(ctx, query, s.ID, s.UserID, s.CategoryID, s.Name, s.Icon, s.Description, s.Difficulty,
		s.TotalTimeMinutes, s.TotalXP, s.Streak, s.LastLoggedAt, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) FindOwned(ctx context.Context, id, userID string) (*models.Skill, error) {
	query :=
		`SELECT ` + skillColumns + `
		 FROM skills
		 WHERE id = $1 AND user_id = $2
		 `

	s, err := scanSkill(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	query :=
		`SELECT ` + skillColumns + `
		 FROM skills
		 WHERE user_id = $1
		 ORDER BY created_at ASC, id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id, userID string, p models.SkillPatch, at time.Time) (*models.Skill, error) {
	query :=
		`UPDATE skills SET name = COALESCE($3, name), difficulty = COALESCE($4, difficulty),
		 icon = COALESCE($5, icon), description = COALESCE($6, description), updated_at = $7
		 WHERE id = $1 AND user_id = $2
		 RETURNING ` + skillColumns

	var difficulty any
	if p.Difficulty != nil {
		difficulty = p.Difficulty.String()
	}

	s, err := scanSkill(r.db.QueryRowContext(ctx, query, id, userID, p.Name, difficulty, p.Icon, p.Description, at))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) ApplyProgress(ctx context.Context, p models.SkillProgress) error {
	query :=
		`UPDATE skills SET total_time_minutes = total_time_minutes + $3, total_xp = total_xp + $4,
		 streak = streak + 1, last_logged_at = $5, updated_at = $5
		 WHERE id = $1 AND user_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, p.SkillID, p.UserID, p.AddMinutes, p.AddXP, p.LastLoggedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func (r *PostgresRepository) DeleteByCategory(ctx context.Context, categoryID, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE category_id = $1 AND user_id = $2`, categoryID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
