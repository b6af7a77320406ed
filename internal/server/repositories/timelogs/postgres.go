package timelogs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

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

const logColumns = `id, skill_id, user_id, minutes, xp_earned, note, logged_at`

func scanLog(row interface{ Scan(...any) error }) (*models.TimeLog, error) {
	l := &models.TimeLog{}
	if err := row.Scan(&l.ID, &l.SkillID, &l.UserID, &l.Minutes, &l.XPEarned, &l.Note, &l.LoggedAt); err != nil {
		return nil, err
	}
	return l, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, l *models.TimeLog) (bool, error) {
	query :=
		`INSERT INTO time_logs (` + logColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, l.ID, l.SkillID, l.UserID, l.Minutes, l.XPEarned, l.Note, l.LoggedAt)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.TimeLog, error) {
	query :=
		`SELECT ` + logColumns + `
		 FROM time_logs
		 WHERE id = $1
		 `

	l, err := scanLog(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID, skillID string, limit int) ([]models.TimeLog, error) {
	query := `SELECT ` + logColumns + ` FROM time_logs WHERE user_id = $1`
	args := []any{userID}
	if skillID != "" {
		args = append(args, skillID)
		query += ` AND skill_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY logged_at DESC, id DESC`
	if limit > 0 {
		args = append(args, limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.TimeLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM time_logs WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteBySkill(ctx context.Context, skillID, userID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM time_logs WHERE skill_id = $1 AND user_id = $2`, skillID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteByCategory(ctx context.Context, categoryID, userID string) error {
	query :=
		`DELETE FROM time_logs
		 WHERE user_id = $2 AND skill_id IN (SELECT id FROM skills WHERE category_id = $1 AND user_id = $2)
		 `
	if _, err := r.db.ExecContext(ctx, query, categoryID, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
