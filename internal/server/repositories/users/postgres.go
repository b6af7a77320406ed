package users

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

const selectUser = `SELECT id, username, email, password_hash, avatar, total_xp, total_time_minutes, current_rank, version,
		 use_predefined_categories, notifications, auto_save, theme, sound_effects, daily_goal, streak_reminders,
		 joined_at, last_active
		 FROM users`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	s := &u.Settings
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Avatar, &u.TotalXP, &u.TotalTimeMinutes, &u.CurrentRank, &u.Version,
		&s.UsePredefinedCategories, &s.Notifications, &s.AutoSave, &s.Theme, &s.SoundEffects, &s.DailyGoal, &s.StreakReminders,
		&u.JoinedAt, &u.LastActive)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id, username, email, password_hash, avatar, total_xp, total_time_minutes, current_rank, version,
		 use_predefined_categories, notifications, auto_save, theme, sound_effects, daily_goal, streak_reminders,
		 joined_at, last_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		 `

	s := user.Settings
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Avatar, user.TotalXP, user.TotalTimeMinutes, user.CurrentRank, user.Version,
		s.UsePredefinedCategories, s.Notifications, s.AutoSave, s.Theme, s.SoundEffects, s.DailyGoal, s.StreakReminders,
		user.JoinedAt, user.LastActive)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, where string, arg any) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUser+"\n\t\t "+where, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, "WHERE id = $1", id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "WHERE email = $1", email)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "WHERE username = $1", username)
}

func (r *PostgresRepository) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	query :=
		`UPDATE users SET last_active = $2
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func (r *PostgresRepository) UpdateSettings(ctx context.Context, id string, s models.Settings) error {
	query :=
		`UPDATE users SET use_predefined_categories = $2, notifications = $3, auto_save = $4, theme = $5,
		 sound_effects = $6, daily_goal = $7, streak_reminders = $8
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id,
		s.UsePredefinedCategories, s.Notifications, s.AutoSave, s.Theme, s.SoundEffects, s.DailyGoal, s.StreakReminders)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func (r *PostgresRepository) ApplyProgress(ctx context.Context, u models.ProgressUpdate) error {
	query :=
		`UPDATE users SET total_xp = $3, total_time_minutes = $4, current_rank = $5, last_active = $6, version = version + 1
		 WHERE id = $1 AND version = $2
		 `

	res, err := r.db.ExecContext(ctx, query, u.UserID, u.ExpectedVersion, u.TotalXP, u.TotalTimeMinutes, u.CurrentRank, u.LastActive)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrVersionConflict
	}
	return nil
}

func (r *PostgresRepository) Top(ctx context.Context, limit int) ([]models.LeaderboardRow, error) {
	query :=
		`SELECT id, username, avatar, total_xp, current_rank FROM users
		 ORDER BY total_xp DESC, joined_at ASC, id ASC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.LeaderboardRow
	for rows.Next() {
		var row models.LeaderboardRow
		if err := rows.Scan(&row.UserID, &row.Username, &row.Avatar, &row.TotalXP, &row.CurrentRank); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) CountWithXPAbove(ctx context.Context, xp int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE total_xp > $1`, xp)
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *PostgresRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
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
