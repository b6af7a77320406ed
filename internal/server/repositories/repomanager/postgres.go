package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/server/migrations"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/achievements"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/categories"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/skills"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/timelogs"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories over one
// connection pool.
type PostgresRepositoryManager struct {
	*dbx.SQLRunner
	db *sql.DB
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Skills(db dbx.DBTX) skills.Repository {
	return skills.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Categories(db dbx.DBTX) categories.Repository {
	return categories.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) TimeLogs(db dbx.DBTX) timelogs.Repository {
	return timelogs.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Achievements(db dbx.DBTX) achievements.Repository {
	return achievements.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded goose migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func NewPostgresRepositoryManager(db *sql.DB) (RepositoryManager, error) {
	return &PostgresRepositoryManager{SQLRunner: dbx.NewSQLRunner(db), db: db}, nil
}
