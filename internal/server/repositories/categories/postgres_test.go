package categories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var categoryCols = []string{"id", "user_id", "name", "icon", "color", "description", "is_predefined", "created_at"}

func TestCreate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	c := &models.Category{ID: "c1", UserID: "u1", Name: "Mind", Icon: "🧠", Color: "#00BFA6", IsPredefined: true, CreatedAt: now}

	q := `(?s)^INSERT\s+INTO\s+categories\s*\(id,.*VALUES\s*\(\$1,.*\$8\)\s*$`
	mock.ExpectExec(q).WithArgs("c1", "u1", "Mind", "🧠", "#00BFA6", "", true, now).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectExec(q).WillReturnError(errors.New("db down"))

	if got, err := repo.Create(context.Background(), c); err != nil || got.ID != "c1" {
		t.Fatalf("Create: %+v, %v", got, err)
	}
	if _, err := repo.Create(context.Background(), c); !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists, got %v", err)
	}
	_, err := repo.Create(context.Background(), c)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindOwned(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	q := `(?s)^SELECT\s+id,.*FROM\s+categories\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2\s*$`
	mock.ExpectQuery(q).WithArgs("c1", "u1").
		WillReturnRows(sqlmock.NewRows(categoryCols).AddRow("c1", "u1", "Mind", "🧠", "#00BFA6", "", true, now))
	mock.ExpectQuery(q).WithArgs("c1", "u2").WillReturnError(sql.ErrNoRows)

	got, err := repo.FindOwned(context.Background(), "c1", "u1")
	if err != nil || !got.IsPredefined || got.Name != "Mind" {
		t.Fatalf("FindOwned: %+v, %v", got, err)
	}
	if _, err := repo.FindOwned(context.Background(), "c1", "u2"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	q := `(?s)^SELECT\s+.*FROM\s+categories\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+ASC`
	mock.ExpectQuery(q).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(categoryCols).
			AddRow("c1", "u1", "Mind", "🧠", "#00BFA6", "", true, now).
			AddRow("c2", "u1", "Chess", "📂", "#00BFA6", "board games", false, now.Add(time.Second)))

	got, err := repo.ListByUser(context.Background(), "u1")
	if err != nil || len(got) != 2 || got[1].Description != "board games" {
		t.Fatalf("ListByUser: %+v, %v", got, err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+categories\s+WHERE\s+id\s*=\s*\$1\s+AND\s+user_id\s*=\s*\$2$`
	mock.ExpectExec(q).WithArgs("c1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("c1", "u2").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "c1", "u1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := repo.Delete(context.Background(), "c1", "u2"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
