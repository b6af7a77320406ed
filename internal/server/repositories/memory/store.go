// Package memory is a process-local storage backend with the same
// repository contracts as the PostgreSQL one. A single mutex serialises
// access and InTx restores a snapshot when the callback fails.
package memory

import (
	"context"
	"database/sql"
	"errors"
	"maps"
	"sync"

	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/achievements"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/categories"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/skills"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/timelogs"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/users"
)

var errNoSQL = errors.New("memory store does not execute SQL")

type state struct {
	users        map[string]models.User
	tokens       map[string]models.RefreshToken
	categories   map[string]models.Category
	skills       map[string]models.Skill
	logs         map[string]models.TimeLog
	achievements map[string]models.Achievement
	earned       map[string]models.UserAchievement
}

func newState() *state {
	return &state{
		users:        map[string]models.User{},
		tokens:       map[string]models.RefreshToken{},
		categories:   map[string]models.Category{},
		skills:       map[string]models.Skill{},
		logs:         map[string]models.TimeLog{},
		achievements: map[string]models.Achievement{},
		earned:       map[string]models.UserAchievement{},
	}
}

// clone copies the maps. Stored values are replaced on update, never mutated
// in place, so a shallow copy is a consistent snapshot.
func (s *state) clone() *state {
	return &state{
		users:        maps.Clone(s.users),
		tokens:       maps.Clone(s.tokens),
		categories:   maps.Clone(s.categories),
		skills:       maps.Clone(s.skills),
		logs:         maps.Clone(s.logs),
		achievements: maps.Clone(s.achievements),
		earned:       maps.Clone(s.earned),
	}
}

type Store struct {
	mu   sync.Mutex
	data *state
	conn *handle
}

func NewStore() *Store {
	s := &Store{data: newState()}
	s.conn = &handle{store: s}
	return s
}

// handle is the DBTX the store hands out. Repositories only use it to find
// their store and to tell whether the lock is already held.
type handle struct {
	store *Store
	inTx  bool
}

func (h *handle) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errNoSQL
}

func (h *handle) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errNoSQL
}

func (h *handle) QueryRowContext(context.Context, string, ...any) *sql.Row {
	panic(errNoSQL)
}

func (s *Store) Conn() dbx.DBTX {
	return s.conn
}

// InTx runs fn holding the store lock. Repositories built from the handle
// passed to fn must not be used after fn returns.
func (s *Store) InTx(ctx context.Context, fn dbx.TxFunc) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	defer func() {
		if p := recover(); p != nil {
			s.data = snapshot
			panic(p)
		}
		if err != nil {
			s.data = snapshot
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &handle{store: s, inTx: true})
}

// RunMigrations has nothing to do for the memory store.
func (s *Store) RunMigrations(context.Context) error {
	return nil
}

// base binds a repository to a store. Outside a transaction every call takes
// the store lock; inside one the lock is already held by InTx.
type base struct {
	s      *Store
	locked bool
}

func (s *Store) bind(db dbx.DBTX) base {
	if h, ok := db.(*handle); ok && h.store != nil {
		return base{s: h.store, locked: h.inTx}
	}
	return base{s: s}
}

func (b base) read(fn func(st *state) error) error {
	if !b.locked {
		b.s.mu.Lock()
		defer b.s.mu.Unlock()
	}
	return fn(b.s.data)
}

func (s *Store) Users(db dbx.DBTX) users.Repository {
	return &userRepo{base: s.bind(db)}
}

func (s *Store) Skills(db dbx.DBTX) skills.Repository {
	return &skillRepo{base: s.bind(db)}
}

func (s *Store) Categories(db dbx.DBTX) categories.Repository {
	return &categoryRepo{base: s.bind(db)}
}

func (s *Store) TimeLogs(db dbx.DBTX) timelogs.Repository {
	return &timeLogRepo{base: s.bind(db)}
}

func (s *Store) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return &refreshTokenRepo{base: s.bind(db)}
}

func (s *Store) Achievements(db dbx.DBTX) achievements.Repository {
	return &achievementRepo{base: s.bind(db)}
}
