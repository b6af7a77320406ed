// Package repomanager hands out repositories bound to a connection or to a
// transaction handle, together with the Runner that produces those handles.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/galacticquest/internal/dbx"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/achievements"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/categories"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/skills"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/timelogs"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/users"
)

// RepositoryManager is the storage backend seen by services. Repositories
// used inside InTx must be built from the tx handle passed to the callback.
type RepositoryManager interface {
	dbx.Runner
	RunMigrations(ctx context.Context) error
	Users(db dbx.DBTX) users.Repository
	Skills(db dbx.DBTX) skills.Repository
	Categories(db dbx.DBTX) categories.Repository
	TimeLogs(db dbx.DBTX) timelogs.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Achievements(db dbx.DBTX) achievements.Repository
}
