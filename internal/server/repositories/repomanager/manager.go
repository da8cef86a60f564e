package repomanager

import (
	"context"
	"database/sql"

	"github.com/andrejsm/taskkeeper/internal/dbx"
	"github.com/andrejsm/taskkeeper/internal/server/repositories/attachments"
	"github.com/andrejsm/taskkeeper/internal/server/repositories/tasks"
	"github.com/andrejsm/taskkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so a
// service can run several repositories against one transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Attachments(db dbx.DBTX) attachments.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
