package repomanager

import (
	"context"
	"database/sql"

	"github.com/minjongk/teamauth/internal/dbx"
	"github.com/minjongk/teamauth/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
