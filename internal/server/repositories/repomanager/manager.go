// Package repomanager vends repository implementations bound to a database
// handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/cmartinr/reservasalas/internal/dbx"
	"github.com/cmartinr/reservasalas/internal/server/repositories/reservations"
	"github.com/cmartinr/reservasalas/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Reservations(db dbx.DBTX) reservations.Repository
}
