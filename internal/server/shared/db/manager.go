// Package db wires repositories to their storage backend and runs schema
// migrations for the SQL-backed variant.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/linkhub/internal/server/links"
	"github.com/dmitrijs2005/linkhub/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Links() links.Repository
	Close() error
}
