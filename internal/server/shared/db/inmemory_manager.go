package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/linkhub/internal/server/links"
	"github.com/dmitrijs2005/linkhub/internal/server/users"
)

// InMemoryRepositoryManager backs the repositories with process-local maps.
// Used by tests and development runs without a database DSN.
type InMemoryRepositoryManager struct {
	users users.Repository
	links links.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Links() links.Repository {
	return m.links
}

func (m InMemoryRepositoryManager) Close() error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		users: users.NewInMemoryRepository(),
		links: links.NewInMemoryRepository(),
	}
}
