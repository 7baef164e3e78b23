package repomanager

import (
	"context"
	"database/sql"

	"github.com/domunity/backend/internal/dbx"
	"github.com/domunity/backend/internal/server/repositories/contacts"
	"github.com/domunity/backend/internal/server/repositories/offers"
	"github.com/domunity/backend/internal/server/repositories/users"
)

// InMemoryRepositoryManager hands out one shared set of in-memory
// repositories regardless of the DBTX passed in. Migrations are a no-op.
type InMemoryRepositoryManager struct {
	users    *users.MemoryRepository
	contacts *contacts.MemoryRepository
	offers   *offers.MemoryRepository
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Contacts(dbx.DBTX) contacts.Repository {
	return m.contacts
}

func (m *InMemoryRepositoryManager) Offers(dbx.DBTX) offers.Repository {
	return m.offers
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		contacts: contacts.NewMemoryRepository(),
		offers:   offers.NewMemoryRepository(),
	}
}
