package repomanager

import (
	"context"
	"database/sql"

	"github.com/domunity/backend/internal/dbx"
	"github.com/domunity/backend/internal/server/repositories/contacts"
	"github.com/domunity/backend/internal/server/repositories/offers"
	"github.com/domunity/backend/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Offers(db dbx.DBTX) offers.Repository
}
