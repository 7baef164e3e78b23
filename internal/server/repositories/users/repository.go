// Package users is the credential store: persisted accounts keyed by id and
// unique email.
package users

import (
	"context"

	"github.com/domunity/backend/internal/server/models"
	"github.com/google/uuid"
)

// Repository looks up and creates users. Lookups that match nothing return
// common.ErrorNotFound; Insert on a taken email returns
// common.ErrorAlreadyExists.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
