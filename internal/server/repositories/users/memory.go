package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/domunity/backend/internal/common"
	"github.com/domunity/backend/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. It backs tests and local
// runs without a database; it enforces the same uniqueness rules as the
// Postgres schema.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]models.User
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[uuid.UUID]models.User),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) Insert(_ context.Context, user *models.User) (*models.User, error) {
	if strings.TrimSpace(user.Email) == "" {
		return nil, common.ErrorInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return nil, common.ErrorAlreadyExists
	}

	now := r.now().UTC()
	stored := models.User{
		ID:           uuid.New(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FullName:     models.OptionalString(deref(user.FullName)),
		Phone:        models.OptionalString(deref(user.Phone)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.byID[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *MemoryRepository) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byID[id]
	return ok, nil
}
