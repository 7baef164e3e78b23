package users

import (
	"context"
	"testing"

	"github.com/domunity/backend/internal/common"
	"github.com/domunity/backend/internal/server/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Insert(ctx, &models.User{Email: "ana@example.com", PasswordHash: "h", FullName: models.OptionalString("Ana Ivanova")})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Nil(t, created.Phone)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.Insert(ctx, &models.User{Email: "ana@example.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "h", byID.PasswordHash)

	// returned values are copies
	byID.PasswordHash = "mutated"
	again, _ := repo.FindByID(ctx, created.ID)
	assert.Equal(t, "h", again.PasswordHash)

	ok, err := repo.ExistsByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	repo.remove(created.ID)
	_, err = repo.FindByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	ok, _ = repo.ExistsByID(ctx, created.ID)
	assert.False(t, ok)
}

func TestMemoryRepository_EmptyEmail(t *testing.T) {
	_, err := NewMemoryRepository().Insert(context.Background(), &models.User{Email: "  "})
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)
}
