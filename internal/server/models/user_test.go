package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_Public(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	u := &User{
		ID:           uuid.New(),
		Email:        "ivan@example.com",
		PasswordHash: "$2a$10$secret",
		FullName:     OptionalString("Ivan Petrov"),
		CreatedAt:    created,
	}

	p := u.Public()
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, "ivan@example.com", p.Email)
	assert.Equal(t, "Ivan Petrov", p.FullName)
	assert.Equal(t, "", p.Phone)
	assert.Equal(t, created, p.CreatedAt)
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(""))
	if s := OptionalString("x"); assert.NotNil(t, s) {
		assert.Equal(t, "x", *s)
	}
}
