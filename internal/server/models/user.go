// Package models holds the server-side domain records.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored account. PasswordHash never leaves the server.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     *string
	Phone        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the outward projection of a User.
type PublicUser struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Phone     string
	CreatedAt time.Time
}

// Public drops the credential and flattens optional fields to "".
func (u *User) Public() PublicUser {
	p := PublicUser{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	return p
}

// OptionalString maps "" to nil, mirroring NULLIF(x, '') in SQL.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
