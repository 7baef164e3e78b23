// Package models holds the client-side view of server data.
package models

import "time"

// User is the signed-in account as reported by the server.
type User struct {
	ID        string
	Email     string
	FullName  string
	Phone     string
	CreatedAt time.Time
}

// Session is what the client keeps between runs.
type Session struct {
	Email        string
	AccessToken  string
	RefreshToken string
}

// SignupParams carries the signup form.
type SignupParams struct {
	Email    string
	Password string
	FullName string
	Phone    string
}
