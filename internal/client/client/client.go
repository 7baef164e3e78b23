package client

import (
	"context"

	"github.com/domunity/backend/internal/client/models"
)

type Client interface {
	Close() error
	Signup(ctx context.Context, p models.SignupParams) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Refresh(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	Ping(ctx context.Context) error

	// Tokens returns the credentials currently held in memory.
	Tokens() (accessToken, refreshToken string)
	SetTokens(accessToken, refreshToken string)
	// OnRefresh registers fn to be called with every access token obtained
	// by a transparent refresh.
	OnRefresh(fn func(accessToken string))
}
