// Package services contains application services for the DomUnity CLI.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/domunity/backend/internal/client/client"
	"github.com/domunity/backend/internal/client/models"
	"github.com/domunity/backend/internal/client/repositories/session"
	"github.com/domunity/backend/internal/dbx"
)

// AuthService drives the account commands of the CLI and keeps the session
// in the local database so a restart does not require signing in again.
type AuthService interface {
	Signup(ctx context.Context, p models.SignupParams) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	WhoAmI(ctx context.Context) (*models.User, error)
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
	// Restore loads a saved session into the client. It returns nil, nil
	// when no session is stored.
	Restore(ctx context.Context) (*models.Session, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService binds the service to an API client and the local database.
// Access tokens obtained by transparent refreshes are persisted as well.
func NewAuthService(c client.Client, db *sql.DB) AuthService {
	a := &authService{client: c, db: db}
	c.OnRefresh(func(accessToken string) {
		_ = a.sessionRepo(a.db).Set(context.Background(), session.KeyAccessToken, accessToken)
	})
	return a
}

func (a *authService) sessionRepo(db dbx.DBTX) session.Repository {
	return session.NewSQLiteRepository(db)
}

func (a *authService) Signup(ctx context.Context, p models.SignupParams) (*models.User, error) {
	u, err := a.client.Signup(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := a.saveSession(ctx, u.Email); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return u, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.saveSession(ctx, u.Email); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return u, nil
}

// saveSession stores email and both tokens in one transaction.
func (a *authService) saveSession(ctx context.Context, email string) error {
	accessToken, refreshToken := a.client.Tokens()

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.sessionRepo(tx)
		if err := repo.Set(ctx, session.KeyEmail, email); err != nil {
			return err
		}
		if err := repo.Set(ctx, session.KeyAccessToken, accessToken); err != nil {
			return err
		}
		return repo.Set(ctx, session.KeyRefreshToken, refreshToken)
	})
}

func (a *authService) WhoAmI(ctx context.Context) (*models.User, error) {
	return a.client.CurrentUser(ctx)
}

func (a *authService) Refresh(ctx context.Context) error {
	_, err := a.client.Refresh(ctx)
	return err
}

// Logout tells the server and wipes the local session. The local wipe
// happens even when the server cannot be reached.
func (a *authService) Logout(ctx context.Context) error {
	remoteErr := a.client.Logout(ctx)
	if err := a.sessionRepo(a.db).Clear(ctx); err != nil {
		return err
	}
	if remoteErr != nil && !errors.Is(remoteErr, client.ErrUnavailable) {
		return remoteErr
	}
	return nil
}

func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	values, err := a.sessionRepo(a.db).List(ctx)
	if err != nil {
		return nil, err
	}

	s := &models.Session{
		Email:        values[session.KeyEmail],
		AccessToken:  values[session.KeyAccessToken],
		RefreshToken: values[session.KeyRefreshToken],
	}
	if s.AccessToken == "" && s.RefreshToken == "" {
		return nil, nil
	}

	a.client.SetTokens(s.AccessToken, s.RefreshToken)
	return s, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return errors.Join(a.client.Close(), a.db.Close())
}

// IsSignedOut reports whether err means the user has to sign in again.
func IsSignedOut(err error) bool {
	return errors.Is(err, client.ErrNotSignedIn) || errors.Is(err, client.ErrUnauthorized) || errors.Is(err, client.ErrNotFound)
}
