// Package services contains server-side business logic. This file implements
// AuthService: signup, login, token refresh and current-user lookup on top of
// the credential store, the password hasher and the token service.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/domunity/backend/internal/common"
	"github.com/domunity/backend/internal/server/auth"
	"github.com/domunity/backend/internal/server/models"
	"github.com/domunity/backend/internal/server/password"
	"github.com/domunity/backend/internal/server/repositories/users"
	"github.com/domunity/backend/internal/server/validation"
	"github.com/google/uuid"
)

const (
	MsgInvalidCredentials = "Invalid email or password"
	MsgInvalidToken       = "Invalid token"
	MsgUserNotFound       = "User not found"
	MsgMissingAuthHeader  = "Missing authorization header"
	MsgEmailRegistered    = "Email already registered"
)

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         models.PublicUser
}

// SignupInput carries the fields of a registration request. Optional fields
// are skipped when empty.
type SignupInput struct {
	Email    string `validate:"email_address"`
	Password string `validate:"strong_password"`
	FullName string `validate:"omitempty,person_name"`
	Phone    string `validate:"omitempty,phone_number"`
}

type loginInput struct {
	Email string `validate:"email_address"`
}

// AuthService orchestrates the authentication flows.
type AuthService struct {
	users      users.Repository
	tokens     *auth.TokenService
	hasher     *password.Hasher
	validator  *validation.Validator
	accessTTL  time.Duration
	refreshTTL time.Duration
	dummyHash  string
}

// TokenTTLs configures the lifetimes of issued tokens. Zero values fall back
// to the auth package defaults.
type TokenTTLs struct {
	Access  time.Duration
	Refresh time.Duration
}

func NewAuthService(repo users.Repository, tokens *auth.TokenService, hasher *password.Hasher, v *validation.Validator, ttls TokenTTLs) *AuthService {
	if ttls.Access <= 0 {
		ttls.Access = auth.DefaultAccessTokenTTL
	}
	if ttls.Refresh <= 0 {
		ttls.Refresh = auth.DefaultRefreshTokenTTL
	}

	s := &AuthService{
		users:      repo,
		tokens:     tokens,
		hasher:     hasher,
		validator:  v,
		accessTTL:  ttls.Access,
		refreshTTL: ttls.Refresh,
	}
	// Compared against on unknown emails so both login failures cost one bcrypt run.
	if h, err := hasher.Hash("unknown-user-placeholder"); err == nil {
		s.dummyHash = h
	}
	return s
}

// Signup validates the input, stores a new user and issues a token pair.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}
	if err := s.tokens.Ready(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Insert(ctx, &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     models.OptionalString(in.FullName),
		Phone:        models.OptionalString(in.Phone),
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, &common.PublicError{Kind: common.ErrorAlreadyExists, Message: MsgEmailRegistered, Cause: err}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return s.issuePair(user)
}

// Login checks credentials. Unknown email and wrong password fail with the
// same message.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*AuthResult, error) {
	if err := s.validator.Struct(loginInput{Email: email}); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			if s.dummyHash != "" {
				_, _ = s.hasher.Verify(pass, s.dummyHash)
			}
			return nil, common.Unauthorized(MsgInvalidCredentials)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Verify(pass, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, common.Unauthorized(MsgInvalidCredentials)
	}

	return s.issuePair(user)
}

// RefreshToken exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Validate(refreshToken)
	if err != nil {
		if auth.IsConfigError(err) {
			return "", err
		}
		return "", &common.PublicError{Kind: common.ErrorUnauthorized, Message: MsgInvalidToken, Cause: err}
	}

	id, err := uuid.Parse(claims.SubjectID)
	if err != nil {
		return "", &common.PublicError{Kind: common.ErrorUnauthorized, Message: MsgInvalidToken, Cause: common.ErrMalformedSubject}
	}

	exists, err := s.users.ExistsByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return "", common.Unauthorized(MsgUserNotFound)
	}

	access, err := s.tokens.Issue(id.String(), s.accessTTL)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return access, nil
}

// Logout always succeeds. Tokens are stateless, so it has nothing to revoke.
func (s *AuthService) Logout(context.Context) bool {
	return true
}

// GetCurrentUser resolves the user named by a "Bearer <token>" header value.
func (s *AuthService) GetCurrentUser(ctx context.Context, authorization string) (*models.PublicUser, error) {
	if authorization == "" {
		return nil, common.Unauthorized(MsgMissingAuthHeader)
	}

	id, err := s.tokens.ExtractSubject(authorization)
	if err != nil {
		if auth.IsConfigError(err) {
			return nil, err
		}
		return nil, &common.PublicError{Kind: common.ErrorUnauthorized, Message: MsgInvalidToken, Cause: err}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, &common.PublicError{Kind: common.ErrorNotFound, Message: MsgUserNotFound, Cause: err}
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	pub := user.Public()
	return &pub, nil
}

func (s *AuthService) issuePair(user *models.User) (*AuthResult, error) {
	access, err := s.tokens.Issue(user.ID.String(), s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.Issue(user.ID.String(), s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &AuthResult{AccessToken: access, RefreshToken: refresh, User: user.Public()}, nil
}
