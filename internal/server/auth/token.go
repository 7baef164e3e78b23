// Package auth issues and validates the signed, expiring bearer tokens that
// identify users between requests. Tokens are self-contained: nothing is
// stored server-side, so a token stays valid until it expires.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/domunity/backend/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLength is the minimal accepted signing secret size in bytes.
const MinSecretLength = 32

const (
	DefaultAccessTokenTTL  = time.Hour
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Claims is the decoded content of a valid token.
type Claims struct {
	SubjectID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService signs tokens with HMAC-SHA256 under a single process-wide secret.
type TokenService struct {
	secret    []byte
	secretErr error
	now       func() time.Time
}

// Option customises a TokenService.
type Option func(*TokenService)

// WithClock replaces the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService builds a TokenService. A missing or short secret does not
// fail construction; every operation reports common.ErrConfig instead.
func NewTokenService(secret string, opts ...Option) *TokenService {
	s := &TokenService{secret: []byte(secret), now: time.Now}
	if len(secret) < MinSecretLength {
		s.secretErr = fmt.Errorf("%w: token signing secret must be at least %d bytes", common.ErrConfig, MinSecretLength)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ready reports the configuration error, if any.
func (s *TokenService) Ready() error {
	return s.secretErr
}

// Issue signs a token for subjectID that expires ttl from now.
// A non-positive ttl yields an already expired token.
func (s *TokenService) Issue(subjectID string, ttl time.Duration) (string, error) {
	if s.secretErr != nil {
		return "", s.secretErr
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks signature, algorithm, structure and expiry. A token is
// valid strictly before its expiry instant; no leeway is applied.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	if s.secretErr != nil {
		return nil, s.secretErr
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	out := &Claims{SubjectID: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}

// ExtractSubject validates a "Bearer <token>" authorization value and returns
// the user id it names.
func (s *TokenService) ExtractSubject(authorization string) (uuid.UUID, error) {
	if s.secretErr != nil {
		return uuid.Nil, s.secretErr
	}

	raw, ok := strings.CutPrefix(authorization, common.BearerPrefix)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: missing bearer prefix", common.ErrInvalidToken)
	}

	claims, err := s.Validate(raw)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(claims.SubjectID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", common.ErrMalformedSubject, err)
	}
	return id, nil
}

// IsConfigError reports whether err comes from a misconfigured service
// rather than from the presented token.
func IsConfigError(err error) bool {
	return errors.Is(err, common.ErrConfig)
}
