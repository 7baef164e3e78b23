// Package password holds the password strength policy and the bcrypt-based
// one-way hasher used to store credentials.
package password

import (
	"errors"
	"fmt"

	"github.com/domunity/backend/internal/common"
	"golang.org/x/crypto/bcrypt"
)

const (
	// MinLength is the minimal accepted password length in bytes.
	MinLength = 8
	// MaxBytes is the bcrypt input limit. Longer passwords are rejected at
	// signup instead of being silently truncated.
	MaxBytes = 72
)

// IsStrong reports whether p has at least MinLength bytes and contains an
// ASCII uppercase letter, an ASCII lowercase letter and an ASCII digit.
// Non-ASCII characters count toward the length only.
func IsStrong(p string) bool {
	if len(p) < MinLength {
		return false
	}

	var upper, lower, digit bool
	for i := 0; i < len(p); i++ {
		switch c := p[i]; {
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}

	return upper && lower && digit
}

// Hasher produces and verifies salted bcrypt hashes.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Out-of-range values
// fall back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the self-describing bcrypt encoding of p. Two calls with the
// same input yield different strings because of the random salt.
func (h *Hasher) Hash(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrHashing, err)
	}
	return string(b), nil
}

// Verify checks p against a hash produced by Hash. A mismatch is (false, nil);
// only a malformed hash yields an error.
func (h *Hasher) Verify(p, hash string) (bool, error) {
	if len(p) > MaxBytes {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(p))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", common.ErrHashing, err)
	}
}
