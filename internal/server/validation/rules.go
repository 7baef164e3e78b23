// Package validation holds the field rules shared by every inbound request
// and a struct validator that applies them through `validate` tags.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/domunity/backend/internal/common"
	"github.com/domunity/backend/internal/server/password"
)

const (
	MsgInvalidEmail      = "Invalid email format"
	MsgWeakPassword      = "Password must contain uppercase, lowercase, number, and be at least 8 characters"
	MsgPasswordTooLong   = "Password must be at most 72 bytes"
	MsgNameTooShort      = "Name must be at least 5 characters"
	MsgNameTooLong       = "Name must be less than 255 characters"
	MsgPhoneEmpty        = "Phone number cannot be empty"
	MsgPhoneLength       = "Phone number must be between 9 and 15 digits"
	MsgPhoneDigits       = "Phone number can only contain digits"
	MsgInvalidDateFormat = "Invalid date format. Use YYYY-MM-DD"
)

// DateLayout is the accepted calendar date format.
const DateLayout = "2006-01-02"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "")

// Email checks the address against a permissive local@domain.tld pattern.
func Email(s string) error {
	if !emailPattern.MatchString(s) {
		return common.InvalidArgument(MsgInvalidEmail)
	}
	return nil
}

// Phone accepts 9 to 15 digits once spaces, dashes, parentheses and plus
// signs are removed.
func Phone(s string) error {
	if strings.TrimSpace(s) == "" {
		return common.InvalidArgument(MsgPhoneEmpty)
	}

	cleaned := phoneSeparators.Replace(s)
	if len(cleaned) < 9 || len(cleaned) > 15 {
		return common.InvalidArgument(MsgPhoneLength)
	}
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return common.InvalidArgument(MsgPhoneDigits)
		}
	}
	return nil
}

// Name requires 5 to 255 characters after trimming surrounding whitespace.
func Name(s string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	switch {
	case n < 5:
		return common.InvalidArgument(MsgNameTooShort)
	case n > 255:
		return common.InvalidArgument(MsgNameTooLong)
	}
	return nil
}

// Password enforces the strength policy and the bcrypt input limit.
func Password(s string) error {
	if !password.IsStrong(s) {
		return common.InvalidArgument(MsgWeakPassword)
	}
	if len(s) > password.MaxBytes {
		return common.InvalidArgument(MsgPasswordTooLong)
	}
	return nil
}

// Date parses a YYYY-MM-DD calendar date in UTC.
func Date(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, common.InvalidArgument(MsgInvalidDateFormat)
	}
	return d, nil
}

func isoDate(s string) error {
	_, err := Date(s)
	return err
}
