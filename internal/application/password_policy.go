package application

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/oksasatya/finance-tracker-api/pkg/validation"
)

const (
	minPasswordLength = 8
	// bcrypt ignores or rejects input past 72 bytes
	maxPasswordBytes = 72
	minNameLength    = 2
)

// CheckPassword applies the password rules in order and returns the first
// violated one. Length is measured in UTF-16 code units and the character
// classes are ASCII only.
func CheckPassword(password string) error {
	if len(utf16.Encode([]rune(password))) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if !validation.HasUpper(password) {
		return ErrPasswordNoUppercase
	}
	if !validation.HasDigit(password) {
		return ErrPasswordNoDigit
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// NormalizeEmail trims and lower-cases an address before lookup or storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkEmail(email string) error {
	if !validation.Email(email) {
		return ErrInvalidEmail
	}
	return nil
}

func checkName(name string) error {
	if utf8.RuneCountInString(name) < minNameLength {
		return ErrNameTooShort
	}
	if !validation.DisplayName(name) {
		return ErrNameTooLong
	}
	return nil
}
