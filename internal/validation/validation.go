// Package validation holds input limits and sanitation rules shared by the services.
package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Maximum lengths for user-supplied text.
const (
	MaxExpenseDescription = 200
	MaxSettlementNote     = 200
	MaxHouseholdName      = 100
	MaxDisplayName        = 100
	MaxEmail              = 254
	MinPassword           = 6
	MaxPassword           = 128
	FlatCodeLength        = 11 // ABC-DEF-GHI
)

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 128 characters")
	ErrInvalidFlatCode  = errors.New("flat code must look like ABC-DEF-GHI")
	ErrEmptyText        = errors.New("text must not be empty")
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	flatCodePattern = regexp.MustCompile(`^[A-Z]{3}-[A-Z]{3}-[A-Z]{3}$`)
)

// SanitizeText trims surrounding whitespace and truncates to maxLength runes.
func SanitizeText(input string, maxLength int) string {
	s := strings.TrimSpace(input)
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	return string([]rune(s)[:maxLength])
}

// RequireText sanitizes input and fails if nothing is left.
func RequireText(input string, maxLength int) (string, error) {
	s := SanitizeText(input, maxLength)
	if s == "" {
		return "", ErrEmptyText
	}
	return s, nil
}

// NormalizeEmail lower-cases and trims an e-mail address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the address shape and length.
func ValidateEmail(email string) error {
	if len(email) > MaxEmail || !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword checks password length bounds.
func ValidatePassword(password string) error {
	switch {
	case len(password) < MinPassword:
		return ErrPasswordTooShort
	case len(password) > MaxPassword:
		return ErrPasswordTooLong
	}
	return nil
}

// NormalizeFlatCode upper-cases and trims a flat code.
func NormalizeFlatCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateFlatCode checks the ABC-DEF-GHI format.
func ValidateFlatCode(code string) error {
	if len(code) != FlatCodeLength || !flatCodePattern.MatchString(code) {
		return ErrInvalidFlatCode
	}
	return nil
}
