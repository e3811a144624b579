package services

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const minPasswordLength = 8

// ValidateRegistrationInput rejects malformed credentials before any store
// access. Returns a field-level message, empty when valid.
func ValidateRegistrationInput(email string, password string) string {
	if !isPlausibleEmail(email) {
		return "invalid email address"
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return "password must be at least 8 characters"
	}
	return ""
}

func isPlausibleEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	address, err := mail.ParseAddress(trimmed)
	return err == nil && address.Address == trimmed
}
