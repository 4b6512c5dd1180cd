package services

import (
	"fmt"
	"strings"
)

// Password requirements
const (
	MinPasswordLength = 8
	// MaxPasswordLength is the bcrypt input limit in bytes
	MaxPasswordLength = 72
)

// ValidatePassword checks a new password for an account with the given email
// - Between 8 and 72 bytes
// - Not the email itself
// - Not a single repeated character
func ValidatePassword(password, email string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must be at most %d bytes long", MaxPasswordLength)
	}
	if email != "" && strings.EqualFold(strings.TrimSpace(password), strings.TrimSpace(email)) {
		return fmt.Errorf("password must not be the email address")
	}
	if strings.Count(password, password[:1]) == len(password) {
		return fmt.Errorf("password must not repeat a single character")
	}
	return nil
}

// IsWeakPassword is a helper to check if a password is weak without returning specific error
func IsWeakPassword(password string) bool {
	return ValidatePassword(password, "") != nil
}
