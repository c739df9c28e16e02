// Package validation holds input validation rules shared by the HTTP layer
// and the CLI tools.
package validation

import (
	"fmt"
	"regexp"
)

var adminUsernameRegex = regexp.MustCompile(`^[a-z0-9_-]{3,32}$`)

// ValidateAdminUsername validates administrator username format.
func ValidateAdminUsername(username string) error {
	if !adminUsernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 3-32 characters and contain only lowercase letters, numbers, hyphens, and underscores")
	}
	return nil
}

// ValidatePassword validates administrator password length. Composition
// rules are deliberately loose; length is the constraint that matters.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must be at most 128 characters")
	}
	return nil
}
