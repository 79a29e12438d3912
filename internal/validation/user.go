// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"

	"recipehub/internal/models"
)

const (
	usernameMaxLength = 150
	emailMaxLength    = 254
)

// usernameRegex allows Unicode letters and digits plus . @ + - _
var usernameRegex = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return models.NewValidationError("username must be at least 3 characters long")
	}

	if len(username) > usernameMaxLength {
		return models.NewValidationError(fmt.Sprintf("username must not exceed %d characters", usernameMaxLength))
	}

	if !usernameRegex.MatchString(username) {
		return models.NewValidationError("username can only contain letters, digits and . @ + - _")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return models.NewValidationError("invalid email format")
	}

	if len(email) > emailMaxLength {
		return models.NewValidationError(fmt.Sprintf("email must not exceed %d characters", emailMaxLength))
	}

	return nil
}

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 12 {
		return models.NewValidationError("password must be at least 12 characters long")
	}

	if len(password) > 128 {
		return models.NewValidationError("password must not exceed 128 characters")
	}

	hasUpper := false
	hasLower := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return models.NewValidationError("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return models.NewValidationError("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return models.NewValidationError("password must contain at least one digit")
	}

	return nil
}
