package service

import (
	"regexp"
	"strings"

	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/dto"
	authconstant "github.com/AnthoniusHendriyanto/auth-gate/pkg/constant"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	msgFirstNameRequired = "First name is required"
	msgLastNameRequired  = "Last name is required"
	msgInvalidEmail      = "Invalid email format"
	msgPasswordTooShort  = "Password must be at least 8 characters"
	msgPasswordTooLong   = "Password must be at most 72 bytes"
)

// IsValidEmail checks the local@domain.tld shape only.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateRegisterInput returns every violation in input, in field order.
func ValidateRegisterInput(input dto.RegisterInput) []string {
	var violations []string

	if strings.TrimSpace(input.FirstName) == "" {
		violations = append(violations, msgFirstNameRequired)
	}
	if strings.TrimSpace(input.LastName) == "" {
		violations = append(violations, msgLastNameRequired)
	}
	if !IsValidEmail(strings.TrimSpace(input.Email)) {
		violations = append(violations, msgInvalidEmail)
	}
	// Length is counted in characters, on the raw value.
	if len([]rune(input.Password)) < authconstant.MinPasswordLength {
		violations = append(violations, msgPasswordTooShort)
	} else if len(input.Password) > authconstant.MaxPasswordBytes {
		violations = append(violations, msgPasswordTooLong)
	}

	return violations
}

// NormalizeEmail is applied on both signup and login.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
