package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"github.com/utn-integrador-III/security-service/pkg/constant"
)

// IsEmailValid reports whether the given string is a plain, syntactically
// valid email address (no display name, domain with at least one dot).
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	_, domain, ok := strings.Cut(addr.Address, "@")
	return ok && strings.Contains(domain, ".")
}

// ValidatePassword applies the password policy and returns a human-readable
// message describing the first violated rule, or "" when the password is
// acceptable.
func ValidatePassword(password string) string {
	if len(password) < constant.MinPasswordLength {
		return fmt.Sprintf("password must be at least %d characters long", constant.MinPasswordLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case !hasUpper:
		return "password must contain at least one uppercase letter"
	case !hasLower:
		return "password must contain at least one lowercase letter"
	case !hasDigit:
		return "password must contain at least one digit"
	case !hasSpecial:
		return "password must contain at least one special character"
	}

	return ""
}
