package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utn-integrador-III/security-service/pkg/validator"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"ada@x.com",
		"first.last@example.co.uk",
		"user+tag@domain.io",
	}
	for _, email := range valid {
		assert.True(t, validator.IsEmailValid(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@tld",
		"@nouser.com",
		"spaces in@x.com",
		"Ada Lovelace <ada@x.com>",
	}
	for _, email := range invalid {
		assert.False(t, validator.IsEmailValid(email), email)
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"acceptable", "Str0ng!Pass", true},
		{"too short", "Ab1!", false},
		{"no uppercase", "weakpass1!", false},
		{"no lowercase", "WEAKPASS1!", false},
		{"no digit", "Weakpass!!", false},
		{"no special character", "Weakpass11", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := validator.ValidatePassword(tc.password)
			if tc.wantOK {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}
