package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		expectErr bool
	}{
		{"Valid", "user@example.com", false},
		{"Valid with plus tag", "user+tag@example.org", false},
		{"Missing at sign", "userexample.com", true},
		{"Missing domain", "user@", true},
		{"Missing tld", "user@example", true},
		{"Empty", "", true},
		{"Too long", strings.Repeat("a", 250) + "@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		expectErr bool
	}{
		{"Valid", "password123", false},
		{"Exactly eight", "12345678", false},
		{"Too short", "1234567", true},
		{"Empty", "", true},
		{"Too long", strings.Repeat("a", 129), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("My first post"))
	assert.Error(t, ValidateTitle(""))
	assert.Error(t, ValidateTitle(strings.Repeat("a", 256)))
}
