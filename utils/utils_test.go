package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		username string
		want     bool
	}{
		{"ada", true},
		{"ada-lovelace", true},
		{"user_42", true},
		{"0day", true},
		{"", false},
		{"Ada", false},
		{"ada lovelace", false},
		{"ada!", false},
		{"ada@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidUsername(tt.username))
		})
	}
}
