package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hash, "cleartext must never be stored")

	assert.True(t, CheckPassword(hash, "Sup3rSecret"))
	assert.False(t, CheckPassword(hash, "sup3rsecret"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		weak     bool
	}{
		{"valid", "Passw0rd", false},
		{"too short", "Pw1", true},
		{"no upper", "passw0rd", true},
		{"no lower", "PASSW0RD", true},
		{"no digit", "Password", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.weak {
				assert.ErrorIs(t, err, ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(7, "bob", "Manager")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, "Manager", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
