package auth

import (
	"io"
	"log/slog"
	"testing"

	"menumaster/config"
	"menumaster/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	password := "0000"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	password := "segredo"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("outro", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptHasher(99).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestPlainHasher(t *testing.T) {
	hasher := NewPlainHasher()

	stored, err := hasher.Hash("0000")
	require.NoError(t, err)
	assert.Equal(t, "0000", stored)
	assert.True(t, hasher.Check("0000", stored))
	assert.False(t, hasher.Check("000", stored))
}

func TestNewPasswordHasher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		auth    *config.AuthConfig
		want    any
		wantErr bool
	}{
		{name: "defaults to plain", auth: nil, want: plainHasher{}},
		{name: "plain", auth: &config.AuthConfig{PasswordHashing: constants.PasswordHashingPlain}, want: plainHasher{}},
		{name: "bcrypt", auth: &config.AuthConfig{PasswordHashing: constants.PasswordHashingBcrypt, BcryptCost: bcrypt.MinCost}, want: &bcryptHasher{cost: bcrypt.MinCost}},
		{name: "unknown", auth: &config.AuthConfig{PasswordHashing: "md5"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, err := NewPasswordHasher(&config.Config{Auth: tt.auth}, logger)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, hasher)
		})
	}
}
