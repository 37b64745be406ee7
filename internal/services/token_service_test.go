package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixbank/internal/config"
	"pixbank/internal/models"
)

func testTokenService() *TokenService {
	return NewTokenService(&config.JWTConfig{
		Secret:        "test-secret",
		TokenDuration: time.Hour,
		Issuer:        "pixbank",
	})
}

func testAccount() *models.Account {
	return &models.Account{
		Name:         "Ana Lima",
		Email:        "ana@example.com",
		PasswordHash: "hashed",
	}
}

func TestTokenServiceGenerateAndValidate(t *testing.T) {
	ts := testTokenService()
	account := testAccount()

	token, expiresAt, err := ts.GenerateToken(account)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := ts.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, account.ID.String(), claims.UserID)
	assert.Equal(t, "pixbank", claims.Issuer)
}

func TestTokenServiceGenerateNilAccount(t *testing.T) {
	_, _, err := testTokenService().GenerateToken(nil)
	assert.Error(t, err)
}

func TestTokenServiceValidateRejects(t *testing.T) {
	ts := testTokenService()

	_, err := ts.ValidateToken("")
	assert.ErrorIs(t, err, ErrEmptyToken)

	_, err = ts.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// token signed with a different secret
	other := NewTokenService(&config.JWTConfig{
		Secret: "other-secret", TokenDuration: time.Hour, Issuer: "pixbank",
	})
	token, _, err := other.GenerateToken(testAccount())
	require.NoError(t, err)
	_, err = ts.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenServiceValidateExpired(t *testing.T) {
	expired := NewTokenService(&config.JWTConfig{
		Secret: "test-secret", TokenDuration: -time.Hour, Issuer: "pixbank",
	})
	token, _, err := expired.GenerateToken(testAccount())
	require.NoError(t, err)

	_, err = testTokenService().ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenServiceValidateWrongIssuer(t *testing.T) {
	other := NewTokenService(&config.JWTConfig{
		Secret: "test-secret", TokenDuration: time.Hour, Issuer: "someone-else",
	})
	token, _, err := other.GenerateToken(testAccount())
	require.NoError(t, err)

	_, err = testTokenService().ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidIssuer)
}

func TestTokenServiceExtractTokenFromHeader(t *testing.T) {
	ts := testTokenService()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc123", want: "abc123"},
		{name: "lowercase bearer", header: "bearer abc123", want: "abc123"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing scheme", header: "abc123", wantErr: true},
		{name: "empty token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ts.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
