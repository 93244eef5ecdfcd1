package jwt

import (
	"testing"
	"time"

	"github.com/amoylab/phongtro/internal/common/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestNewService_Validation(t *testing.T) {
	_, err := NewService(config.JWTConfig{Duration: time.Hour})
	assert.ErrorIs(t, err, ErrEmptySecretKey)
	_, err = NewService(config.JWTConfig{SecretKey: "short", Duration: time.Hour})
	assert.ErrorIs(t, err, ErrWeakSecretKey)
	_, err = NewService(config.JWTConfig{SecretKey: secret})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestGenerateAndValidate(t *testing.T) {
	s, err := NewService(config.JWTConfig{SecretKey: secret, Duration: time.Hour})
	require.NoError(t, err)

	tok, err := s.GenerateToken(42, "chu@nha.vn", "landlord")
	require.NoError(t, err)
	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "chu@nha.vn", claims.Email)
	assert.Equal(t, "landlord", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestExpiredToken(t *testing.T) {
	s, err := NewService(config.JWTConfig{SecretKey: secret, Duration: time.Minute})
	require.NoError(t, err)
	s.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err := s.GenerateToken(1, "a@b.c", "tenant")
	require.NoError(t, err)

	s.now = time.Now
	claims, err := s.ValidateToken(tok)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRejectsForeignTokens(t *testing.T) {
	s, err := NewService(config.JWTConfig{SecretKey: secret, Duration: time.Hour})
	require.NoError(t, err)

	_, err = s.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, _ := NewService(config.JWTConfig{SecretKey: secret + "x", Duration: time.Hour})
	tok, _ := other.GenerateToken(1, "a@b.c", "admin")
	_, err = s.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// unsigned token
	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Role: "admin"})
	raw, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = s.ValidateToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
