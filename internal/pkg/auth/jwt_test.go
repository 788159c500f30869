package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

func newTestJWTService() *JWTService {
	return NewJWTService(JWTConfig{SecretKey: "secret", Expiration: time.Hour, TokenIssuer: "test"})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService()
	issued := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	user := &models.User{ID: "student-1", Email: "kwame.mensah@test.edu", Role: models.RoleStudent}
	token, expiresAt, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "student-1", claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, issued, claims.IssuedAt.Time.UTC())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenErrors(t *testing.T) {
	svc := newTestJWTService()
	issued := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, _, err := svc.GenerateToken(&models.User{ID: "lecturer-1", Email: "a@b.c", Role: models.RoleLecturer})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
		defer func() { svc.now = func() time.Time { return issued } }()
		_, err := svc.ValidateAndExtractClaims(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(JWTConfig{SecretKey: "other", Expiration: time.Hour})
		other.now = svc.now
		_, err := other.ValidateAndExtractClaims(token)
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.ValidateAndExtractClaims("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := svc.ValidateAndExtractClaims("")
		assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tok, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	tok, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	_, err = ExtractBearerToken("Bearer ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123", 4)
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "password123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
