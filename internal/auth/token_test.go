package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/judiciary-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	courtID := "c1"
	user := &domain.User{ID: "u1", Role: domain.RoleCircuit, CourtID: &courtID}

	token, exp, err := tm.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, domain.RoleCircuit, claims.Role)
	require.NotNil(t, claims.CourtID)
	assert.Equal(t, courtID, *claims.CourtID)
}

func TestTokenAdminHasNoCourt(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	user := &domain.User{ID: "u1", Role: domain.RoleAdmin}

	token, _, err := tm.GenerateToken(user)
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Nil(t, claims.CourtID)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	other := NewTokenManager("other-secret", 60)
	user := &domain.User{ID: "u1", Role: domain.RoleAdmin}

	token, _, err := tm.GenerateToken(user)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, ComparePassword(hash, "secret1"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
