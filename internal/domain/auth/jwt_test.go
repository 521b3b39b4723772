package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizreport/internal/core/id"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig(testSecret))
	owner := id.MustParse("0190f5a2-0000-7000-8000-000000000900")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", owner, "ana@example.com", []string{"owner"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	user, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
	assert.Equal(t, owner.String(), user.OwnerID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, []string{"owner"}, user.Roles)
	assert.NotEmpty(t, user.SessionID)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig(testSecret))
	owner := id.New()

	valid, _, err := svc.GenerateAccessToken("user-1", owner, "", nil)
	require.NoError(t, err)

	expired := NewJWTService(DefaultJWTConfig(testSecret))
	expired.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	old, _, err := expired.GenerateAccessToken("user-1", owner, "", nil)
	require.NoError(t, err)

	otherIssuer := DefaultJWTConfig(testSecret)
	otherIssuer.Issuer = "someone-else"
	foreign, _, err := NewJWTService(otherIssuer).GenerateAccessToken("user-1", owner, "", nil)
	require.NoError(t, err)

	noOwner, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "bizreport",
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "tampered signature", token: valid[:strings.LastIndex(valid, ".")] + ".AAAA"},
		{name: "wrong secret", token: mustSign(t, "another-secret-another-secret-xx", owner)},
		{name: "expired", token: old},
		{name: "other issuer", token: foreign},
		{name: "missing owner", token: noOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, user)
		})
	}
}

func mustSign(t *testing.T, secret string, owner id.ID) string {
	t.Helper()
	token, _, err := NewJWTService(DefaultJWTConfig(secret)).GenerateAccessToken("user-1", owner, "", nil)
	require.NoError(t, err)
	return token
}
