package auth

import (
	"testing"
	"time"

	"rental/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := impl.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("secret"))
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": uuid.NewString(), "iss": tokenIssuer})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
