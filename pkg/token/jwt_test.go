package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService("")
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestJWTService_SignVerifyRoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	signed, err := svc.Sign("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	id, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}

func TestJWTService_PayloadCarriesOnlyTheUserID(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	signed, err := svc.Sign("user-123")
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var claims map[string]any
	require.NoError(t, json.Unmarshal(payload, &claims))

	assert.Equal(t, map[string]any{"id": "user-123"}, claims)
	assert.NotContains(t, claims, "exp")
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	issuer, err := NewJWTService("issuer-secret")
	require.NoError(t, err)
	verifier, err := NewJWTService("other-secret")
	require.NoError(t, err)

	signed, err := issuer.Sign("user-123")
	require.NoError(t, err)

	id, verifyErr := verifier.Verify(signed)
	assert.Empty(t, id)
	assert.ErrorIs(t, verifyErr, ErrInvalidToken)
}

func TestJWTService_TamperedTokenRejected(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	signed, err := svc.Sign("user-123")
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"id":"user-999"}`))
	tampered := strings.Join([]string{parts[0], forged, parts[2]}, ".")

	_, verifyErr := svc.Verify(tampered)
	assert.ErrorIs(t, verifyErr, ErrInvalidToken)
}

func TestJWTService_MalformedTokenRejected(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, verifyErr := svc.Verify(raw)
		assert.ErrorIs(t, verifyErr, ErrInvalidToken, "token %q", raw)
	}
}

func TestJWTService_UnsignedAlgorithmRejected(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-123"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, verifyErr := svc.Verify(raw)
	assert.ErrorIs(t, verifyErr, ErrInvalidToken)
}
