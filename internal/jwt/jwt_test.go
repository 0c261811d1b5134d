package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupKeys(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}

	SetKeys(&key.PublicKey, key)
	return key
}

func signClaims(t *testing.T, key *rsa.PrivateKey, claims jwtgo.RegisteredClaims) string {
	t.Helper()

	signed, err := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}

	return signed
}

func TestSignAndValidateCallerID(t *testing.T) {
	setupKeys(t)

	sign, err := Sign("caller-18")
	assert.NoError(t, err)

	id, err := ValidCallerID(sign)
	assert.NoError(t, err)
	assert.Equal(t, "caller-18", id)

	_, err = Sign("")
	assert.EqualError(t, err, "caller ID is required")
}

func TestValidCallerID_InvalidAudience(t *testing.T) {
	key := setupKeys(t)

	signedToken := signClaims(t, key, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{"different-audience"},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   Issuer,
		Subject:  "caller-15",
	})

	id, err := ValidCallerID(signedToken)
	assert.Error(t, err)
	assert.Equal(t, "", id)
}

func TestValidCallerID_InvalidIssuer(t *testing.T) {
	key := setupKeys(t)

	signedToken := signClaims(t, key, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		Issuer:   "someone-else",
		Subject:  "caller-15",
	})

	_, err := ValidCallerID(signedToken)
	assert.Error(t, err)
}

func TestValidCallerID_WrongKey(t *testing.T) {
	other := setupKeys(t)
	signedToken := signClaims(t, other, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		Issuer:   Issuer,
		Subject:  "caller-15",
	})

	setupKeys(t)
	_, err := ValidCallerID(signedToken)
	assert.Error(t, err)
}

func TestValidCallerID_MissingSubject(t *testing.T) {
	key := setupKeys(t)

	signedToken := signClaims(t, key, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		Issuer:   Issuer,
	})

	_, err := ValidCallerID(signedToken)
	assert.EqualError(t, err, "missing subject")
}

func TestValidCallerID_Expired(t *testing.T) {
	key := setupKeys(t)

	signedToken := signClaims(t, key, jwtgo.RegisteredClaims{
		Audience:  jwtgo.ClaimStrings{Audience},
		Issuer:    Issuer,
		Subject:   "caller-15",
		ExpiresAt: jwtgo.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	_, err := ValidCallerID(signedToken)
	assert.ErrorIs(t, err, jwtgo.ErrTokenExpired)
}
