package jwt

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"blackjackdealer-server/internal/config"

	jwtgo "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Issuer issues the JWT
const Issuer = "blackjackdealer"

// Audience is the intended JWT audience
const Audience = "blackjackdealer-api"

var publicKey *rsa.PublicKey
var privateKey *rsa.PrivateKey

// LoadKeys will load the public and private keys
// this method should only be called once.
func LoadKeys() {
	cfg := config.Instance().JWT
	privateKey = loadPrivateKey(cfg.PrivateKey)
	publicKey = loadPublicKey(cfg.PublicKey)
}

// SetKeys sets the keys directly
func SetKeys(public *rsa.PublicKey, private *rsa.PrivateKey) {
	publicKey = public
	privateKey = private
}

// Sign will sign a JWT for the caller ID
func Sign(callerID string) (string, error) {
	if privateKey == nil {
		panic("LoadKeys() not called")
	}

	if callerID == "" {
		return "", errors.New("caller ID is required")
	}

	token := jwtgo.NewWithClaims(jwtgo.SigningMethodRS256, jwtgo.RegisteredClaims{
		Audience: jwtgo.ClaimStrings{Audience},
		ID:       uuid.New().String(),
		IssuedAt: jwtgo.NewNumericDate(time.Now()),
		Issuer:   Issuer,
		Subject:  callerID,
	})

	return token.SignedString(privateKey)
}

// ValidCallerID will validate a signed JWT and return the caller it was issued to
func ValidCallerID(signedString string) (string, error) {
	if publicKey == nil {
		panic("LoadKeys() not called")
	}

	token, err := jwtgo.ParseWithClaims(signedString, &jwtgo.RegisteredClaims{}, func(token *jwtgo.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtgo.SigningMethodRSA); !ok {
			return nil, errors.New("expected RS256 signing method")
		}

		return publicKey, nil
	}, jwtgo.WithAudience(Audience), jwtgo.WithIssuer(Issuer))

	if err != nil {
		return "", err
	}

	if !token.Valid {
		logrus.Warn("token claims were not valid. did not expect to reach this code")
		return "", errors.New("claims were not valid")
	}

	claims, ok := token.Claims.(*jwtgo.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("expected jwt.RegisteredClaims, got %T", token.Claims)
	}

	if claims.Subject == "" {
		return "", errors.New("missing subject")
	}

	return claims.Subject, nil
}

func loadPublicKey(path string) *rsa.PublicKey {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Fatal("could not read file")
	}

	pem, err := jwtgo.ParseRSAPublicKeyFromPEM(b)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse RSA public key")
	}

	return pem
}

func loadPrivateKey(path string) *rsa.PrivateKey {
	b, err := os.ReadFile(path)
	if err != nil {
		logrus.WithError(err).Fatal("could not read file")
	}

	pem, err := jwtgo.ParseRSAPrivateKeyFromPEM(b)
	if err != nil {
		logrus.WithError(err).Fatal("could not parse RSA private key")
	}

	return pem
}
