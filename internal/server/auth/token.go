package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/goboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by goboard access tokens. The username
// travels in the registered Subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

func signingMethod(algorithm string) (jwt.SigningMethod, error) {
	switch algorithm {
	case "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %q", algorithm)
	}
}

// TokenIssuer mints signed, time-limited access tokens.
type TokenIssuer struct {
	secretKey        []byte
	method           jwt.SigningMethod
	validityDuration time.Duration
}

// NewTokenIssuer constructs a TokenIssuer. The secret key and algorithm come
// from the process configuration; they are fixed for the issuer's lifetime.
func NewTokenIssuer(secretKey []byte, algorithm string, validityDuration time.Duration) (*TokenIssuer, error) {
	if len(secretKey) == 0 {
		return nil, common.ErrMissingSecretKey
	}
	method, err := signingMethod(algorithm)
	if err != nil {
		return nil, err
	}
	return &TokenIssuer{secretKey: secretKey, method: method, validityDuration: validityDuration}, nil
}

// Issue creates a signed token with subject = username and
// expiry = now + validity duration.
func (i *TokenIssuer) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(i.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.validityDuration)),
		},
	})

	tokenString, err := token.SignedString(i.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// TokenValidator verifies token signatures and expiry and extracts the
// subject.
type TokenValidator struct {
	secretKey []byte
	algorithm string
}

// NewTokenValidator constructs a TokenValidator bound to the configured
// secret and algorithm.
func NewTokenValidator(secretKey []byte, algorithm string) (*TokenValidator, error) {
	if len(secretKey) == 0 {
		return nil, common.ErrMissingSecretKey
	}
	if _, err := signingMethod(algorithm); err != nil {
		return nil, err
	}
	return &TokenValidator{secretKey: secretKey, algorithm: algorithm}, nil
}

// Validate parses the token, verifies its signature and expiry, and returns
// the subject (username). Tokens whose header names any algorithm other than
// the configured one are rejected outright; the token's self-declared
// algorithm is never trusted.
//
// Failures map to sentinel errors: common.ErrTokenExpired for expired tokens,
// common.ErrInvalidToken for everything else.
func (v *TokenValidator) Validate(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secretKey, nil
	}, jwt.WithValidMethods([]string{v.algorithm}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
