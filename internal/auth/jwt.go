package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenManager verifies the HS256 access tokens that back a session.
// Issuance belongs to the identity provider sharing the secret; Issue exists for it and for tests.
type TokenManager struct {
	secret []byte
	issuer string
}

func NewTokenManager(secret, issuer string) *TokenManager {
	return &TokenManager{secret: []byte(secret), issuer: issuer}
}

type Claims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

const accessType = "access"

func (tm *TokenManager) Issue(accountID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: accessType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			Issuer:    tm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Parse validates signature, expiry and issuer and returns the account id the token was issued for.
func (tm *TokenManager) Parse(tokenStr string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tm.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || claims.Type != accessType || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
