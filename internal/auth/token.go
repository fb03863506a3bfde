// Package auth implements issuing and verifying the signed bearer tokens
// used to authenticate API requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrTokenExpired indicates a structurally valid token whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid indicates a token that fails signature or claim validation.
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenIssuer issues and verifies self-contained, HMAC-signed bearer tokens.
// Tokens are stateless; expiry is the only invalidation mechanism.
type TokenIssuer struct {
	secret    []byte
	algorithm string
	method    jwt.SigningMethod
	ttl       time.Duration
}

// NewTokenIssuer builds a TokenIssuer for the given symmetric secret,
// algorithm name and default token lifetime in minutes. Only HMAC
// algorithms are accepted; verification later pins the same algorithm so
// tokens signed any other way are rejected.
func NewTokenIssuer(secret, algorithm string, ttlMinutes int) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}
	if ttlMinutes <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	return &TokenIssuer{
		secret:    []byte(secret),
		algorithm: algorithm,
		method:    method,
		ttl:       time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

// Issue creates a signed token for the subject using the default lifetime.
func (t *TokenIssuer) Issue(subject string) (string, error) {
	return t.IssueWithTTL(subject, t.ttl)
}

// IssueWithTTL creates a signed token for the subject with an explicit lifetime.
func (t *TokenIssuer) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": jwt.NewNumericDate(now.Add(ttl)),
		"iat": jwt.NewNumericDate(now),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(t.method, claims)
	return token.SignedString(t.secret)
}

// Verify validates the token signature and expiry and returns the subject.
// It returns ErrTokenExpired for expired tokens and ErrTokenInvalid for
// every other failure, including tokens signed with a different algorithm.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{t.algorithm}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", ErrTokenInvalid
	}
	return subject, nil
}
