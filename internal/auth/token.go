package auth

import (
	"errors"
	"fmt"

	"expense-ledger/internal/apperr"
	"expense-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the user identity carried by a session token.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Claims is the JWT payload: the identity plus iat/exp (and iss when an
// issuer is configured).
type Claims struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func (c *Claims) Identity() Identity {
	return Identity{ID: c.UserID, Name: c.Name, Email: c.Email}
}

// IssueToken signs the user's identity claims, valid for the configured TTL
// from the authority's current time.
func (a *Authority) IssueToken(u *models.User) (string, error) {
	now := a.now()
	claims := &Claims{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns its identity.
// It performs no I/O.
func (a *Authority) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, apperr.ErrUnauthenticated
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return Identity{}, mapJWTError(err)
	}
	if !token.Valid || claims.UserID == "" {
		return Identity{}, apperr.ErrInvalidToken
	}
	return claims.Identity(), nil
}

// mapJWTError maps JWT library errors to the shared taxonomy.
func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return apperr.ErrTokenExpired
	}
	return fmt.Errorf("%w: %v", apperr.ErrInvalidToken, err)
}
