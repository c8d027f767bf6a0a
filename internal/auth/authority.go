// Package auth issues and verifies session tokens and owns the account
// operations: registration, login, profile and password changes.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"expense-ledger/internal/apperr"
	"expense-ledger/internal/config"
	"expense-ledger/internal/models"
	"expense-ledger/internal/util"
)

// UserStore is the persistence the authority needs.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	EmailExists(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateName(ctx context.Context, id, name string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}

// Authority is the session authority. It is safe for concurrent use; its
// secret and TTL are fixed at construction.
type Authority struct {
	users  UserStore
	hasher Hasher
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

type Option func(*Authority)

// WithClock replaces time.Now for token issuance and verification.
func WithClock(now func() time.Time) Option {
	return func(a *Authority) {
		a.now = now
	}
}

func NewAuthority(users UserStore, hasher Hasher, cfg config.JWTConfig, opts ...Option) *Authority {
	a := &Authority{
		users:  users,
		hasher: hasher,
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// TTL is the lifetime of every issued token.
func (a *Authority) TTL() time.Duration {
	return a.ttl
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and returns it with a fresh token.
func (a *Authority) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: please provide name, email and password", apperr.ErrValidation)
	}
	if err := util.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}

	exists, err := a.users.EmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", apperr.ErrDuplicateEmail
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := a.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := a.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login checks credentials. An unknown email and a wrong password produce the
// same error, and both pay for one hash comparison.
func (a *Authority) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: please provide email and password", apperr.ErrValidation)
	}

	user, err := a.users.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		_, _ = a.hasher.Verify(password, a.dummy())
		return nil, "", apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	ok, err := a.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, "", apperr.ErrInvalidCredentials
	}

	token, err := a.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Me loads the current user record.
func (a *Authority) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := a.users.FindByID(ctx, userID)
	if err != nil {
		return nil, userErr(err)
	}
	return user, nil
}

// UpdateProfile renames the user and returns a token carrying the new name.
func (a *Authority) UpdateProfile(ctx context.Context, userID, name string) (*models.User, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}

	if err := a.users.UpdateName(ctx, userID, name); err != nil {
		return nil, "", userErr(err)
	}
	user, err := a.Me(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	token, err := a.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ChangePassword replaces the password hash after checking the current one.
func (a *Authority) ChangePassword(ctx context.Context, userID, current, next string) error {
	if current == "" || next == "" {
		return fmt.Errorf("%w: please provide current and new password", apperr.ErrValidation)
	}

	user, err := a.Me(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := a.hasher.Verify(current, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return apperr.ErrInvalidCurrentPassword
	}

	hash, err := a.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := a.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return userErr(err)
	}
	return nil
}

// userErr reports a token whose user no longer exists as an invalid token
// rather than a missing resource.
func userErr(err error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return fmt.Errorf("%w: user no longer exists", apperr.ErrInvalidToken)
	}
	return err
}

func (a *Authority) dummy() string {
	a.dummyOnce.Do(func() {
		a.dummyHash, _ = a.hasher.Hash("not-a-real-password")
	})
	return a.dummyHash
}
