package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/domain/model"
	"github.com/adolfokaiser/precios-api/internal/domain/repository"
	pkgAuth "github.com/adolfokaiser/precios-api/internal/pkg/auth"
)

// AuthUseCase handles user registration, login and token resolution.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// NormalizeEmail lowercases and trims an email, matching the case-insensitive
// identity key of the credential store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user. The plaintext password is hashed and never
// stored or returned.
func (u *AuthUseCase) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, email, name, hash)
}

// Authenticate validates credentials and returns an auth token. Unknown
// email and wrong password produce the same error so callers cannot tell
// which check failed.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return "", domainErrors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return "", domainErrors.ErrInvalidCredentials
	}

	return u.tokens.IssueToken(usr.Email)
}

// ResolveToken verifies a bearer token and resolves its subject against the
// credential store. A valid token whose subject no longer exists (for
// example after an email rename) fails with ErrNotFound.
func (u *AuthUseCase) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	subject, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return u.users.GetByEmail(ctx, subject)
}
