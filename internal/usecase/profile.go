package usecase

import (
	"context"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/domain/model"
	"github.com/adolfokaiser/precios-api/internal/domain/repository"
)

// ProfileUseCase lets an authenticated user read and edit their own record.
type ProfileUseCase struct {
	users repository.UserRepository
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(users repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

// Read returns the caller's own record.
func (u *ProfileUseCase) Read(ctx context.Context, email string) (*model.User, error) {
	return u.users.GetByEmail(ctx, email)
}

// Update applies a name change in place and, when the email changes, re-keys
// the record atomically. Tokens issued before a rename keep the old subject
// and stop resolving, so the caller must log in again under the new email.
func (u *ProfileUseCase) Update(ctx context.Context, email string, name, newEmail *string) (*model.User, error) {
	if name == nil && newEmail == nil {
		return nil, domainErrors.ErrNothingToUpdate
	}

	current, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if name != nil {
		if current, err = u.users.UpdateName(ctx, current.Email, *name); err != nil {
			return nil, err
		}
	}

	if newEmail != nil {
		target := NormalizeEmail(*newEmail)
		if target != current.Email {
			if current, err = u.users.Rename(ctx, current.Email, target); err != nil {
				return nil, err
			}
		}
	}

	return current, nil
}
