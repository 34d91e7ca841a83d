package repository

import (
	"context"

	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

// UserRepository describes persistence operations for users. Email keys are
// expected to be lowercased by callers.
type UserRepository interface {
	Create(ctx context.Context, email, name, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateName(ctx context.Context, email, name string) (*model.User, error)
	// Rename re-keys the record from oldEmail to newEmail atomically:
	// no concurrent reader observes the record under neither or both keys.
	Rename(ctx context.Context, oldEmail, newEmail string) (*model.User, error)
}
