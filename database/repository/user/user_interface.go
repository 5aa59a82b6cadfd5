package userRepo

import (
	"context"

	"doctorsportal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Upsert creates the user if absent and touches updatedAt otherwise.
	Upsert(ctx context.Context, email string) (*models.User, error)
	// GetByEmail returns the user, or nil if none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// SetRole upserts the user with the given role.
	SetRole(ctx context.Context, email, role string) (*models.User, error)
}
