// Package users persists account records. Lookups used by login and the
// auth gate see only live rows (deleted = false); the existence check used
// by registration sees every row.
package users

import (
	"context"

	"github.com/andrejsm/taskkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. The database's unique email constraint
	// makes this the atomic "create if absent"; a duplicate email comes
	// back as common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the live user with the given email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the live user with the given id, or
	// common.ErrorNotFound. The auth gate uses this to reject tokens that
	// outlive their user.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// ExistsByEmail reports whether any row, soft-deleted included,
	// holds the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
