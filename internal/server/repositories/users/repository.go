package users

import (
	"context"

	"github.com/minjongk/teamauth/internal/server/models"
)

// Repository is the user store contract. Create surfaces
// common.ErrorDuplicateUsername when the storage-layer uniqueness
// constraint rejects the row; GetUserByUsername surfaces
// common.ErrorNotFound for absent users. Lookups are exact and
// case-sensitive.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
