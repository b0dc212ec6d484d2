package repository

import (
	"context"

	"pagelift/internal/model"
)

// UserRepository persists accounts created by the OAuth login flow.
type UserRepository interface {
	// Upsert inserts the user or, if the email is already registered, refreshes
	// name and picture. Returns the stored row either way.
	Upsert(ctx context.Context, u *model.User) (*model.User, error)

	// FindByID returns a user by its ID.
	FindByID(ctx context.Context, id string) (*model.User, error)
}
