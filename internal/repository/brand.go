package repository

import (
	"context"

	"pagelift/internal/model"
)

// BrandRepository defines data access for brand profiles using SQL queries only.
// No business logic here, strictly persistence operations.
type BrandRepository interface {
	// Create inserts a new brand profile and returns the stored row.
	Create(ctx context.Context, b *model.BrandProfile) (*model.BrandProfile, error)

	// ListByUser returns the user's brand profiles, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.BrandProfile, error)

	// FindByID returns the brand profile only if it belongs to userID;
	// otherwise sql.ErrNoRows.
	FindByID(ctx context.Context, userID, id string) (*model.BrandProfile, error)

	// Delete removes the user's brand profile. Returns sql.ErrNoRows if no row
	// matched (absent or owned by someone else).
	Delete(ctx context.Context, userID, id string) error
}
