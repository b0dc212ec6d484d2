package repository

import (
	"context"

	"pagelift/internal/model"
)

// DocumentRepository defines data access for content documents using SQL queries only.
// No business logic here, strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored row.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// ListByUser returns the user's documents, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Document, error)

	// FindByID returns the document only if it belongs to userID;
	// otherwise sql.ErrNoRows.
	FindByID(ctx context.Context, userID, id string) (*model.Document, error)

	// Delete removes the user's document. Returns sql.ErrNoRows if no row matched.
	Delete(ctx context.Context, userID, id string) error
}
