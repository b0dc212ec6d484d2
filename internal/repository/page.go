package repository

import (
	"context"

	"pagelift/internal/model"
)

// PageUpdate holds the mutable fields of a page. Nil pointers leave the
// current value untouched.
type PageUpdate struct {
	Title   *string
	HTML    *string
	BrandID *string
}

// PageRepository defines data access for pages using SQL queries only.
type PageRepository interface {
	// Create inserts a new page and returns the stored row.
	Create(ctx context.Context, p *model.Page) (*model.Page, error)

	// ListByUser returns the user's pages, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Page, error)

	// FindByID returns the page only if it belongs to userID; otherwise sql.ErrNoRows.
	FindByID(ctx context.Context, userID, id string) (*model.Page, error)

	// FindPublishedBySlug returns a published page by slug. Drafts are invisible here.
	FindPublishedBySlug(ctx context.Context, slug string) (*model.Page, error)

	// Update applies the given fields to the user's page, bumps updated_at,
	// and returns the stored row. sql.ErrNoRows if no row matched.
	Update(ctx context.Context, userID, id string, upd PageUpdate) (*model.Page, error)

	// SetStatus transitions the user's page to the given status and returns the
	// stored row. sql.ErrNoRows if no row matched.
	SetStatus(ctx context.Context, userID, id, status string) (*model.Page, error)

	// Delete removes the user's page. Returns sql.ErrNoRows if no row matched.
	Delete(ctx context.Context, userID, id string) error

	// IncrementViews atomically bumps the page's denormalized view counter in a
	// single statement. Callers must never read-modify-write the counter.
	IncrementViews(ctx context.Context, pageID string) error
}
