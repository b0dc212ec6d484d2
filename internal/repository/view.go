package repository

import (
	"context"

	"pagelift/internal/model"
)

// ViewRepository defines data access for append-only page view events.
type ViewRepository interface {
	// Create appends a view event. The caller does not verify the page exists.
	Create(ctx context.Context, v *model.PageView) error

	// ListRecentByPage returns the newest view events for a page, up to limit.
	ListRecentByPage(ctx context.Context, pageID string, limit int) ([]model.PageView, error)
}
