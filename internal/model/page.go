package model

import "time"

// Page statuses.
const (
	PageStatusDraft     = "draft"
	PageStatusPublished = "published"
)

// Page is a marketing landing page. Drafts are visible only to their owner;
// published pages are served publicly by slug. ViewCount is denormalized and
// only ever changed through the repository's atomic increment.
type Page struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	BrandID   *string   `json:"brand_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	HTML      string    `json:"html"`
	Status    string    `json:"status"`
	ViewCount int64     `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
