package model

import "time"

// PageView is an append-only view event. Referrer and UserAgent are nil when
// the corresponding request header was absent, never an empty string.
// Rows are never mutated or deleted.
type PageView struct {
	ID        string    `json:"id"`
	PageID    string    `json:"page_id"`
	Referrer  *string   `json:"referrer"`
	UserAgent *string   `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
