package postgres

import (
	"context"
	"database/sql"

	"pagelift/internal/model"
	"pagelift/internal/repository"
)

// ViewPostgres is a PostgreSQL implementation of repository.ViewRepository.
type ViewPostgres struct {
	db *sql.DB
}

// NewViewPostgres creates a new ViewPostgres repository.
func NewViewPostgres(db *sql.DB) *ViewPostgres {
	return &ViewPostgres{db: db}
}

var _ repository.ViewRepository = (*ViewPostgres)(nil)

// Create appends a view event row. There is no existence check on the page id.
func (r *ViewPostgres) Create(ctx context.Context, v *model.PageView) error {
	const q = `
		INSERT INTO page_views (id, page_id, referrer, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, q, v.ID, v.PageID, v.Referrer, v.UserAgent, v.CreatedAt)
	return err
}

// ListRecentByPage returns the newest view events for a page, up to limit.
func (r *ViewPostgres) ListRecentByPage(ctx context.Context, pageID string, limit int) ([]model.PageView, error) {
	const q = `
		SELECT id, page_id, referrer, user_agent, created_at
		FROM page_views
		WHERE page_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, pageID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PageView, 0)
	for rows.Next() {
		var v model.PageView
		if err := rows.Scan(&v.ID, &v.PageID, &v.Referrer, &v.UserAgent, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
