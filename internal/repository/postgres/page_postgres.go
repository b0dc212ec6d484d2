package postgres

import (
	"context"
	"database/sql"

	"pagelift/internal/model"
	"pagelift/internal/repository"
)

// PagePostgres is a PostgreSQL implementation of repository.PageRepository.
type PagePostgres struct {
	db *sql.DB
}

// NewPagePostgres creates a new PagePostgres repository.
func NewPagePostgres(db *sql.DB) *PagePostgres {
	return &PagePostgres{db: db}
}

var _ repository.PageRepository = (*PagePostgres)(nil)

const pageColumns = `id, user_id, brand_id, title, slug, html, status, view_count, created_at, updated_at`

func scanPage(s interface{ Scan(...any) error }) (*model.Page, error) {
	var p model.Page
	err := s.Scan(
		&p.ID,
		&p.UserID,
		&p.BrandID,
		&p.Title,
		&p.Slug,
		&p.HTML,
		&p.Status,
		&p.ViewCount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new page row and returns the stored record.
func (r *PagePostgres) Create(ctx context.Context, p *model.Page) (*model.Page, error) {
	const q = `
		INSERT INTO pages (id, user_id, brand_id, title, slug, html, status, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + pageColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.UserID,
		p.BrandID,
		p.Title,
		p.Slug,
		p.HTML,
		p.Status,
		p.ViewCount,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return scanPage(row)
}

// ListByUser returns the user's pages, newest first.
func (r *PagePostgres) ListByUser(ctx context.Context, userID string) ([]model.Page, error) {
	const q = `
		SELECT ` + pageColumns + `
		FROM pages
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Page, 0)
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a page scoped to its owner.
func (r *PagePostgres) FindByID(ctx context.Context, userID, id string) (*model.Page, error) {
	const q = `
		SELECT ` + pageColumns + `
		FROM pages
		WHERE id = $1 AND user_id = $2
	`
	return scanPage(r.db.QueryRowContext(ctx, q, id, userID))
}

// FindPublishedBySlug fetches a published page by slug. Drafts never match.
func (r *PagePostgres) FindPublishedBySlug(ctx context.Context, slug string) (*model.Page, error) {
	const q = `
		SELECT ` + pageColumns + `
		FROM pages
		WHERE slug = $1 AND status = 'published'
	`
	return scanPage(r.db.QueryRowContext(ctx, q, slug))
}

// Update applies partial changes to the user's page. Nil fields keep the
// current value via COALESCE.
func (r *PagePostgres) Update(ctx context.Context, userID, id string, upd repository.PageUpdate) (*model.Page, error) {
	const q = `
		UPDATE pages
		SET title      = COALESCE($3, title),
		    html       = COALESCE($4, html),
		    brand_id   = COALESCE($5, brand_id),
		    updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + pageColumns
	return scanPage(r.db.QueryRowContext(ctx, q, id, userID, upd.Title, upd.HTML, upd.BrandID))
}

// SetStatus transitions the user's page to the given status.
func (r *PagePostgres) SetStatus(ctx context.Context, userID, id, status string) (*model.Page, error) {
	const q = `
		UPDATE pages
		SET status = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + pageColumns
	return scanPage(r.db.QueryRowContext(ctx, q, id, userID, status))
}

// Delete removes the user's page. sql.ErrNoRows when nothing matched.
func (r *PagePostgres) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM pages WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// IncrementViews bumps the denormalized counter in a single statement so
// concurrent views cannot lose updates. No error if the page id is unknown.
func (r *PagePostgres) IncrementViews(ctx context.Context, pageID string) error {
	const q = `UPDATE pages SET view_count = view_count + 1 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, pageID)
	return err
}
