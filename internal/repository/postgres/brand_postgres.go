package postgres

import (
	"context"
	"database/sql"

	"pagelift/internal/model"
	"pagelift/internal/repository"
)

// BrandPostgres is a PostgreSQL implementation of repository.BrandRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type BrandPostgres struct {
	db *sql.DB
}

// NewBrandPostgres creates a new BrandPostgres repository.
func NewBrandPostgres(db *sql.DB) *BrandPostgres {
	return &BrandPostgres{db: db}
}

var _ repository.BrandRepository = (*BrandPostgres)(nil)

const brandColumns = `id, user_id, name, description, industry, tone, primary_color, secondary_color, logo_url, created_at`

func scanBrand(s interface{ Scan(...any) error }) (*model.BrandProfile, error) {
	var b model.BrandProfile
	err := s.Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.Description,
		&b.Industry,
		&b.Tone,
		&b.PrimaryColor,
		&b.SecondaryColor,
		&b.LogoURL,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new brand profile row and returns the stored record.
func (r *BrandPostgres) Create(ctx context.Context, b *model.BrandProfile) (*model.BrandProfile, error) {
	const q = `
		INSERT INTO brand_profiles (id, user_id, name, description, industry, tone, primary_color, secondary_color, logo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + brandColumns
	row := r.db.QueryRowContext(ctx, q,
		b.ID,
		b.UserID,
		b.Name,
		b.Description,
		b.Industry,
		b.Tone,
		b.PrimaryColor,
		b.SecondaryColor,
		b.LogoURL,
		b.CreatedAt,
	)
	return scanBrand(row)
}

// ListByUser returns the user's brand profiles, newest first.
func (r *BrandPostgres) ListByUser(ctx context.Context, userID string) ([]model.BrandProfile, error) {
	const q = `
		SELECT ` + brandColumns + `
		FROM brand_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.BrandProfile, 0)
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID fetches a brand profile scoped to its owner.
func (r *BrandPostgres) FindByID(ctx context.Context, userID, id string) (*model.BrandProfile, error) {
	const q = `
		SELECT ` + brandColumns + `
		FROM brand_profiles
		WHERE id = $1 AND user_id = $2
	`
	return scanBrand(r.db.QueryRowContext(ctx, q, id, userID))
}

// Delete removes the user's brand profile. sql.ErrNoRows when nothing matched.
func (r *BrandPostgres) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM brand_profiles WHERE id = $1 AND user_id = $2`
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
