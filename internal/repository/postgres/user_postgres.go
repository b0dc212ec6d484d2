package postgres

import (
	"context"
	"database/sql"

	"pagelift/internal/model"
	"pagelift/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// Upsert inserts the user or, when the Google account id already exists,
// refreshes email/name/picture. The id is the stable key across logins.
func (r *UserPostgres) Upsert(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (id, email, name, picture, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name, picture = EXCLUDED.picture
		RETURNING id, email, name, picture, created_at
	`
	row := r.db.QueryRowContext(ctx, q, u.ID, u.Email, u.Name, u.Picture, u.CreatedAt)
	var out model.User
	if err := row.Scan(&out.ID, &out.Email, &out.Name, &out.Picture, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single user by its ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
		SELECT id, email, name, picture, created_at
		FROM users
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var u model.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Picture, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
