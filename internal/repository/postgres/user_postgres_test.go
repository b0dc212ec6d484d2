package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagelift/internal/model"
)

func TestUserPostgres_Upsert(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Google account ids are long decimal strings; the upsert carries them
	// verbatim and takes its conflict on id so repeat logins update in place.
	const googleID = "110248495921238986420"

	dbMock.ExpectQuery(`INSERT INTO users .+ ON CONFLICT \(id\) DO UPDATE`).
		WithArgs(googleID, "user@example.com", "Test User", "https://example.com/p.png", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "picture", "created_at"}).
			AddRow(googleID, "user@example.com", "Test User", "https://example.com/p.png", now))

	out, err := repo.Upsert(context.Background(), &model.User{
		ID:        googleID,
		Email:     "user@example.com",
		Name:      "Test User",
		Picture:   "https://example.com/p.png",
		CreatedAt: now,
	})

	assert.NoError(t, err)
	assert.Equal(t, googleID, out.ID)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUserPostgres_FindByID(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserPostgres(db)
	now := time.Now().UTC()

	dbMock.ExpectQuery(`SELECT id, email, name, picture, created_at FROM users WHERE id = \$1`).
		WithArgs("110248495921238986420").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "picture", "created_at"}).
			AddRow("110248495921238986420", "user@example.com", "Test User", "", now))

	u, err := repo.FindByID(context.Background(), "110248495921238986420")

	assert.NoError(t, err)
	assert.Equal(t, "user@example.com", u.Email)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
