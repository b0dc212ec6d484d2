package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"pagelift/internal/model"
	"pagelift/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func pageRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "brand_id", "title", "slug", "html", "status", "view_count", "created_at", "updated_at"})
}

func TestPagePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPagePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	p := &model.Page{
		ID:        "page-1",
		UserID:    "user-a",
		Title:     "Launch",
		Slug:      "launch-a1b2c3",
		HTML:      "<h1>Launch</h1>",
		Status:    model.PageStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectQuery("INSERT INTO pages").
		WithArgs(p.ID, p.UserID, p.BrandID, p.Title, p.Slug, p.HTML, p.Status, p.ViewCount, p.CreatedAt, p.UpdatedAt).
		WillReturnRows(pageRows().AddRow(p.ID, p.UserID, nil, p.Title, p.Slug, p.HTML, p.Status, 0, now, now))

	stored, err := repo.Create(ctx, p)

	assert.NoError(t, err)
	assert.Equal(t, "page-1", stored.ID)
	assert.Nil(t, stored.BrandID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPagePostgres_FindPublishedBySlug(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPagePostgres(db)
	ctx := context.Background()

	t.Run("published page found", func(t *testing.T) {
		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM pages WHERE slug = (.+) AND status = 'published'").
			WithArgs("launch-a1b2c3").
			WillReturnRows(pageRows().AddRow("page-1", "user-a", nil, "Launch", "launch-a1b2c3", "<h1>Launch</h1>", "published", 5, now, now))

		p, err := repo.FindPublishedBySlug(ctx, "launch-a1b2c3")

		assert.NoError(t, err)
		assert.Equal(t, model.PageStatusPublished, p.Status)
		assert.Equal(t, int64(5), p.ViewCount)
	})

	t.Run("draft is invisible", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM pages WHERE slug = (.+) AND status = 'published'").
			WithArgs("draft-slug").
			WillReturnError(sql.ErrNoRows)

		p, err := repo.FindPublishedBySlug(ctx, "draft-slug")

		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, p)
	})
}

func TestPagePostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPagePostgres(db)
	ctx := context.Background()

	title := "New title"
	now := time.Now().UTC()

	mock.ExpectQuery("UPDATE pages").
		WithArgs("page-1", "user-a", &title, (*string)(nil), (*string)(nil)).
		WillReturnRows(pageRows().AddRow("page-1", "user-a", nil, title, "launch-a1b2c3", "<h1>Launch</h1>", "draft", 0, now, now))

	p, err := repo.Update(ctx, "user-a", "page-1", repository.PageUpdate{Title: &title})

	assert.NoError(t, err)
	assert.Equal(t, "New title", p.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPagePostgres_SetStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPagePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery("UPDATE pages").
		WithArgs("page-1", "user-a", "published").
		WillReturnRows(pageRows().AddRow("page-1", "user-a", nil, "Launch", "launch-a1b2c3", "<h1>Launch</h1>", "published", 0, now, now))

	p, err := repo.SetStatus(ctx, "user-a", "page-1", model.PageStatusPublished)

	assert.NoError(t, err)
	assert.Equal(t, model.PageStatusPublished, p.Status)
}

func TestPagePostgres_IncrementViews(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPagePostgres(db)
	ctx := context.Background()

	t.Run("single statement increment", func(t *testing.T) {
		mock.ExpectExec("UPDATE pages SET view_count = view_count \\+ 1 WHERE id = ?").
			WithArgs("page-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.IncrementViews(ctx, "page-1"))
	})

	t.Run("unknown page id is not an error", func(t *testing.T) {
		mock.ExpectExec("UPDATE pages SET view_count = view_count \\+ 1 WHERE id = ?").
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.IncrementViews(ctx, "missing"))
	})
}

func TestPagePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewPagePostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM pages WHERE id = (.+) AND user_id = ?").
		WithArgs("page-1", "user-b").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(ctx, "user-b", "page-1")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
