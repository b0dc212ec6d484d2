package postgres

import (
	"context"
	"testing"
	"time"

	"pagelift/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestViewPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewViewPostgres(db)
	ctx := context.Background()

	t.Run("with headers", func(t *testing.T) {
		ref := "https://news.example.com"
		ua := "Mozilla/5.0"
		v := &model.PageView{
			ID:        "view-1",
			PageID:    "page-1",
			Referrer:  &ref,
			UserAgent: &ua,
			CreatedAt: time.Now().UTC(),
		}

		mock.ExpectExec("INSERT INTO page_views").
			WithArgs(v.ID, v.PageID, v.Referrer, v.UserAgent, v.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, v))
	})

	t.Run("absent headers stored as NULL", func(t *testing.T) {
		v := &model.PageView{
			ID:        "view-2",
			PageID:    "page-1",
			CreatedAt: time.Now().UTC(),
		}

		mock.ExpectExec("INSERT INTO page_views").
			WithArgs(v.ID, v.PageID, (*string)(nil), (*string)(nil), v.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Create(ctx, v))
	})
}

func TestViewPostgres_ListRecentByPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewViewPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "page_id", "referrer", "user_agent", "created_at"}).
		AddRow("view-2", "page-1", nil, nil, now).
		AddRow("view-1", "page-1", "https://ref.example.com", "curl/8.0", now.Add(-time.Minute))

	mock.ExpectQuery("SELECT (.+) FROM page_views WHERE page_id = (.+) ORDER BY created_at DESC").
		WithArgs("page-1", 20).
		WillReturnRows(rows)

	items, err := repo.ListRecentByPage(ctx, "page-1", 20)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Nil(t, items[0].Referrer)
	assert.NotNil(t, items[1].Referrer)
	assert.Equal(t, "view-2", items[0].ID)
}
