package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pagelift/internal/auth"
	"pagelift/internal/http/middleware"
	"pagelift/internal/model"
	"pagelift/internal/service"
	serviceMocks "pagelift/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// authedApp wires the handler behind APIAuth and returns a request factory
// that attaches a valid session for user-1.
func authedApp(t *testing.T) (*fiber.App, *auth.Sessions, func(method, target string, body io.Reader) *http.Request) {
	t.Helper()
	sessions := auth.NewSessions("test-secret", time.Hour)
	token, _, err := sessions.Issue("user-1", "user@example.com")
	require.NoError(t, err)

	app := fiber.New()
	newReq := func(method, target string, body io.Reader) *http.Request {
		req := httptest.NewRequest(method, target, body)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		return req
	}
	return app, sessions, newReq
}

func TestAPIUnauthorizedBody(t *testing.T) {
	app, sessions, _ := authedApp(t)
	mockSvc := new(serviceMocks.MockBrandService)
	api := app.Group("/api", middleware.APIAuth(sessions))
	api.Get("/brands", ListBrands(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, `{"error":"Unauthorized"}`, string(body))
	mockSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListBrands(t *testing.T) {
	app, sessions, newReq := authedApp(t)
	mockSvc := new(serviceMocks.MockBrandService)
	api := app.Group("/api", middleware.APIAuth(sessions))
	api.Get("/brands", ListBrands(mockSvc))

	t.Run("success returns full rows scoped to the caller", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, "user-1").Return([]model.BrandProfile{
			{ID: "brand-1", UserID: "user-1", Name: "Acme", Tone: "playful"},
		}, nil).Once()

		resp, _ := app.Test(newReq(http.MethodGet, "/api/brands", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Brands []map[string]any `json:"brands"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		require.Len(t, body.Brands, 1)
		assert.Equal(t, "Acme", body.Brands[0]["name"])
		assert.Equal(t, "playful", body.Brands[0]["tone"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, "user-1").Return(nil, errors.New("db down")).Once()

		resp, _ := app.Test(newReq(http.MethodGet, "/api/brands", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"internal server error"}`, string(body))
	})
}

func TestCreateBrand(t *testing.T) {
	app, sessions, newReq := authedApp(t)
	mockSvc := new(serviceMocks.MockBrandService)
	api := app.Group("/api", middleware.APIAuth(sessions))
	api.Post("/brands", CreateBrand(mockSvc))

	t.Run("created", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "user-1", service.CreateBrandInput{Name: "Acme"}).
			Return(&model.BrandProfile{ID: "brand-1", Name: "Acme"}, nil).Once()

		req := newReq(http.MethodPost, "/api/brands", bytes.NewBufferString(`{"name":"Acme"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("missing name", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, "user-1", service.CreateBrandInput{}).
			Return(nil, service.ErrNameRequired).Once()

		req := newReq(http.MethodPost, "/api/brands", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListContent_FieldSet(t *testing.T) {
	app, sessions, newReq := authedApp(t)
	mockSvc := new(serviceMocks.MockContentService)
	api := app.Group("/api", middleware.APIAuth(sessions))
	api.Get("/content", ListContent(mockSvc))

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockSvc.On("List", mock.Anything, "user-1").Return([]model.DocumentInfo{
		{
			ID:          "doc-1",
			Filename:    "hero.png",
			MimeType:    "image/png",
			FileSize:    11,
			ContentType: "image",
			CreatedAt:   created,
		},
	}, nil).Once()

	resp, _ := app.Test(newReq(http.MethodGet, "/api/content", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Documents []map[string]any `json:"documents"`
	}
	json.NewDecoder(resp.Body).Decode(&body)
	require.Len(t, body.Documents, 1)

	// The projection exposes exactly these six keys.
	doc := body.Documents[0]
	assert.Len(t, doc, 6)
	for _, key := range []string{"id", "filename", "mime_type", "file_size", "content_type", "created_at"} {
		assert.Contains(t, doc, key)
	}
	assert.NotContains(t, doc, "user_id")
	assert.NotContains(t, doc, "storage_path")
}

func TestUploadContent(t *testing.T) {
	app, sessions, newReq := authedApp(t)
	mockSvc := new(serviceMocks.MockContentService)
	api := app.Group("/api", middleware.APIAuth(sessions))
	api.Post("/content", UploadContent(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, "user-1", mock.Anything, "hero.png", mock.Anything, mock.Anything).
			Return(&model.DocumentInfo{ID: "doc-1", Filename: "hero.png"}, nil).Once()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", "hero.png")
		require.NoError(t, err)
		fw.Write([]byte("hello world"))
		mw.Close()

		req := newReq(http.MethodPost, "/api/content", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing file", func(t *testing.T) {
		req := newReq(http.MethodPost, "/api/content", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPageHandlers(t *testing.T) {
	app, sessions, newReq := authedApp(t)
	mockSvc := new(serviceMocks.MockPageService)
	api := app.Group("/api", middleware.APIAuth(sessions))
	api.Get("/pages/:id", GetPage(mockSvc))
	api.Post("/pages/:id/publish", PublishPage(mockSvc))
	api.Delete("/pages/:id", DeletePage(mockSvc))

	t.Run("get not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, "user-1", "page-1").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(newReq(http.MethodGet, "/api/pages/page-1", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"page not found"}`, string(body))
	})

	t.Run("publish", func(t *testing.T) {
		mockSvc.On("Publish", mock.Anything, "user-1", "page-1").
			Return(&model.Page{ID: "page-1", Status: model.PageStatusPublished}, nil).Once()

		resp, _ := app.Test(newReq(http.MethodPost, "/api/pages/page-1/publish", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var page model.Page
		json.NewDecoder(resp.Body).Decode(&page)
		assert.Equal(t, model.PageStatusPublished, page.Status)
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "user-1", "page-1").Return(nil).Once()

		resp, _ := app.Test(newReq(http.MethodDelete, "/api/pages/page-1", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestServePublishedPage(t *testing.T) {
	mockSvc := new(serviceMocks.MockPageService)
	app := fiber.New()
	app.Get("/p/:slug", ServePublishedPage(mockSvc))

	t.Run("serves html", func(t *testing.T) {
		mockSvc.On("GetPublished", mock.Anything, "summer-sale-ab12").
			Return(&model.Page{ID: "page-1", HTML: "<html>sale</html>"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/p/summer-sale-ab12", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "<html>sale</html>", string(body))
	})

	t.Run("draft or unknown slug is 404", func(t *testing.T) {
		mockSvc.On("GetPublished", mock.Anything, "missing").Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/p/missing", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRecordPageView(t *testing.T) {
	mockSvc := new(serviceMocks.MockAnalyticsService)
	app := fiber.New()
	app.Post("/api/pages/:id/view", RecordPageView(mockSvc))

	t.Run("records headers when present", func(t *testing.T) {
		ref := "https://twitter.com/post"
		ua := "Mozilla/5.0"
		mockSvc.On("RecordView", mock.Anything, "page-1", &ref, &ua).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/pages/page-1/view", nil)
		req.Header.Set("Referer", ref)
		req.Header.Set("User-Agent", ua)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"success":true}`, string(body))
		mockSvc.AssertExpectations(t)
	})

	t.Run("absent headers recorded as nil", func(t *testing.T) {
		mockSvc.On("RecordView", mock.Anything, "page-1", (*string)(nil), (*string)(nil)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/pages/page-1/view", nil)
		// An empty User-Agent suppresses net/http's default value so the
		// header is genuinely absent on the wire.
		req.Header.Set("User-Agent", "")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("recording failure still succeeds", func(t *testing.T) {
		mockSvc.On("RecordView", mock.Anything, "page-1", (*string)(nil), (*string)(nil)).
			Return(errors.New("db down")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/pages/page-1/view", nil)
		// An empty User-Agent suppresses net/http's default value so the
		// header is genuinely absent on the wire.
		req.Header.Set("User-Agent", "")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"success":true}`, string(body))
	})
}

func TestGeneratePage(t *testing.T) {
	app, sessions, newReq := authedApp(t)
	mockSvc := new(serviceMocks.MockGeneratorService)
	api := app.Group("/api", middleware.APIAuth(sessions))
	api.Post("/generate", GeneratePage(mockSvc))

	t.Run("returns html", func(t *testing.T) {
		mockSvc.On("Generate", mock.Anything, "user-1", service.GenerateInput{Prompt: "a bakery"}).
			Return("<html>bakery</html>", nil).Once()

		req := newReq(http.MethodPost, "/api/generate", bytes.NewBufferString(`{"prompt":"a bakery"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"html":"<html>bakery</html>"}`, string(body))
	})

	t.Run("empty prompt", func(t *testing.T) {
		mockSvc.On("Generate", mock.Anything, "user-1", service.GenerateInput{}).
			Return("", service.ErrPromptRequired).Once()

		req := newReq(http.MethodPost, "/api/generate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
