package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pagelift/internal/model"
	"pagelift/internal/repository"
)

// CreatePageInput holds the user-supplied fields of a new page.
type CreatePageInput struct {
	Title   string  `json:"title"`
	HTML    string  `json:"html"`
	BrandID *string `json:"brand_id"`
}

// UpdatePageInput holds partial page changes; nil fields are untouched.
type UpdatePageInput struct {
	Title   *string `json:"title"`
	HTML    *string `json:"html"`
	BrandID *string `json:"brand_id"`
}

// PageStats combines the denormalized counter with the newest view events.
type PageStats struct {
	ViewCount   int64            `json:"view_count"`
	RecentViews []model.PageView `json:"recent_views"`
}

// PageService defines the use cases for pages.
type PageService interface {
	// Create stores a new draft page with a slug derived from the title.
	Create(ctx context.Context, userID string, in CreatePageInput) (*model.Page, error)

	// List returns the user's pages, newest first.
	List(ctx context.Context, userID string) ([]model.Page, error)

	// Get returns the user's page by ID.
	Get(ctx context.Context, userID, id string) (*model.Page, error)

	// Update applies partial changes to the user's page.
	Update(ctx context.Context, userID, id string, in UpdatePageInput) (*model.Page, error)

	// Publish makes the page publicly reachable under its slug.
	Publish(ctx context.Context, userID, id string) (*model.Page, error)

	// Delete removes the user's page.
	Delete(ctx context.Context, userID, id string) error

	// GetPublished returns a published page by slug for public serving.
	GetPublished(ctx context.Context, slug string) (*model.Page, error)

	// Stats returns the view counter and recent view events for the user's page.
	Stats(ctx context.Context, userID, id string) (*PageStats, error)
}

type pageService struct {
	pages repository.PageRepository
	views repository.ViewRepository
}

// NewPageService constructs a new PageService.
func NewPageService(pages repository.PageRepository, views repository.ViewRepository) PageService {
	return &pageService{pages: pages, views: views}
}

const recentViewsLimit = 20

func (s *pageService) Create(ctx context.Context, userID string, in CreatePageInput) (*model.Page, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	now := time.Now().UTC()
	p := &model.Page{
		ID:        uuid.New().String(),
		UserID:    userID,
		BrandID:   in.BrandID,
		Title:     in.Title,
		Slug:      NewSlug(in.Title),
		HTML:      in.HTML,
		Status:    model.PageStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.pages.Create(ctx, p)
}

func (s *pageService) List(ctx context.Context, userID string) ([]model.Page, error) {
	return s.pages.ListByUser(ctx, userID)
}

func (s *pageService) Get(ctx context.Context, userID, id string) (*model.Page, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.pages.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *pageService) Update(ctx context.Context, userID, id string, in UpdatePageInput) (*model.Page, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.pages.Update(ctx, userID, id, repository.PageUpdate{
		Title:   in.Title,
		HTML:    in.HTML,
		BrandID: in.BrandID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *pageService) Publish(ctx context.Context, userID, id string) (*model.Page, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.pages.SetStatus(ctx, userID, id, model.PageStatusPublished)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *pageService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.pages.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *pageService) GetPublished(ctx context.Context, slug string) (*model.Page, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	p, err := s.pages.FindPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *pageService) Stats(ctx context.Context, userID, id string) (*PageStats, error) {
	p, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	recent, err := s.views.ListRecentByPage(ctx, p.ID, recentViewsLimit)
	if err != nil {
		return nil, err
	}
	return &PageStats{ViewCount: p.ViewCount, RecentViews: recent}, nil
}

// Slugify lowercases the title and collapses every non-alphanumeric run into
// a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading hyphens
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// NewSlug derives a unique page slug: slugified title plus a short random
// suffix so identical titles never collide.
func NewSlug(title string) string {
	base := Slugify(title)
	if base == "" {
		base = "page"
	}
	suffix := strings.Split(uuid.New().String(), "-")[0]
	return base + "-" + suffix
}
