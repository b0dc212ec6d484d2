package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pagelift/internal/model"
	"pagelift/internal/repository"
)

// AnalyticsService records page views. Recording is best-effort: the HTTP
// handler acknowledges success even when a sub-operation failed (the error is
// only logged), so a broken analytics path can never break a public page.
type AnalyticsService interface {
	// RecordView appends a view event and bumps the page's counter. The two
	// store operations are started together and both are awaited; they do not
	// depend on each other. Referrer and userAgent are nil when the header was
	// absent. The page id is not verified to exist; every HTTP call counts as
	// one view, duplicates included.
	RecordView(ctx context.Context, pageID string, referrer, userAgent *string) error
}

type analyticsService struct {
	views repository.ViewRepository
	pages repository.PageRepository
}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService(views repository.ViewRepository, pages repository.PageRepository) AnalyticsService {
	return &analyticsService{views: views, pages: pages}
}

func (s *analyticsService) RecordView(ctx context.Context, pageID string, referrer, userAgent *string) error {
	if pageID == "" {
		return ErrIDRequired
	}

	view := &model.PageView{
		ID:        uuid.New().String(),
		PageID:    pageID,
		Referrer:  referrer,
		UserAgent: userAgent,
		CreatedAt: time.Now().UTC(),
	}

	// Plain errgroup, not WithContext: a failed insert must not cancel the
	// in-flight increment (or vice versa). Wait returns the first error.
	var g errgroup.Group
	g.Go(func() error {
		return s.views.Create(ctx, view)
	})
	g.Go(func() error {
		return s.pages.IncrementViews(ctx, pageID)
	})
	return g.Wait()
}
