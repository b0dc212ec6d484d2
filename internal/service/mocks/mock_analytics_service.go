package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) RecordView(ctx context.Context, pageID string, referrer, userAgent *string) error {
	args := m.Called(ctx, pageID, referrer, userAgent)
	return args.Error(0)
}
