package mocks

import (
	"context"

	"pagelift/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockViewRepository struct {
	mock.Mock
}

func (m *MockViewRepository) Create(ctx context.Context, v *model.PageView) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockViewRepository) ListRecentByPage(ctx context.Context, pageID string, limit int) ([]model.PageView, error) {
	args := m.Called(ctx, pageID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PageView), args.Error(1)
}
