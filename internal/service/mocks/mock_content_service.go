package mocks

import (
	"context"
	"io"

	"pagelift/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Upload(ctx context.Context, userID string, r io.Reader, originalFilename, mimeType string, size int64) (*model.DocumentInfo, error) {
	args := m.Called(ctx, userID, r, originalFilename, mimeType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DocumentInfo), args.Error(1)
}

func (m *MockContentService) List(ctx context.Context, userID string) ([]model.DocumentInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DocumentInfo), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
