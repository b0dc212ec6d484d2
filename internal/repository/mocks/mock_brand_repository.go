package mocks

import (
	"context"

	"pagelift/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) Create(ctx context.Context, b *model.BrandProfile) (*model.BrandProfile, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BrandProfile), args.Error(1)
}

func (m *MockBrandRepository) ListByUser(ctx context.Context, userID string) ([]model.BrandProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BrandProfile), args.Error(1)
}

func (m *MockBrandRepository) FindByID(ctx context.Context, userID, id string) (*model.BrandProfile, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BrandProfile), args.Error(1)
}

func (m *MockBrandRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
