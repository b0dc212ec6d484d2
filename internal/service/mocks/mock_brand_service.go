package mocks

import (
	"context"

	"pagelift/internal/model"
	"pagelift/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockBrandService struct {
	mock.Mock
}

func (m *MockBrandService) List(ctx context.Context, userID string) ([]model.BrandProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BrandProfile), args.Error(1)
}

func (m *MockBrandService) Create(ctx context.Context, userID string, in service.CreateBrandInput) (*model.BrandProfile, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BrandProfile), args.Error(1)
}

func (m *MockBrandService) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}
