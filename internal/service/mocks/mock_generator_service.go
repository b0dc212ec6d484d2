package mocks

import (
	"context"

	"pagelift/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockGeneratorService struct {
	mock.Mock
}

func (m *MockGeneratorService) Generate(ctx context.Context, userID string, in service.GenerateInput) (string, error) {
	args := m.Called(ctx, userID, in)
	return args.String(0), args.Error(1)
}
