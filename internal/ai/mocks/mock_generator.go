package mocks

import (
	"context"

	"pagelift/internal/ai"

	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GeneratePage(ctx context.Context, req ai.PageRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
