package service

import (
	"context"
	"database/sql"
	"testing"

	"pagelift/internal/ai"
	aiMocks "pagelift/internal/ai/mocks"
	"pagelift/internal/model"
	repoMocks "pagelift/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGeneratorService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("without brand", func(t *testing.T) {
		mGen := new(aiMocks.MockGenerator)
		mBrands := new(repoMocks.MockBrandRepository)
		svc := NewGeneratorService(mGen, mBrands)

		mGen.On("GeneratePage", ctx, ai.PageRequest{Prompt: "a bakery landing page"}).
			Return("<html>bakery</html>", nil)

		html, err := svc.Generate(ctx, "user-a", GenerateInput{Prompt: "a bakery landing page"})

		assert.NoError(t, err)
		assert.Equal(t, "<html>bakery</html>", html)
		mBrands.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("folds in the owned brand", func(t *testing.T) {
		mGen := new(aiMocks.MockGenerator)
		mBrands := new(repoMocks.MockBrandRepository)
		svc := NewGeneratorService(mGen, mBrands)

		brand := &model.BrandProfile{ID: "brand-1", UserID: "user-a", Name: "Acme"}
		mBrands.On("FindByID", ctx, "user-a", "brand-1").Return(brand, nil)
		mGen.On("GeneratePage", ctx, ai.PageRequest{Prompt: "launch page", Brand: brand}).
			Return("<html>acme</html>", nil)

		html, err := svc.Generate(ctx, "user-a", GenerateInput{Prompt: "launch page", BrandID: "brand-1"})

		assert.NoError(t, err)
		assert.Equal(t, "<html>acme</html>", html)
		mGen.AssertExpectations(t)
	})

	t.Run("foreign brand id is not found", func(t *testing.T) {
		mGen := new(aiMocks.MockGenerator)
		mBrands := new(repoMocks.MockBrandRepository)
		svc := NewGeneratorService(mGen, mBrands)

		mBrands.On("FindByID", ctx, "user-a", "brand-of-user-b").Return(nil, sql.ErrNoRows)

		_, err := svc.Generate(ctx, "user-a", GenerateInput{Prompt: "launch page", BrandID: "brand-of-user-b"})

		assert.ErrorIs(t, err, ErrNotFound)
		mGen.AssertNotCalled(t, "GeneratePage", mock.Anything, mock.Anything)
	})

	t.Run("blank prompt rejected", func(t *testing.T) {
		svc := NewGeneratorService(new(aiMocks.MockGenerator), new(repoMocks.MockBrandRepository))

		_, err := svc.Generate(ctx, "user-a", GenerateInput{Prompt: "  "})
		assert.ErrorIs(t, err, ErrPromptRequired)
	})
}
