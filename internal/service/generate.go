package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pagelift/internal/ai"
	"pagelift/internal/repository"
)

// GenerateInput describes a page generation request. BrandID is optional;
// when set, the brand must belong to the requesting user.
type GenerateInput struct {
	Prompt  string `json:"prompt"`
	BrandID string `json:"brand_id"`
}

// GeneratorService turns a prompt (and optionally a brand profile) into
// landing page HTML. The result is not persisted here; the client saves it
// as a draft page in a separate call.
type GeneratorService interface {
	Generate(ctx context.Context, userID string, in GenerateInput) (string, error)
}

type generatorService struct {
	gen    ai.Generator
	brands repository.BrandRepository
}

// NewGeneratorService constructs a new GeneratorService.
func NewGeneratorService(gen ai.Generator, brands repository.BrandRepository) GeneratorService {
	return &generatorService{gen: gen, brands: brands}
}

func (s *generatorService) Generate(ctx context.Context, userID string, in GenerateInput) (string, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return "", ErrPromptRequired
	}

	req := ai.PageRequest{Prompt: in.Prompt}
	if in.BrandID != "" {
		brand, err := s.brands.FindByID(ctx, userID, in.BrandID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", ErrNotFound
			}
			return "", err
		}
		req.Brand = brand
	}

	return s.gen.GeneratePage(ctx, req)
}
