package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"pagelift/internal/model"
	"pagelift/internal/repository"
)

// CreateBrandInput holds the user-supplied fields of a new brand profile.
type CreateBrandInput struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Industry       string `json:"industry"`
	Tone           string `json:"tone"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	LogoURL        string `json:"logo_url"`
}

// BrandService defines the use cases for brand profiles.
type BrandService interface {
	// List returns the user's brand profiles, newest first. The full row is
	// exposed; it holds nothing beyond the owner's own profile data.
	List(ctx context.Context, userID string) ([]model.BrandProfile, error)

	// Create stores a new brand profile for the user.
	Create(ctx context.Context, userID string, in CreateBrandInput) (*model.BrandProfile, error)

	// Delete removes the user's brand profile.
	Delete(ctx context.Context, userID, id string) error
}

type brandService struct {
	repo repository.BrandRepository
}

// NewBrandService constructs a new BrandService.
func NewBrandService(repo repository.BrandRepository) BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) List(ctx context.Context, userID string) ([]model.BrandProfile, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *brandService) Create(ctx context.Context, userID string, in CreateBrandInput) (*model.BrandProfile, error) {
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	b := &model.BrandProfile{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           in.Name,
		Description:    in.Description,
		Industry:       in.Industry,
		Tone:           in.Tone,
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
		LogoURL:        in.LogoURL,
		CreatedAt:      time.Now().UTC(),
	}
	return s.repo.Create(ctx, b)
}

func (s *brandService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
