package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"pagelift/internal/model"
	"pagelift/internal/repository"
	"pagelift/internal/storage"
)

// ContentService defines the use cases for uploaded content documents.
// API responses only ever see the DocumentInfo projection; storage paths and
// owner ids stay internal.
type ContentService interface {
	// Upload streams the content to object storage, saves metadata to the DB,
	// and rolls back the object if the DB save fails.
	Upload(ctx context.Context, userID string, r io.Reader, originalFilename, mimeType string, size int64) (*model.DocumentInfo, error)

	// List returns the user's documents, newest first, projected for the API.
	List(ctx context.Context, userID string) ([]model.DocumentInfo, error)

	// Delete removes the user's document from both storage and the DB.
	Delete(ctx context.Context, userID, id string) error
}

type contentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewContentService constructs a new ContentService.
func NewContentService(store storage.Storage, repo repository.DocumentRepository) ContentService {
	return &contentService{store: store, repo: repo}
}

func (s *contentService) Upload(ctx context.Context, userID string, r io.Reader, originalFilename, mimeType string, size int64) (*model.DocumentInfo, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	// Stored object name is UUID + original extension
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("content", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: mimeType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		ID:          uuid.New().String(),
		UserID:      userID,
		Filename:    originalFilename,
		StoragePath: objInfo.Key,
		MimeType:    mimeType,
		FileSize:    objInfo.Size,
		ContentType: ClassifyContent(mimeType),
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	info := stored.Info()
	return &info, nil
}

func (s *contentService) List(ctx context.Context, userID string) ([]model.DocumentInfo, error) {
	docs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	items := make([]model.DocumentInfo, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].Info())
	}
	return items, nil
}

func (s *contentService) Delete(ctx context.Context, userID, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	// Delete from storage first; if this fails, keep the DB row so the
	// reference to the object is not lost.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return nil
}

// ClassifyContent maps a MIME type to the coarse content classification
// stored with each document.
func ClassifyContent(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case strings.HasPrefix(mimeType, "text/"):
		return "copy"
	default:
		return "document"
	}
}
