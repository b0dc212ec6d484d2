package model

import "time"

// Document is a stored content asset (image, copy deck, reference file)
// owned by a single user. StoragePath and UserID are internal; API responses
// use DocumentInfo instead so those fields never leak.
type Document struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path"`
	MimeType    string    `json:"mime_type"`
	FileSize    int64     `json:"file_size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentInfo is the fixed projection of a Document exposed over the API.
// Its key set is a contract: id, filename, mime_type, file_size,
// content_type, created_at and nothing else.
type DocumentInfo struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mime_type"`
	FileSize    int64     `json:"file_size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// Info returns the API projection of the document.
func (d *Document) Info() DocumentInfo {
	return DocumentInfo{
		ID:          d.ID,
		Filename:    d.Filename,
		MimeType:    d.MimeType,
		FileSize:    d.FileSize,
		ContentType: d.ContentType,
		CreatedAt:   d.CreatedAt,
	}
}
