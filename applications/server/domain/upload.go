package domain

import "io"

// UploadRequest is built once per incoming request and never persisted.
// FileContent is consumed by the storage capability on dispatch.
type UploadRequest struct {
	Title       string
	Tags        []string
	Description string
	FileName    string
	FileSize    int64
	FileContent io.Reader
}

// UploadResult carries the identifier assigned by the storage capability.
type UploadResult struct {
	Identifier string `json:"Identifier"`
}

// StoredFile is what the retrieval path returns. The caller owns Body.
type StoredFile struct {
	Name          string
	ContentLength int64
	Body          io.ReadCloser
}
