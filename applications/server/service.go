package server

import (
	"context"

	"github.com/intakekit/intake/applications/server/domain"
)

type UploadService interface {
	Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error)
	Fetch(ctx context.Context, id string) (domain.StoredFile, error)
	Remove(ctx context.Context, id string) error
}
