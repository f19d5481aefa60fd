package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/intakekit/intake/applications/server"
	"github.com/intakekit/intake/applications/server/domain"
	"github.com/intakekit/intake/applications/server/interfaces"
)

type service struct {
	settings interfaces.SettingsProvider
	storage  interfaces.StorageCapability
}

func NewService(settings interfaces.SettingsProvider, storage interfaces.StorageCapability) server.UploadService {
	return &service{
		settings: settings,
		storage:  storage,
	}
}

// Upload validates the request and, only if it passes, stores the content
// through the capability. Exactly one of UploadResult or *ServiceError is
// produced; an invalid request never reaches storage.
func (s *service) Upload(ctx context.Context, req domain.UploadRequest) (domain.UploadResult, error) {
	limit := s.settings.MaxFileSizeForUpload()

	outcome := ValidateUpload(req, limit)
	if !outcome.Valid() {
		return domain.UploadResult{}, domain.NewValidationError(outcome.FailedFields())
	}

	id, err := s.storage.Store(ctx, req.FileName, req.FileContent)
	if err != nil {
		return domain.UploadResult{}, domain.NewInternalError(fmt.Errorf("can't store file %q: %w", req.FileName, err))
	}

	return domain.UploadResult{Identifier: id}, nil
}

func (s *service) Fetch(ctx context.Context, id string) (domain.StoredFile, error) {
	file, err := s.storage.Open(ctx, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		return domain.StoredFile{}, domain.NewNotFoundError(id)
	}
	if err != nil {
		return domain.StoredFile{}, domain.NewInternalError(fmt.Errorf("can't open file %s: %w", id, err))
	}

	return file, nil
}

func (s *service) Remove(ctx context.Context, id string) error {
	err := s.storage.Delete(ctx, id)
	if errors.Is(err, interfaces.ErrNotFound) {
		return domain.NewNotFoundError(id)
	}
	if err != nil {
		return domain.NewInternalError(fmt.Errorf("can't delete file %s: %w", id, err))
	}

	return nil
}
