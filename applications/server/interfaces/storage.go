package interfaces

import (
	"context"
	"errors"
	"io"

	"github.com/intakekit/intake/applications/server/domain"
)

// ErrNotFound is returned by capabilities when no content exists for an
// identifier.
var ErrNotFound = errors.New("file not found")

// StorageCapability persists named content streams and hands back opaque
// identifiers. Store may block on a slow or remote backend; callers await
// its completion. Concurrent calls are allowed, any serialization the
// backend needs is its own concern.
type StorageCapability interface {
	Store(ctx context.Context, name string, content io.Reader) (string, error)
	Open(ctx context.Context, id string) (domain.StoredFile, error)
	Delete(ctx context.Context, id string) error
}

// SettingsProvider exposes the configured upload limit. The value must be
// stable for the lifetime of a request; it may be read arbitrarily often.
type SettingsProvider interface {
	MaxFileSizeForUpload() domain.FileSizeLimit
}
