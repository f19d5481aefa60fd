package inmemory

import (
	"github.com/intakekit/intake/applications/server/domain"
	"github.com/intakekit/intake/applications/server/interfaces"
)

type staticSettings struct {
	maxFileSize domain.FileSizeLimit
}

// NewSettings returns a provider with a fixed upload limit, read from
// config at startup.
func NewSettings(maxFileSize domain.FileSizeLimit) interfaces.SettingsProvider {
	return &staticSettings{maxFileSize: maxFileSize}
}

func (s *staticSettings) MaxFileSizeForUpload() domain.FileSizeLimit {
	return s.maxFileSize
}
