package services

import "github.com/intakekit/intake/applications/server/domain"

// Field names reported on validation failure, in declaration order.
const (
	fieldTitle = "Title"
	fieldTags  = "Tags"
	fieldFile  = "File"
)

// ValidationOutcome is either valid or carries the failing field names in
// the fixed order Title, Tags, File.
type ValidationOutcome struct {
	failed []string
}

func (o ValidationOutcome) Valid() bool {
	return len(o.failed) == 0
}

func (o ValidationOutcome) FailedFields() []string {
	return o.failed
}

// ValidateUpload checks the request against the configured limit. All
// checks always run; failures aggregate instead of short-circuiting. A nil
// or zero-byte file stream counts as a missing File, as does a size over
// the limit.
func ValidateUpload(req domain.UploadRequest, limit domain.FileSizeLimit) ValidationOutcome {
	var failed []string

	if req.Title == "" {
		failed = append(failed, fieldTitle)
	}

	if len(req.Tags) == 0 {
		failed = append(failed, fieldTags)
	}

	if req.FileContent == nil || req.FileSize <= 0 || req.FileSize > limit.Bytes() {
		failed = append(failed, fieldFile)
	}

	return ValidationOutcome{failed: failed}
}
