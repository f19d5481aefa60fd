package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorDetails(t *testing.T) {
	err := NewValidationError([]string{"Title", "Tags", "File"})

	assert.Equal(t, CodeValidationError, err.Code)
	assert.Equal(t, "Validation failed. Properties: (Title, Tags, File)", err.Details)
	assert.Nil(t, errors.Unwrap(err))
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New("connection reset by storage backend")
	err := NewInternalError(cause)

	// The cause stays reachable for logging but never gets serialized.
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), cause.Error())

	data, jsonErr := json.Marshal(err)
	assert.NoError(t, jsonErr)
	assert.JSONEq(t, `{"Code":"InternalError","Details":"upload failed due to an internal error"}`, string(data))
}

func TestNotFoundErrorDetails(t *testing.T) {
	err := NewNotFoundError("abc-123")

	assert.Equal(t, CodeNotFoundError, err.Code)
	assert.Equal(t, "file with id = abc-123 not found", err.Details)
}
