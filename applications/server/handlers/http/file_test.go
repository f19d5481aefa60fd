package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intakekit/intake/applications/server/adapters/inmemory"
	"github.com/intakekit/intake/applications/server/domain"
	"github.com/intakekit/intake/applications/server/interfaces"
	"github.com/intakekit/intake/applications/server/services"
)

var testLimit = domain.FileSizeLimit{Value: 2, Unit: domain.Megabyte}

func newTestRouter(t *testing.T) (http.Handler, interfaces.StorageCapability) {
	t.Helper()

	storage := inmemory.NewStorage(log.NewNopLogger())
	svc := services.NewService(inmemory.NewSettings(testLimit), storage)

	return NewRouter(svc, log.NewNopLogger()), storage
}

type uploadForm struct {
	title       string
	tags        []string
	description string
	fileName    string
	fileContent []byte
}

func multipartRequest(t *testing.T, form uploadForm) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if form.title != "" {
		require.NoError(t, writer.WriteField("title", form.title))
	}
	for _, tag := range form.tags {
		require.NoError(t, writer.WriteField("tags", tag))
	}
	if form.description != "" {
		require.NoError(t, writer.WriteField("description", form.description))
	}
	if form.fileName != "" {
		part, err := writer.CreateFormFile("file", form.fileName)
		require.NoError(t, err)
		_, err = part.Write(form.fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/file", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func TestUploadFile_Valid(t *testing.T) {
	router, storage := newTestRouter(t)

	req := multipartRequest(t, uploadForm{
		title:       "Title",
		tags:        []string{"Hans", "Wurst"},
		description: "two persons",
		fileName:    "persons.txt",
		fileContent: []byte("Hans Wurst"),
	})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result domain.UploadResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Identifier)

	// The stored content is retrievable under the returned identifier.
	stored, err := storage.Open(context.Background(), result.Identifier)
	require.NoError(t, err)
	defer stored.Body.Close()

	data, err := io.ReadAll(stored.Body)
	require.NoError(t, err)
	assert.Equal(t, "Hans Wurst", string(data))
	assert.Equal(t, "persons.txt", stored.Name)
}

func TestUploadFile_AllFieldsMissing(t *testing.T) {
	router, storage := newTestRouter(t)

	req := multipartRequest(t, uploadForm{})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"Code":"ValidationError","Details":"Validation failed. Properties: (Title, Tags, File)"}`,
		w.Body.String(),
	)

	// Nothing was stored for the rejected request.
	_, err := storage.Open(context.Background(), "any")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestUploadFile_FileTooLarge(t *testing.T) {
	router, _ := newTestRouter(t)

	req := multipartRequest(t, uploadForm{
		title:       "Title",
		tags:        []string{"Hans"},
		fileName:    "large.bin",
		fileContent: bytes.Repeat([]byte("x"), int(testLimit.Bytes())+1),
	})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"Code":"ValidationError","Details":"Validation failed. Properties: (File)"}`,
		w.Body.String(),
	)
}

func TestGetFile(t *testing.T) {
	router, storage := newTestRouter(t)

	id, err := storage.Store(context.Background(), "persons.txt", bytes.NewReader([]byte("Hans Wurst")))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/file/"+id, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hans Wurst", w.Body.String())
	assert.Equal(t, "10", w.Header().Get("Content-Length"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "persons.txt")
}

func TestGetFile_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/file/no-such-id", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var svcErr domain.ServiceError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &svcErr))
	assert.Equal(t, domain.CodeNotFoundError, svcErr.Code)
}

func TestDeleteFile(t *testing.T) {
	router, storage := newTestRouter(t)

	id, err := storage.Store(context.Background(), "persons.txt", bytes.NewReader([]byte("Hans Wurst")))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/file/"+id, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	_, err = storage.Open(context.Background(), id)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

type failingStorage struct{}

func (failingStorage) Store(ctx context.Context, name string, content io.Reader) (string, error) {
	return "", errors.New("bucket unavailable")
}

func (failingStorage) Open(ctx context.Context, id string) (domain.StoredFile, error) {
	return domain.StoredFile{}, errors.New("bucket unavailable")
}

func (failingStorage) Delete(ctx context.Context, id string) error {
	return errors.New("bucket unavailable")
}

func TestUploadFile_StorageFailure(t *testing.T) {
	svc := services.NewService(inmemory.NewSettings(testLimit), failingStorage{})
	router := NewRouter(svc, log.NewNopLogger())

	req := multipartRequest(t, uploadForm{
		title:       "Title",
		tags:        []string{"Hans"},
		fileName:    "persons.txt",
		fileContent: []byte("Hans Wurst"),
	})
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The backend cause never leaks to the client.
	assert.NotContains(t, w.Body.String(), "bucket unavailable")
	assert.JSONEq(t,
		`{"Code":"InternalError","Details":"upload failed due to an internal error"}`,
		w.Body.String(),
	)
}
