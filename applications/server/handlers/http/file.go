package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/mux"

	"github.com/intakekit/intake/applications/server"
	"github.com/intakekit/intake/applications/server/domain"
)

// maxMultipartMemory caps how much of a parsed form is buffered in memory;
// larger parts spill to temp files.
const maxMultipartMemory = 32 << 20 // 32 MB

func NewRouter(svc server.UploadService, logger log.Logger) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/file", UploadFileHandler(svc, logger)).Methods(http.MethodPost)
	r.HandleFunc("/file/{id}", GetFileHandler(svc, logger)).Methods(http.MethodGet)
	r.HandleFunc("/file/{id}", DeleteFileHandler(svc, logger)).Methods(http.MethodDelete)
	return r
}

func UploadFileHandler(svc server.UploadService, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			level.Error(logger).Log("msg", "ParseMultipartForm error",
				"err", err,
			)
			writeServiceErr(w, domain.NewInternalError(fmt.Errorf("can't parse multipart form: %w", err)))
			return
		}

		req, closeFile := uploadRequestFromForm(r)
		defer closeFile()

		result, err := svc.Upload(r.Context(), req)
		if err != nil {
			level.Error(logger).Log("msg", "Upload error",
				"file", req.FileName,
				"err", err,
			)
			writeServiceErr(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// uploadRequestFromForm builds the request from an already-parsed multipart
// form. A missing or unreadable file part leaves FileContent nil so
// validation reports File rather than the transport failing the request.
func uploadRequestFromForm(r *http.Request) (domain.UploadRequest, func()) {
	req := domain.UploadRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	if r.MultipartForm != nil {
		req.Tags = r.MultipartForm.Value["tags"]
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return req, func() {}
	}

	req.FileName = header.Filename
	req.FileSize = header.Size
	req.FileContent = file

	return req, func() { file.Close() }
}

func GetFileHandler(svc server.UploadService, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		file, err := svc.Fetch(r.Context(), id)
		if err != nil {
			level.Error(logger).Log("msg", "Fetch error",
				"id", id,
				"err", err,
			)
			writeServiceErr(w, err)
			return
		}
		defer file.Body.Close()

		w.Header().Set("Content-Length", strconv.FormatInt(file.ContentLength, 10))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))

		if _, err = io.Copy(w, file.Body); err != nil {
			level.Error(logger).Log("msg", "error body copy",
				"id", id,
				"err", err,
			)
			return
		}
	}
}

func DeleteFileHandler(svc server.UploadService, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := svc.Remove(r.Context(), id); err != nil {
			level.Error(logger).Log("msg", "Remove error",
				"id", id,
				"err", err,
			)
			writeServiceErr(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeServiceErr maps a service error to a status code and serializes its
// Code and Details; an internal cause is never written to the client.
func writeServiceErr(w http.ResponseWriter, err error) {
	var svcErr *domain.ServiceError
	if !errors.As(err, &svcErr) {
		svcErr = domain.NewInternalError(err)
	}

	writeJSON(w, statusFor(svcErr.Code), svcErr)
}

func statusFor(code domain.ErrorCode) int {
	switch code {
	case domain.CodeValidationError:
		return http.StatusBadRequest
	case domain.CodeNotFoundError:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Println("can't write response ", err)
	}
}
