package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-repo-uploader/internal/adapter"
	"github.com/MKhiriev/go-repo-uploader/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestStatusAndMessageFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no files",
			err:         service.ErrNoFilesProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: `No files uploaded (form field "files")`,
		},
		{
			name:        "wrapped no files",
			err:         fmt.Errorf("upload: %w", service.ErrNoFilesProvided),
			wantStatus:  http.StatusBadRequest,
			wantMessage: `No files uploaded (form field "files")`,
		},
		{
			name:        "remote unauthorized collapses to 500",
			err:         fmt.Errorf("%w: %w: Bad credentials", adapter.ErrRemoteService, adapter.ErrUnauthorized),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "remote service error: unauthorized: Bad credentials",
		},
		{
			name:        "remote rate limit collapses to 500",
			err:         fmt.Errorf("%w: %w: API rate limit exceeded", adapter.ErrRemoteService, adapter.ErrRateLimited),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "remote service error: rate limited: API rate limit exceeded",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMessage, messageFromError(tt.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, errors.New("Not Found"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
