package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-repo-uploader/internal/service"
	"github.com/MKhiriev/go-repo-uploader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUploadHandler wires fake behind the real validation wrapper.
func newUploadHandler(fake *mockUploadService) *Handler {
	return newTestHandlerWithServices(&service.Services{
		UploadService:  service.NewUploadValidationService().Wrap(fake),
		AppInfoService: &mockAppInfoService{version: "test"},
	})
}

func TestUpload_Success(t *testing.T) {
	want := models.UploadResponse{
		ID:       "abc",
		PagesURL: "https://octo.github.io/drop/view.html?share=abc",
		Share: models.ShareDescriptor{
			ID:        "abc",
			CreatedAt: "2026-01-01T00:00:00.000Z",
			Files:     []models.FileRecord{{Name: "a.txt", Path: "uploads/abc/a.txt", URL: "u"}},
		},
	}
	fake := &mockUploadService{
		uploadFn: func(_ context.Context, _ models.UploadRequest) (models.UploadResponse, error) {
			return want, nil
		},
	}
	h := newUploadHandler(fake)

	req := newMultipartRequest(t,
		formFile{field: "files", name: "a.txt", content: []byte("hello")},
		formFile{field: "files", name: "b.png", content: []byte{0x89, 0x50}},
	)
	rec := httptest.NewRecorder()
	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)

	require.Equal(t, 1, fake.calls)
	assert.Equal(t, []models.UploadedFile{
		{Name: "a.txt", Content: []byte("hello")},
		{Name: "b.png", Content: []byte{0x89, 0x50}},
	}, fake.lastRequest.Files)
}

func TestUpload_KeepsDirectoryComponentsOfFilename(t *testing.T) {
	fake := &mockUploadService{}
	h := newUploadHandler(fake)

	req := newMultipartRequest(t, formFile{field: "files", name: "/a/evil.txt", content: []byte("x")})
	rec := httptest.NewRecorder()
	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fake.lastRequest.Files, 1)
	assert.Equal(t, "/a/evil.txt", fake.lastRequest.Files[0].Name)
}

func TestUpload_OtherFieldsIgnored(t *testing.T) {
	fake := &mockUploadService{}
	h := newUploadHandler(fake)

	req := newMultipartRequest(t,
		formFile{field: "attachment", name: "ignored.txt", content: []byte("x")},
		formFile{field: "files", name: "kept.txt", content: []byte("y")},
	)
	rec := httptest.NewRecorder()
	h.upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fake.lastRequest.Files, 1)
	assert.Equal(t, "kept.txt", fake.lastRequest.Files[0].Name)
}

func TestUpload_NoFilesReturns400(t *testing.T) {
	tests := []struct {
		name    string
		request func(t *testing.T) *http.Request
	}{
		{
			name: "multipart without files field",
			request: func(t *testing.T) *http.Request {
				return newMultipartRequest(t)
			},
		},
		{
			name: "JSON body",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"files":[]}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
		},
		{
			name: "no body and no content type",
			request: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/upload", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &mockUploadService{}
			h := newUploadHandler(fake)

			rec := httptest.NewRecorder()
			h.upload(rec, tt.request(t))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"No files uploaded (form field \"files\")"}`, rec.Body.String())
			assert.Zero(t, fake.calls, "service must not be reached without files")
		})
	}
}

func TestUpload_ServiceErrorReturns500(t *testing.T) {
	fake := &mockUploadService{
		uploadFn: func(_ context.Context, _ models.UploadRequest) (models.UploadResponse, error) {
			return models.UploadResponse{}, errors.New("remote service error: unauthorized: Bad credentials")
		},
	}
	h := newUploadHandler(fake)

	rec := httptest.NewRecorder()
	h.upload(rec, newMultipartRequest(t, formFile{field: "files", name: "a.txt", content: []byte("x")}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"remote service error: unauthorized: Bad credentials"}`, rec.Body.String())
}

func TestUpload_MalformedMultipartReturns500(t *testing.T) {
	fake := &mockUploadService{}
	h := newUploadHandler(fake)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("garbage"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	rec := httptest.NewRecorder()
	h.upload(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrReadingMultipartForm.Error())
	assert.Zero(t, fake.calls)
}

func TestReadUploadRequest_EmptyFile(t *testing.T) {
	req := newMultipartRequest(t, formFile{field: "files", name: "empty.txt"})

	uploadRequest, err := readUploadRequest(req)

	require.NoError(t, err)
	require.Equal(t, 1, uploadRequest.Len())
	assert.Equal(t, "empty.txt", uploadRequest.Files[0].Name)
	assert.Empty(t, uploadRequest.Files[0].Content)
}
