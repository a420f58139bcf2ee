// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gunzip(t *testing.T, body io.Reader) string {
	t.Helper()

	reader, err := gzip.NewReader(body)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		explicitHeader bool
		status         int
		body           string
		wantGzipped    bool
	}{
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			explicitHeader: true,
			status:         http.StatusOK,
			body:           "GitHub uploader running",
			wantGzipped:    true,
		},
		{
			name:           "no compression when client doesn't accept gzip",
			acceptEncoding: "",
			explicitHeader: true,
			status:         http.StatusOK,
			body:           "GitHub uploader running",
		},
		{
			name:           "accept-encoding with multiple values including gzip",
			acceptEncoding: "deflate, gzip, br",
			explicitHeader: true,
			status:         http.StatusOK,
			body:           `{"id":"abc"}`,
			wantGzipped:    true,
		},
		{
			name:           "implicit 200 from Write is compressed",
			acceptEncoding: "gzip",
			status:         http.StatusOK,
			body:           "implicit",
			wantGzipped:    true,
		},
		{
			name:           "error response is compressed",
			acceptEncoding: "gzip",
			explicitHeader: true,
			status:         http.StatusInternalServerError,
			body:           `{"error":"boom"}`,
			wantGzipped:    true,
		},
		{
			name:           "large response body compression",
			acceptEncoding: "gzip",
			explicitHeader: true,
			status:         http.StatusOK,
			body:           strings.Repeat("Large data ", 1000),
			wantGzipped:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.explicitHeader {
					w.WriteHeader(tt.status)
				}
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, gunzip(t, rr.Body))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, rr.Body.String())
			}
		})
	}
}

func TestGZip_NoContentIsNotEncoded(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_EmptyHandlerWritesNothing(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_RemovesContentLength(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "5")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Length"))
	assert.Equal(t, "hello", gunzip(t, rr.Body))
}

func TestGZip_ConcurrentRequestsReusePool(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Query().Get("v")))
	})
	handler := withGZip(next)

	const n = 20
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func() {
			defer func() { done <- struct{}{} }()

			req := httptest.NewRequest(http.MethodGet, "/?v=payload", nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			reader, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			data, err := io.ReadAll(reader)
			assert.NoError(t, err)
			assert.Equal(t, "payload", string(data))
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
}
