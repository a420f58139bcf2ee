package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost", 0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
	assert.Equal(t, "http://localhost", client.BaseURL)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://localhost", 0)
	client2 := NewHTTPClient("http://localhost", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	withTimeout := NewHTTPClient("http://localhost", 5*time.Second)
	withoutTimeout := NewHTTPClient("http://localhost", 0)

	assert.Equal(t, 5*time.Second, withTimeout.GetClient().Timeout)
	assert.Zero(t, withoutTimeout.GetClient().Timeout)
}

func TestNewHTTPClient_UsesBaseURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second).R().Get("/ping")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}
