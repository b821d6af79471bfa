// internal/classifier/client_test.go
package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextDetectorClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/detect", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		json.NewEncoder(w).Encode(map[string]bool{
			"textDetected": req["image"] == "has-text",
		})
	}))
	defer srv.Close()

	c := NewTextDetectorClient(srv.URL, logrus.New())

	detected, err := c.DetectText(context.Background(), "has-text")
	require.NoError(t, err)
	assert.True(t, detected)

	detected, err = c.DetectText(context.Background(), "clean")
	require.NoError(t, err)
	assert.False(t, detected)
}

func TestTextDetectorClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewTextDetectorClient(srv.URL, logrus.New())
	_, err := c.DetectText(context.Background(), "img")
	assert.Error(t, err)
}

func TestProfanityClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/clean", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"cleanText": req["text"],
			"profane":   req["text"] == "darn",
		})
	}))
	defer srv.Close()

	c := NewProfanityClient(srv.URL, logrus.New())

	clean, profane, err := c.Clean(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", clean)
	assert.False(t, profane)

	_, profane, err = c.Clean(context.Background(), "darn")
	require.NoError(t, err)
	assert.True(t, profane)
}

func TestProfanityClientUnreachable(t *testing.T) {
	c := NewProfanityClient("http://127.0.0.1:1", logrus.New())
	_, _, err := c.Clean(context.Background(), "hello")
	assert.Error(t, err)
}

func TestNops(t *testing.T) {
	detected, err := NopDetector{}.DetectText(context.Background(), "anything")
	require.NoError(t, err)
	assert.False(t, detected)

	clean, profane, err := PassthroughFilter{}.Clean(context.Background(), "as-is")
	require.NoError(t, err)
	assert.Equal(t, "as-is", clean)
	assert.False(t, profane)
}
