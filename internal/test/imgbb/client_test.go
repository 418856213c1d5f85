package imgbb_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"watch-atelier-backend/internal/imgbb"
)

func TestClient_RetryWithBackoff(t *testing.T) {
	client := imgbb.NewClient("https://api.test.com/1", "test-key")

	callCount := 0
	err := client.RetryWithBackoff(func() error {
		callCount++
		if callCount < 3 {
			return assert.AnError
		}
		return nil
	}, 3)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestClient_RetryWithBackoff_Exhausted(t *testing.T) {
	client := imgbb.NewClient("https://api.test.com/1", "test-key")

	err := client.RetryWithBackoff(func() error {
		return assert.AnError
	}, 3)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed after 3 retries")
}

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload", r.URL.Path)
		assert.NoError(t, r.ParseMultipartForm(1 << 20))
		assert.Equal(t, "test-key", r.FormValue("key"))

		file, header, err := r.FormFile("image")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "dial.png", header.Filename)

		w.Write([]byte(`{"success":true,"data":{"url":"https://i.ibb.co/abc/dial.png"}}`))
	}))
	defer server.Close()

	client := imgbb.NewClient(server.URL, "test-key")

	url, err := client.Upload("dial.png", "image/png", []byte("png-bytes"))

	assert.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc/dial.png", url)
}

func TestClient_Upload_RetriesTransientFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"success":true,"data":{"url":"https://i.ibb.co/abc/dial.png"}}`))
	}))
	defer server.Close()

	client := imgbb.NewClient(server.URL, "test-key")

	url, err := client.Upload("dial.png", "image/png", []byte("png-bytes"))

	assert.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc/dial.png", url)
	assert.Equal(t, 2, attempts)
}

func TestClient_Upload_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":{"message":"Invalid API v1 key"}}`))
	}))
	defer server.Close()

	client := imgbb.NewClient(server.URL, "test-key")

	_, err := client.Upload("dial.png", "image/png", []byte("png-bytes"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API v1 key")
}
