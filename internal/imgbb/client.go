package imgbb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client talks to the ImgBB image hosting API
// (https://api.imgbb.com/). Used by the admin catalog forms when the
// image host is configured as imgbb instead of Supabase Storage.
type Client struct {
	baseURL    string
	apiKey     string
	expiration int // seconds an uploaded image is kept; zero keeps it indefinitely
	httpClient *http.Client
}

type uploadAPIResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
		DeleteURL  string `json:"delete_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Upload pushes an image to ImgBB and returns its public URL,
// retrying transient failures with backoff. ImgBB derives the stored
// content type itself, so contentType is accepted for interface
// parity and ignored.
func (c *Client) Upload(filename, contentType string, data []byte) (string, error) {
	body, formContentType, err := c.buildForm(filename, data)
	if err != nil {
		return "", err
	}

	var url string
	err = c.RetryWithBackoff(func() error {
		uploaded, err := c.doUpload(body, formContentType)
		if err != nil {
			return err
		}
		url = uploaded
		return nil
	}, 3)
	if err != nil {
		return "", err
	}
	return url, nil
}

func (c *Client) buildForm(filename string, data []byte) ([]byte, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("key", c.apiKey); err != nil {
		return nil, "", fmt.Errorf("failed to write form field: %w", err)
	}
	if c.expiration > 0 {
		if err := writer.WriteField("expiration", fmt.Sprintf("%d", c.expiration)); err != nil {
			return nil, "", fmt.Errorf("failed to write form field: %w", err)
		}
	}
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}
	return body.Bytes(), writer.FormDataContentType(), nil
}

func (c *Client) doUpload(body []byte, formContentType string) (string, error) {
	req, err := http.NewRequest("POST", c.baseURL+"/upload", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", formContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("imgbb upload failed: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	var result uploadAPIResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(respBody))
	}
	if !result.Success {
		if result.Error.Message != "" {
			return "", fmt.Errorf("imgbb upload failed: %s", result.Error.Message)
		}
		return "", fmt.Errorf("imgbb upload failed: body: %s", string(respBody))
	}
	if result.Data.URL == "" {
		return "", fmt.Errorf("imgbb returned an empty url, body: %s", string(respBody))
	}

	return result.Data.URL, nil
}

// RetryWithBackoff executes a function with exponential backoff retry logic
func (c *Client) RetryWithBackoff(fn func() error, maxRetries int) error {
	backoffs := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if i < len(backoffs) {
			time.Sleep(backoffs[i])
		}
	}

	return fmt.Errorf("failed after %d retries: %w", maxRetries, lastErr)
}
