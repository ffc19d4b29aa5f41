// uploader.go - Client for the external image-hosting API

package uploader // Declares the package name

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Package-level client, configured once at startup like the database connection.
var (
	endpoint string
	apiKey   string
	client   = &http.Client{Timeout: 15 * time.Second}
)

// Init configures the uploader with the image host endpoint and API key.
func Init(uploadURL, key string) {
	endpoint = uploadURL
	apiKey = key
}

// Upload sends the image to the external host and returns the durable public
// URL. The host is opaque: any transport error, non-2xx status, or response
// without a URL is reported as an error, never retried.
func Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	// Build the multipart request body
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if apiKey != "" {
		if err := writer.WriteField("key", apiKey); err != nil {
			return "", err
		}
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", err
	}
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image host unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var result struct {
		Success bool `json:"success"`
		Data    struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("image host sent malformed response: %w", err)
	}
	if result.Data.URL == "" {
		return "", fmt.Errorf("image host sent no URL")
	}
	return result.Data.URL, nil
}
