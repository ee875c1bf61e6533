// Package imagehost is a minimal HTTP client for the third-party image
// hosting service. Files are uploaded as multipart form data and served
// from the provider's CDN; this application never stores image bytes
// itself.
package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a minimal HTTP client for the image hosting API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	publicKey  string
	privateKey string
	debug      bool
}

// NewClient constructs a new image host client with sane defaults.
// endpoint is the provider's URL endpoint from the dashboard.
func NewClient(endpoint, publicKey, privateKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		endpoint:   endpoint,
		publicKey:  publicKey,
		privateKey: privateKey,
		debug:      os.Getenv("ENV") == "development",
	}
}

// UploadResult is the provider's answer to a successful upload.
type UploadResult struct {
	URL    string `json:"url"`
	FileID string `json:"fileId"`
	Name   string `json:"name"`
}

// Upload sends one file as multipart form data and returns the public
// URL plus the provider file id used for later deletion.
func (c *Client) Upload(ctx context.Context, name string, data []byte) (*UploadResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}
	if err := mw.WriteField("fileName", name); err != nil {
		return nil, fmt.Errorf("failed to write fileName field: %w", err)
	}
	if err := mw.WriteField("publicKey", c.publicKey); err != nil {
		return nil, fmt.Errorf("failed to write publicKey field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/upload", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(c.privateKey, "")

	if c.debug {
		log.Debug().Str("endpoint", c.endpoint+"/upload").Str("file", name).Msg("[IMAGEHOST] Uploading file")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upload rejected with status %d: %s", resp.StatusCode, string(respBody))
	}

	var result UploadResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if c.debug {
		log.Debug().Str("fileId", result.FileID).Str("url", result.URL).Msg("[IMAGEHOST] Upload complete")
	}
	return &result, nil
}

// Delete removes a file by provider file id. The provider's hosting
// setup cannot accept DELETE verbs, so deletion is a GET carrying a
// _method=DELETE override parameter. Non-standard but intentional.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	u := fmt.Sprintf("%s/files/%s?_method=DELETE", c.endpoint, url.PathEscape(fileID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.privateKey, "")

	if c.debug {
		log.Debug().Str("fileId", fileID).Msg("[IMAGEHOST] Deleting file")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delete rejected with status %d", resp.StatusCode)
	}
	return nil
}
