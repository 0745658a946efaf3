// Package resume calls the external extraction service that turns a resume
// file into structured profile fields. The store has no awareness of this
// package; callers merge the result into a profile form themselves.
package resume

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Profile is the extraction result. No validation is applied to it.
type Profile struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Skills   []string `json:"skills"`
	Location string   `json:"location"`
	Bio      string   `json:"bio"`
}

type parseRequest struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New builds a client for the extraction endpoint. A nil httpClient gets a
// 20 second timeout.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, httpClient: httpClient}
}

// Parse posts the resume bytes and returns the extracted profile. A missing
// mime type defaults to application/pdf, matching what uploads usually are.
func (c *Client) Parse(ctx context.Context, data []byte, mimeType string) (*Profile, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("resume extraction endpoint not configured")
	}
	if mimeType == "" {
		mimeType = "application/pdf"
	}
	body, err := json.Marshal(parseRequest{
		Data:     base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal parse request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call resume extractor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("resume extractor returned %d: %s", resp.StatusCode, snippet)
	}
	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode extractor response: %w", err)
	}
	return &profile, nil
}
