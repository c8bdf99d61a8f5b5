package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Client calls a Hugging Face text-to-image inference endpoint.
type Client struct {
	apiKey     string
	modelURL   string
	httpClient *http.Client
}

// New creates a Client, filling in defaults.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("huggingface: API key is required")
	}
	if cfg.ModelURL == "" {
		cfg.ModelURL = DefaultModelURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{apiKey: cfg.APIKey, modelURL: cfg.ModelURL, httpClient: cfg.HTTPClient}, nil
}

// TextToImage returns the encoded image generated for prompt.
func (c *Client) TextToImage(ctx context.Context, prompt string) ([]byte, error) {
	body, err := json.Marshal(textToImageRequest{Inputs: prompt})
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.modelURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "image/jpeg")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("huggingface: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			return nil, fmt.Errorf("huggingface: status %d: %s", resp.StatusCode, e.Error)
		}
		return nil, fmt.Errorf("huggingface: status %d", resp.StatusCode)
	}
	if len(data) == 0 {
		return nil, errors.New("huggingface: empty image")
	}
	return data, nil
}
