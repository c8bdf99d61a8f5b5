package websearch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// MaxResults is the largest page the Custom Search API returns.
const MaxResults = 10

// Client wraps the Google Custom Search JSON API.
type Client struct {
	service *customsearch.Service
	apiKey  string
	cx      string
}

// New creates a Custom Search client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.CX == "" {
		return nil, errors.New("websearch: api key and cx are required")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}

	svc, err := customsearch.NewService(ctx, option.WithHTTPClient(cfg.HTTPClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &Client{service: svc, apiKey: cfg.APIKey, cx: cfg.CX}, nil
}

// Search returns up to n results for query.
func (c *Client) Search(ctx context.Context, query string, n int) ([]Result, error) {
	if n <= 0 || n > MaxResults {
		n = MaxResults
	}

	res, err := c.service.Cse.List().
		Q(query).
		Cx(c.cx).
		Num(int64(n)).
		Context(ctx).
		Do(googleapi.QueryParameter("key", c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to search %q: %w", query, err)
	}

	results := make([]Result, 0, len(res.Items))
	for _, item := range res.Items {
		results = append(results, Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}
