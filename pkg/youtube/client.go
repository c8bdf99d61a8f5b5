package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

const (
	// WatchURL is prefixed to a video ID.
	WatchURL = "https://www.youtube.com/watch?v="
	// ResultsURL is prefixed to an escaped search query.
	ResultsURL = "https://www.youtube.com/results?search_query="
)

// ErrNoVideo is returned when a search finds no playable video.
var ErrNoVideo = errors.New("youtube: no video found")

// Config configures the YouTube Data API client.
type Config struct {
	APIKey     string
	HTTPClient *http.Client
}

// Client looks up videos with the YouTube Data API.
type Client struct {
	service *yt.Service
	apiKey  string
}

// New creates a YouTube client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("youtube: api key is required")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}

	svc, err := yt.NewService(ctx, option.WithHTTPClient(cfg.HTTPClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &Client{service: svc, apiKey: cfg.APIKey}, nil
}

// FirstVideoURL returns the watch URL of the top video for query.
func (c *Client) FirstVideoURL(ctx context.Context, query string) (string, error) {
	res, err := c.service.Search.List([]string{"id"}).
		Q(query).
		MaxResults(5).
		Context(ctx).
		Do(googleapi.QueryParameter("key", c.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to search youtube for %q: %w", query, err)
	}

	for _, item := range res.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			return WatchURL + item.Id.VideoId, nil
		}
	}
	return "", ErrNoVideo
}

// SearchURL returns the YouTube results page for query.
func SearchURL(query string) string {
	return ResultsURL + url.QueryEscape(query)
}
