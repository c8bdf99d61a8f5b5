package youtube_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"desktop-assistant/pkg/youtube"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func TestFirstVideoURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("key") != "k" || q.Get("part") != "id" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if q.Get("q") == "nothing" {
			w.Write([]byte(`{"items":[]}`))
			return
		}
		w.Write([]byte(`{"items":[{"id":{"kind":"youtube#channel","channelId":"UC1"}},{"id":{"kind":"youtube#video","videoId":"kJQP7kiw5Fk"}}]}`))
	}))
	defer ts.Close()

	httpClient := &http.Client{
		Transport: &rewriteTransport{Transport: http.DefaultTransport, Host: strings.TrimPrefix(ts.URL, "http://")},
	}
	c, err := youtube.New(context.Background(), youtube.Config{APIKey: "k", HTTPClient: httpClient})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := c.FirstVideoURL(context.Background(), "despacito")
	if err != nil {
		t.Fatalf("FirstVideoURL: %v", err)
	}
	if got != "https://www.youtube.com/watch?v=kJQP7kiw5Fk" {
		t.Errorf("unexpected url %q", got)
	}

	if _, err := c.FirstVideoURL(context.Background(), "nothing"); !errors.Is(err, youtube.ErrNoVideo) {
		t.Errorf("expected ErrNoVideo, got %v", err)
	}
}

func TestSearchURL(t *testing.T) {
	if got := youtube.SearchURL("lo fi beats"); got != "https://www.youtube.com/results?search_query=lo+fi+beats" {
		t.Errorf("unexpected url %q", got)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := youtube.New(context.Background(), youtube.Config{}); err == nil {
		t.Error("expected error without api key")
	}
}
