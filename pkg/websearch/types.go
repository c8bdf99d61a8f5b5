package websearch

import "net/http"

// Config configures the Custom Search client.
type Config struct {
	APIKey     string
	CX         string // Programmable Search Engine ID
	HTTPClient *http.Client
}

// Result is one web search hit.
type Result struct {
	Title   string
	Link    string
	Snippet string
}
