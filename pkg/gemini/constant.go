package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// generateURLFormat is base URL, model, API key.
	generateURLFormat = "%s/models/%s:generateContent?key=%s"

	// maxErrorBody caps how much of a failed response is kept in the error.
	maxErrorBody = 4096
)
