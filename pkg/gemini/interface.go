package gemini

import "context"

// IGemini is the generateContent surface the provider adapter depends on.
// Client is safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	Model() string
}

var _ IGemini = (*Client)(nil)
