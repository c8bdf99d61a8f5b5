package openaicompat

import (
	"net/http"
	"time"
)

// Config configures a client for any OpenAI-compatible chat completion endpoint
// (OpenAI, Groq, DeepSeek, local gateways).
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Message is one chat turn.
type Message struct {
	Role    string // "system", "user", "assistant"
	Content string
}

// Request is a chat completion request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response is the first choice of a chat completion.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
