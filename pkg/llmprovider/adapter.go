package llmprovider

import (
	"context"
	"strings"

	"desktop-assistant/pkg/gemini"
	"desktop-assistant/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := gemini.GenerateRequest{
		Contents: convertToGeminiContents(req.Messages),
	}

	// Gemini has no system role inside contents; system messages are folded into the instruction.
	system := req.SystemInstruction
	for _, m := range req.Messages {
		if m.Role == RoleSystem {
			system = strings.TrimSpace(system + "\n\n" + m.Text)
		}
	}
	if system != "" {
		geminiReq.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: system}}}
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		geminiReq.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	usage := &Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, 0, len(msgs))
	for _, msg := range msgs {
		role := msg.Role
		switch role {
		case RoleSystem:
			continue
		case RoleAssistant:
			role = "model"
		}
		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: msg.Text}},
		})
	}
	return contents
}

// openAICompatClient is the subset of openaicompat.Client used by the adapter.
type openAICompatClient interface {
	GenerateContent(ctx context.Context, req *openaicompat.Request) (*openaicompat.Response, error)
	Model() string
}

// OpenAICompatAdapter adapts pkg/openaicompat (OpenAI, Groq, DeepSeek) to Provider.
type OpenAICompatAdapter struct {
	name   string
	client openAICompatClient
}

// NewOpenAICompatAdapter creates an adapter reporting the given provider name.
func NewOpenAICompatAdapter(name string, client openAICompatClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openaicompat.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		msgs = append(msgs, openaicompat.Message{Role: openaicompat.RoleSystem, Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, openaicompat.Message{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, &openaicompat.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	return &Response{
		Text:         resp.Content,
		ProviderName: a.name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
