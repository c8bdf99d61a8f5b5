package huggingface

import (
	"net/http"
	"time"
)

// Config configures the inference client.
type Config struct {
	APIKey     string
	ModelURL   string
	HTTPClient *http.Client
}

// Defaults
const (
	DefaultModelURL = "https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-xl-base-1.0"
	DefaultTimeout  = 120 * time.Second
)

type textToImageRequest struct {
	Inputs string `json:"inputs"`
}

type errorResponse struct {
	Error string `json:"error"`
}
