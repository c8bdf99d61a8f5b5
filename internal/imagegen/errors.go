package imagegen

import "errors"

var (
	ErrQueueFull   = errors.New("image generation queue is full")
	ErrEmptyPrompt = errors.New("image prompt is empty")
	ErrClosed      = errors.New("image generation worker is closed")
)
