package openaicompat

import "time"

const (
	// DefaultModel is used when Config.Model is empty
	DefaultModel = "gpt-5-nano"

	// DefaultTimeout bounds a single completion request
	DefaultTimeout = 60 * time.Second
)

// Roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
