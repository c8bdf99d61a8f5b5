package assistant

import "time"

// Log prefixes
const (
	LogPrefixSubmit = "internal.assistant.Submit"
	LogPrefixRun    = "internal.assistant.Run"
	LogPrefixTurn   = "internal.assistant.turn"
)

// Defaults
const (
	DefaultHistorySize = 10
	DefaultTurnTimeout = 2 * time.Minute
	DefaultQueueSize   = 8
)
