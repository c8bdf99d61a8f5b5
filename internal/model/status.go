package model

// Status is what the assistant is currently doing.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusListening Status = "Listening"
	StatusThinking  Status = "Thinking"
	StatusSearching Status = "Searching"
	StatusAnswering Status = "Answering"
	StatusExiting   Status = "Exiting"
)
