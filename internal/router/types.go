package router

import "desktop-assistant/internal/intent"

// Result summarises what one Route call did.
type Result struct {
	AutomationHandled  bool `json:"automation_handled"`
	AutomationFailures int  `json:"automation_failures"`
	ImageRequested     bool `json:"image_requested"`

	Answered   bool            `json:"answered"`
	AnsweredBy intent.Category `json:"answered_by,omitempty"`
	Answer     string          `json:"answer,omitempty"`

	Exiting bool `json:"exiting"`
}
