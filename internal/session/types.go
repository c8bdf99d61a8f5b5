package session

// Names used when rendering the transcript and the default greeting.
type Names struct {
	Username      string
	AssistantName string
}
