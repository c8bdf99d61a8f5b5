package router

// Log prefixes
const (
	LogPrefixRoute      = "internal.router.Route"
	LogPrefixAutomation = "internal.router.automate"
	LogPrefixImage      = "internal.router.requestImage"
	LogPrefixAnswer     = "internal.router.answer"
)

const (
	// ApologyMessage replaces an answer when the handler fails.
	ApologyMessage = "Sorry, I ran into a problem answering that. Please try again."

	// Farewell is sent to chat when the user ends the session.
	Farewell = "Okay, Bye"

	// imageKeyword marks an intent as an image generation request.
	imageKeyword = "generate"
)
