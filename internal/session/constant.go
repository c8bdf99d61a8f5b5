package session

// Log prefixes
const (
	LogPrefixAppend    = "internal.session.Append"
	LogPrefixSeed      = "internal.session.SeedGreeting"
	LogPrefixSetStatus = "internal.session.SetStatus"
)

// Default greeting pair, formatted with the user and assistant names.
const (
	GreetingUser      = "Hello %s, How are you?"
	GreetingAssistant = "Welcome %s. I am doing well. How may I help you?"
)
