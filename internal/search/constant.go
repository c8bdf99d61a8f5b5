package search

import "time"

// Log prefixes
const (
	LogPrefixAnswer = "internal.search.Answer"
)

// SystemPromptSearch is formatted with the user name and the assistant name.
const SystemPromptSearch = `Hello, I am %s. You are a very accurate and advanced AI chatbot named %s which has real-time up-to-date information from the internet.
*** Provide answers in a professional way, with full stops, commas, question marks and proper grammar. ***
*** Just answer the question from the provided data in a professional way. ***`

// Search results block markers.
const (
	ResultsHeader = "The search results for '%s' are:\n[start]\n"
	ResultsFooter = "[end]"
	NoResults     = "No search results were found."
)

// Defaults
const (
	DefaultResults   = 5
	DefaultCacheTTL  = 2 * time.Minute
	DefaultCacheSize = 128
)
