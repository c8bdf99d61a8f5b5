package chat

// Log prefixes
const (
	LogPrefixAnswer       = "internal.chat.Answer"
	LogPrefixWriteContent = "internal.chat.WriteContent"
)

// SystemPromptChat is formatted with the user name and the assistant name.
const SystemPromptChat = `Hello, I am %s. You are a very accurate and advanced AI chatbot named %s which also has real-time up-to-date information from the internet.
*** Do not tell the time unless asked, do not talk too much, just answer the question. ***
*** Reply only in English, even if the question is in another language. ***
*** Do not add notes to the output and never mention your training data. ***`

// SystemPromptContent instructs the model to act as a writer.
const SystemPromptContent = `Hello, I am a content writer. You have to write content like letters, emails, applications, essays, notes, songs, poems and code.
Write only the requested piece, without any preamble or explanation.`

// Defaults
const (
	DefaultHistorySize = 10
	ContentTemperature = 0.7
	ContentMaxTokens   = 2048
)
