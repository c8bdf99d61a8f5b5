package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
	LogPrefixDecide   = "internal.classifier.Decide"
)

// Classifier configuration
const (
	DefaultTemperature = 0.7
	DefaultMaxRetries  = 1
)

// PromptHistoryPrefix introduces the rolling transcript in the classification prompt.
const PromptHistoryPrefix = "Recent conversation:\n"

// PromptPreamble is the fixed system instruction for the decision model.
const PromptPreamble = `You are a very accurate Decision-Making Model. You decide what kind of query you are given.
*** Do not answer the query, only label it. ***

Labels (one per action, separated by commas, in the order the user asked):
-> 'general (query)' when a chatbot can answer without up-to-date information.
   "who was akbar?" -> 'general who was akbar?'
   "what is python programming language?" -> 'general what is python programming language?'
-> 'realtime (query)' when the answer needs current information such as news, weather, prices or time.
   "what is the weather today?" -> 'realtime what is the weather today?'
   "who won the last cricket match?" -> 'realtime who won the last cricket match?'
-> 'open (application or website)' to open something; one label per item.
   "open chrome and firefox" -> 'open chrome, open firefox'
-> 'close (application)' to close something.
-> 'play (song name)' to play a song.
-> 'generate image (description)' to generate an image.
-> 'system (command)' for mute, unmute, volume up or volume down.
-> 'content (topic)' to write content such as letters, emails or code.
-> 'google search (topic)' to search something on Google.
-> 'youtube search (topic)' to search something on YouTube.
-> 'exit' when the user says goodbye or wants to stop.
   "bye" -> 'exit'
   "that's all" -> 'exit'

Replace (query) with the user's words. Never answer the query, only classify it.`

// fewShot are example turns sent before the rolling history.
var fewShot = []struct{ user, labels string }{
	{"how are you?", "general how are you?"},
	{"do you like pizza?", "general do you like pizza?"},
	{"open chrome and tell me about Mahatma Gandhi.", "open chrome, general tell me about Mahatma Gandhi."},
	{"open chrome and firefox", "open chrome, open firefox"},
	{"what is today's date and play some jazz", "realtime what is today's date, play some jazz"},
	{"chat with me.", "general chat with me."},
}
