package intent

const (
	// PlaceholderQuery is echoed by the classifier when it copied the prompt template.
	PlaceholderQuery = "(query)"

	// MergeSeparator joins answerable payloads into one query.
	MergeSeparator = " and "
)

// rule maps a label prefix onto a category.
type rule struct {
	prefix   string
	category Category
}

// grammar is checked in order; the first matching prefix wins.
var grammar = []rule{
	{"exit", CategoryExit},
	{"general", CategoryGeneral},
	{"realtime", CategoryRealtime},
	{"open", CategoryOpen},
	{"close", CategoryClose},
	{"play", CategoryPlay},
	{"generate_image", CategoryGenerateImage},
	{"generate image", CategoryGenerateImage},
	{"system", CategorySystem},
	{"content", CategoryContent},
	{"google_search", CategoryGoogleSearch},
	{"google search", CategoryGoogleSearch},
	{"youtube_search", CategoryYouTubeSearch},
	{"youtube search", CategoryYouTubeSearch},
}
