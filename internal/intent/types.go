package intent

import "strings"

// Category is the kind of action an intent asks for.
type Category string

const (
	CategoryGeneral       Category = "general"
	CategoryRealtime      Category = "realtime"
	CategoryOpen          Category = "open"
	CategoryClose         Category = "close"
	CategoryPlay          Category = "play"
	CategoryGenerateImage Category = "generate_image"
	CategorySystem        Category = "system"
	CategoryContent       Category = "content"
	CategoryGoogleSearch  Category = "google_search"
	CategoryYouTubeSearch Category = "youtube_search"
	CategoryExit          Category = "exit"
	CategoryUnknown       Category = "unknown"
)

// Categories lists every valid category, unknown included.
var Categories = []Category{
	CategoryGeneral, CategoryRealtime, CategoryOpen, CategoryClose, CategoryPlay,
	CategoryGenerateImage, CategorySystem, CategoryContent, CategoryGoogleSearch,
	CategoryYouTubeSearch, CategoryExit, CategoryUnknown,
}

// Valid reports whether c belongs to the fixed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// IsAutomation reports whether the category is executed by the automation batch.
func (c Category) IsAutomation() bool {
	switch c {
	case CategoryOpen, CategoryClose, CategoryPlay, CategorySystem,
		CategoryContent, CategoryGoogleSearch, CategoryYouTubeSearch:
		return true
	}
	return false
}

// IsAnswerable reports whether the category is answered by chat or realtime search.
func (c Category) IsAnswerable() bool {
	return c == CategoryGeneral || c == CategoryRealtime
}

// Intent is one classified action.
type Intent struct {
	Category Category `json:"category"`
	Payload  string   `json:"payload"`
	// Raw is the trimmed classifier token the intent was parsed from.
	Raw string `json:"raw"`
}

// String renders the intent in the classifier's label form.
func (i Intent) String() string {
	if i.Payload == "" {
		return string(i.Category)
	}
	return string(i.Category) + " " + i.Payload
}

// Decision is the ordered list of intents for one utterance.
type Decision []Intent

// Empty reports whether nothing actionable was found.
func (d Decision) Empty() bool {
	return len(d) == 0
}

// NeedsRetry reports whether the classifier echoed the placeholder payload.
func (d Decision) NeedsRetry() bool {
	for _, it := range d {
		if it.Payload == PlaceholderQuery {
			return true
		}
	}
	return false
}

// Has reports whether any intent has category c.
func (d Decision) Has(c Category) bool {
	for _, it := range d {
		if it.Category == c {
			return true
		}
	}
	return false
}

// MergedQuery joins the payloads of all general and realtime intents.
func (d Decision) MergedQuery() string {
	var parts []string
	for _, it := range d {
		if it.Category.IsAnswerable() && it.Payload != "" {
			parts = append(parts, it.Payload)
		}
	}
	return strings.Join(parts, MergeSeparator)
}

// String renders the decision as a comma-separated label string that Parse accepts.
func (d Decision) String() string {
	parts := make([]string, len(d))
	for i, it := range d {
		parts[i] = it.String()
	}
	return strings.Join(parts, ", ")
}
