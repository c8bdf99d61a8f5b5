package presenter

const (
	LogPrefixSpeak = "internal.presenter.Speaker"

	// LineFormat is "<assistant> : <text>".
	LineFormat = "%s : %s\n"

	DefaultTTSCommand = "espeak-ng"
)
