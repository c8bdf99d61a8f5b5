package automation

// Log prefixes
const (
	LogPrefixExecute = "internal.automation.Execute"
	LogPrefixOpen    = "internal.automation.open"
	LogPrefixContent = "internal.automation.content"
)

// URL prefixes
const (
	GoogleSearchURL = "https://www.google.com/search?q="
)

// DefaultWorkers bounds concurrent commands in one batch.
const DefaultWorkers = 4

// VolumeAction is a system audio command.
type VolumeAction string

const (
	VolumeMute   VolumeAction = "mute"
	VolumeUnmute VolumeAction = "unmute"
	VolumeUp     VolumeAction = "volume up"
	VolumeDown   VolumeAction = "volume down"
)
