package imagegen

// Log prefixes
const (
	LogPrefixRequest  = "internal.imagegen.Request"
	LogPrefixGenerate = "internal.imagegen.generate"
)

// Defaults
const (
	DefaultImages    = 4
	DefaultQueueSize = 4
	ImagesDir        = "images"
)

// PromptSuffix is appended to every prompt; %d is a random seed.
const PromptSuffix = ", quality=4K, sharpness=maximum, Ultra High details, high resolution, seed=%d"
