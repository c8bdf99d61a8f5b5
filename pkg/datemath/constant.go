package datemath

// Date format
const (
	DateFormatISO = "2006-01-02"
)

// RealtimeTemplate is injected into chat and search prompts.
const RealtimeTemplate = `Please use this real-time information if needed,
Day: %s
Date: %d
Month: %s
Year: %d
Time: %02d hours :%02d minutes :%02d seconds.
Today: %s
This week: %s to %s
Tomorrow: %s
`
