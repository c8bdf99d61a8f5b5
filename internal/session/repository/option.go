package repository

// ListOptions holds the parameters for listing transcript entries.
type ListOptions struct {
	Last int // Return only the last N entries (0 = all)
}
