package session

import "errors"

var (
	ErrEmptyContent = errors.New("transcript entry content is empty")
	ErrInvalidRole  = errors.New("invalid transcript role")
)
