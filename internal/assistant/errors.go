package assistant

import "errors"

var (
	ErrEmptyUtterance = errors.New("utterance is empty")
	ErrStopped        = errors.New("assistant loop is not running")
	ErrTurnPanicked   = errors.New("turn panicked")
	ErrAlreadyRunning = errors.New("assistant loop already running")
)
