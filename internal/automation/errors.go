package automation

import "errors"

var (
	ErrUnknownVerb          = errors.New("unknown automation verb")
	ErrEmptyArgument        = errors.New("automation argument is empty")
	ErrUnknownSystemCommand = errors.New("unknown system command")
	ErrNoWebResult          = errors.New("no web result to open")
	ErrCommandPanicked      = errors.New("automation command panicked")
)
