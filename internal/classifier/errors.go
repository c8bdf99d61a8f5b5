package classifier

import (
	"errors"
	"fmt"
)

// ErrClassification is matched by every *ClassificationError.
var ErrClassification = errors.New("classification failed")

// ClassificationError reports a classifier failure after all attempts.
type ClassificationError struct {
	Attempts int
	Err      error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%v after %d attempt(s): %v", ErrClassification, e.Attempts, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrClassification) match.
func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}

// errPlaceholder is the cause recorded when every attempt echoed the placeholder.
var errPlaceholder = errors.New("classifier kept returning the (query) placeholder")
