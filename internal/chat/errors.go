package chat

import "errors"

var (
	ErrEmptyQuery  = errors.New("chat query is empty")
	ErrEmptyAnswer = errors.New("chat model returned an empty answer")
)
