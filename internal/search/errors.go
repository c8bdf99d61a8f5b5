package search

import "errors"

var (
	ErrEmptyQuery  = errors.New("search query is empty")
	ErrEmptyAnswer = errors.New("search model returned an empty answer")
)
