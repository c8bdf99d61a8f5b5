package router

import "errors"

var (
	// ErrExiting is returned once the session has ended.
	ErrExiting = errors.New("assistant is exiting")

	// ErrHandler wraps chat or realtime handler failures.
	ErrHandler = errors.New("answer handler failed")
)
