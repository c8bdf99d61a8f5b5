package main

import (
	"fmt"
	"os"

	_ "desktop-assistant/docs" // Swagger docs
)

// @title       Desktop Assistant API
// @description Submit utterances to the assistant and read its transcript and status.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
