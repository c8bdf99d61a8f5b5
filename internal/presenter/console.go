package presenter

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Console writes answers as chat lines.
type Console struct {
	mu   sync.Mutex
	w    io.Writer
	name string
}

var _ Presenter = (*Console)(nil)

func NewConsole(w io.Writer, assistantName string) *Console {
	return &Console{w: w, name: assistantName}
}

func (c *Console) Present(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := fmt.Fprintf(c.w, LineFormat, c.name, text)
	return err
}
