package presenter

import "context"

// Presenter shows or speaks an assistant answer.
type Presenter interface {
	Present(ctx context.Context, text string) error
}
