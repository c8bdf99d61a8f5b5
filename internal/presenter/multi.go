package presenter

import (
	"context"
	"errors"
)

// Multi presents to every wrapped presenter in order.
type Multi []Presenter

var _ Presenter = Multi(nil)

func (m Multi) Present(ctx context.Context, text string) error {
	var errs []error
	for _, p := range m {
		if p == nil {
			continue
		}
		if err := p.Present(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
