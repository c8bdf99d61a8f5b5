package imagegen

import "context"

// Trigger accepts image requests without blocking the caller.
type Trigger interface {
	Request(ctx context.Context, prompt string) error
}

// Generator renders one image for a prompt.
type Generator interface {
	TextToImage(ctx context.Context, prompt string) ([]byte, error)
}

// Opener shows a generated file to the user.
type Opener interface {
	OpenFile(ctx context.Context, path string) error
}
