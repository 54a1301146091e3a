// Package image exposes the four generation call shapes the workflows use.
// Each method is one provider call; fan-out for batched modes happens in the
// workflow layer, not here.
package image

import (
	"context"

	"server/internal/domain"
)

// Generator produces images from prompts and source images.
type Generator interface {
	// TextToImage issues one call that returns up to count images.
	TextToImage(ctx context.Context, prompt string, count int) ([]domain.ImageInput, error)

	// Transform re-renders a single source image, optionally steered by a
	// modification prompt. One call, at most one image.
	Transform(ctx context.Context, source domain.ImageInput, prompt string) (domain.ImageInput, error)

	// Edit applies a mandatory instruction to a single source image.
	Edit(ctx context.Context, source domain.ImageInput, instruction string) (domain.ImageInput, error)

	// Compose merges two or more source images under a mandatory
	// instruction. Sources keep their upload order; instructions may
	// reference them by position.
	Compose(ctx context.Context, sources []domain.ImageInput, instruction string) (domain.ImageInput, error)
}
