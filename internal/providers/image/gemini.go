package image

import (
	"context"

	"server/internal/domain"
)

// geminiClient is the slice of the shared Gemini facade this package uses.
type geminiClient interface {
	GenerateImages(ctx context.Context, prompt string, count int) ([]domain.ImageInput, error)
	GenerateWithImages(ctx context.Context, images []domain.ImageInput, prompt string) (domain.ImageInput, error)
}

// GeminiGenerator implements Generator on top of the shared Gemini client.
type GeminiGenerator struct {
	client geminiClient
}

func NewGeminiGenerator(client geminiClient) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

func (g *GeminiGenerator) TextToImage(ctx context.Context, prompt string, count int) ([]domain.ImageInput, error) {
	return g.client.GenerateImages(ctx, prompt, count)
}

func (g *GeminiGenerator) Transform(ctx context.Context, source domain.ImageInput, prompt string) (domain.ImageInput, error) {
	return g.client.GenerateWithImages(ctx, []domain.ImageInput{source}, prompt)
}

func (g *GeminiGenerator) Edit(ctx context.Context, source domain.ImageInput, instruction string) (domain.ImageInput, error) {
	return g.client.GenerateWithImages(ctx, []domain.ImageInput{source}, instruction)
}

func (g *GeminiGenerator) Compose(ctx context.Context, sources []domain.ImageInput, instruction string) (domain.ImageInput, error) {
	return g.client.GenerateWithImages(ctx, sources, instruction)
}

var _ Generator = (*GeminiGenerator)(nil)
