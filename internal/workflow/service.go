// Package workflow runs user submissions through the shared pipeline:
// validate, translate the prompt, decode the uploaded images, dispatch the
// provider calls, and collect the results. It also owns the per-panel state
// the browser client reflects.
package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/providers/image"
	"server/internal/providers/translate"
)

// Submitter is the submission entry point panels and handlers depend on.
type Submitter interface {
	Submit(ctx context.Context, sub domain.Submission) (*domain.Result, error)
}

// Service wires the translator and the image generator into the four
// workflows. It is stateless; panel state lives in Store.
type Service struct {
	translator translate.Translator
	generator  image.Generator
	logger     zerolog.Logger
}

func NewService(translator translate.Translator, generator image.Generator, logger zerolog.Logger) *Service {
	return &Service{translator: translator, generator: generator, logger: logger}
}

// Submit runs one complete round trip. Validation failures return before any
// provider call; translation failures are recovered inside the translator.
func (s *Service) Submit(ctx context.Context, sub domain.Submission) (*domain.Result, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	sub.BatchCount = domain.ClampBatchCount(sub.BatchCount)

	// The prompt is translated exactly once per submission, before any
	// image call is built.
	prompt := s.translator.Translate(ctx, sub.Prompt)

	// All images decode before request construction; a partial set never
	// reaches the provider.
	sources, err := domain.DecodeImages(ctx, sub.Images)
	if err != nil {
		return nil, err
	}

	var assets []domain.ImageInput
	switch sub.Mode {
	case domain.ModeTextToImage:
		assets, err = s.generator.TextToImage(ctx, prompt, sub.BatchCount)
		if err != nil {
			return nil, fmt.Errorf("text-to-image: %w", err)
		}
	case domain.ModeImageToImage:
		assets = s.fanOut(ctx, sub.BatchCount, func(ctx context.Context) (domain.ImageInput, error) {
			return s.generator.Transform(ctx, sources[0], prompt)
		})
	case domain.ModeImageEdit:
		asset, editErr := s.generator.Edit(ctx, sources[0], prompt)
		if editErr != nil {
			return nil, fmt.Errorf("image-edit: %w", editErr)
		}
		assets = []domain.ImageInput{asset}
	case domain.ModeImageCompose:
		assets = s.fanOut(ctx, sub.BatchCount, func(ctx context.Context) (domain.ImageInput, error) {
			return s.generator.Compose(ctx, sources, prompt)
		})
	}

	if len(assets) == 0 {
		return nil, domain.ErrNoUsableImages
	}

	s.logger.Info().
		Str("mode", string(sub.Mode)).
		Int("batch", sub.BatchCount).
		Int("images", len(assets)).
		Msg("workflow: submission completed")

	return buildResult(sub.Mode, assets), nil
}

// buildResult turns raw assets into client-facing data URIs with generated
// download filenames.
func buildResult(mode domain.Mode, assets []domain.ImageInput) *domain.Result {
	res := &domain.Result{Images: make([]domain.GeneratedImage, len(assets))}
	stem := uuid.NewString()[:8]
	for i, asset := range assets {
		res.Images[i] = domain.GeneratedImage{
			DataURI:  asset.DataURI(),
			Filename: fmt.Sprintf("%s-%s-%02d.%s", mode, stem, i+1, domain.ExtensionForMIME(asset.MIMEType)),
		}
	}
	return res
}

var _ Submitter = (*Service)(nil)
