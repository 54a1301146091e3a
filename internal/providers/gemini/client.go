package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"server/internal/domain"
)

// Default model identifiers. Text generation and multimodal image editing go
// through generateContent; plain text-to-image goes through the Imagen
// generateImages surface because it is the only call shape that honors
// numberOfImages.
const (
	DefaultTextModel       = "gemini-2.5-flash"
	DefaultImageModel      = "imagen-3.0-generate-002"
	DefaultMultimodalModel = "gemini-2.5-flash-image"
)

// Options controls how the shared Gemini client is configured.
type Options struct {
	APIKey          string
	TextModel       string
	ImageModel      string
	MultimodalModel string
	Logger          zerolog.Logger
}

// Client is the single process-wide facade over the Gemini SDK. It is
// constructed once at startup and injected into every provider that needs it;
// the SDK client holds no per-request state, so sharing is safe.
type Client struct {
	api             *genai.Client
	textModel       string
	imageModel      string
	multimodalModel string
	logger          zerolog.Logger
}

// NewClient constructs the facade. An empty API key is passed through to the
// SDK, which falls back to its GEMINI_API_KEY / GOOGLE_API_KEY env lookup.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	cfg := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if key := strings.TrimSpace(opts.APIKey); key != "" {
		cfg.APIKey = key
	}
	api, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c := &Client{
		api:             api,
		textModel:       opts.TextModel,
		imageModel:      opts.ImageModel,
		multimodalModel: opts.MultimodalModel,
		logger:          opts.Logger,
	}
	if c.textModel == "" {
		c.textModel = DefaultTextModel
	}
	if c.imageModel == "" {
		c.imageModel = DefaultImageModel
	}
	if c.multimodalModel == "" {
		c.multimodalModel = DefaultMultimodalModel
	}
	return c, nil
}

// GenerateText runs a deterministic single-candidate text call. The system
// instruction is expected to pin the model to answer-only output; callers
// rely on the reply carrying no wrapping commentary.
func (c *Client) GenerateText(ctx context.Context, prompt, instruction string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:    genai.Ptr(float32(0)),
		CandidateCount: 1,
	}
	if instruction != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: instruction}}}
	}
	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: prompt}},
	}}
	resp, err := c.api.Models.GenerateContent(ctx, c.textModel, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}
	text := firstText(resp)
	if text == "" {
		return "", fmt.Errorf("generate text: empty response")
	}
	return text, nil
}

// GenerateImages runs one Imagen call that returns up to count images.
func (c *Client) GenerateImages(ctx context.Context, prompt string, count int) ([]domain.ImageInput, error) {
	count = domain.ClampBatchCount(count)
	cfg := &genai.GenerateImagesConfig{
		NumberOfImages: int32(count),
	}
	resp, err := c.api.Models.GenerateImages(ctx, c.imageModel, prompt, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate images: %w", err)
	}
	var out []domain.ImageInput
	for _, gen := range resp.GeneratedImages {
		if gen.Image == nil || len(gen.Image.ImageBytes) == 0 {
			continue
		}
		mime := gen.Image.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		out = append(out, domain.ImageInput{Data: gen.Image.ImageBytes, MIMEType: mime})
	}
	if len(out) == 0 {
		return nil, domain.ErrNoImage
	}
	c.logger.Debug().
		Str("model", c.imageModel).
		Int("requested", count).
		Int("returned", len(out)).
		Msg("gemini: text-to-image call completed")
	return out, nil
}

// GenerateWithImages runs one multimodal call: the source images as inline
// blobs in their original order, followed by the optional instruction text.
// The result is the first inline image found in the candidates.
func (c *Client) GenerateWithImages(ctx context.Context, images []domain.ImageInput, prompt string) (domain.ImageInput, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: img.Data, MIMEType: img.MIMEType},
		})
	}
	if strings.TrimSpace(prompt) != "" {
		parts = append(parts, &genai.Part{Text: prompt})
	}
	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}
	resp, err := c.api.Models.GenerateContent(ctx, c.multimodalModel, contents, cfg)
	if err != nil {
		return domain.ImageInput{}, fmt.Errorf("generate with images: %w", err)
	}
	img, ok := firstInlineImage(resp)
	if !ok {
		return domain.ImageInput{}, domain.ErrNoImage
	}
	c.logger.Debug().
		Str("model", c.multimodalModel).
		Int("input_images", len(images)).
		Msg("gemini: multimodal image call completed")
	return img, nil
}

// firstText returns the first non-empty text part across candidates.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil {
				continue
			}
			if text := strings.TrimSpace(part.Text); text != "" {
				return text
			}
		}
	}
	return ""
}

// firstInlineImage walks candidates in order and returns the first part that
// carries inline binary image data.
func firstInlineImage(resp *genai.GenerateContentResponse) (domain.ImageInput, bool) {
	if resp == nil {
		return domain.ImageInput{}, false
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			mime := part.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return domain.ImageInput{Data: part.InlineData.Data, MIMEType: mime}, true
		}
	}
	return domain.ImageInput{}, false
}
