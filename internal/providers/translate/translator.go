// Package translate normalizes free-text prompts to the generation model's
// working language before they are forwarded. Translation is strictly
// best-effort: a failure never surfaces to the caller, the original text is
// used instead.
package translate

import "context"

// Translator rewrites free text into the target language. Implementations
// must return the input unchanged (never an error) when the input is empty,
// whitespace-only, or the translation cannot be obtained.
type Translator interface {
	Translate(ctx context.Context, text string) string
}

// Noop passes every prompt through untouched. Used in tests and when the
// service runs without a translation model.
type Noop struct{}

func (Noop) Translate(_ context.Context, text string) string { return text }

var _ Translator = Noop{}
