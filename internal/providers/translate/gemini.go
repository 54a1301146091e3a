package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// textGenerator is the narrow slice of the Gemini client facade this package
// needs: a deterministic text call whose reply is the answer and nothing else.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt, instruction string) (string, error)
}

// Gemini translates prompts with a zero-temperature text-generation call.
type Gemini struct {
	model      textGenerator
	defaultTag language.Tag
	logger     zerolog.Logger
}

// NewGemini builds a translator whose default target is the given BCP 47
// language tag ("en", "id", "zh-Hans", ...). Unparseable tags fall back to
// English. A per-request target set via ContextWithTarget takes precedence.
func NewGemini(model textGenerator, target string, logger zerolog.Logger) *Gemini {
	return &Gemini{
		model:      model,
		defaultTag: parseTarget(target),
		logger:     logger,
	}
}

// Translate returns the translation, or the original text when the input is
// blank or the call fails in any way. Failures are logged and recovered.
func (g *Gemini) Translate(ctx context.Context, text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text
	}
	tag := TargetFromContext(ctx, g.defaultTag)
	out, err := g.model.GenerateText(ctx, trimmed, instructionFor(tag))
	if err != nil {
		g.logger.Warn().Err(err).Msg("translate: call failed, keeping original prompt")
		return text
	}
	out = strings.TrimSpace(out)
	if out == "" {
		g.logger.Warn().Msg("translate: empty reply, keeping original prompt")
		return text
	}
	return out
}

func parseTarget(target string) language.Tag {
	tag, err := language.Parse(strings.TrimSpace(target))
	if err != nil || tag == language.Und {
		return language.English
	}
	return tag
}

// instructionFor pins the model to answer-only output: downstream parsing
// assumes the reply is exactly the translation, with no commentary, quoting,
// or code fences.
func instructionFor(tag language.Tag) string {
	name := display.English.Languages().Name(tag)
	if name == "" {
		name = "English"
	}
	return fmt.Sprintf(
		"You are a translation engine. Translate the user's text into %s. "+
			"If it is already in %s, return it unchanged. "+
			"Reply with the translated text only: no commentary, no quotes.",
		name, name)
}

var _ Translator = (*Gemini)(nil)
