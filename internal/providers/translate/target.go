package translate

import (
	"context"

	"golang.org/x/text/language"
)

type targetKey struct{}

// ContextWithTarget attaches a per-request target language. Translators fall
// back to their configured default when none is set.
func ContextWithTarget(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, targetKey{}, tag)
}

// TargetFromContext returns the request's target language, or fallback.
func TargetFromContext(ctx context.Context, fallback language.Tag) language.Tag {
	if tag, ok := ctx.Value(targetKey{}).(language.Tag); ok && tag != language.Und {
		return tag
	}
	return fallback
}
