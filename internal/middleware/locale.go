package middleware

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"server/internal/providers/translate"
)

// Locale resolves the translation target language for each request: the
// explicit X-Locale header wins, then the first Accept-Language entry, then
// the configured default. The resolved tag travels in the request context.
func Locale(defaultTarget string) func(http.Handler) http.Handler {
	fallback, err := language.Parse(strings.TrimSpace(defaultTarget))
	if err != nil || fallback == language.Und {
		fallback = language.English
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := resolveLocale(r, fallback)
			ctx := translate.ContextWithTarget(r.Context(), tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLocale(r *http.Request, fallback language.Tag) language.Tag {
	if raw := strings.TrimSpace(r.Header.Get("X-Locale")); raw != "" {
		if tag, err := language.Parse(raw); err == nil && tag != language.Und {
			return tag
		}
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return tags[0]
		}
	}
	return fallback
}
