package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"

	"server/internal/providers/translate"
)

func TestLocaleResolution(t *testing.T) {
	tests := []struct {
		name    string
		xLocale string
		accept  string
		want    language.Tag
	}{
		{
			name:    "x-locale wins",
			xLocale: "id",
			accept:  "zh-CN,zh;q=0.9",
			want:    language.Indonesian,
		},
		{
			name:   "accept-language fallback",
			accept: "zh-CN,zh;q=0.9,en;q=0.8",
			want:   language.MustParse("zh-CN"),
		},
		{
			name:    "invalid x-locale falls through to accept-language",
			xLocale: "???",
			accept:  "id",
			want:    language.Indonesian,
		},
		{
			name: "no headers use default",
			want: language.English,
		},
		{
			name:   "garbage accept-language uses default",
			accept: ";;;",
			want:   language.English,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got language.Tag
			handler := Locale("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = translate.TargetFromContext(r.Context(), language.Und)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.xLocale != "" {
				req.Header.Set("X-Locale", tc.xLocale)
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tc.want {
				t.Fatalf("resolved locale = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLocaleBadDefaultIsEnglish(t *testing.T) {
	var got language.Tag
	handler := Locale("not a tag")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = translate.TargetFromContext(r.Context(), language.Und)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if got != language.English {
		t.Fatalf("resolved locale = %v, want English", got)
	}
}
