package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/middleware"
)

// NewRouter assembles the API surface: middleware chain plus the panel routes.
func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Locale(cfg.TranslateTarget),
		maxBytes(cfg.MaxUploadBytes),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/panels", func(r chi.Router) {
		r.Post("/", app.PanelCreate)
		r.Route("/{panel_id}", func(r chi.Router) {
			r.Get("/", app.PanelGet)
			r.Delete("/", app.PanelDelete)
			r.Put("/prompt", app.PanelPrompt)
			r.Put("/batch", app.PanelBatch)
			r.Post("/images", app.PanelAddImage)
			r.Delete("/images/{index}", app.PanelRemoveImage)
			r.With(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)).
				Post("/submit", app.PanelSubmit)
			r.Get("/results.zip", app.PanelResultsZip)
		})
	})

	return r
}

// maxBytes caps request bodies; uploads arrive base64-encoded so the limit
// tracks the configured upload size with encoding overhead already included.
func maxBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
