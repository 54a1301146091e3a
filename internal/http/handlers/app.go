package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/domain"
	"server/internal/workflow"
)

// App is the handler container: the panel store plus the submission service,
// injected at startup.
type App struct {
	Panels  *workflow.Store
	Service workflow.Submitter
	Logger  zerolog.Logger
}

func NewApp(panels *workflow.Store, service workflow.Submitter, logger zerolog.Logger) *App {
	return &App{Panels: panels, Service: service, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}

// fail maps pipeline errors onto the response taxonomy: validation failures
// are the client's to fix, everything else is an upstream problem.
func (a *App) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrPanelNotFound):
		a.error(w, http.StatusNotFound, "not_found", "panel not found")
	case domain.IsValidation(err):
		a.error(w, http.StatusBadRequest, "validation", err.Error())
	case errors.Is(err, domain.ErrNoUsableImages):
		a.error(w, http.StatusBadGateway, "no_image", "generation finished but produced no usable images, try again")
	default:
		a.Logger.Error().Err(err).Msg("handlers: submission failed")
		a.error(w, http.StatusBadGateway, "provider_failure", "generation failed, please try again")
	}
}
