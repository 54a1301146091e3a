package handlers

import (
	"net/http"
)

// Health reports liveness plus the number of panels currently held in memory,
// which is the only state a restart would lose.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"status": "ok",
		"panels": a.Panels.Len(),
	})
}
