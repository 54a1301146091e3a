package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/workflow"
	"server/pkg/zip"
)

type panelCreateRequest struct {
	Mode string `json:"mode"`
}

// PanelCreate registers a fresh panel for one workflow tab.
func (a *App) PanelCreate(w http.ResponseWriter, r *http.Request) {
	var req panelCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		a.fail(w, err)
		return
	}
	panel := a.Panels.Create(mode)
	a.json(w, http.StatusCreated, panel.Snapshot())
}

func (a *App) PanelGet(w http.ResponseWriter, r *http.Request) {
	panel, ok := a.panel(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, panel.Snapshot())
}

func (a *App) PanelDelete(w http.ResponseWriter, r *http.Request) {
	a.Panels.Delete(chi.URLParam(r, "panel_id"))
	w.WriteHeader(http.StatusNoContent)
}

type panelPromptRequest struct {
	Prompt string `json:"prompt"`
}

func (a *App) PanelPrompt(w http.ResponseWriter, r *http.Request) {
	panel, ok := a.panel(w, r)
	if !ok {
		return
	}
	var req panelPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	panel.SetPrompt(req.Prompt)
	a.json(w, http.StatusOK, panel.Snapshot())
}

type panelBatchRequest struct {
	// Count mirrors the free-form numeric field in the UI; anything
	// non-numeric falls back to 1, out-of-range values are clamped.
	Count json.RawMessage `json:"count"`
}

func (a *App) PanelBatch(w http.ResponseWriter, r *http.Request) {
	panel, ok := a.panel(w, r)
	if !ok {
		return
	}
	var req panelBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	raw := strings.Trim(string(req.Count), `"`)
	panel.SetBatchCount(raw)
	a.json(w, http.StatusOK, panel.Snapshot())
}

type panelImageRequest struct {
	Image string `json:"image"`
}

func (a *App) PanelAddImage(w http.ResponseWriter, r *http.Request) {
	panel, ok := a.panel(w, r)
	if !ok {
		return
	}
	var req panelImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := panel.AddImage(req.Image); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, panel.Snapshot())
}

func (a *App) PanelRemoveImage(w http.ResponseWriter, r *http.Request) {
	panel, ok := a.panel(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image index must be a number")
		return
	}
	if err := panel.RemoveImage(index); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, panel.Snapshot())
}

// PanelSubmit runs the panel's current inputs through the pipeline and
// returns the refreshed panel state alongside the result.
func (a *App) PanelSubmit(w http.ResponseWriter, r *http.Request) {
	panel, ok := a.panel(w, r)
	if !ok {
		return
	}
	result, err := panel.Submit(r.Context(), a.Service)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"result": result,
		"panel":  panel.Snapshot(),
	})
}

// PanelResultsZip bundles the last result set into a single downloadable
// archive.
func (a *App) PanelResultsZip(w http.ResponseWriter, r *http.Request) {
	panel, ok := a.panel(w, r)
	if !ok {
		return
	}
	view := panel.Snapshot()
	if len(view.Results) == 0 {
		a.error(w, http.StatusNotFound, "not_found", "panel has no results to download")
		return
	}
	assets := make([]zip.Asset, 0, len(view.Results))
	for _, res := range view.Results {
		// Results are server-generated; a data URI that no longer decodes
		// means the stored state is corrupt, not a client mistake.
		img, err := domain.ParseDataURI(res.DataURI)
		if err != nil {
			a.Logger.Error().Err(err).Str("filename", res.Filename).Msg("handlers: stored result failed to decode")
			a.error(w, http.StatusInternalServerError, "internal", "stored results could not be decoded")
			return
		}
		assets = append(assets, zip.Asset{Filename: res.Filename, MIME: img.MIMEType, Data: img.Data})
	}
	archive, err := zip.ArchiveAssets(assets)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to build archive")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s-results.zip", view.Mode))
	_, _ = w.Write(archive)
}

// panel resolves the panel_id route parameter, writing the 404 itself.
func (a *App) panel(w http.ResponseWriter, r *http.Request) (*workflow.Panel, bool) {
	panel, err := a.Panels.Get(chi.URLParam(r, "panel_id"))
	if err != nil {
		a.fail(w, err)
		return nil, false
	}
	return panel, true
}
