package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"server/internal/domain"
)

// Status is the submission lifecycle of one panel.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Panel is the server-side state behind one workflow tab: prompt text, the
// ordered removable image selection, the clamped batch count, and the outcome
// of the latest submission. Every submission takes a monotonically increasing
// sequence number; a completion that is no longer the latest is discarded so
// a slow older request can never overwrite fresher state.
type Panel struct {
	mu sync.Mutex

	id       string
	mode     domain.Mode
	prompt   string
	images   []string
	batch    int
	status   Status
	lastErr  string
	results  []domain.GeneratedImage
	seq      uint64
	lastUsed time.Time
}

func newPanel(id string, mode domain.Mode) *Panel {
	return &Panel{
		id:       id,
		mode:     mode,
		batch:    domain.MinBatchCount,
		status:   StatusIdle,
		lastUsed: time.Now(),
	}
}

// View is a consistent snapshot of a panel for the client.
type View struct {
	ID         string                  `json:"id"`
	Mode       domain.Mode             `json:"mode"`
	Prompt     string                  `json:"prompt"`
	Images     []string                `json:"images"`
	BatchCount int                     `json:"batch_count"`
	Status     Status                  `json:"status"`
	CanSubmit  bool                    `json:"can_submit"`
	Error      string                  `json:"error,omitempty"`
	Results    []domain.GeneratedImage `json:"results,omitempty"`
}

func (p *Panel) Snapshot() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return View{
		ID:         p.id,
		Mode:       p.mode,
		Prompt:     p.prompt,
		Images:     append([]string(nil), p.images...),
		BatchCount: p.batch,
		Status:     p.status,
		CanSubmit:  p.canSubmitLocked(),
		Error:      p.lastErr,
		Results:    append([]domain.GeneratedImage(nil), p.results...),
	}
}

func (p *Panel) SetPrompt(prompt string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompt = prompt
	p.lastUsed = time.Now()
}

// SetBatchCount stores the clamped count regardless of what was entered.
func (p *Panel) SetBatchCount(raw string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batch = domain.ParseBatchCount(raw)
	p.lastUsed = time.Now()
	return p.batch
}

// AddImage appends to the selection in a multi-image panel and replaces it in
// a single-image panel. Text-to-image panels take no images at all.
func (p *Panel) AddImage(uri string) error {
	if _, err := domain.ParseDataURI(uri); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.mode.AcceptsImages() {
		return domain.ErrImagesNotAllowed
	}
	if p.mode.MultiImage() {
		p.images = append(p.images, uri)
	} else {
		p.images = []string{uri}
	}
	p.lastUsed = time.Now()
	return nil
}

// RemoveImage drops exactly the entry at index, preserving the relative
// order of the rest.
func (p *Panel) RemoveImage(index int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if index < 0 || index >= len(p.images) {
		return fmt.Errorf("%w: image index %d out of range", domain.ErrInvalidImage, index)
	}
	p.images = append(p.images[:index], p.images[index+1:]...)
	p.lastUsed = time.Now()
	return nil
}

// canSubmitLocked mirrors the disabled state of the submit control: the
// preconditions must hold and no submission may be in flight.
func (p *Panel) canSubmitLocked() bool {
	if p.status == StatusSubmitting {
		return false
	}
	sub := domain.Submission{
		Mode:       p.mode,
		Prompt:     p.prompt,
		Images:     p.images,
		BatchCount: p.batch,
	}
	return sub.Validate() == nil
}

// Submit runs the panel's current inputs through the service. Starting a
// submission clears the previous error and results. A new submission does not
// cancel an in-flight one; the sequence check below makes the stale one a
// no-op against panel state.
func (p *Panel) Submit(ctx context.Context, svc Submitter) (*domain.Result, error) {
	p.mu.Lock()
	p.seq++
	seq := p.seq
	p.status = StatusSubmitting
	p.lastErr = ""
	p.results = nil
	p.lastUsed = time.Now()
	sub := domain.Submission{
		Mode:       p.mode,
		Prompt:     p.prompt,
		Images:     append([]string(nil), p.images...),
		BatchCount: p.batch,
	}
	p.mu.Unlock()

	res, err := svc.Submit(ctx, sub)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastUsed = time.Now()
	if seq != p.seq {
		// A newer submission started while this one was in flight.
		return res, err
	}
	if err != nil {
		p.status = StatusFailed
		p.lastErr = userMessage(err)
		return nil, err
	}
	p.status = StatusSucceeded
	p.results = res.Images
	return res, nil
}

// userMessage maps pipeline errors to the inline text shown next to the
// submit control.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case domain.IsValidation(err):
		return err.Error()
	case errors.Is(err, domain.ErrNoUsableImages):
		return "generation finished but produced no usable images, try again"
	default:
		return "generation failed, please try again"
	}
}
