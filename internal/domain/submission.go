package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects one of the four generation workflows.
type Mode string

const (
	ModeTextToImage  Mode = "text-to-image"
	ModeImageToImage Mode = "image-to-image"
	ModeImageEdit    Mode = "image-edit"
	ModeImageCompose Mode = "image-compose"
)

const (
	MinBatchCount = 1
	MaxBatchCount = 4
)

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.TrimSpace(strings.ToLower(s))) {
	case ModeTextToImage:
		return ModeTextToImage, nil
	case ModeImageToImage:
		return ModeImageToImage, nil
	case ModeImageEdit:
		return ModeImageEdit, nil
	case ModeImageCompose:
		return ModeImageCompose, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// AcceptsImages reports whether the mode takes source images at all.
func (m Mode) AcceptsImages() bool {
	return m != ModeTextToImage
}

// MultiImage reports whether the mode holds an unbounded ordered image list.
// Single-image modes replace the previous selection on upload.
func (m Mode) MultiImage() bool {
	return m == ModeImageCompose
}

// Batched reports whether the mode fans out into independent concurrent calls.
// Image editing is always a single call with a single result.
func (m Mode) Batched() bool {
	return m != ModeImageEdit
}

// ClampBatchCount bounds a requested batch count to [1,4].
func ClampBatchCount(n int) int {
	if n < MinBatchCount {
		return MinBatchCount
	}
	if n > MaxBatchCount {
		return MaxBatchCount
	}
	return n
}

// ParseBatchCount interprets free-form numeric input from the batch field.
// Non-numeric entries default to 1; out-of-range values are clamped.
func ParseBatchCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return MinBatchCount
	}
	return ClampBatchCount(n)
}

// Submission is one complete user request: everything needed for a single
// round trip through translate, encode, dispatch, and collect. Images are the
// data URIs uploaded by the client, in selection order.
type Submission struct {
	Mode       Mode
	Prompt     string
	Images     []string
	BatchCount int
}

// Validate applies the per-mode preconditions. It must pass before any
// provider call is issued.
func (s Submission) Validate() error {
	mode, err := ParseMode(string(s.Mode))
	if err != nil {
		return err
	}
	prompt := strings.TrimSpace(s.Prompt)
	switch mode {
	case ModeTextToImage:
		if prompt == "" {
			return ErrPromptRequired
		}
		if len(s.Images) > 0 {
			return ErrImagesNotAllowed
		}
	case ModeImageToImage:
		// Prompt is optional: an empty modification prompt asks the model
		// for a free variation of the source image.
		if len(s.Images) == 0 {
			return ErrImageRequired
		}
		if len(s.Images) > 1 {
			return ErrSingleImageOnly
		}
	case ModeImageEdit:
		if len(s.Images) == 0 {
			return ErrImageRequired
		}
		if len(s.Images) > 1 {
			return ErrSingleImageOnly
		}
		if prompt == "" {
			return ErrPromptRequired
		}
	case ModeImageCompose:
		if len(s.Images) < 2 {
			return ErrComposeNeedsTwo
		}
		if prompt == "" {
			return ErrPromptRequired
		}
	}
	return nil
}

// GeneratedImage is one output image ready for the client: an inline data URI
// plus a suggested download filename.
type GeneratedImage struct {
	DataURI  string `json:"data_uri"`
	Filename string `json:"filename"`
}

// Result is the ordered outcome of one submission. It lives only until the
// next submission overwrites it.
type Result struct {
	Images []GeneratedImage `json:"images"`
}
