package domain

import "errors"

var (
	ErrUnknownMode      = errors.New("unknown workflow mode")
	ErrPromptRequired   = errors.New("prompt is required")
	ErrImageRequired    = errors.New("a source image is required")
	ErrComposeNeedsTwo  = errors.New("composition requires at least two images")
	ErrSingleImageOnly  = errors.New("mode accepts a single source image")
	ErrImagesNotAllowed = errors.New("mode does not accept source images")
	ErrInvalidImage     = errors.New("invalid image payload")
	ErrNoImage          = errors.New("response contained no image data")
	ErrNoUsableImages   = errors.New("no usable images were produced")
	ErrPanelNotFound    = errors.New("panel not found")
)

// IsValidation reports whether err is a pre-dispatch validation failure,
// i.e. one that must be surfaced before any provider call is made.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrUnknownMode,
		ErrPromptRequired,
		ErrImageRequired,
		ErrComposeNeedsTwo,
		ErrSingleImageOnly,
		ErrImagesNotAllowed,
		ErrInvalidImage,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
