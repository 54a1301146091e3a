package domain

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ImageInput is one user-supplied or model-produced image: raw bytes plus
// their MIME type. Instances are built once per upload and never mutated.
type ImageInput struct {
	Data     []byte
	MIMEType string
}

// DataURI encodes the image as an inline data URI suitable for an <img> src.
func (i ImageInput) DataURI() string {
	mime := i.MIMEType
	if mime == "" {
		mime = http.DetectContentType(i.Data)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// ParseDataURI decodes a "data:<mime>;base64,<payload>" string as produced by
// the browser's FileReader. The MIME type falls back to content sniffing when
// the header omits it.
func ParseDataURI(uri string) (ImageInput, error) {
	trimmed := strings.TrimSpace(uri)
	if !strings.HasPrefix(trimmed, "data:") {
		return ImageInput{}, fmt.Errorf("%w: missing data: prefix", ErrInvalidImage)
	}
	comma := strings.IndexByte(trimmed, ',')
	if comma < 0 {
		return ImageInput{}, fmt.Errorf("%w: missing payload separator", ErrInvalidImage)
	}
	header := trimmed[len("data:"):comma]
	if !strings.HasSuffix(header, ";base64") {
		return ImageInput{}, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidImage)
	}
	data, err := base64.StdEncoding.DecodeString(trimmed[comma+1:])
	if err != nil {
		return ImageInput{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return ImageInput{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}
	mime := strings.TrimSuffix(header, ";base64")
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	return ImageInput{Data: data, MIMEType: mime}, nil
}

// DecodeImages decodes a list of data URIs concurrently. Output order always
// matches input order; compose instructions reference images by position, so
// the ordering is part of the contract. Any single failure fails the whole
// decode: request construction never starts with a partial image set.
func DecodeImages(ctx context.Context, uris []string) ([]ImageInput, error) {
	if len(uris) == 0 {
		return nil, nil
	}
	images := make([]ImageInput, len(uris))
	g, ctx := errgroup.WithContext(ctx)
	for idx, uri := range uris {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := ParseDataURI(uri)
			if err != nil {
				return fmt.Errorf("image %d: %w", idx+1, err)
			}
			images[idx] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// ExtensionForMIME maps an image MIME type to a filename extension.
func ExtensionForMIME(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	default:
		return "png"
	}
}
