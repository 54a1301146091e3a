package domain

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func dataURI(mime, payload string) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestParseDataURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantMIME string
		wantData string
		wantErr  bool
	}{
		{
			name:     "png payload",
			uri:      dataURI("image/png", "fake-png-bytes"),
			wantMIME: "image/png",
			wantData: "fake-png-bytes",
		},
		{
			name:     "jpeg payload with surrounding whitespace",
			uri:      "  " + dataURI("image/jpeg", "jpeg!") + "\n",
			wantMIME: "image/jpeg",
			wantData: "jpeg!",
		},
		{
			name:    "missing prefix",
			uri:     "image/png;base64,aGk=",
			wantErr: true,
		},
		{
			name:    "no comma separator",
			uri:     "data:image/png;base64",
			wantErr: true,
		},
		{
			name:    "not base64 encoded",
			uri:     "data:image/png;base64,!!!not-base64!!!",
			wantErr: true,
		},
		{
			name:    "url-encoded text payload rejected",
			uri:     "data:text/plain,hello",
			wantErr: true,
		},
		{
			name:    "empty payload",
			uri:     "data:image/png;base64,",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img, err := ParseDataURI(tc.uri)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDataURI(%q) expected error", tc.uri)
				}
				if !errors.Is(err, ErrInvalidImage) {
					t.Fatalf("error %v is not ErrInvalidImage", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDataURI returned error: %v", err)
			}
			if img.MIMEType != tc.wantMIME {
				t.Fatalf("MIMEType = %q, want %q", img.MIMEType, tc.wantMIME)
			}
			if string(img.Data) != tc.wantData {
				t.Fatalf("Data = %q, want %q", img.Data, tc.wantData)
			}
		})
	}
}

func TestDataURIRoundTrip(t *testing.T) {
	in := ImageInput{Data: []byte{0x89, 0x50, 0x4e, 0x47}, MIMEType: "image/png"}
	uri := in.DataURI()
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %q", uri)
	}
	out, err := ParseDataURI(uri)
	if err != nil {
		t.Fatalf("ParseDataURI returned error: %v", err)
	}
	if out.MIMEType != in.MIMEType || string(out.Data) != string(in.Data) {
		t.Fatalf("round trip mismatch: %#v", out)
	}
}

func TestDecodeImagesPreservesOrder(t *testing.T) {
	uris := []string{
		dataURI("image/png", "first"),
		dataURI("image/jpeg", "second"),
		dataURI("image/webp", "third"),
	}
	images, err := DecodeImages(context.Background(), uris)
	if err != nil {
		t.Fatalf("DecodeImages returned error: %v", err)
	}
	if len(images) != 3 {
		t.Fatalf("got %d images, want 3", len(images))
	}
	for i, want := range []string{"first", "second", "third"} {
		if string(images[i].Data) != want {
			t.Fatalf("images[%d] = %q, want %q", i, images[i].Data, want)
		}
	}
}

func TestDecodeImagesFailsWhole(t *testing.T) {
	uris := []string{
		dataURI("image/png", "ok"),
		"not-a-data-uri",
	}
	if _, err := DecodeImages(context.Background(), uris); !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("expected ErrInvalidImage, got %v", err)
	}
}

func TestDecodeImagesEmptyList(t *testing.T) {
	images, err := DecodeImages(context.Background(), nil)
	if err != nil {
		t.Fatalf("DecodeImages returned error: %v", err)
	}
	if images != nil {
		t.Fatalf("expected nil, got %#v", images)
	}
}
