package domain

import (
	"errors"
	"testing"
)

func TestParseBatchCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1", 1},
		{"4", 4},
		{" 3 ", 3},
		{"0", 1},
		{"-2", 1},
		{"5", 4},
		{"99", 4},
		{"", 1},
		{"abc", 1},
		{"2.5", 1},
	}
	for _, tc := range tests {
		if got := ParseBatchCount(tc.in); got != tc.want {
			t.Fatalf("ParseBatchCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClampBatchCount(t *testing.T) {
	for in, want := range map[int]int{-1: 1, 0: 1, 1: 1, 2: 2, 4: 4, 5: 4, 100: 4} {
		if got := ClampBatchCount(in); got != want {
			t.Fatalf("ClampBatchCount(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"text-to-image", "image-to-image", "image-edit", "image-compose", " Image-Edit "} {
		if _, err := ParseMode(s); err != nil {
			t.Fatalf("ParseMode(%q) returned error: %v", s, err)
		}
	}
	if _, err := ParseMode("upscale"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestSubmissionValidate(t *testing.T) {
	img := "data:image/png;base64,aGVsbG8="
	tests := []struct {
		name string
		sub  Submission
		want error
	}{
		{
			name: "text-to-image ok",
			sub:  Submission{Mode: ModeTextToImage, Prompt: "a red bottle", BatchCount: 2},
		},
		{
			name: "text-to-image empty prompt",
			sub:  Submission{Mode: ModeTextToImage, Prompt: "   "},
			want: ErrPromptRequired,
		},
		{
			name: "text-to-image with images",
			sub:  Submission{Mode: ModeTextToImage, Prompt: "x", Images: []string{img}},
			want: ErrImagesNotAllowed,
		},
		{
			name: "image-to-image without prompt ok",
			sub:  Submission{Mode: ModeImageToImage, Images: []string{img}},
		},
		{
			name: "image-to-image no image",
			sub:  Submission{Mode: ModeImageToImage, Prompt: "brighter"},
			want: ErrImageRequired,
		},
		{
			name: "image-to-image two images",
			sub:  Submission{Mode: ModeImageToImage, Images: []string{img, img}},
			want: ErrSingleImageOnly,
		},
		{
			name: "edit ok",
			sub:  Submission{Mode: ModeImageEdit, Prompt: "remove the background", Images: []string{img}},
		},
		{
			name: "edit empty instruction",
			sub:  Submission{Mode: ModeImageEdit, Prompt: "", Images: []string{img}},
			want: ErrPromptRequired,
		},
		{
			name: "edit no image",
			sub:  Submission{Mode: ModeImageEdit, Prompt: "crop it"},
			want: ErrImageRequired,
		},
		{
			name: "compose ok",
			sub:  Submission{Mode: ModeImageCompose, Prompt: "merge", Images: []string{img, img}},
		},
		{
			name: "compose single image",
			sub:  Submission{Mode: ModeImageCompose, Prompt: "merge", Images: []string{img}},
			want: ErrComposeNeedsTwo,
		},
		{
			name: "compose empty instruction",
			sub:  Submission{Mode: ModeImageCompose, Images: []string{img, img}},
			want: ErrPromptRequired,
		},
		{
			name: "unknown mode",
			sub:  Submission{Mode: "video", Prompt: "x"},
			want: ErrUnknownMode,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sub.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate = %v, want %v", err, tc.want)
			}
			if !IsValidation(err) {
				t.Fatalf("%v should be classified as a validation error", err)
			}
		})
	}
}
