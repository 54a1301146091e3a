package image

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server/internal/domain"
)

type fakeClient struct {
	lastImages []domain.ImageInput
	lastPrompt string
	lastCount  int
}

func (f *fakeClient) GenerateImages(_ context.Context, prompt string, count int) ([]domain.ImageInput, error) {
	f.lastPrompt = prompt
	f.lastCount = count
	out := make([]domain.ImageInput, count)
	for i := range out {
		out[i] = domain.ImageInput{Data: []byte{byte(i)}, MIMEType: "image/png"}
	}
	return out, nil
}

func (f *fakeClient) GenerateWithImages(_ context.Context, images []domain.ImageInput, prompt string) (domain.ImageInput, error) {
	f.lastImages = images
	f.lastPrompt = prompt
	return domain.ImageInput{Data: []byte("out"), MIMEType: "image/png"}, nil
}

func TestTextToImagePassesCount(t *testing.T) {
	client := &fakeClient{}
	gen := NewGeminiGenerator(client)

	out, err := gen.TextToImage(context.Background(), "a red bottle", 3)
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, "a red bottle", client.lastPrompt)
	assert.Equal(t, 3, client.lastCount)
}

func TestComposeKeepsSourceOrder(t *testing.T) {
	client := &fakeClient{}
	gen := NewGeminiGenerator(client)

	sources := []domain.ImageInput{
		{Data: []byte("first"), MIMEType: "image/png"},
		{Data: []byte("second"), MIMEType: "image/jpeg"},
		{Data: []byte("third"), MIMEType: "image/webp"},
	}
	_, err := gen.Compose(context.Background(), sources, "put the product from the first image on the second")
	require.NoError(t, err)
	require.Len(t, client.lastImages, 3)
	assert.Equal(t, []byte("first"), client.lastImages[0].Data)
	assert.Equal(t, []byte("second"), client.lastImages[1].Data)
	assert.Equal(t, []byte("third"), client.lastImages[2].Data)
}

func TestTransformAllowsEmptyPrompt(t *testing.T) {
	client := &fakeClient{}
	gen := NewGeminiGenerator(client)

	_, err := gen.Transform(context.Background(), domain.ImageInput{Data: []byte("src")}, "")
	require.NoError(t, err)
	require.Len(t, client.lastImages, 1)
	assert.Empty(t, client.lastPrompt)
}
