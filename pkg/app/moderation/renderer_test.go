package moderation_test

import (
	"context"
	"testing"

	"github.com/NeuralTrust/ImageGuard/pkg/app/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownRenderer_Render(t *testing.T) {
	renderer := moderation.NewMarkdownRenderer()

	html, err := renderer.Render(context.Background(), "look ![cat](/uploads/cat.png)\n\n<img src=\"https://cdn.example.com/raw.png\">")
	require.NoError(t, err)

	urls, err := moderation.NewExtractor("https://forum.example.com").ImageURLs(html)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://forum.example.com/uploads/cat.png", "https://cdn.example.com/raw.png"}, urls)
}

func TestMarkdownRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := moderation.NewMarkdownRenderer().Render(ctx, "text")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPassthroughRenderer(t *testing.T) {
	html, err := moderation.PassthroughRenderer.Render(context.Background(), "<p>x</p>")

	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", html)
}
