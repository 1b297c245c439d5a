package moderation

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer turns raw post markup into HTML.
type Renderer interface {
	Render(ctx context.Context, markup string) (string, error)
}

type RendererFunc func(ctx context.Context, markup string) (string, error)

func (f RendererFunc) Render(ctx context.Context, markup string) (string, error) {
	return f(ctx, markup)
}

// PassthroughRenderer is used when the caller already hands over HTML.
var PassthroughRenderer = RendererFunc(func(_ context.Context, markup string) (string, error) {
	return markup, nil
})

type MarkdownRenderer struct {
	md goldmark.Markdown
}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// posts may embed raw <img> tags
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (r *MarkdownRenderer) Render(ctx context.Context, markup string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markup), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
