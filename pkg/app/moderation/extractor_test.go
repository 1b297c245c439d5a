package moderation_test

import (
	"testing"

	"github.com/NeuralTrust/ImageGuard/pkg/app/moderation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ImageURLs(t *testing.T) {
	extractor := moderation.NewExtractor("https://forum.example.com/")

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "no images",
			html: "<p>just text</p>",
			want: nil,
		},
		{
			name: "absolute and relative keep order",
			html: `<p><img src="/uploads/a.png"><img src="https://cdn.example.com/b.jpg"></p>`,
			want: []string{"https://forum.example.com/uploads/a.png", "https://cdn.example.com/b.jpg"},
		},
		{
			name: "duplicates are kept",
			html: `<img src="/x.png"><img src="/x.png">`,
			want: []string{"https://forum.example.com/x.png", "https://forum.example.com/x.png"},
		},
		{
			name: "missing and empty src skipped",
			html: `<img alt="no source"><img src=""><img src="/ok.png">`,
			want: []string{"https://forum.example.com/ok.png"},
		},
		{
			name: "protocol relative uses base scheme",
			html: `<img src="//cdn.example.com/c.gif">`,
			want: []string{"https://cdn.example.com/c.gif"},
		},
		{
			name: "path without leading slash",
			html: `<img src="uploads/d.png">`,
			want: []string{"https://forum.example.com/uploads/d.png"},
		},
		{
			name: "plain http passes through",
			html: `<img src="http://legacy.example.com/e.png">`,
			want: []string{"http://legacy.example.com/e.png"},
		},
		{
			name: "malformed markup is tolerated",
			html: `<div><img src="/f.png"><p>unclosed`,
			want: []string{"https://forum.example.com/f.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			urls, err := extractor.ImageURLs(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, urls)
		})
	}
}
