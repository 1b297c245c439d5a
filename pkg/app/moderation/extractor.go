package moderation

import (
	"fmt"
	"net/url"
	"strings"

	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
	"github.com/PuerkitoBio/goquery"
)

// Extractor lists the images referenced by rendered HTML. It never touches
// the network.
type Extractor struct {
	baseURL string
}

func NewExtractor(baseURL string) *Extractor {
	return &Extractor{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// ImageURLs returns the src of every img element in document order.
// Duplicates are kept and elements without a src are skipped.
func (e *Extractor) ImageURLs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %w", domain.ErrExtraction, err)
	}

	var urls []string
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, ok := s.Attr("src")
		if !ok {
			return
		}
		src = strings.TrimSpace(src)
		if src == "" {
			return
		}
		urls = append(urls, e.absolute(src))
	})
	return urls, nil
}

func (e *Extractor) absolute(src string) string {
	if strings.HasPrefix(src, "//") {
		scheme := "https"
		if base, err := url.Parse(e.baseURL); err == nil && base.Scheme != "" {
			scheme = base.Scheme
		}
		return scheme + ":" + src
	}
	if u, err := url.Parse(src); err == nil && u.Scheme != "" {
		return src
	}
	if strings.HasPrefix(src, "/") {
		return e.baseURL + src
	}
	return e.baseURL + "/" + src
}
