package moderation

import (
	"context"

	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
)

// Content is what every checker sees for one analysis call.
type Content struct {
	Request   domain.Request
	HTML      string
	ImageURLs []string
}

// Checker is one step of the moderation chain. A rejection stops the chain;
// an error is handed to the fail-open boundary.
type Checker interface {
	Name() string
	Check(ctx context.Context, content Content) (domain.Outcome, error)
}
