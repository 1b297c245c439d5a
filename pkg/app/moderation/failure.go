package moderation

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
)

type FailureCategory string

const (
	CategoryExtraction FailureCategory = "extraction"
	CategorySigning    FailureCategory = "signing"
	CategoryTransport  FailureCategory = "transport"
	CategoryDecoding   FailureCategory = "decoding"
	CategoryUnknown    FailureCategory = "unknown"
)

// FailureError is an error that prevented a risk level from being determined,
// tagged with its category.
type FailureError struct {
	Category FailureCategory
	Err      error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%s failure: %v", e.Category, e.Err)
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

// Classify tags err with a failure category. Errors that are already
// classified are returned unchanged.
func Classify(err error) *FailureError {
	if err == nil {
		return nil
	}
	var failure *FailureError
	if errors.As(err, &failure) {
		return failure
	}
	return &FailureError{Category: categoryOf(err), Err: err}
}

func categoryOf(err error) FailureCategory {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return CategoryTransport
	case errors.Is(err, domain.ErrExtraction):
		return CategoryExtraction
	case errors.Is(err, domain.ErrSigning):
		return CategorySigning
	case errors.Is(err, domain.ErrTransport):
		return CategoryTransport
	case errors.Is(err, domain.ErrDecoding):
		return CategoryDecoding
	default:
		return CategoryUnknown
	}
}

// ImageError carries the image that was being classified when err happened.
type ImageError struct {
	ImageURL string
	Err      error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image %s: %v", truncateURL(e.ImageURL), e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

const maxLoggedURL = 100

func truncateURL(u string) string {
	if len(u) <= maxLoggedURL {
		return u
	}
	return u[:maxLoggedURL] + "..."
}
