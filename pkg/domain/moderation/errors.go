package moderation

import "errors"

// Failure categories. Adapters wrap these so the decision boundary can tell
// why a risk level could not be determined.
var (
	ErrExtraction = errors.New("content extraction failed")
	ErrSigning    = errors.New("request signing failed")
	ErrTransport  = errors.New("remote call failed")
	ErrDecoding   = errors.New("remote response could not be decoded")
)
