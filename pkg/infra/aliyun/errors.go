package aliyun

import (
	"errors"
	"fmt"

	domain "github.com/NeuralTrust/ImageGuard/pkg/domain/moderation"
)

var (
	ErrSigning          = fmt.Errorf("aliyun: %w", domain.ErrSigning)
	ErrTransport        = fmt.Errorf("aliyun: %w", domain.ErrTransport)
	ErrDecoding         = fmt.Errorf("aliyun: %w", domain.ErrDecoding)
	ErrUnexpectedStatus = errors.New("aliyun: unexpected http status")
)

// StatusError is returned for any non-2xx answer. It matches
// ErrUnexpectedStatus and unwraps to ErrTransport.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("aliyun: unexpected http status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

func (e *StatusError) Unwrap() error {
	return ErrTransport
}
