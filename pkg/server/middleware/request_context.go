package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned by the request context
// middleware, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type requestContextMiddleware struct {
	logger  *logrus.Logger
	timeout time.Duration
}

// NewRequestContextMiddleware bounds every request with timeout so that
// outbound classification calls are cancelled when the caller gives up.
func NewRequestContextMiddleware(logger *logrus.Logger, timeout time.Duration) Middleware {
	return &requestContextMiddleware{
		logger:  logger,
		timeout: timeout,
	}
}

func (m *requestContextMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)

		ctx := context.WithValue(c.UserContext(), requestIDKey{}, requestID)
		if m.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, m.timeout)
			defer cancel()
		}
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()
		m.logger.WithFields(logrus.Fields{
			"request_id":  requestID,
			"method":      c.Method(),
			"path":        c.Path(),
			"status_code": c.Response().StatusCode(),
			"latency_ms":  time.Since(start).Milliseconds(),
		}).Debug("request handled")
		return err
	}
}
