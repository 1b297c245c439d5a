package middleware

import "github.com/gofiber/fiber/v2"

// Middleware is a fiber handler installed ahead of the moderation routes.
type Middleware interface {
	Middleware() fiber.Handler
}

// Transport carries the ordered middleware chain into the server.
type Transport struct {
	chain []Middleware
}

func NewTransport(middlewares ...Middleware) *Transport {
	return &Transport{chain: middlewares}
}

// GetMiddlewares returns the chain in the shape fiber's Use expects.
func (t *Transport) GetMiddlewares() []any {
	if t == nil {
		return nil
	}
	handlers := make([]any, 0, len(t.chain))
	for _, m := range t.chain {
		handlers = append(handlers, m.Middleware())
	}
	return handlers
}
