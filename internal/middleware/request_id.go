package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDKey is the Locals key carrying the per-request identifier.
const RequestIDKey = "request_id"

// RequestID tags every request with a UUID, exposes it in the response
// headers and attaches a request-scoped logger to the Fiber context.
func RequestID(log zerolog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		id := uuid.New().String()
		c.Locals(RequestIDKey, id)
		c.Set("X-Request-ID", id)

		reqLog := log.With().
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Logger()
		c.Locals("logger", reqLog)

		return c.Next()
	}
}

// LoggerFrom returns the request-scoped logger, or a disabled logger when the
// middleware did not run.
func LoggerFrom(c fiber.Ctx) zerolog.Logger {
	if log, ok := c.Locals("logger").(zerolog.Logger); ok {
		return log
	}
	return zerolog.Nop()
}
