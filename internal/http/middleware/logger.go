package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"movieapi/internal/logger"
)

// Logger is a middleware that logs each HTTP request through zap.
// Fields: request_id (set by RequestID), method, path, status, latency (ms).
// A logger carrying request_id is stored in the request's user context.
func Logger(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		reqLogger := l.With(zap.String("request_id", rid))
		c.SetUserContext(logger.ContextWithLogger(c.UserContext(), reqLogger))

		err := c.Next()

		reqLogger.Info("request",
			zap.String("method", c.Method()),
			// Path only, without the query string
			zap.String("path", c.Path()),
			zap.Int("status", statusOf(c, err)),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		)

		return err
	}
}

// statusOf reports the status the global error handler will write for err.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fiberErr, ok := err.(*fiber.Error); ok {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
