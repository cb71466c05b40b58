package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDLocalKey is the fiber locals key holding the request ID.
	RequestIDLocalKey = "request_id"

	maxRequestIDLength = 128
)

// RequestID makes sure every request has an ID.
// An incoming X-Request-ID is reused unless it is over maxRequestIDLength,
// otherwise a UUID is generated. The ID is echoed on the response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Locals(RequestIDLocalKey, id)
		c.Set(RequestIDHeader, id)

		return c.Next()
	}
}
