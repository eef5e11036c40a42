package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"mylegs/backend/utils"
)

// LoggingMiddleware wires the request logger into the middleware chain.
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return utils.LoggingMiddleware(logger)
}
