package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"lms_backend/internals/middlewares/logger"
)

// SetupMiddlewares: recover → logger → cors → limiter
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
