package middlewares

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware menangkap panic; ErrorHandler yang mengubahnya jadi 500
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logrus.WithFields(logrus.Fields{
				"request_id": c.Locals("request_id"),
				"method":     c.Method(),
				"path":       c.Path(),
			}).Error(fmt.Sprintf("🔥 panic: %v", e))
		},
	})
}
