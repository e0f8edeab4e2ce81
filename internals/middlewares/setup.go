package middlewares

import (
	"context"
	"time"

	"gerejaku_backend/internals/configs"
	"gerejaku_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

// RequestTimeout: HTTP timeout guard, diteruskan ke query DB lewat UserContext.
func RequestTimeout(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// SetupMiddlewares: urutan penting, recover paling luar.
func SetupMiddlewares(app *fiber.App, cfg *configs.AppConfig) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.RequestID())
	app.Use(logger.LoggerMiddleware())
	app.Use(MetricsMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(GlobalRateLimiter())
	// default mati: batas waktu mengikuti DB/transport
	if cfg.RequestTimeout > 0 {
		app.Use(RequestTimeout(cfg.RequestTimeout))
	}
}
