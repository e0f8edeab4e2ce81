package routes

import (
	"time"

	"gerejaku_backend/internals/configs"
	helper "gerejaku_backend/internals/helpers"
	"gerejaku_backend/internals/middlewares"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// NewApp merakit fiber app lengkap (middleware + semua route).
func NewApp(db *gorm.DB, cfg *configs.AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ReadTimeout:             15 * time.Second,
		WriteTimeout:            30 * time.Second,
		IdleTimeout:             90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, cfg)
	SetupRoutes(app, db, cfg)
	return app
}
