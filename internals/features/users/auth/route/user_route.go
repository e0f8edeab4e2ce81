// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"gerejaku_backend/internals/configs"
	controller "gerejaku_backend/internals/features/users/auth/controller"
	rateLimiter "gerejaku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// 🔓 Public: register & login
func AuthPublicRoutes(api fiber.Router, db *gorm.DB, cfg *configs.AppConfig) {
	ctrl := controller.NewAuthController(db, cfg)

	auth := api.Group("/auth")
	auth.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)
	auth.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)
}

// 🔐 Protected: butuh session guard di router induk
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB, cfg *configs.AppConfig) {
	ctrl := controller.NewAuthController(db, cfg)

	auth := api.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", ctrl.Me)
	auth.Post("/change-password", ctrl.ChangePassword)
}
