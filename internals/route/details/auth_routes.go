package details

import (
	"gerejaku_backend/internals/configs"
	authRoute "gerejaku_backend/internals/features/users/auth/route"
	userRoute "gerejaku_backend/internals/features/users/user/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthPublicRoutes(public fiber.Router, db *gorm.DB, cfg *configs.AppConfig) {
	authRoute.AuthPublicRoutes(public, db, cfg)
}

func AuthPrivateRoutes(private fiber.Router, db *gorm.DB, cfg *configs.AppConfig) {
	authRoute.AuthProtectedRoutes(private, db, cfg)
}

// Kelola akun pengurus
func UserPrivateRoutes(private fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(private, db)
}
