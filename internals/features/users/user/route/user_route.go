package route

import (
	userController "gerejaku_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// 🔐 Kelola akun pengurus (di belakang session guard)
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := api.Group("/users")
	users.Get("/", ctrl.GetUsers)
	users.Patch("/:id/status", ctrl.UpdateStatus)
	users.Delete("/:id", ctrl.DeleteUser)
}
