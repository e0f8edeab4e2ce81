package route

import (
	"gerejaku_backend/internals/features/congregations/congregations/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// 🔐 Semua route jemaat ada di belakang session guard (dipasang di router induk)
func CongregationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCongregationController(db)

	g := api.Group("/congregations")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
