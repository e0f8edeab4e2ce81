package route

import (
	"gerejaku_backend/internals/features/attendances/attendances/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// 🔐 Route absensi (session guard dipasang di router induk)
func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	MountAttendanceRoutes(api, controller.NewAttendanceController(db))
}

// MountAttendanceRoutes: route statis (/sunday, /monthly, /yearly) harus sebelum /:congregation_id
func MountAttendanceRoutes(api fiber.Router, ctrl *controller.AttendanceController) {
	g := api.Group("/attendances")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/sunday", ctrl.Sunday)
	g.Get("/monthly", ctrl.Monthly)
	g.Get("/yearly", ctrl.Yearly)
	g.Get("/:congregation_id", ctrl.History)
	g.Get("/:congregation_id/summary", ctrl.Summary)
}
