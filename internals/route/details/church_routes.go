package details

import (
	attendanceRoute "gerejaku_backend/internals/features/attendances/attendances/route"
	congregationRoute "gerejaku_backend/internals/features/congregations/congregations/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Jemaat & absensi: semuanya di belakang session guard.
func ChurchPrivateRoutes(private fiber.Router, db *gorm.DB) {
	congregationRoute.CongregationRoutes(private, db)
	attendanceRoute.AttendanceRoutes(private, db)
}
